package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
)

func newTestInstance(t Type, remaining float64) *Instance {
	return &Instance{
		Type:          t,
		DamagePerTick: 10,
		Remaining:     remaining,
		TickRate:      1,
		TotalDuration: remaining,
	}
}

func TestInstanceTick(t *testing.T) {
	t.Parallel()

	inst := newTestInstance(Toxin, 2)
	assert.InDelta(t, 5.0, inst.Tick(0.5), 1e-12)
	assert.InDelta(t, 1.5, inst.Remaining, 1e-12)
	assert.True(t, inst.Active())

	inst.Remaining = 0
	assert.Zero(t, inst.Tick(0.5))
	assert.False(t, inst.Active())
}

func TestIndependentStacking(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Add(newTestInstance(Toxin, 6), BehaviorIndependent)
	s.Add(newTestInstance(Toxin, 4), BehaviorIndependent)
	s.Add(newTestInstance(Toxin, 2), BehaviorIndependent)

	require.Equal(t, 3, s.Stacks(Toxin))

	// Each instance counts down and expires on its own schedule.
	s.TickAll(2)
	assert.Equal(t, 2, s.Stacks(Toxin))
	s.TickAll(2)
	assert.Equal(t, 1, s.Stacks(Toxin))
	s.TickAll(2)
	assert.Equal(t, 0, s.Stacks(Toxin))
}

func TestRefreshAllStacking(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Add(newTestInstance(Heat, 6), BehaviorRefreshAll)
	s.TickAll(4)
	require.Equal(t, 1, s.Stacks(Heat))

	s.Add(newTestInstance(Heat, 6), BehaviorRefreshAll)
	s.Add(newTestInstance(Heat, 6), BehaviorRefreshAll)

	require.Equal(t, 3, s.Stacks(Heat))
	for _, inst := range s.Instances(Heat) {
		assert.InDelta(t, 6.0, inst.Remaining, 1e-12, "all stacks share the newest duration")
	}
}

func TestTickAllDamageAndExpiry(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Add(newTestInstance(Heat, 1), BehaviorRefreshAll)
	s.Add(newTestInstance(Toxin, 3), BehaviorIndependent)

	dealt := s.TickAll(1)
	assert.InDelta(t, 10.0, dealt[Heat], 1e-12)
	assert.InDelta(t, 10.0, dealt[Toxin], 1e-12)

	// Heat ran out and its key is removed entirely, which is the signal
	// the armor-strip debuff reads.
	counts := s.StackCounts()
	_, heatPresent := counts[Heat]
	assert.False(t, heatPresent)
	assert.Equal(t, 1, counts[Toxin])
}

func TestTickAllPartialTickRate(t *testing.T) {
	t.Parallel()

	s := NewState()
	inst := newTestInstance(Electricity, 6)
	inst.TickRate = 2
	s.Add(inst, BehaviorIndependent)

	dealt := s.TickAll(0.5)
	// delta * rate * damage per tick
	assert.InDelta(t, 10.0, dealt[Electricity], 1e-12)
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Add(newTestInstance(Gas, 6), BehaviorIndependent)
	s.Clear()
	assert.Empty(t, s.StackCounts())
}

func TestConfigFor(t *testing.T) {
	t.Parallel()

	cfg, ok := ConfigFor(element.Heat)
	require.True(t, ok)
	assert.Equal(t, BehaviorRefreshAll, cfg.Behavior)

	cfg, ok = ConfigFor(element.Slash)
	require.True(t, ok)
	assert.Equal(t, BehaviorIndependent, cfg.Behavior)
	assert.InDelta(t, 0.35, cfg.DamageMultiplier, 1e-12)

	_, ok = ConfigFor(element.Impact)
	assert.False(t, ok, "impact has no DOT effect")
}

func TestConfigNewInstance(t *testing.T) {
	t.Parallel()

	cfg, ok := ConfigFor(element.Toxin)
	require.True(t, ok)

	inst := cfg.NewInstance(100)
	assert.Equal(t, Toxin, inst.Type)
	assert.InDelta(t, 50.0, inst.DamagePerTick, 1e-12)
	assert.InDelta(t, 6.0, inst.Remaining, 1e-12)
	assert.InDelta(t, 6.0, inst.TotalDuration, 1e-12)
}
