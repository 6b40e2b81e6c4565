package enemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmazhou/warframe-damage-calculator/internal/dot"
)

func addHeat(s *State, remaining float64) {
	s.Dots.Add(&dot.Instance{
		Type:          dot.Heat,
		DamagePerTick: 1,
		Remaining:     remaining,
		TickRate:      1,
		TotalDuration: remaining,
	}, dot.BehaviorRefreshAll)
}

func TestArmorStripProgression(t *testing.T) {
	t.Parallel()

	s := NewWithArmor(FactionGrineer, TypeNone, 500)
	addHeat(s, 30)
	s.EnsureArmorStrip(0)
	strip := s.Debuffs[DebuffHeatArmorStrip]
	require.NotNil(t, strip)

	strip.Update(s, 0.5)
	assert.Equal(t, 1, strip.Stage())
	assert.InDelta(t, 425.0, s.CurrentArmor, 1e-9) // 85%

	strip.Update(s, 1.0)
	assert.Equal(t, 2, strip.Stage())
	assert.InDelta(t, 350.0, s.CurrentArmor, 1e-9) // 70%

	// Sustained heat for >= 4x the strip interval reaches max stage.
	strip.Update(s, 2.0)
	assert.Equal(t, MaxStripStage, strip.Stage())
	assert.InDelta(t, 250.0, s.CurrentArmor, 1e-9) // 50%

	// Stage saturates, armor never drops below the last fraction.
	strip.Update(s, 10.0)
	assert.Equal(t, MaxStripStage, strip.Stage())
	assert.InDelta(t, 250.0, s.CurrentArmor, 1e-9)
}

func TestArmorStripRecovery(t *testing.T) {
	t.Parallel()

	s := NewWithArmor(FactionGrineer, TypeNone, 500)
	addHeat(s, 30)
	s.EnsureArmorStrip(0)
	strip := s.Debuffs[DebuffHeatArmorStrip]

	strip.Update(s, 2.0)
	require.Equal(t, MaxStripStage, strip.Stage())

	// Heat DOTs gone: stage recedes one step per recovery interval.
	s.Dots.Clear()
	strip.Update(s, 3.5)
	assert.Equal(t, 3, strip.Stage())
	strip.Update(s, 5.0)
	assert.Equal(t, 2, strip.Stage())

	// Waiting >= 4x the recovery interval restores full armor.
	strip.Update(s, 8.0)
	assert.Equal(t, 0, strip.Stage())
	assert.InDelta(t, 500.0, s.CurrentArmor, 1e-9)
	assert.True(t, strip.Expired(s))
}

func TestArmorStripPersistsThroughRecoveryTail(t *testing.T) {
	t.Parallel()

	s := NewWithArmor(FactionGrineer, TypeNone, 500)
	addHeat(s, 30)
	s.EnsureArmorStrip(0)

	s.UpdateDebuffs(1.0)
	require.Equal(t, 2, s.Debuffs[DebuffHeatArmorStrip].Stage())

	// DOTs expired but the debuff stays while recovering.
	s.Dots.Clear()
	s.UpdateDebuffs(2.0)
	assert.Contains(t, s.Debuffs, DebuffHeatArmorStrip)

	// Only at stage zero with no heat DOTs is it removed.
	s.UpdateDebuffs(20.0)
	assert.NotContains(t, s.Debuffs, DebuffHeatArmorStrip)
	assert.InDelta(t, 500.0, s.CurrentArmor, 1e-9)
}

func TestEnsureArmorStripIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewWithArmor(FactionGrineer, TypeNone, 500)
	addHeat(s, 30)
	s.EnsureArmorStrip(0)
	s.UpdateDebuffs(1.0)
	stage := s.Debuffs[DebuffHeatArmorStrip].Stage()

	s.EnsureArmorStrip(1.0)
	assert.Equal(t, stage, s.Debuffs[DebuffHeatArmorStrip].Stage(), "re-adding must not reset progress")
}
