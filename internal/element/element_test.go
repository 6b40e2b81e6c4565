package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	got, ok := Parse("heat")
	require.True(t, ok)
	assert.Equal(t, Heat, got)

	_, ok = Parse("plasma")
	assert.False(t, ok)
}

func TestBasic(t *testing.T) {
	t.Parallel()

	for _, el := range []Type{Cold, Electricity, Heat, Toxin} {
		assert.True(t, el.Basic(), "%s should be basic", el)
	}
	for _, el := range []Type{Impact, Slash, Gas, Radiation, Void, True} {
		assert.False(t, el.Basic(), "%s should not be basic", el)
	}
}

func TestVectorPlusAndScale(t *testing.T) {
	t.Parallel()

	a := Vector{Heat: 1, Impact: 2}
	b := Vector{Heat: 0.5, Toxin: 3}

	sum := a.Plus(b)
	assert.InDelta(t, 1.5, sum.Get(Heat), 1e-12)
	assert.InDelta(t, 2, sum.Get(Impact), 1e-12)
	assert.InDelta(t, 3, sum.Get(Toxin), 1e-12)
	// operands untouched
	assert.InDelta(t, 1, a.Get(Heat), 1e-12)

	scaled := a.Scale(2)
	assert.InDelta(t, 2, scaled.Get(Heat), 1e-12)
	assert.InDelta(t, 4, scaled.Get(Impact), 1e-12)
}

func TestTotalWithVulnerabilityAllOnesEqualsTotal(t *testing.T) {
	t.Parallel()

	v := Vector{Impact: 0.3, Heat: 0.5, Gas: 0.2}

	ones := NewVector()
	for _, el := range All {
		ones[el] = 1.0
	}
	assert.InDelta(t, v.Total(), v.TotalWithVulnerability(ones), 1e-12)

	// missing keys are weighted neutrally
	assert.InDelta(t, v.Total(), v.TotalWithVulnerability(NewVector()), 1e-12)
}

func TestTotalWithVulnerabilityWeights(t *testing.T) {
	t.Parallel()

	v := Vector{Impact: 1, Corrosive: 1}
	vuln := Vector{Impact: 1.5, Corrosive: 1.5}
	assert.InDelta(t, 3.0, v.TotalWithVulnerability(vuln), 1e-12)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	v := Vector{Impact: 2, Heat: 2}
	v.Normalize()
	assert.InDelta(t, 1.0, v.Total(), 1e-12)
	assert.InDelta(t, 0.5, v.Get(Impact), 1e-12)

	zero := NewVector()
	zero.Normalize()
	assert.Zero(t, zero.Total())
}
