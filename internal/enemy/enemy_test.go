package enemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
)

func TestParseFactionFailOpen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FactionGrineer, ParseFaction("grineer"))
	assert.Equal(t, FactionNone, ParseFaction("space_pirates"))
}

func TestParseTypeFailOpen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeTridolon, ParseType("tridolon"))
	assert.Equal(t, TypeNone, ParseType("mega_boss"))
}

func TestVulnerability(t *testing.T) {
	t.Parallel()

	v := Vulnerability(FactionGrineer)
	assert.InDelta(t, 1.5, v.Get(element.Impact), 1e-12)
	assert.InDelta(t, 1.5, v.Get(element.Corrosive), 1e-12)

	// Orokin takes reduced radiation damage.
	v = Vulnerability(FactionOrokin)
	assert.InDelta(t, 0.5, v.Get(element.Radiation), 1e-12)

	// Unlisted factions have a neutral vector.
	assert.Empty(t, Vulnerability(FactionNone))

	// Table entries are copies; mutating one must not poison the table.
	v = Vulnerability(FactionCorpus)
	v[element.Puncture] = 99
	assert.InDelta(t, 1.5, Vulnerability(FactionCorpus).Get(element.Puncture), 1e-12)
}

func TestNewWithArmorClamps(t *testing.T) {
	t.Parallel()

	s := NewWithArmor(FactionGrineer, TypeNone, 99999)
	assert.InDelta(t, MaxArmor, s.BaseArmor, 1e-12)
	assert.InDelta(t, MaxArmor, s.CurrentArmor, 1e-12)

	s = NewWithArmor(FactionGrineer, TypeNone, -5)
	assert.Zero(t, s.BaseArmor)
}

func TestFreshResetsCombatState(t *testing.T) {
	t.Parallel()

	s := NewWithArmor(FactionGrineer, TypeTridolon, 500)
	s.CurrentArmor = 250
	s.EnsureArmorStrip(0)
	require.Len(t, s.Debuffs, 1)

	f := s.Fresh()
	assert.Equal(t, s.Faction, f.Faction)
	assert.Equal(t, s.Type, f.Type)
	assert.InDelta(t, 500.0, f.CurrentArmor, 1e-12)
	assert.Empty(t, f.Debuffs)
	assert.Empty(t, f.Dots.StackCounts())
}
