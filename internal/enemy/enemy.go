// Package enemy models the target side of a calculation: faction and
// type identity, elemental vulnerabilities, armor, and the debuffs the
// simulation applies to it.
package enemy

import (
	"log/slog"

	"github.com/sigmazhou/warframe-damage-calculator/internal/dot"
	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
)

// Faction identifies an enemy faction.
type Faction string

const (
	FactionNone     Faction = "none"
	FactionGrineer  Faction = "grineer"
	FactionCorpus   Faction = "corpus"
	FactionInfested Faction = "infested"
	FactionOrokin   Faction = "orokin"
	FactionMurmur   Faction = "murmur"
	FactionSentient Faction = "sentient"
)

// Type identifies special target classes with distinct damage economics.
type Type string

const (
	TypeNone Type = "none"
	// TypeTridolon marks a boss-class target: non-crits deal half damage
	// and radiation/cold contributions are amplified.
	TypeTridolon Type = "tridolon"
)

var factions = map[Faction]bool{
	FactionNone: true, FactionGrineer: true, FactionCorpus: true,
	FactionInfested: true, FactionOrokin: true, FactionMurmur: true,
	FactionSentient: true,
}

var types = map[Type]bool{
	TypeNone: true, TypeTridolon: true,
}

// ParseFaction maps a string to a faction. Unknown strings degrade to
// FactionNone with a warning rather than failing the request.
func ParseFaction(s string) Faction {
	f := Faction(s)
	if !factions[f] {
		slog.Warn("unknown faction, using none", "faction", s)
		return FactionNone
	}
	return f
}

// ParseType maps a string to an enemy type, degrading to TypeNone for
// unknown strings.
func ParseType(s string) Type {
	t := Type(s)
	if !types[t] {
		slog.Warn("unknown enemy type, using none", "type", s)
		return TypeNone
	}
	return t
}

// factionVulnerability lists the non-neutral vulnerability weights per
// faction. Types absent from a vector are weighted 1.0.
var factionVulnerability = map[Faction]element.Vector{
	FactionGrineer:  {element.Impact: 1.5, element.Corrosive: 1.5},
	FactionCorpus:   {element.Puncture: 1.5, element.Magnetic: 1.5},
	FactionInfested: {element.Slash: 1.5, element.Heat: 1.5},
	FactionOrokin:   {element.Puncture: 1.5, element.Viral: 1.5, element.Radiation: 0.5},
	FactionMurmur:   {element.Electricity: 1.5, element.Radiation: 1.5, element.Viral: 0.5},
	FactionSentient: {element.Cold: 1.5, element.Radiation: 1.5, element.Corrosive: 0.5},
}

// Vulnerability returns the elemental vulnerability vector for a
// faction. Unlisted factions take no bonus or penalty from any element.
func Vulnerability(f Faction) element.Vector {
	if v, ok := factionVulnerability[f]; ok {
		return v.Clone()
	}
	return element.NewVector()
}

// MaxArmor caps base armor for any target.
const MaxArmor = 2700.0

// State is the mutable target state owned by one simulation run.
type State struct {
	Faction       Faction
	Type          Type
	Vulnerability element.Vector
	BaseArmor     float64
	CurrentArmor  float64

	Dots    *dot.State
	Debuffs map[DebuffKind]*ArmorStrip
}

// New builds a fresh enemy state from a faction/type pair using the
// faction vulnerability table.
func New(faction Faction, typ Type) *State {
	return NewWithArmor(faction, typ, 0)
}

// NewWithArmor builds a fresh enemy state with the given base armor,
// clamped to MaxArmor.
func NewWithArmor(faction Faction, typ Type, baseArmor float64) *State {
	if baseArmor > MaxArmor {
		baseArmor = MaxArmor
	}
	if baseArmor < 0 {
		baseArmor = 0
	}
	return &State{
		Faction:       faction,
		Type:          typ,
		Vulnerability: Vulnerability(faction),
		BaseArmor:     baseArmor,
		CurrentArmor:  baseArmor,
		Dots:          dot.NewState(),
		Debuffs:       make(map[DebuffKind]*ArmorStrip),
	}
}

// Fresh returns a copy of the identity and vulnerability of s with all
// mutable combat state (armor, DOTs, debuffs) reset, for an independent
// simulation run.
func (s *State) Fresh() *State {
	out := NewWithArmor(s.Faction, s.Type, s.BaseArmor)
	out.Vulnerability = s.Vulnerability.Clone()
	return out
}
