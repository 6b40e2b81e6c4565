// Package modifier holds weapon base statistics and the additive
// modifier bundles that mods and in-game buffs resolve into.
package modifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
	"github.com/sigmazhou/warframe-damage-calculator/internal/enemy"
)

// WeaponStat is the immutable base statistic block of one weapon. The
// element vector carries damage-type proportions and must sum to 1.
type WeaponStat struct {
	Damage         float64
	AttackSpeed    float64
	Multishot      float64
	CriticalChance float64
	CriticalDamage float64
	StatusChance   float64
	StatusDuration float64
	Elements       element.Vector
}

// NewWeaponStat validates and normalizes a weapon statistic block.
// A weapon with no elemental composition defaults to pure puncture.
func NewWeaponStat(w WeaponStat) (WeaponStat, error) {
	if err := checkFinite(map[string]float64{
		"damage":          w.Damage,
		"attack_speed":    w.AttackSpeed,
		"multishot":       w.Multishot,
		"critical_chance": w.CriticalChance,
		"critical_damage": w.CriticalDamage,
		"status_chance":   w.StatusChance,
		"status_duration": w.StatusDuration,
	}); err != nil {
		return WeaponStat{}, err
	}
	if w.Elements == nil {
		w.Elements = element.NewVector()
	}
	for t, dmg := range w.Elements {
		if math.IsNaN(dmg) || math.IsInf(dmg, 0) || dmg < 0 {
			return WeaponStat{}, fmt.Errorf("weapon element %s: invalid value %v", t, dmg)
		}
	}
	w.Elements = w.Elements.Clone()
	if w.Elements.Total() == 0 {
		w.Elements[element.Puncture] = 1
	}
	w.Elements.Normalize()
	return w, nil
}

func checkFinite(fields map[string]float64) error {
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weapon stat %s: invalid value %v", name, v)
		}
		if v < 0 {
			return fmt.Errorf("weapon stat %s: negative value %v", name, v)
		}
	}
	return nil
}

// Callback is a named transformation applied to a bundle after merge.
// Callbacks run in ascending Priority order so adjustments that read
// other fields see a well-defined state.
type Callback struct {
	Name     string
	Priority int
	Apply    func(*Bundle)
}

// Bundle is one resolved set of additive modifiers. Scalar fields are
// bonuses relative to the weapon base (0 means unmodified); Faction
// and Elements are merged by key union.
type Bundle struct {
	Damage         float64
	AttackSpeed    float64
	Multishot      float64
	CriticalChance float64
	CriticalDamage float64
	StatusChance   float64
	StatusDuration float64

	// In-game combat state read by callbacks.
	GalvanizedShot      int
	GalvanizedDiffusion int
	NumDebuffs          int

	// FinalAdditiveCritDamage is added to critical damage after all
	// multiplicative scaling (pet crit bonuses).
	FinalAdditiveCritDamage float64
	// FinalMultiplier scales all outgoing damage; zero means unset and
	// is treated as 1 when merging and evaluating.
	FinalMultiplier float64

	Faction  map[enemy.Faction]float64
	Elements element.Vector

	Callbacks []Callback
}

// NewBundle returns an empty bundle with initialized maps.
func NewBundle() Bundle {
	return Bundle{
		Faction:  make(map[enemy.Faction]float64),
		Elements: element.NewVector(),
	}
}

// EffectiveFinalMultiplier resolves the zero-means-unset convention.
func (b Bundle) EffectiveFinalMultiplier() float64 {
	if b.FinalMultiplier == 0 {
		return 1
	}
	return b.FinalMultiplier
}

// Merge combines two bundles into a new one. Scalar fields add, map
// fields merge by summing shared keys and inserting unique keys, and
// callback lists concatenate. Final multipliers compose by product,
// with an unset (zero) operand falling back to the other side. Merge
// is associative, so static mods and in-game buffs can be folded in
// either order.
func Merge(a, b Bundle) Bundle {
	out := NewBundle()
	out.Damage = a.Damage + b.Damage
	out.AttackSpeed = a.AttackSpeed + b.AttackSpeed
	out.Multishot = a.Multishot + b.Multishot
	out.CriticalChance = a.CriticalChance + b.CriticalChance
	out.CriticalDamage = a.CriticalDamage + b.CriticalDamage
	out.StatusChance = a.StatusChance + b.StatusChance
	out.StatusDuration = a.StatusDuration + b.StatusDuration
	out.GalvanizedShot = a.GalvanizedShot + b.GalvanizedShot
	out.GalvanizedDiffusion = a.GalvanizedDiffusion + b.GalvanizedDiffusion
	out.NumDebuffs = a.NumDebuffs + b.NumDebuffs
	out.FinalAdditiveCritDamage = a.FinalAdditiveCritDamage + b.FinalAdditiveCritDamage

	switch {
	case a.FinalMultiplier == 0:
		out.FinalMultiplier = b.FinalMultiplier
	case b.FinalMultiplier == 0:
		out.FinalMultiplier = a.FinalMultiplier
	default:
		out.FinalMultiplier = a.FinalMultiplier * b.FinalMultiplier
	}

	for f, bonus := range a.Faction {
		out.Faction[f] += bonus
	}
	for f, bonus := range b.Faction {
		out.Faction[f] += bonus
	}
	out.Elements = a.Elements.Plus(b.Elements)

	out.Callbacks = append(out.Callbacks, a.Callbacks...)
	out.Callbacks = append(out.Callbacks, b.Callbacks...)
	return out
}

// Scale returns a with every additive field multiplied by k. Combat
// state counters, the final multiplier, and callbacks pass through
// unscaled.
func Scale(a Bundle, k float64) Bundle {
	out := a
	out.Damage *= k
	out.AttackSpeed *= k
	out.Multishot *= k
	out.CriticalChance *= k
	out.CriticalDamage *= k
	out.StatusChance *= k
	out.StatusDuration *= k
	out.FinalAdditiveCritDamage *= k
	out.Faction = make(map[enemy.Faction]float64, len(a.Faction))
	for f, bonus := range a.Faction {
		out.Faction[f] = bonus * k
	}
	out.Elements = a.Elements.Scale(k)
	out.Callbacks = append([]Callback(nil), a.Callbacks...)
	return out
}

// ApplyCallbacks runs every attached callback against b in ascending
// priority order. Ties keep registration order.
func (b *Bundle) ApplyCallbacks() {
	sorted := append([]Callback(nil), b.Callbacks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	for _, cb := range sorted {
		if cb.Apply != nil {
			cb.Apply(b)
		}
	}
}
