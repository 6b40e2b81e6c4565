// Package calc is the damage engine: closed-form expected-value DPS
// formulas plus the stochastic time-stepped combat simulation. Both
// work from the same resolved modifier bundle; the formulas serve as
// the analytical cross-check the simulation converges to.
package calc

import (
	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
	"github.com/sigmazhou/warframe-damage-calculator/internal/enemy"
	"github.com/sigmazhou/warframe-damage-calculator/internal/modifier"
)

// tridolonElementBonus amplifies radiation and cold against boss-class
// targets ahead of normal vulnerability weighting. It is type-specific
// rather than faction-specific, so it is not folded into the general
// vulnerability vector.
const tridolonElementBonus = 1.5

// Calculator evaluates one weapon against one target under a resolved
// modifier bundle. It is immutable after construction; simulation runs
// mutate only per-run enemy state copies.
type Calculator struct {
	weapon modifier.WeaponStat
	mods   modifier.Bundle
	target *enemy.State

	// combined is weapon plus modifier elements after element
	// combination; uncombined keeps the raw modifier vector for the
	// per-element DOT bonus, which reads pre-combination values.
	combined   element.Vector
	uncombined element.Vector
}

// New resolves static mods and in-game buffs against a weapon and
// target. elementOrder lists basic elements in application order (mods,
// then weapon innate, then buffs) and drives element combination.
func New(weapon modifier.WeaponStat, static, inGame modifier.Bundle, target *enemy.State, elementOrder []element.Type) *Calculator {
	merged := modifier.Merge(inGame, static)
	merged.ApplyCallbacks()

	combined := merged.Elements.Plus(weapon.Elements)
	if len(elementOrder) > 0 {
		element.Combine(combined, elementOrder)
	}

	return &Calculator{
		weapon:     weapon,
		mods:       merged,
		target:     target,
		combined:   combined,
		uncombined: merged.Elements.Clone(),
	}
}

// Weapon returns the weapon statistic block.
func (c *Calculator) Weapon() modifier.WeaponStat { return c.weapon }

// Mods returns the resolved (merged, callback-applied) bundle.
func (c *Calculator) Mods() modifier.Bundle { return c.mods }

// Target returns the target the calculator was resolved against.
func (c *Calculator) Target() *enemy.State { return c.target }

// CombinedElements returns the post-combination damage vector.
func (c *Calculator) CombinedElements() element.Vector { return c.combined.Clone() }

func (c *Calculator) baseMultiplier() float64 {
	return 1 + c.mods.Damage
}

func (c *Calculator) criticalChance() float64 {
	return c.weapon.CriticalChance * (1 + c.mods.CriticalChance)
}

func (c *Calculator) criticalDamage() float64 {
	return c.weapon.CriticalDamage*(1+c.mods.CriticalDamage) + c.mods.FinalAdditiveCritDamage
}

// CriticalMultiplier is the expected damage multiplier from critical
// hits: cc*(cd-1)+1.
func (c *Calculator) CriticalMultiplier() float64 {
	return c.criticalChance()*(c.criticalDamage()-1) + 1
}

func (c *Calculator) factionMultiplier() float64 {
	return 1 + c.mods.Faction[c.target.Faction]
}

// Multishot returns the expected pellet count per shot.
func (c *Calculator) Multishot() float64 {
	return c.weapon.Multishot * (1 + c.mods.Multishot)
}

// AttackRate returns shots per second.
func (c *Calculator) AttackRate() float64 {
	return c.weapon.AttackSpeed * (1 + c.mods.AttackSpeed)
}

// StatusChance returns the total status chance per pellet. Values above
// 1 mean guaranteed multiple procs.
func (c *Calculator) StatusChance() float64 {
	return c.weapon.StatusChance * (1 + c.mods.StatusChance)
}

// statusChanceFor apportions total status chance by el's share of the
// combined elemental damage. A zero-damage vector contributes nothing.
func (c *Calculator) statusChanceFor(el element.Type) float64 {
	total := c.combined.Total()
	if total <= 0 {
		return 0
	}
	return c.StatusChance() * c.combined.Get(el) / total
}

// ElementalMultiplier is the vulnerability-weighted total of the
// combined elemental vector. Against a boss-class target radiation and
// cold are scaled ahead of vulnerability weighting.
func (c *Calculator) ElementalMultiplier() float64 {
	v := c.combined
	if c.target.Type == enemy.TypeTridolon {
		v = v.Clone()
		v[element.Radiation] *= tridolonElementBonus
		v[element.Cold] *= tridolonElementBonus
	}
	return v.TotalWithVulnerability(c.target.Vulnerability)
}

// nonCritPenalty models boss-class targets taking half damage from
// non-critical hits. No penalty once crits are guaranteed.
func (c *Calculator) nonCritPenalty() float64 {
	cc := c.criticalChance()
	if cc >= 1 {
		return 1
	}
	return 1 - (1-cc)*0.5
}

// singleHitWithoutElements is the per-hit damage before elemental
// weighting: weapon damage, base and critical multipliers, faction
// bonus, and the final multiplier.
func (c *Calculator) singleHitWithoutElements() float64 {
	return c.weapon.Damage *
		c.baseMultiplier() *
		c.CriticalMultiplier() *
		c.factionMultiplier() *
		c.mods.EffectiveFinalMultiplier()
}

// SingleHit returns the expected damage of one hit.
func (c *Calculator) SingleHit() float64 {
	return c.singleHitWithoutElements() * c.ElementalMultiplier()
}

// DirectDPS returns the expected direct (non-DOT) damage per second.
func (c *Calculator) DirectDPS() float64 {
	dps := c.SingleHit() * c.AttackRate() * c.Multishot()
	if c.target.Type == enemy.TypeTridolon {
		dps *= c.nonCritPenalty()
	}
	return dps
}

// DotDPS returns the expected damage per second of the DOT a proc of el
// sustains: half the non-elemental hit damage scaled by the uncombined
// element bonus, times the rate of procs of that element.
func (c *Calculator) DotDPS(el element.Type) float64 {
	base := c.weapon.Damage *
		c.baseMultiplier() *
		c.factionMultiplier() *
		c.mods.EffectiveFinalMultiplier()
	elementBonus := c.uncombined.Get(el) + 1
	procsPerSecond := c.statusChanceFor(el) * c.AttackRate() * c.Multishot()
	return 0.5 * base * elementBonus * procsPerSecond
}

// DotDPSAll returns expected DOT DPS per element, omitting zeros.
func (c *Calculator) DotDPSAll() map[element.Type]float64 {
	out := make(map[element.Type]float64)
	for _, el := range []element.Type{element.Heat, element.Toxin, element.Slash, element.Electricity} {
		if dps := c.DotDPS(el); dps > 0 {
			out[el] = dps
		}
	}
	return out
}
