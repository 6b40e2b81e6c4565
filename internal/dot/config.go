package dot

import "github.com/sigmazhou/warframe-damage-calculator/internal/element"

// Config describes how procs of one element turn into DOT instances.
type Config struct {
	Type             Type
	Behavior         Behavior
	BaseDuration     float64 // seconds
	TickRate         float64 // ticks per second
	DamageMultiplier float64 // fraction of proc damage dealt per tick
}

// configs maps proc'ing elements to their DOT configuration. Elements
// absent from this table leave no lasting effect when they proc.
var configs = map[element.Type]Config{
	element.Heat:        {Type: Heat, Behavior: BehaviorRefreshAll, BaseDuration: 6, TickRate: 1, DamageMultiplier: 0.5},
	element.Toxin:       {Type: Toxin, Behavior: BehaviorIndependent, BaseDuration: 6, TickRate: 1, DamageMultiplier: 0.5},
	element.Slash:       {Type: Slash, Behavior: BehaviorIndependent, BaseDuration: 6, TickRate: 1, DamageMultiplier: 0.35},
	element.Electricity: {Type: Electricity, Behavior: BehaviorIndependent, BaseDuration: 6, TickRate: 1, DamageMultiplier: 0.5},
	element.Gas:         {Type: Gas, Behavior: BehaviorIndependent, BaseDuration: 6, TickRate: 1, DamageMultiplier: 0.5},
}

// ConfigFor returns the DOT configuration for a proc'ing element, and
// false if that element has no DOT effect.
func ConfigFor(el element.Type) (Config, bool) {
	cfg, ok := configs[el]
	return cfg, ok
}

// NewInstance builds a DOT instance from a proc's damage.
func (c Config) NewInstance(procDamage float64) *Instance {
	return &Instance{
		Type:          c.Type,
		DamagePerTick: procDamage * c.DamageMultiplier,
		Remaining:     c.BaseDuration,
		TickRate:      c.TickRate,
		TotalDuration: c.BaseDuration,
	}
}
