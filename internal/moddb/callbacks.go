package moddb

import "github.com/sigmazhou/warframe-damage-calculator/internal/modifier"

// Callback priorities. Stack-scaled bonuses run before anything that
// rewrites the field they read; the crit-chance averaging of secondary
// enervate must see the fully modded value, so it runs last.
const (
	prioGalvanizedShot      = 10
	prioGalvanizedDiffusion = 20
	prioSecondaryEnervate   = 90
)

// callbackRegistry holds every named bundle adjustment a mod can
// attach. Each is a pure function of the bundle's state when it runs.
var callbackRegistry = map[string]modifier.Callback{
	"galvanized_shot": {
		Name:     "galvanized_shot",
		Priority: prioGalvanizedShot,
		Apply: func(b *modifier.Bundle) {
			b.Damage += float64(b.GalvanizedShot) * float64(b.NumDebuffs) * 0.4
		},
	},
	"galvanized_diffusion": {
		Name:     "galvanized_diffusion",
		Priority: prioGalvanizedDiffusion,
		Apply: func(b *modifier.Bundle) {
			b.Multishot += float64(b.GalvanizedDiffusion) * 0.3
		},
	},
	"secondary_enervate": {
		Name:     "secondary_enervate",
		Priority: prioSecondaryEnervate,
		Apply: func(b *modifier.Bundle) {
			b.CriticalChance = (3.05 + b.CriticalChance) / 2
		},
	},
}

// Callbacks returns the registered callback for a name.
func Callbacks(name string) (modifier.Callback, bool) {
	cb, ok := callbackRegistry[name]
	return cb, ok
}
