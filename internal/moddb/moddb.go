// Package moddb translates mod names and in-game stat overrides into
// modifier bundles using static, load-time-validated mapping tables.
// Unknown keys are logged and skipped so one bad key never rejects a
// whole request.
package moddb

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
	"github.com/sigmazhou/warframe-damage-calculator/internal/enemy"
	"github.com/sigmazhou/warframe-damage-calculator/internal/modifier"
)

// Mod is one database entry: additive stat values keyed by stat name,
// plus optional named callbacks the mod attaches to the bundle.
type Mod struct {
	Stats     map[string]float64 `yaml:"stats"`
	Callbacks []string           `yaml:"callbacks"`
}

// DB is the loaded mod database.
type DB struct {
	mods map[string]Mod
}

// statSetters maps external stat keys onto bundle fields. Aliases map
// onto the same setter (fire_rate and attack_speed, melee_damage and
// damage).
var statSetters = map[string]func(*modifier.Bundle, float64){
	"damage":          func(b *modifier.Bundle, v float64) { b.Damage += v },
	"melee_damage":    func(b *modifier.Bundle, v float64) { b.Damage += v },
	"attack_speed":    func(b *modifier.Bundle, v float64) { b.AttackSpeed += v },
	"fire_rate":       func(b *modifier.Bundle, v float64) { b.AttackSpeed += v },
	"multishot":       func(b *modifier.Bundle, v float64) { b.Multishot += v },
	"critical_chance": func(b *modifier.Bundle, v float64) { b.CriticalChance += v },
	"critical_damage": func(b *modifier.Bundle, v float64) { b.CriticalDamage += v },
	"status_chance":   func(b *modifier.Bundle, v float64) { b.StatusChance += v },
	"status_duration": func(b *modifier.Bundle, v float64) { b.StatusDuration += v },
}

// elementKeys maps external element damage keys onto damage types.
var elementKeys = map[string]element.Type{
	"impact_damage":      element.Impact,
	"puncture_damage":    element.Puncture,
	"slash_damage":       element.Slash,
	"cold_damage":        element.Cold,
	"electricity_damage": element.Electricity,
	"heat_damage":        element.Heat,
	"toxin_damage":       element.Toxin,
	"blast_damage":       element.Blast,
	"corrosive_damage":   element.Corrosive,
	"gas_damage":         element.Gas,
	"magnetic_damage":    element.Magnetic,
	"radiation_damage":   element.Radiation,
	"viral_damage":       element.Viral,
	"void_damage":        element.Void,
	"tau_damage":         element.Tau,
}

// factionKeys maps external faction damage keys onto factions.
var factionKeys = map[string]enemy.Faction{
	"damage_vs_grineer":  enemy.FactionGrineer,
	"damage_vs_corpus":   enemy.FactionCorpus,
	"damage_vs_infested": enemy.FactionInfested,
	"damage_vs_orokin":   enemy.FactionOrokin,
	"damage_vs_murmur":   enemy.FactionMurmur,
	"damage_vs_sentient": enemy.FactionSentient,
}

// validateTables rejects a mapping table that routes the same key two
// ways. Run once at load so bad table edits are caught before any
// request.
func validateTables() error {
	for key := range elementKeys {
		if _, clash := statSetters[key]; clash {
			return fmt.Errorf("mapping table key %q is both a stat and an element", key)
		}
	}
	for key := range factionKeys {
		if _, clash := statSetters[key]; clash {
			return fmt.Errorf("mapping table key %q is both a stat and a faction", key)
		}
		if _, clash := elementKeys[key]; clash {
			return fmt.Errorf("mapping table key %q is both an element and a faction", key)
		}
	}
	return nil
}

// Load reads a mod database from a YAML file. Mods referencing unknown
// callbacks fail the load: a missing callback is a database defect,
// not a per-request condition.
func Load(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mod database: %w", err)
	}
	if err := validateTables(); err != nil {
		return nil, err
	}
	var mods map[string]Mod
	if err := yaml.Unmarshal(data, &mods); err != nil {
		return nil, fmt.Errorf("parse mod database: %w", err)
	}
	for name, mod := range mods {
		for _, cb := range mod.Callbacks {
			if _, ok := callbackRegistry[cb]; !ok {
				return nil, fmt.Errorf("mod %q: unknown callback %q", name, cb)
			}
		}
	}
	return &DB{mods: mods}, nil
}

// Names returns all mod names in sorted order.
func (db *DB) Names() []string {
	names := make([]string, 0, len(db.mods))
	for name := range db.mods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the database entry for a mod name.
func (db *DB) Lookup(name string) (Mod, bool) {
	mod, ok := db.mods[name]
	return mod, ok
}

// Translate folds the named mods into one static bundle and returns it
// together with the basic-element application order the mods imply.
// Unknown mod names and unknown stat keys are logged and skipped.
func (db *DB) Translate(modNames []string) (modifier.Bundle, []element.Type) {
	bundle := modifier.NewBundle()
	var order []element.Type
	seen := make(map[element.Type]bool)

	for _, name := range modNames {
		mod, ok := db.mods[name]
		if !ok {
			slog.Warn("mod not found in database, skipping", "mod", name)
			continue
		}
		// Apply stats in sorted key order so element application order
		// is stable for a given mod set.
		keys := make([]string, 0, len(mod.Stats))
		for key := range mod.Stats {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			value := mod.Stats[key]
			switch {
			case statSetters[key] != nil:
				statSetters[key](&bundle, value)
			case elementKeys[key] != "":
				el := elementKeys[key]
				bundle.Elements[el] += value
				if el.Basic() && !seen[el] {
					seen[el] = true
					order = append(order, el)
				}
			case factionKeys[key] != "":
				bundle.Faction[factionKeys[key]] += value
			default:
				slog.Warn("unknown mod stat key, skipping", "mod", name, "key", key)
			}
		}
		for _, cb := range mod.Callbacks {
			bundle.Callbacks = append(bundle.Callbacks, callbackRegistry[cb])
		}
	}
	return bundle, order
}
