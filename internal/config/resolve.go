package config

import (
	"fmt"
	"log/slog"

	"github.com/sigmazhou/warframe-damage-calculator/internal/calc"
	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
	"github.com/sigmazhou/warframe-damage-calculator/internal/enemy"
	"github.com/sigmazhou/warframe-damage-calculator/internal/moddb"
	"github.com/sigmazhou/warframe-damage-calculator/internal/modifier"
)

// ResolveWeapon converts the weapon config into a validated stat block.
// Unknown element keys are logged and skipped.
func (cfg *Config) ResolveWeapon() (modifier.WeaponStat, error) {
	w := modifier.WeaponStat{
		Damage:         cfg.Weapon.Damage,
		AttackSpeed:    cfg.Weapon.AttackSpeed,
		Multishot:      cfg.Weapon.Multishot,
		CriticalChance: cfg.Weapon.CriticalChance,
		CriticalDamage: cfg.Weapon.CriticalDamage,
		StatusChance:   cfg.Weapon.StatusChance,
		StatusDuration: cfg.Weapon.StatusDuration,
		Elements:       resolveElements(cfg.Weapon.Elements),
	}
	return modifier.NewWeaponStat(w)
}

// ResolveInGame converts the in-game buff section into a bundle.
func (cfg *Config) ResolveInGame() modifier.Bundle {
	ig := cfg.Build.InGame
	bundle := modifier.NewBundle()
	bundle.GalvanizedShot = ig.GalvanizedShot
	bundle.GalvanizedDiffusion = ig.GalvanizedDiffusion
	bundle.NumDebuffs = ig.NumDebuffs
	bundle.FinalAdditiveCritDamage = ig.FinalAdditiveCritDamage
	bundle.AttackSpeed = ig.AttackSpeed
	bundle.FinalMultiplier = ig.FinalMultiplier
	bundle.Elements = resolveElements(ig.Elements)
	return bundle
}

// ResolveEnemy builds the target state from the enemy section.
func (cfg *Config) ResolveEnemy() *enemy.State {
	return enemy.NewWithArmor(
		enemy.ParseFaction(cfg.Build.Enemy.Faction),
		enemy.ParseType(cfg.Build.Enemy.Type),
		cfg.Build.Enemy.BaseArmor,
	)
}

// ResolveSim converts the simulation section into a run configuration.
func (cfg *Config) ResolveSim() calc.SimConfig {
	return calc.SimConfig{
		Duration: cfg.Simulation.DurationSeconds,
		TimeStep: cfg.Simulation.TimeStep,
		Runs:     cfg.Simulation.Runs,
		Seed:     cfg.Simulation.Seed,
	}
}

// Assemble resolves the full configuration against the mod database
// into a ready calculator plus its simulation settings. The element
// application order comes from the mods unless the build overrides it.
func (cfg *Config) Assemble(db *moddb.DB) (*calc.Calculator, calc.SimConfig, error) {
	weapon, err := cfg.ResolveWeapon()
	if err != nil {
		return nil, calc.SimConfig{}, fmt.Errorf("resolve weapon: %w", err)
	}

	static, order := db.Translate(cfg.Build.Mods)
	if len(cfg.Build.ElementOrder) > 0 {
		order = resolveElementOrder(cfg.Build.ElementOrder)
	}

	c := calc.New(weapon, static, cfg.ResolveInGame(), cfg.ResolveEnemy(), order)
	return c, cfg.ResolveSim(), nil
}

func resolveElements(raw map[string]float64) element.Vector {
	v := element.NewVector()
	for key, dmg := range raw {
		t, ok := element.Parse(key)
		if !ok {
			slog.Warn("unknown element key, skipping", "element", key)
			continue
		}
		v[t] += dmg
	}
	return v
}

func resolveElementOrder(raw []string) []element.Type {
	order := make([]element.Type, 0, len(raw))
	for _, key := range raw {
		t, ok := element.Parse(key)
		if !ok {
			slog.Warn("unknown element in element_order, skipping", "element", key)
			continue
		}
		order = append(order, t)
	}
	return order
}
