package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Weapon holds the base weapon statistics as loaded from weapon.yaml.
type Weapon struct {
	Name           string             `yaml:"name"`
	Damage         float64            `yaml:"damage"`
	AttackSpeed    float64            `yaml:"attack_speed"`
	Multishot      float64            `yaml:"multishot"`
	CriticalChance float64            `yaml:"critical_chance"`
	CriticalDamage float64            `yaml:"critical_damage"`
	StatusChance   float64            `yaml:"status_chance"`
	StatusDuration float64            `yaml:"status_duration"`
	Elements       map[string]float64 `yaml:"elements"`
}

// Build holds the selected mods and in-game combat state from build.yaml.
type Build struct {
	Mods []string `yaml:"mods"`

	InGame struct {
		GalvanizedShot          int                `yaml:"galvanized_shot"`
		GalvanizedDiffusion     int                `yaml:"galvanized_diffusion"`
		NumDebuffs              int                `yaml:"num_debuffs"`
		FinalAdditiveCritDamage float64            `yaml:"final_additive_cd"`
		AttackSpeed             float64            `yaml:"attack_speed"`
		FinalMultiplier         float64            `yaml:"final_multiplier"`
		Elements                map[string]float64 `yaml:"elements"`
	} `yaml:"in_game"`

	// ElementOrder overrides the mod-derived element application order.
	ElementOrder []string `yaml:"element_order"`

	Enemy struct {
		Faction   string  `yaml:"faction"`
		Type      string  `yaml:"type"`
		BaseArmor float64 `yaml:"base_armor"`
	} `yaml:"enemy"`
}

// Simulation holds the simulation parameters from simulation.yaml.
type Simulation struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	TimeStep        float64 `yaml:"time_step"`
	Runs            int     `yaml:"runs"`
	Seed            int64   `yaml:"seed"`
}

// Config holds all configuration.
type Config struct {
	Weapon     Weapon
	Build      Build
	Simulation Simulation

	// ModDatabase is the path to the mod database file.
	ModDatabase string
}

// Load reads weapon.yaml, build.yaml and simulation.yaml from a config
// directory. The mod database is expected at mods.yaml alongside them.
func Load(configDir string) (*Config, error) {
	cfg := &Config{
		ModDatabase: filepath.Join(configDir, "mods.yaml"),
	}

	if err := loadFile(filepath.Join(configDir, "weapon.yaml"), &cfg.Weapon); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(configDir, "build.yaml"), &cfg.Build); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(configDir, "simulation.yaml"), &cfg.Simulation); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
