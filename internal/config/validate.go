package config

import "fmt"

func (cfg *Config) validate() error {
	if err := cfg.Weapon.validate(); err != nil {
		return err
	}
	return cfg.Simulation.validate()
}

func (w *Weapon) validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"damage", w.Damage},
		{"attack_speed", w.AttackSpeed},
		{"multishot", w.Multishot},
		{"critical_chance", w.CriticalChance},
		{"critical_damage", w.CriticalDamage},
		{"status_chance", w.StatusChance},
		{"status_duration", w.StatusDuration},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("weapon: %s must not be negative, got %v", c.name, c.value)
		}
	}
	for name, value := range w.Elements {
		if value < 0 {
			return fmt.Errorf("weapon: element %s must not be negative, got %v", name, value)
		}
	}
	return nil
}

func (s *Simulation) validate() error {
	if s.DurationSeconds <= 0 {
		return fmt.Errorf("simulation: duration_seconds must be positive, got %v", s.DurationSeconds)
	}
	if s.TimeStep <= 0 {
		return fmt.Errorf("simulation: time_step must be positive, got %v", s.TimeStep)
	}
	if s.Runs < 1 {
		return fmt.Errorf("simulation: runs must be at least 1, got %d", s.Runs)
	}
	return nil
}
