package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/sigmazhou/warframe-damage-calculator/internal/calc"
	"github.com/sigmazhou/warframe-damage-calculator/internal/config"
	"github.com/sigmazhou/warframe-damage-calculator/internal/moddb"
	"github.com/sigmazhou/warframe-damage-calculator/internal/modifier"
)

type statDelta struct {
	name  string
	delta float64
	apply func(*modifier.Bundle, float64)
}

type weightResult struct {
	delta    statDelta
	weight   float64
	dpsPlus  float64
	dpsMinus float64
}

var sweepStats = map[string]func(*modifier.Bundle, float64){
	"damage":          func(b *modifier.Bundle, d float64) { b.Damage += d },
	"multishot":       func(b *modifier.Bundle, d float64) { b.Multishot += d },
	"critical_chance": func(b *modifier.Bundle, d float64) { b.CriticalChance += d },
	"critical_damage": func(b *modifier.Bundle, d float64) { b.CriticalDamage += d },
	"status_chance":   func(b *modifier.Bundle, d float64) { b.StatusChance += d },
	"attack_speed":    func(b *modifier.Bundle, d float64) { b.AttackSpeed += d },
}

func main() {
	configDir := flag.String("config-dir", "./configs", "Path to config directory")
	sweepStat := flag.String("stat", "", "Bonus to sweep (damage|multishot|critical_chance|critical_damage|status_chance|attack_speed). Unset runs central-diff weights.")
	start := flag.Float64("start", 0, "Sweep start bonus")
	stop := flag.Float64("stop", 3, "Sweep stop bonus")
	step := flag.Float64("step", 0.1, "Sweep step")
	outputDir := flag.String("output-dir", "output/stat_curves", "Directory for sweep CSV output")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	db, err := moddb.Load(cfg.ModDatabase)
	if err != nil {
		slog.Error("failed to load mod database", "error", err)
		os.Exit(1)
	}

	weapon, err := cfg.ResolveWeapon()
	if err != nil {
		slog.Error("failed to resolve weapon", "error", err)
		os.Exit(1)
	}
	static, order := db.Translate(cfg.Build.Mods)
	inGame := cfg.ResolveInGame()
	target := cfg.ResolveEnemy()

	totalDPS := func(extra modifier.Bundle) float64 {
		c := calc.New(weapon, modifier.Merge(static, extra), inGame, target, order)
		dps := c.DirectDPS()
		for _, dotDPS := range c.DotDPSAll() {
			dps += dotDPS
		}
		return dps
	}

	if *sweepStat != "" {
		apply, ok := sweepStats[*sweepStat]
		if !ok {
			slog.Error("unknown sweep stat", "stat", *sweepStat)
			os.Exit(1)
		}
		if err := runSweep(*sweepStat, *start, *stop, *step, *outputDir, apply, totalDPS); err != nil {
			slog.Error("sweep failed", "error", err)
			os.Exit(1)
		}
		return
	}

	baseline := totalDPS(modifier.NewBundle())
	fmt.Printf("Stat weights (central diff)\n")
	fmt.Printf("Baseline total DPS: %.2f\n\n", baseline)

	deltas := []statDelta{
		{name: "damage", delta: 0.1, apply: sweepStats["damage"]},
		{name: "multishot", delta: 0.1, apply: sweepStats["multishot"]},
		{name: "critical_chance", delta: 0.1, apply: sweepStats["critical_chance"]},
		{name: "critical_damage", delta: 0.1, apply: sweepStats["critical_damage"]},
		{name: "status_chance", delta: 0.1, apply: sweepStats["status_chance"]},
		{name: "attack_speed", delta: 0.1, apply: sweepStats["attack_speed"]},
	}

	results := make([]weightResult, 0, len(deltas))
	for _, sd := range deltas {
		plus := modifier.NewBundle()
		minus := modifier.NewBundle()
		sd.apply(&plus, sd.delta)
		sd.apply(&minus, -sd.delta)
		dpsPlus := totalDPS(plus)
		dpsMinus := totalDPS(minus)
		results = append(results, weightResult{
			delta:    sd,
			weight:   (dpsPlus - dpsMinus) / (2 * sd.delta),
			dpsPlus:  dpsPlus,
			dpsMinus: dpsMinus,
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Bonus\tDelta\tDPS per +100%%\n")
	for _, res := range results {
		fmt.Fprintf(w, "%s\t%+.1f\t%.2f\n", res.delta.name, res.delta.delta, res.weight)
	}
	w.Flush()
}

func runSweep(stat string, start, stop, step float64, outputDir string, apply func(*modifier.Bundle, float64), totalDPS func(modifier.Bundle) float64) error {
	if step <= 0 || stop < start {
		return fmt.Errorf("invalid sweep range [%v, %v] step %v", start, stop, step)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outputDir, stat+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()
	if err := cw.Write([]string{stat, "total_dps"}); err != nil {
		return err
	}

	points := int(math.Floor((stop-start)/step)) + 1
	for i := 0; i < points; i++ {
		bonus := start + float64(i)*step
		extra := modifier.NewBundle()
		apply(&extra, bonus)
		dps := totalDPS(extra)
		if err := cw.Write([]string{
			fmt.Sprintf("%.3f", bonus),
			fmt.Sprintf("%.2f", dps),
		}); err != nil {
			return err
		}
	}
	fmt.Printf("Wrote %d points to %s\n", points, path)
	return nil
}
