package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/sigmazhou/warframe-damage-calculator/internal/calc"
	"github.com/sigmazhou/warframe-damage-calculator/internal/config"
	"github.com/sigmazhou/warframe-damage-calculator/internal/element"
	"github.com/sigmazhou/warframe-damage-calculator/internal/moddb"
)

func main() {
	configDir := flag.String("config-dir", "./configs", "Path to config directory")
	runs := flag.Int("runs", 0, "Simulation runs (0 = use simulation.yaml)")
	seed := flag.Int64("seed", 0, "Base RNG seed (0 = use simulation.yaml, or time-based)")
	duration := flag.Float64("duration", 0, "Fight duration in seconds (0 = use simulation.yaml)")
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

	calculator, simCfg, err := cfg.Assemble(db)
	if err != nil {
		slog.Error("failed to assemble calculation", "error", err)
		os.Exit(1)
	}
	if *runs > 0 {
		simCfg.Runs = *runs
	}
	if *seed != 0 {
		simCfg.Seed = *seed
	}
	if *duration > 0 {
		simCfg.Duration = *duration
	}

	fmt.Printf("%s vs %s (%s)\n\n", cfg.Weapon.Name, cfg.Build.Enemy.Faction, cfg.Build.Enemy.Type)

	printFormulas(calculator)

	batch, err := calculator.SimulateBatch(simCfg)
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	printBatch(batch, simCfg)
}

func printFormulas(c *calc.Calculator) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXPECTED VALUE\t")
	fmt.Fprintf(w, "  Single hit\t%.2f\n", c.SingleHit())
	fmt.Fprintf(w, "  Direct DPS\t%.2f\n", c.DirectDPS())
	fmt.Fprintf(w, "  Elemental multiplier\t%.3f\n", c.ElementalMultiplier())

	dots := c.DotDPSAll()
	types := make([]element.Type, 0, len(dots))
	for t := range dots {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Fprintf(w, "  DOT DPS (%s)\t%.2f\n", t, dots[t])
	}
	fmt.Fprintln(w)
	w.Flush()
}

func printBatch(batch *calc.BatchResult, simCfg calc.SimConfig) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "SIMULATED (%d runs x %.0fs)\tmin\tmax\tavg\n", len(batch.Runs), simCfg.Duration)
	fmt.Fprintf(w, "  Direct DPS\t%.2f\t%.2f\t%.2f\n", batch.DirectDPS.Min, batch.DirectDPS.Max, batch.DirectDPS.Avg)
	fmt.Fprintf(w, "  DOT DPS\t%.2f\t%.2f\t%.2f\n", batch.DotDPS.Min, batch.DotDPS.Max, batch.DotDPS.Avg)
	fmt.Fprintf(w, "  Total DPS\t%.2f\t%.2f\t%.2f\n", batch.TotalDPS.Min, batch.TotalDPS.Max, batch.TotalDPS.Avg)
	w.Flush()

	last := batch.Runs[len(batch.Runs)-1]
	if len(last.ProcCounts) > 0 {
		fmt.Printf("\nLast run: %d shots", last.ShotsFired)
		keys := make([]element.Type, 0, len(last.ProcCounts))
		for el := range last.ProcCounts {
			keys = append(keys, el)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		fmt.Printf(", procs:")
		for _, el := range keys {
			fmt.Printf(" %s=%d", el, last.ProcCounts[el])
		}
		fmt.Println()
	}
}
