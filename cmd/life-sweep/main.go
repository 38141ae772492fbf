package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"toruslife/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

type scenarioResult struct {
	seed    int64
	start   int
	summary life.Summary
}

func main() {
	ruleName := flag.String("rule", "classic8", "preset or [moore|orthogonal:]B../S.. notation")
	rows := flag.Int("rows", 64, "board rows")
	cols := flag.Int("cols", 64, "board columns")
	seeds := flag.Int("seeds", 32, "number of seeded boards to run")
	firstSeed := flag.Int64("seed", 1, "first seed; boards use seed, seed+1, ...")
	steps := flag.Int("steps", 1000, "generation budget per board")
	density := flag.Float64("density", 0.3, "initial live cell probability")
	workers := flag.Int("workers", runtime.NumCPU(), "number of boards evolved concurrently")
	flag.Parse()

	rule, err := life.LookupRule(*ruleName)
	if err != nil {
		log.Fatalf("invalid -rule: %v", err)
	}
	if *density < 0 || *density > 1 {
		log.Fatalf("invalid -density %g", *density)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d boards %dx%d under %s (%d workers, %d steps)\n", *seeds, *rows, *cols, rule, *workers, *steps)

	results := make([]scenarioResult, *seeds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*workers, 1))
	start := time.Now()
	for i := range results {
		seed := *firstSeed + int64(i)
		slot := &results[i]
		g.Go(func() error {
			res, err := runScenario(ctx, rule, *rows, *cols, seed, *density, *steps)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			*slot = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].summary.Generations > results[j].summary.Generations
	})
	counts := map[life.Outcome]int{}
	for _, res := range results {
		counts[res.summary.Outcome]++
		fmt.Printf("seed=%d start=%d outcome=%s generations=%d final=%d peak=%d\n",
			res.seed, res.start, res.summary.Outcome, res.summary.Generations, res.summary.Population, res.summary.PeakPopulation)
	}
	fmt.Printf("\n%d static, %d extinct, %d still running (elapsed %s)\n",
		counts[life.Static], counts[life.Extinct], counts[life.Running], time.Since(start).Round(time.Millisecond))
}

func runScenario(ctx context.Context, rule life.NeighborRule, rows, cols int, seed int64, density float64, steps int) (scenarioResult, error) {
	sim, err := life.NewWithConfig(life.Config{Width: cols, Height: rows, Rule: rule, Density: density, Seed: seed})
	if err != nil {
		return scenarioResult{}, err
	}
	initial := sim.Grid()
	_, summary, err := life.Evolve(ctx, initial, rule, steps)
	if err != nil {
		return scenarioResult{}, err
	}
	return scenarioResult{seed: seed, start: initial.Population(), summary: summary}, nil
}
