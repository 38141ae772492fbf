//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"toruslife/internal/app"
	"toruslife/internal/ui"
	"toruslife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lifeCfg, err := cfg.LifeConfig()
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	sim, err := life.NewWithConfig(lifeCfg)
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.Delay)
	size := sim.Size()

	ebiten.SetWindowTitle("Game of Life — " + sim.Rule().String())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.BarHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
