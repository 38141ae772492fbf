package app

import (
	"flag"
	"fmt"
	"time"

	"toruslife/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rule    string
	Rows    int
	Cols    int
	Scale   int
	Delay   time.Duration
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: "classic8", Rows: 30, Cols: 30, Scale: 20, Delay: 330 * time.Millisecond, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "preset (classic8, orthogonal4) or [moore|orthogonal:]B../S.. notation")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "time between generations while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random board")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live cell probability (0 starts empty)")
}

// LifeConfig validates the flags and converts them into a simulation config.
func (c *Config) LifeConfig() (life.Config, error) {
	rule, err := life.LookupRule(c.Rule)
	if err != nil {
		return life.Config{}, err
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return life.Config{}, fmt.Errorf("board size %dx%d must be positive", c.Rows, c.Cols)
	}
	if c.Density < 0 || c.Density > 1 {
		return life.Config{}, fmt.Errorf("density %g outside [0,1]", c.Density)
	}
	return life.Config{Width: c.Cols, Height: c.Rows, Rule: rule, Density: c.Density, Seed: c.Seed}, nil
}
