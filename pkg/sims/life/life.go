package life

import (
	"strconv"

	"toruslife/pkg/core"
)

// Life holds the current generation of a toroidal life-like automaton for a
// driver that steps and renders it.
type Life struct {
	rule       NeighborRule
	density    float64
	grid       *core.Grid
	buf        []uint8
	generation int
}

// New returns a Life simulation with an all-dead grid of the given size.
func New(rows, cols int, rule NeighborRule) (*Life, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(rows, cols, nil)
	if err != nil {
		return nil, err
	}
	l := &Life{rule: rule, density: DefaultConfig().Density}
	l.setGrid(g)
	return l, nil
}

// NewWithConfig builds a Life from cfg and seeds it with cfg.Seed.
func NewWithConfig(cfg Config) (*Life, error) {
	l, err := New(cfg.Height, cfg.Width, cfg.Rule)
	if err != nil {
		return nil, err
	}
	l.density = cfg.Density
	if cfg.Density > 0 {
		l.Reset(cfg.Seed)
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current grid values in row-major order. The slice is
// rewritten in place whenever the generation changes.
func (l *Life) Cells() []uint8 { return l.buf }

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.grid }

// Rule returns the active rule.
func (l *Life) Rule() NeighborRule { return l.rule }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.generation }

// Reset fills the board randomly at the configured density.
func (l *Life) Reset(seed int64) {
	cells := make([]uint8, len(l.buf))
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, cells, l.density)
	size := l.Size()
	g, err := core.NewGridFromCells(size.H, size.W, cells)
	if err != nil {
		return
	}
	l.setGrid(g)
	l.generation = 0
}

// Clear kills every cell and restarts the generation count.
func (l *Life) Clear() {
	size := l.Size()
	g, err := core.NewGrid(size.H, size.W, nil)
	if err != nil {
		return
	}
	l.setGrid(g)
	l.generation = 0
}

// SetGrid replaces the current generation. The grid must match the size.
func (l *Life) SetGrid(g *core.Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Size() != l.Size() {
		return &core.ShapeError{Rows: g.Rows(), Cols: g.Cols(), Row: -1, Reason: "size differs from simulation"}
	}
	l.setGrid(g)
	return nil
}

// Toggle flips the cell at (row, col).
func (l *Life) Toggle(row, col int) error {
	state, err := l.grid.Get(row, col)
	if err != nil {
		return err
	}
	next, err := l.grid.With(row, col, state^core.Alive)
	if err != nil {
		return err
	}
	l.setGrid(next)
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() error {
	next, err := Step(l.grid, l.rule)
	if err != nil {
		return err
	}
	l.setGrid(next)
	l.generation++
	return nil
}

// Parameters reports the rule and population for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: l.rule.Notation()},
				{Key: "neighborhood", Label: "Neighbors", Type: core.ParamTypeString, Value: l.rule.Neighborhood.String()},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(l.generation)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(l.grid.Population())},
			},
		},
	}}
}

func (l *Life) setGrid(g *core.Grid) {
	l.grid = g
	l.buf = g.AppendCells(l.buf[:0])
}

var _ core.Sim = (*Life)(nil)

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
