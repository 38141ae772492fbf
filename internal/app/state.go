package app

import (
	"time"

	"toruslife/internal/ui"
	"toruslife/pkg/core"
	"toruslife/pkg/sims/life"
)

// State is everything the driver owns between frames. The engine never sees
// it; it only receives the current grid through the Life sim.
type State struct {
	sim   *life.Life
	clock *core.FixedStep
	scale int

	running  bool
	showGrid bool
}

// NewState wraps sim for a board drawn at scale pixels per cell and stepped
// once per delay while running.
func NewState(sim *life.Life, scale int, delay time.Duration) *State {
	if scale <= 0 {
		scale = 1
	}
	return &State{sim: sim, clock: core.NewFixedStep(delay), scale: scale}
}

// Sim returns the wrapped simulation.
func (s *State) Sim() *life.Life { return s.sim }

// Running reports whether generations advance on their own.
func (s *State) Running() bool { return s.running }

// ShowGrid reports whether cell separators are drawn.
func (s *State) ShowGrid() bool { return s.showGrid }

// Apply performs a control bar action.
func (s *State) Apply(action ui.Action) {
	switch action {
	case ui.ActionToggleRun:
		s.ToggleRun()
	case ui.ActionReset:
		s.Reset()
	case ui.ActionToggleGrid:
		s.ToggleGrid()
	}
}

// ToggleGrid shows or hides the cell separators.
func (s *State) ToggleGrid() { s.showGrid = !s.showGrid }

// ToggleRun starts or pauses the simulation. Starting fires a tick at once.
func (s *State) ToggleRun() {
	s.running = !s.running
	if s.running {
		s.clock.Restart()
	}
}

// Reset stops the simulation and clears the board.
func (s *State) Reset() {
	s.running = false
	s.sim.Clear()
}

// CellAt maps a screen position to a board cell.
func (s *State) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	size := s.sim.Size()
	row, col = y/s.scale, x/s.scale
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// Paint toggles the cell under (x, y). Painting is ignored while running.
func (s *State) Paint(x, y int) bool {
	if s.running {
		return false
	}
	row, col, ok := s.CellAt(x, y)
	if !ok {
		return false
	}
	return s.sim.Toggle(row, col) == nil
}

// StepOnce advances a paused simulation by a single generation.
func (s *State) StepOnce() error {
	if s.running {
		return nil
	}
	return s.sim.Step()
}

// Tick advances the simulation when running and the delay has elapsed.
func (s *State) Tick(now time.Time) (bool, error) {
	if !s.running || !s.clock.ShouldStepAt(now) {
		return false, nil
	}
	if err := s.sim.Step(); err != nil {
		s.running = false
		return false, err
	}
	return true, nil
}
