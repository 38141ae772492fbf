package life

import "toruslife/pkg/core"

// Step computes the generation after g under rule. Neighbor indices wrap
// around both edges independently, so every cell sees a full neighborhood.
// g is only read; the result is a newly allocated grid of the same size.
func Step(g *core.Grid, rule NeighborRule) (*core.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	table := rule.outcomes()
	offsets := rule.Neighborhood.Offsets()

	rows, cols := g.Rows(), g.Cols()
	next := make([]uint8, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			neighbors := 0
			for _, off := range offsets {
				nr, nc := g.Wrap(r+off[0], c+off[1])
				if g.Alive(nr, nc) {
					neighbors++
				}
			}
			state := 0
			if g.Alive(r, c) {
				state = 1
			}
			if table[state][neighbors] {
				next[r*cols+c] = uint8(core.Alive)
			}
		}
	}
	return core.NewGridFromCells(rows, cols, next)
}

// StepN applies Step n times and returns the final grid. n <= 0 returns g.
func StepN(g *core.Grid, rule NeighborRule, n int) (*core.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	cur := g
	for i := 0; i < n; i++ {
		next, err := Step(cur, rule)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
