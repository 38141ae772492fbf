package life

import (
	"context"

	"toruslife/pkg/core"
)

// Outcome classifies how a run ended.
type Outcome int

const (
	// Running means the step budget ran out while the grid was still changing.
	Running Outcome = iota
	// Static means a step produced an identical grid.
	Static
	// Extinct means no live cells remain.
	Extinct
)

func (o Outcome) String() string {
	switch o {
	case Static:
		return "static"
	case Extinct:
		return "extinct"
	default:
		return "running"
	}
}

// Summary describes a finished Evolve call.
type Summary struct {
	Outcome Outcome
	// Generations is the number of steps applied.
	Generations int
	// Population is the live cell count of the final grid.
	Population int
	// PeakPopulation is the largest live cell count seen, including the start.
	PeakPopulation int
}

// Evolve steps g until it dies out, stops changing, or maxSteps generations
// have been applied. ctx is checked between generations.
func Evolve(ctx context.Context, g *core.Grid, rule NeighborRule, maxSteps int) (*core.Grid, Summary, error) {
	if err := g.Validate(); err != nil {
		return nil, Summary{}, err
	}
	cur := g
	sum := Summary{Population: g.Population()}
	sum.PeakPopulation = sum.Population
	if sum.Population == 0 {
		sum.Outcome = Extinct
		return cur, sum, nil
	}
	for sum.Generations < maxSteps {
		if err := ctx.Err(); err != nil {
			return cur, sum, err
		}
		next, err := Step(cur, rule)
		if err != nil {
			return cur, sum, err
		}
		sum.Generations++
		sum.Population = next.Population()
		sum.PeakPopulation = max(sum.PeakPopulation, sum.Population)
		if sum.Population == 0 {
			sum.Outcome = Extinct
			return next, sum, nil
		}
		if next.Equal(cur) {
			sum.Outcome = Static
			return next, sum, nil
		}
		cur = next
	}
	return cur, sum, nil
}
