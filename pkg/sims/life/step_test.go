package life

import (
	"errors"
	"slices"
	"testing"

	"toruslife/pkg/core"
)

func mustGrid(t *testing.T, rows [][]uint8) *core.Grid {
	t.Helper()
	g, err := core.GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}
	return g
}

func gridWith(t *testing.T, rows, cols int, alive ...[2]int) *core.Grid {
	t.Helper()
	cells := make([][]uint8, rows)
	for r := range cells {
		cells[r] = make([]uint8, cols)
	}
	for _, rc := range alive {
		r, c := rc[0], rc[1]
		cells[((r%rows)+rows)%rows][((c%cols)+cols)%cols] = 1
	}
	g, err := core.NewGrid(rows, cols, cells)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func mustStep(t *testing.T, g *core.Grid, rule NeighborRule) *core.Grid {
	t.Helper()
	next, err := Step(g, rule)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return next
}

func assertRows(t *testing.T, g *core.Grid, want [][]uint8) {
	t.Helper()
	got := g.Rows2D()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for r := range want {
		if !slices.Equal(got[r], want[r]) {
			t.Fatalf("row %d = %v, want %v\ngot:\n%s", r, got[r], want[r], g)
		}
	}
}

var worked = [][]uint8{
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
	{0, 0, 0},
}

func TestOrthogonal4WorkedExample(t *testing.T) {
	next := mustStep(t, mustGrid(t, worked), Orthogonal4())
	assertRows(t, next, [][]uint8{
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
}

// The 4x3 pattern evolves into the well known glider phase when it is
// surrounded by dead cells and stepped under the classic rule.
func TestGliderPhaseWithDeadBorder(t *testing.T) {
	padded := make([][]uint8, 6)
	for r := range padded {
		padded[r] = make([]uint8, 5)
	}
	for r, line := range worked {
		copy(padded[r+1][1:], line)
	}
	next := mustStep(t, mustGrid(t, padded), Classic8())
	window := next.Rows2D()[1:5]
	for r := range window {
		window[r] = window[r][1:4]
	}
	want := [][]uint8{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 1},
		{0, 1, 0},
	}
	for r := range want {
		if !slices.Equal(window[r], want[r]) {
			t.Fatalf("window row %d = %v, want %v", r, window[r], want[r])
		}
	}
}

func TestOrthogonal4OutcomeTable(t *testing.T) {
	neighbors := [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	for sum := 0; sum <= 4; sum++ {
		for _, alive := range []bool{false, true} {
			cells := append([][2]int(nil), neighbors[:sum]...)
			if alive {
				cells = append(cells, [2]int{1, 1})
			}
			next := mustStep(t, gridWith(t, 3, 3, cells...), Orthogonal4())

			want := false
			switch sum {
			case 3:
				want = true
			case 2:
				want = alive
			}
			if got := next.Alive(1, 1); got != want {
				t.Fatalf("sum=%d alive=%v: next alive=%v, want %v", sum, alive, got, want)
			}
		}
	}
}

func TestClassic8OutcomeTable(t *testing.T) {
	ring := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	for sum := 0; sum <= 8; sum++ {
		for _, alive := range []bool{false, true} {
			cells := append([][2]int(nil), ring[:sum]...)
			if alive {
				cells = append(cells, [2]int{2, 2})
			}
			next := mustStep(t, gridWith(t, 5, 5, cells...), Classic8())
			want := sum == 3 || (alive && sum == 2)
			if got := next.Alive(2, 2); got != want {
				t.Fatalf("sum=%d alive=%v: next alive=%v, want %v", sum, alive, got, want)
			}
		}
	}
}

func TestStepPreservesShapeAndInput(t *testing.T) {
	g := gridWith(t, 7, 11, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{6, 10}, [2]int{3, 4}, [2]int{3, 5}, [2]int{3, 6})
	before := g.AppendCells(nil)

	for _, rule := range []NeighborRule{Classic8(), Orthogonal4()} {
		first := mustStep(t, g, rule)
		second := mustStep(t, g, rule)
		if first.Rows() != g.Rows() || first.Cols() != g.Cols() {
			t.Fatalf("%s: shape %dx%d, want %dx%d", rule.Name, first.Rows(), first.Cols(), g.Rows(), g.Cols())
		}
		if !first.Equal(second) {
			t.Fatalf("%s: Step is not deterministic", rule.Name)
		}
		if !slices.Equal(before, g.AppendCells(nil)) {
			t.Fatalf("%s: Step modified its input", rule.Name)
		}
		if first == g {
			t.Fatalf("%s: Step returned its input", rule.Name)
		}
	}
}

func TestStepWrapsAcrossCorner(t *testing.T) {
	const rows, cols = 5, 6
	g := gridWith(t, rows, cols, [2]int{0, 0}, [2]int{rows - 1, 0}, [2]int{0, cols - 1})
	next := mustStep(t, g, Classic8())
	want := gridWith(t, rows, cols, [2]int{0, 0}, [2]int{rows - 1, 0}, [2]int{0, cols - 1}, [2]int{rows - 1, cols - 1})
	if !next.Equal(want) {
		t.Fatalf("corner cells should complete a wrapped block\ngot:\n%s\nwant:\n%s", next, want)
	}
	if again := mustStep(t, next, Classic8()); !again.Equal(next) {
		t.Fatalf("wrapped block should be still\ngot:\n%s", again)
	}
}

// A pattern placed across any corner must evolve exactly like the same
// pattern placed in the interior.
func TestStepTranslationInvariant(t *testing.T) {
	const rows, cols = 9, 8
	pattern := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}, {1, 0}}
	shift := func(dr, dc int) *core.Grid {
		cells := make([][2]int, len(pattern))
		for i, p := range pattern {
			cells[i] = [2]int{p[0] + dr, p[1] + dc}
		}
		return gridWith(t, rows, cols, cells...)
	}

	for _, rule := range []NeighborRule{Classic8(), Orthogonal4()} {
		interior := mustStep(t, shift(3, 3), rule)
		corners := [][2]int{{-1, -1}, {-1, cols - 2}, {rows - 2, -1}, {rows - 2, cols - 2}}
		for _, corner := range corners {
			got := mustStep(t, shift(corner[0], corner[1]), rule)
			dr, dc := corner[0]-3, corner[1]-3
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					sr, sc := got.Wrap(r+dr, c+dc)
					if interior.Alive(r, c) != got.Alive(sr, sc) {
						t.Fatalf("%s corner %v: cell (%d,%d) differs from interior (%d,%d)", rule.Name, corner, sr, sc, r, c)
					}
				}
			}
		}
	}
}

func TestGliderTravelsAcrossWrap(t *testing.T) {
	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	at := func(dr, dc int) *core.Grid {
		cells := make([][2]int, len(glider))
		for i, p := range glider {
			cells[i] = [2]int{p[0] + dr, p[1] + dc}
		}
		return gridWith(t, 8, 8, cells...)
	}
	got, err := StepN(at(6, 6), Classic8(), 4)
	if err != nil {
		t.Fatalf("StepN: %v", err)
	}
	if want := at(7, 7); !got.Equal(want) {
		t.Fatalf("glider did not move diagonally\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := gridWith(t, 6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	if next := mustStep(t, g, Classic8()); !next.Equal(g) {
		t.Fatalf("block changed:\n%s", next)
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {4, 3}, {16, 9}}
	for _, size := range sizes {
		g, err := core.NewGrid(size[0], size[1], nil)
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		for _, rule := range []NeighborRule{Classic8(), Orthogonal4()} {
			if next := mustStep(t, g, rule); !next.Equal(g) {
				t.Fatalf("%s: empty %dx%d grid changed", rule.Name, size[0], size[1])
			}
		}
	}
}

func TestStepRejectsBadInput(t *testing.T) {
	var shapeErr *core.ShapeError
	if _, err := Step(nil, Classic8()); !errors.As(err, &shapeErr) {
		t.Fatalf("nil grid: expected ShapeError, got %v", err)
	}
	if _, err := Step(&core.Grid{}, Classic8()); !errors.As(err, &shapeErr) {
		t.Fatalf("zero grid: expected ShapeError, got %v", err)
	}

	g := gridWith(t, 3, 3)
	bad := NeighborRule{Neighborhood: Orthogonal, Survive: []int{5}}
	var ruleErr *RuleError
	if _, err := Step(g, bad); !errors.As(err, &ruleErr) {
		t.Fatalf("expected RuleError, got %v", err)
	}
}
