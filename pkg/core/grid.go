package core

import "strings"

// CellState is the state of a single cell.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = 0
	// Alive marks a populated cell.
	Alive CellState = 1
)

// Grid stores a rectangular generation of binary cells in row-major order.
// A Grid is never modified after construction; derive new grids instead.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid validates cells against the requested dimensions and copies them
// into a new Grid. A nil cells slice yields an all-dead grid. Any non-zero
// value is stored as Alive.
func NewGrid(rows, cols int, cells [][]uint8) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ShapeError{Rows: rows, Cols: cols, Row: -1, Reason: "dimensions must be positive"}
	}
	g := &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
	if cells == nil {
		return g, nil
	}
	if len(cells) != rows {
		return nil, &ShapeError{Rows: rows, Cols: cols, Row: -1, Len: len(cells), Reason: "row count mismatch"}
	}
	for r, line := range cells {
		if len(line) != cols {
			return nil, &ShapeError{Rows: rows, Cols: cols, Row: r, Len: len(line), Reason: "row length mismatch"}
		}
		base := r * cols
		for c, v := range line {
			if v != 0 {
				g.data[base+c] = uint8(Alive)
			}
		}
	}
	return g, nil
}

// GridFromRows builds a Grid whose dimensions are taken from cells itself:
// the number of rows and the length of the first row.
func GridFromRows(cells [][]uint8) (*Grid, error) {
	if len(cells) == 0 {
		return nil, &ShapeError{Row: -1, Reason: "no rows"}
	}
	return NewGrid(len(cells), len(cells[0]), cells)
}

// NewGridFromCells adopts a row-major buffer of rows*cols cells. The caller
// hands over ownership of cells and must not modify it afterwards.
func NewGridFromCells(rows, cols int, cells []uint8) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ShapeError{Rows: rows, Cols: cols, Row: -1, Reason: "dimensions must be positive"}
	}
	if len(cells) != rows*cols {
		return nil, &ShapeError{Rows: rows, Cols: cols, Row: -1, Len: len(cells), Reason: "buffer size mismatch"}
	}
	for i, v := range cells {
		if v != 0 {
			cells[i] = uint8(Alive)
		}
	}
	return &Grid{rows: rows, cols: cols, data: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions with W as the column count.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Validate reports a ShapeError when g does not hold a well-formed rectangle.
// Only the zero value or a nil pointer can fail once a Grid is constructed.
func (g *Grid) Validate() error {
	if g == nil {
		return &ShapeError{Row: -1, Reason: "nil grid"}
	}
	if g.rows <= 0 || g.cols <= 0 {
		return &ShapeError{Rows: g.rows, Cols: g.cols, Row: -1, Reason: "dimensions must be positive"}
	}
	if len(g.data) != g.rows*g.cols {
		return &ShapeError{Rows: g.rows, Cols: g.cols, Row: -1, Len: len(g.data), Reason: "buffer size mismatch"}
	}
	return nil
}

// Get returns the state at (row, col). Indices are not wrapped.
func (g *Grid) Get(row, col int) (CellState, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Dead, &IndexError{Row: row, Col: col, Rows: g.rows, Cols: g.cols}
	}
	return CellState(g.data[g.Index(row, col)]), nil
}

// Alive reports whether the in-range cell (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.data[row*g.cols+col] != 0 }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Wrap applies toroidal wrapping to the row and column independently.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// With returns a copy of g with (row, col) set to state.
func (g *Grid) With(row, col int, state CellState) (*Grid, error) {
	if _, err := g.Get(row, col); err != nil {
		return nil, err
	}
	next := g.Clone()
	next.data[next.Index(row, col)] = uint8(state & Alive)
	return next, nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// AppendCells appends the row-major cell values to dst.
func (g *Grid) AppendCells(dst []uint8) []uint8 { return append(dst, g.data...) }

// Rows2D returns the cells as a freshly allocated slice of rows.
func (g *Grid) Rows2D() [][]uint8 {
	out := make([][]uint8, g.rows)
	for r := range out {
		out[r] = append([]uint8(nil), g.data[r*g.cols:(r+1)*g.cols]...)
	}
	return out
}

// String renders the grid using '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Alive(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
