package core

import "fmt"

// ShapeError reports a grid that is not a non-empty rectangle.
type ShapeError struct {
	Rows, Cols int
	// Row is the offending row, or -1 when the error concerns the whole grid.
	Row int
	// Len is the observed length of Row, or of the row list when Row is -1.
	Len    int
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("grid shape %dx%d: %s: row %d has %d cells", e.Rows, e.Cols, e.Reason, e.Row, e.Len)
	}
	return fmt.Sprintf("grid shape %dx%d: %s", e.Rows, e.Cols, e.Reason)
}

// IndexError reports an unwrapped cell access outside the grid.
type IndexError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of range for %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}
