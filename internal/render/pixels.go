package render

import (
	"image"
	"image/color"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx := color.RGBAModel.Convert(on).(color.RGBA)
	offPx := color.RGBAModel.Convert(off).(color.RGBA)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// GridLines returns the one-pixel-wide separators between cells of a
// rows x cols board drawn at cell pixels per cell, outer edges included.
func GridLines(rows, cols, cell int) []image.Rectangle {
	if rows <= 0 || cols <= 0 || cell <= 0 {
		return nil
	}
	w, h := cols*cell, rows*cell
	lines := make([]image.Rectangle, 0, rows+cols+2)
	for c := 0; c <= cols; c++ {
		x := min(c*cell, w-1)
		lines = append(lines, image.Rect(x, 0, x+1, h))
	}
	for r := 0; r <= rows; r++ {
		y := min(r*cell, h-1)
		lines = append(lines, image.Rect(0, y, w, y+1))
	}
	return lines
}
