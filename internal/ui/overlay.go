//go:build ebiten

package ui

import (
	"image/color"

	"toruslife/internal/render"
	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws cell separators on top of the board.
type Overlay struct {
	sim     core.Sim
	scale   int
	visible bool
	color   color.RGBA
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay for sim drawn at scale pixels per cell.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether the separators are drawn.
func (o *Overlay) Visible() bool { return o.visible }

// SetVisible shows or hides the separators.
func (o *Overlay) SetVisible(v bool) { o.visible = v }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	size := o.sim.Size()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	for _, line := range render.GridLines(size.H, size.W, scale) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(line.Dx()), float64(line.Dy()))
		op.GeoM.Translate(float64(line.Min.X), float64(line.Min.Y))
		op.ColorScale.ScaleWithColor(o.color)
		screen.DrawImage(o.pixel, op)
	}
}
