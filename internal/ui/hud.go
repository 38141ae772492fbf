//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control bar under the board and reports button clicks.
type HUD struct {
	sim   core.Sim
	bar   *Bar
	pixel *ebiten.Image

	snapshot core.ParameterSnapshot
	running  bool
}

// NewHUD constructs a HUD for a board of the given pixel width whose bar
// starts at top.
func NewHUD(sim core.Sim, width, top int) *HUD {
	h := &HUD{sim: sim, bar: NewBar(width, top)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached parameters and returns the action clicked
// this frame, if any.
func (h *HUD) Update(running bool) Action {
	if h == nil {
		return ActionNone
	}
	h.running = running
	if running {
		h.bar.SetLabel(ActionToggleRun, "Pause")
	} else {
		h.bar.SetLabel(ActionToggleRun, "Start")
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	return h.bar.HitTest(mx, my)
}

// Draw paints the bar, its buttons and the status text.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.fillRect(screen, h.bar.Rect, color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	textColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	x := h.bar.Rect.Min.X + barPadding
	y := h.bar.Rect.Min.Y + barPadding + 14
	if rule, ok := h.snapshot.Lookup("rule"); ok {
		nb, _ := h.snapshot.Lookup("neighborhood")
		text.Draw(screen, fmt.Sprintf("%s %s", rule.Value, nb.Value), face, x, y, textColor)
	}
	if h.running {
		if gen, ok := h.snapshot.Lookup("generation"); ok {
			text.Draw(screen, "Generation: "+gen.Value, face, x, y+24, textColor)
		}
	}

	for _, btn := range h.bar.Buttons {
		h.drawButton(screen, btn)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, btn Button) {
	outline := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	fill := color.RGBA{R: 0, G: 128, B: 0, A: 255}
	mx, my := ebiten.CursorPosition()
	if pointInRect(mx, my, btn.Rect) {
		fill = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	}
	h.fillRect(screen, btn.Rect.Inset(-2), outline)
	h.fillRect(screen, btn.Rect, fill)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, btn.Label)
	tx := btn.Rect.Min.X + (btn.Rect.Dx()-bounds.Dx())/2
	ty := btn.Rect.Min.Y + (btn.Rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, btn.Label, face, tx, ty, color.Black)
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(h.pixel, op)
}
