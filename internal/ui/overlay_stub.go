//go:build !ebiten

package ui

import "toruslife/pkg/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Visible reports the stored visibility flag.
func (o *Overlay) Visible() bool { return o.visible }

// SetVisible stores the visibility flag.
func (o *Overlay) SetVisible(v bool) { o.visible = v }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
