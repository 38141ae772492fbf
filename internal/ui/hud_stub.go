//go:build !ebiten

package ui

import "toruslife/pkg/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int, int) *HUD { return nil }

// Update never reports a click in the headless build.
func (h *HUD) Update(bool) Action { return ActionNone }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
