package ui

import "image"

// Action is a command triggered from the control bar.
type Action int

const (
	// ActionNone means the click hit no control.
	ActionNone Action = iota
	// ActionToggleRun starts or pauses the simulation.
	ActionToggleRun
	// ActionReset clears the board and stops the simulation.
	ActionReset
	// ActionToggleGrid shows or hides the cell separators.
	ActionToggleGrid
)

// BarHeight is the height of the control bar drawn under the board.
const BarHeight = 70

const (
	barPadding     = 10
	buttonWidth    = 120
	buttonMinWidth = 40
	buttonHeight   = BarHeight - 2*barPadding
	buttonGap      = 30
)

// Button is a labelled clickable rectangle in screen coordinates.
type Button struct {
	Rect   image.Rectangle
	Label  string
	Action Action
}

// Bar lays out the control buttons right-aligned in a strip of the given
// width whose top edge sits at top.
type Bar struct {
	Rect    image.Rectangle
	Buttons []Button
}

// NewBar builds the Start, Grid and Reset buttons from right to left.
func NewBar(width, top int) *Bar {
	b := &Bar{Rect: image.Rect(0, top, width, top+BarHeight)}
	defs := []struct {
		label  string
		action Action
	}{
		{"Start", ActionToggleRun},
		{"Grid", ActionToggleGrid},
		{"Reset", ActionReset},
	}
	bw := buttonWidth
	if avail := (width - barPadding - len(defs)*buttonGap) / len(defs); avail < bw {
		bw = max(avail, buttonMinWidth)
	}
	right := width - buttonGap
	y := top + barPadding
	for _, def := range defs {
		rect := image.Rect(right-bw, y, right, y+buttonHeight)
		b.Buttons = append(b.Buttons, Button{Rect: rect, Label: def.label, Action: def.action})
		right = rect.Min.X - buttonGap
	}
	return b
}

// HitTest returns the action of the button under (x, y).
func (b *Bar) HitTest(x, y int) Action {
	for _, btn := range b.Buttons {
		if pointInRect(x, y, btn.Rect) {
			return btn.Action
		}
	}
	return ActionNone
}

// SetLabel relabels the button bound to action.
func (b *Bar) SetLabel(action Action, label string) {
	for i := range b.Buttons {
		if b.Buttons[i].Action == action {
			b.Buttons[i].Label = label
		}
	}
}

// Label returns the current label of the button bound to action.
func (b *Bar) Label(action Action) string {
	for _, btn := range b.Buttons {
		if btn.Action == action {
			return btn.Label
		}
	}
	return ""
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
