//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"toruslife/internal/render"
	"toruslife/internal/ui"
	"toruslife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the driver State to the ebiten.Game interface.
type Game struct {
	state   *State
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, scale int, delay time.Duration) *Game {
	size := sim.Size()
	return &Game{
		state:    NewState(sim, scale, delay),
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, size.W*scale, size.H*scale),
		overlay:  ui.NewOverlay(sim, scale),
		onColor:  color.RGBA{G: 128, A: 255},
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.state.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.state.StepOnce(); err != nil {
			return err
		}
	}

	if action := g.hud.Update(g.state.Running()); action != ui.ActionNone {
		g.state.Apply(action)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.state.Paint(ebiten.CursorPosition())
	}
	g.overlay.SetVisible(g.state.ShowGrid())

	if _, err := g.state.Tick(time.Now()); err != nil {
		log.Printf("step generation %d: %v", g.state.Sim().Generation(), err)
	}
	return nil
}

// Draw renders the board, grid lines and control bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.state.Sim().Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size: the board plus the control bar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.state.Sim().Size()
	return s.W * g.scale, s.H*g.scale + ui.BarHeight
}
