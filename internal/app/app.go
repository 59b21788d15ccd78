//go:build ebiten

package app

import (
	"image/color"
	"time"

	"bitlife/internal/render"
	"bitlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// statusHeight is the strip below the grid reserved for the status text.
const statusHeight = 32

var keyRunes = map[ebiten.Key]rune{
	ebiten.KeySpace:          ' ',
	ebiten.KeyN:              'n',
	ebiten.KeyR:              'r',
	ebiten.KeyC:              'c',
	ebiten.KeyEqual:          '+',
	ebiten.KeyNumpadAdd:      '+',
	ebiten.KeyMinus:          '-',
	ebiten.KeyNumpadSubtract: '-',
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	ctl     *Controller
	painter *render.GridPainter
	fps     *FPSMeter

	aliveColor color.Color
	deadColor  color.Color

	scale int
}

// New constructs a Game drawing sim and feeding input to ctl.
func New(sim core.Sim, ctl *Controller, scale int) *Game {
	size := sim.Size()
	return &Game{
		sim:        sim,
		ctl:        ctl,
		painter:    render.NewGridPainter(size.W, size.H),
		fps:        NewFPSMeter(time.Now()),
		aliveColor: color.Black,
		deadColor:  color.White,
		scale:      scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, r := range keyRunes {
		if inpututil.IsKeyJustPressed(key) {
			g.ctl.HandleKey(r)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		var mod Modifier
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			mod |= ModShift
		}
		if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyControl) {
			mod |= ModMeta
		}
		// Errors are logged by the controller; a miss is not fatal.
		_ = g.ctl.Click(y/g.scale, x/g.scale, mod)
	}

	g.ctl.Frame()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.Frame(time.Now())
	g.painter.Blit(screen, g.sim.Cells(), g.aliveColor, g.deadColor, g.scale)

	h := g.sim.Size().H * g.scale
	ebitenutil.DebugPrintAt(screen, g.ctl.Status(), 2, h+2)
	ebitenutil.DebugPrintAt(screen, g.fps.Stats().String(), 2, h+16)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + statusHeight
}

// WindowSize returns the window size that fits the grid and status strip.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
