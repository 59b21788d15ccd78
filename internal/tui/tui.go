// Package tui runs the simulation in a terminal. Each cell is drawn two
// columns wide so the grid keeps a roughly square aspect.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"bitlife/internal/app"
	"bitlife/internal/core"
	"bitlife/internal/render"
)

const frameInterval = 16 * time.Millisecond

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Host draws a Controller's grid on a tcell screen and feeds it input.
type Host struct {
	screen tcell.Screen
	ctl    *app.Controller
	step   *core.FixedStep
	fps    *app.FPSMeter

	pressed bool
}

// New returns a Host advancing ctl at tps frames per second.
func New(screen tcell.Screen, ctl *app.Controller, tps int) *Host {
	return &Host{
		screen: screen,
		ctl:    ctl,
		step:   core.NewFixedStep(tps),
		fps:    app.NewFPSMeter(time.Now()),
	}
}

// Run processes events and redraws until the user quits or ctx is done.
// The screen must already be initialised; Run does not call Fini.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.draw()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if h.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			for n := h.step.Steps(); n > 0; n-- {
				h.ctl.Frame()
			}
			h.fps.Frame(now)
			h.draw()
		}
	}
}

// handleEvent applies a single event and reports whether to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if h.ctl.HandleKey(ev.Rune()) {
				return true
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.pressed {
			x, y := ev.Position()
			// Misses and overflowing patterns are logged by the controller.
			_ = h.ctl.Click(y, x/2, modifiers(ev.Modifiers()))
		}
		h.pressed = down
	case *tcell.EventResize:
		h.screen.Sync()
	}
	h.draw()
	return false
}

func modifiers(m tcell.ModMask) app.Modifier {
	var mod app.Modifier
	if m&tcell.ModShift != 0 {
		mod |= app.ModShift
	}
	if m&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= app.ModMeta
	}
	return mod
}

func (h *Host) draw() {
	grid := h.ctl.Grid()
	words := grid.Cells()
	w, gh := int(grid.Width()), int(grid.Height())
	sw, sh := h.screen.Size()

	h.screen.Clear()
	for row := 0; row < gh && row < sh-1; row++ {
		for col := 0; col < w && 2*col+1 < sw; col++ {
			ch, style := ' ', deadStyle
			if render.BitAlive(words, row*w+col) {
				ch, style = '█', aliveStyle
			}
			h.screen.SetContent(2*col, row, ch, nil, style)
			h.screen.SetContent(2*col+1, row, ch, nil, style)
		}
	}

	statusRow := min(gh, sh-1)
	status := h.ctl.Status() + "  " + h.fps.Stats().String()
	for i, r := range status {
		if i >= sw {
			break
		}
		h.screen.SetContent(i, statusRow, r, nil, statusStyle)
	}
	h.screen.Show()
}
