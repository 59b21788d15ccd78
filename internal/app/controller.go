package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bitlife/internal/config"
	"bitlife/internal/ctxlog"
	"bitlife/pkg/sims/life"
)

// Margins a pattern needs from every edge before it is placed.
const (
	gliderMargin = 2
	pulsarMargin = 6
)

// Bounds for the number of generations advanced per frame.
const (
	MinTicksPerFrame = 1
	MaxTicksPerFrame = 10
)

var (
	// ErrWouldOverflow is returned when a pattern anchored at the requested
	// cell would reach past the grid edge.
	ErrWouldOverflow = errors.New("pattern would overflow the grid")
	// ErrOutsideGrid is returned for clicks that do not land on a cell.
	ErrOutsideGrid = errors.New("position outside the grid")
)

// Modifier is the set of modifier keys held during a click.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModMeta  Modifier = 1 << 1
)

// Editor is the engine surface a host drives.
type Editor interface {
	Width() uint32
	Height() uint32
	Cells() []uint64
	Population() uint
	Generation() uint64

	Tick()
	ToggleCell(row, col uint32)
	SetCells(coords []life.Coord)
	SpawnGlider(row, col uint32)
	SpawnPulsar(row, col uint32)
	Clear()
	Randomize()
}

// Controller turns host input into engine calls. It owns playback state
// and must be used from the goroutine that owns the grid.
type Controller struct {
	grid   Editor
	logger *slog.Logger

	paused        bool
	ticksPerFrame int
}

// NewController wraps grid. Logging goes to the logger carried by ctx.
func NewController(ctx context.Context, grid Editor) *Controller {
	return &Controller{
		grid:          grid,
		logger:        ctxlog.FromContext(ctx),
		ticksPerFrame: MinTicksPerFrame,
	}
}

// Grid returns the driven engine.
func (c *Controller) Grid() Editor { return c.grid }

// Paused reports whether Frame is currently a no-op.
func (c *Controller) Paused() bool { return c.paused }

// Play resumes playback.
func (c *Controller) Play() { c.paused = false }

// Pause stops playback.
func (c *Controller) Pause() { c.paused = true }

// TogglePause flips between playing and paused.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// TicksPerFrame returns how many generations Frame advances.
func (c *Controller) TicksPerFrame() int { return c.ticksPerFrame }

// SetTicksPerFrame sets the per-frame generation count, clamped to
// [MinTicksPerFrame, MaxTicksPerFrame].
func (c *Controller) SetTicksPerFrame(n int) {
	c.ticksPerFrame = min(max(n, MinTicksPerFrame), MaxTicksPerFrame)
}

// Frame advances the grid by TicksPerFrame generations unless paused and
// returns the number of generations run.
func (c *Controller) Frame() int {
	if c.paused {
		return 0
	}
	for i := 0; i < c.ticksPerFrame; i++ {
		c.grid.Tick()
	}
	return c.ticksPerFrame
}

// StepOnce advances a single generation regardless of playback state.
func (c *Controller) StepOnce() { c.grid.Tick() }

// Reset reseeds the grid randomly.
func (c *Controller) Reset() {
	c.grid.Randomize()
	c.logger.Debug("grid reset", "population", c.grid.Population())
}

// Clear kills every cell.
func (c *Controller) Clear() {
	c.grid.Clear()
	c.logger.Debug("grid cleared")
}

// Click applies a pointer press on (row, col): shift spawns a pulsar, meta
// spawns a glider and a plain click toggles the cell.
func (c *Controller) Click(row, col int, mod Modifier) error {
	if !c.inside(row, col) {
		return fmt.Errorf("click at (%d,%d): %w", row, col, ErrOutsideGrid)
	}
	switch {
	case mod&ModShift != 0:
		return c.spawn(config.KindPulsar, row, col)
	case mod&ModMeta != 0:
		return c.spawn(config.KindGlider, row, col)
	default:
		c.grid.ToggleCell(uint32(row), uint32(col))
		return nil
	}
}

// Apply places startup patterns. Placements that do not fit are skipped and
// reported together.
func (c *Controller) Apply(spawns []config.Spawn) error {
	var errs []error
	for _, s := range spawns {
		if err := c.spawn(s.Kind, s.Row, s.Col); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Controller) spawn(kind config.Kind, row, col int) error {
	switch kind {
	case config.KindCell:
		if !c.inside(row, col) {
			return fmt.Errorf("cell at (%d,%d): %w", row, col, ErrOutsideGrid)
		}
		c.grid.SetCells([]life.Coord{{Row: uint32(row), Col: uint32(col)}})
	case config.KindGlider:
		if !c.fits(row, col, gliderMargin) {
			c.logger.Warn("pattern would overflow", "pattern", kind, "row", row, "col", col)
			return fmt.Errorf("glider at (%d,%d): %w", row, col, ErrWouldOverflow)
		}
		c.grid.SpawnGlider(uint32(row), uint32(col))
	case config.KindPulsar:
		if !c.fits(row, col, pulsarMargin) {
			c.logger.Warn("pattern would overflow", "pattern", kind, "row", row, "col", col)
			return fmt.Errorf("pulsar at (%d,%d): %w", row, col, ErrWouldOverflow)
		}
		c.grid.SpawnPulsar(uint32(row), uint32(col))
	default:
		return fmt.Errorf("unknown pattern %q", kind)
	}
	c.logger.Debug("pattern placed", "pattern", kind, "row", row, "col", col)
	return nil
}

func (c *Controller) inside(row, col int) bool {
	return row >= 0 && col >= 0 && row < int(c.grid.Height()) && col < int(c.grid.Width())
}

// fits reports whether a pattern needing size cells of clearance can be
// anchored at (row, col).
func (c *Controller) fits(row, col, size int) bool {
	h, w := int(c.grid.Height()), int(c.grid.Width())
	return row >= size && row <= h-(size+1) && col >= size && col <= w-(size+1)
}

// HandleKey applies a keyboard command and reports whether the host should quit.
func (c *Controller) HandleKey(r rune) (quit bool) {
	switch r {
	case 'q', 'Q':
		return true
	case ' ':
		c.TogglePause()
	case 'n', 'N':
		c.StepOnce()
	case 'r', 'R':
		c.Reset()
	case 'c', 'C':
		c.Clear()
	case '+', '=':
		c.SetTicksPerFrame(c.ticksPerFrame + 1)
	case '-', '_':
		c.SetTicksPerFrame(c.ticksPerFrame - 1)
	}
	return false
}

// Status summarises the playback state on one line.
func (c *Controller) Status() string {
	state := "playing"
	if c.paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  pop %d  tpf %d  %s", c.grid.Generation(), c.grid.Population(), c.ticksPerFrame, state)
}
