package life

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"bitlife/pkg/core"
)

// Coord addresses a single cell by absolute row and column.
type Coord struct {
	Row, Col uint32
}

// Grid is a toroidal Game of Life board stored one bit per cell in
// row-major order. A Grid has a single owner and is not safe for
// concurrent use.
type Grid struct {
	width, height uint32

	cur *bitset.BitSet
	nxt *bitset.BitSet

	hook       Hook
	rng        *core.RNG
	generation uint64
}

// New returns a grid where every cell is independently alive with
// probability 0.5.
func New(width, height uint32, opts ...Option) *Grid {
	g := Empty(width, height, opts...)
	g.Randomize()
	return g
}

// Empty returns a grid with every cell dead.
func Empty(width, height uint32, opts ...Option) *Grid {
	g := &Grid{hook: nopHook{}}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = core.RandomRNG()
	}
	g.resize(width, height)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return g.height }

// Generation returns the number of ticks since the grid was last seeded,
// cleared or resized.
func (g *Grid) Generation() uint64 { return g.generation }

// Population returns the number of live cells.
func (g *Grid) Population() uint { return g.cur.Count() }

// Cells exposes the packed state words: bit i%64 of word i/64 is the cell
// at linear index i. The view is live and must not be modified.
func (g *Grid) Cells() []uint64 { return g.cur.Bytes() }

// Snapshot returns a copy of the current cell bits.
func (g *Grid) Snapshot() *bitset.BitSet { return g.cur.Clone() }

// Index returns the linear index of (row, col). Coordinates are not checked.
func (g *Grid) Index(row, col uint32) uint {
	return uint(row)*uint(g.width) + uint(col)
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col uint32) bool {
	return g.cur.Test(g.Index(row, col))
}

// LiveNeighborCount counts the live cells in the Moore neighbourhood of
// (row, col), wrapping around the grid edges.
func (g *Grid) LiveNeighborCount(row, col uint32) uint8 {
	var count uint8
	// height-1 and width-1 stand in for -1 so the sums stay unsigned.
	for _, dr := range [3]uint32{g.height - 1, 0, 1} {
		for _, dc := range [3]uint32{g.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % g.height
			c := (col + dc) % g.width
			if g.cur.Test(g.Index(r, c)) {
				count++
			}
		}
	}
	return count
}

// Tick advances the grid by one generation. The next state is computed
// entirely from the current one and swapped in afterwards.
func (g *Grid) Tick() {
	g.compute()
	g.swap()
	g.generation++
}

func (g *Grid) compute() {
	defer g.hook.Begin(PhaseCompute)()

	for row := uint32(0); row < g.height; row++ {
		for col := uint32(0); col < g.width; col++ {
			idx := g.Index(row, col)
			g.nxt.SetTo(idx, nextState(g.cur.Test(idx), g.LiveNeighborCount(row, col)))
		}
	}
}

func (g *Grid) swap() {
	defer g.hook.Begin(PhaseSwap)()

	g.cur, g.nxt = g.nxt, g.cur
}

// nextState applies the Game of Life transition to a single cell.
func nextState(alive bool, neighbors uint8) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}

// ToggleCell flips the state of the cell at (row, col).
func (g *Grid) ToggleCell(row, col uint32) {
	g.cur.Flip(g.mustIndex(row, col))
}

// SetCells marks every given coordinate alive. Other cells are untouched.
func (g *Grid) SetCells(coords []Coord) {
	for _, c := range coords {
		g.cur.Set(g.mustIndex(c.Row, c.Col))
	}
}

// SpawnGlider places a glider anchored at (row, col).
func (g *Grid) SpawnGlider(row, col uint32) {
	g.SetCells(place(row, col, gliderOffsets[:]))
}

// SpawnPulsar places a pulsar centred on (row, col).
func (g *Grid) SpawnPulsar(row, col uint32) {
	g.SetCells(place(row, col, pulsarOffsets[:]))
}

// Clear kills every cell while keeping the dimensions.
func (g *Grid) Clear() {
	g.cur.ClearAll()
	g.generation = 0
}

// Randomize reseeds every cell alive with probability 0.5 using the grid's RNG.
func (g *Grid) Randomize() {
	core.FillBits(g.rng.Source(), g.cur)
	g.generation = 0
}

// Reseed replaces the grid's RNG. The cells are not touched.
func (g *Grid) Reseed(seed int64) {
	g.rng = core.NewRNG(seed)
}

// SetWidth changes the number of columns. All cells are reset to dead.
func (g *Grid) SetWidth(width uint32) {
	g.resize(width, g.height)
}

// SetHeight changes the number of rows. All cells are reset to dead.
func (g *Grid) SetHeight(height uint32) {
	g.resize(g.width, height)
}

// resize allocates both buffers before touching the dimensions, so a failed
// allocation never leaves width*height out of step with the buffer length.
func (g *Grid) resize(width, height uint32) {
	n := uint(width) * uint(height)
	cur, nxt := bitset.New(n), bitset.New(n)
	g.width, g.height = width, height
	g.cur, g.nxt = cur, nxt
	g.generation = 0
}

// mustIndex returns the linear index of (row, col), panicking when it falls
// outside the buffer. bitset grows on out-of-range writes, which would break
// the length invariant.
func (g *Grid) mustIndex(row, col uint32) uint {
	idx := g.Index(row, col)
	if idx >= g.cur.Len() {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", row, col, g.width, g.height))
	}
	return idx
}

// String renders the grid with '#' for live and '.' for dead cells, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(int(g.width+1) * int(g.height))
	for row := uint32(0); row < g.height; row++ {
		for col := uint32(0); col < g.width; col++ {
			if g.Alive(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
