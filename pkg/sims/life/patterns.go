package life

// Offset is a position relative to a pattern anchor.
type Offset struct {
	DRow, DCol int32
}

var gliderOffsets = [...]Offset{
	{-1, 1},
	{0, -1}, {0, 1},
	{1, 0}, {1, 1},
}

// pulsarOffsets is the period-3 pulsar centred on its anchor: arms at
// rows ±1/±6 spanning cols ±2..±4, and the transposed set.
var pulsarOffsets = [...]Offset{
	{-6, -4}, {-6, -3}, {-6, -2}, {-6, 2}, {-6, 3}, {-6, 4},
	{-4, -6}, {-4, -1}, {-4, 1}, {-4, 6},
	{-3, -6}, {-3, -1}, {-3, 1}, {-3, 6},
	{-2, -6}, {-2, -1}, {-2, 1}, {-2, 6},
	{-1, -4}, {-1, -3}, {-1, -2}, {-1, 2}, {-1, 3}, {-1, 4},
	{1, -4}, {1, -3}, {1, -2}, {1, 2}, {1, 3}, {1, 4},
	{2, -6}, {2, -1}, {2, 1}, {2, 6},
	{3, -6}, {3, -1}, {3, 1}, {3, 6},
	{4, -6}, {4, -1}, {4, 1}, {4, 6},
	{6, -4}, {6, -3}, {6, -2}, {6, 2}, {6, 3}, {6, 4},
}

// Glider returns the glider offsets.
func Glider() []Offset { return append([]Offset(nil), gliderOffsets[:]...) }

// Pulsar returns the pulsar offsets.
func Pulsar() []Offset { return append([]Offset(nil), pulsarOffsets[:]...) }

// place converts offsets into absolute coordinates around (row, col). The
// result is not wrapped; an offset past row or column zero turns into a
// very large coordinate.
func place(row, col uint32, offsets []Offset) []Coord {
	coords := make([]Coord, len(offsets))
	for i, o := range offsets {
		coords[i] = Coord{
			Row: uint32(int64(row) + int64(o.DRow)),
			Col: uint32(int64(col) + int64(o.DCol)),
		}
	}
	return coords
}
