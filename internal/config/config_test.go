package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `
grid {
  width  = 100
  height = 60
  seed   = 7
  fill   = "empty"
}

host {
  tps             = 30
  scale           = 4
  ticks_per_frame = 2
}

spawn "glider" {
  row = floor(grid.height / 2)
  col = 10
}

spawn "pulsar" {
  row = 20
  col = grid.width - 20
}

spawn "cell" {
  row = min(3, grid.height)
  col = 0
}
`

func TestParseSample(t *testing.T) {
	f, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	require.Equal(t, uint32(100), f.Width)
	require.Equal(t, uint32(60), f.Height)
	require.NotNil(t, f.Seed)
	require.Equal(t, int64(7), *f.Seed)
	require.Equal(t, FillEmpty, f.Fill)
	require.Equal(t, 30, f.TPS)
	require.Equal(t, 4, f.Scale)
	require.Equal(t, 2, f.TicksPerFrame)

	spawns, err := f.Spawns(f.Width, f.Height)
	require.NoError(t, err)
	require.Equal(t, []Spawn{
		{Kind: KindGlider, Row: 30, Col: 10},
		{Kind: KindPulsar, Row: 20, Col: 80},
		{Kind: KindCell, Row: 3, Col: 0},
	}, spawns)
}

func TestSpawnsSeeFinalDimensions(t *testing.T) {
	f, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	spawns, err := f.Spawns(200, 41)
	require.NoError(t, err)
	require.Equal(t, 20, spawns[0].Row)
	require.Equal(t, 180, spawns[1].Col)
}

func TestParseEmptyFile(t *testing.T) {
	f, err := Parse(nil, "empty.hcl")
	require.NoError(t, err)
	require.Zero(t, f.Width)
	require.Nil(t, f.Seed)
	require.Zero(t, f.TPS)

	spawns, err := f.Spawns(64, 64)
	require.NoError(t, err)
	require.Empty(t, spawns)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":         `grid {`,
		"unknown block":  `world {}`,
		"bad fill":       `grid { fill = "sparse" }`,
		"negative width": `grid { width = -1 }`,
		"wrong type":     `host { tps = "fast" }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), "bad.hcl")
			require.Error(t, err)
		})
	}
}

func TestSpawnErrors(t *testing.T) {
	cases := map[string]string{
		"unknown kind":     "spawn \"spaceship\" {\n row = 1\n col = 1\n}",
		"missing col":      `spawn "cell" { row = 1 }`,
		"fractional row":   "spawn \"cell\" {\n row = grid.height / 2\n col = 1\n}",
		"unknown variable": "spawn \"cell\" {\n row = world.height\n col = 1\n}",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := Parse([]byte(src), "spawn.hcl")
			require.NoError(t, err)
			_, err = f.Spawns(5, 5)
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`grid { width = 12 }`), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(12), f.Width)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
