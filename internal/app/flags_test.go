package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bitlife/internal/config"
)

func parseFlags(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewConfig()
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, fs
}

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestResolveWithoutFile(t *testing.T) {
	cfg, fs := parseFlags(t, "-w", "32")
	spawns, err := cfg.Resolve(fs)
	require.NoError(t, err)
	require.Nil(t, spawns)
	require.Equal(t, uint(32), cfg.Width)
	require.Equal(t, uint(64), cfg.Height)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
grid {
  width  = 100
  height = 50
  seed   = 9
  fill   = "empty"
}
host {
  tps             = 20
  ticks_per_frame = 4
}
spawn "glider" {
  row = 10
  col = grid.width - 10
}
`)
	cfg, fs := parseFlags(t, "-config", path, "-w", "40", "-tps", "90")
	spawns, err := cfg.Resolve(fs)
	require.NoError(t, err)

	require.Equal(t, uint(40), cfg.Width)
	require.Equal(t, uint(50), cfg.Height)
	require.Equal(t, int64(9), cfg.Seed)
	require.True(t, cfg.Empty)
	require.Equal(t, 90, cfg.TPS)
	require.Equal(t, 4, cfg.TicksPerFrame)
	require.Equal(t, []config.Spawn{{Kind: config.KindGlider, Row: 10, Col: 30}}, spawns)
}

func TestResolveBadFile(t *testing.T) {
	cfg, fs := parseFlags(t, "-config", writeConfig(t, `grid { fill = "dense" }`))
	_, err := cfg.Resolve(fs)
	require.Error(t, err)
}

func TestSimMap(t *testing.T) {
	cfg, _ := parseFlags(t, "-w", "12", "-h", "7", "-seed", "5", "-empty")
	require.Equal(t, map[string]string{"w": "12", "h": "7", "seed": "5", "empty": "true"}, cfg.SimMap())
}

func TestResolveFileSeedZero(t *testing.T) {
	path := writeConfig(t, `grid { seed = 0 }`)
	cfg, fs := parseFlags(t, "-config", path)
	_, err := cfg.Resolve(fs)
	require.NoError(t, err)
	require.Zero(t, cfg.Seed)
}

func TestResolveKeepsSeedWhenFileOmitsIt(t *testing.T) {
	path := writeConfig(t, `grid { width = 20 }`)
	cfg, fs := parseFlags(t, "-config", path)
	_, err := cfg.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, int64(42), cfg.Seed)
}

func TestResolveRejectsOversizedDimensions(t *testing.T) {
	cases := [][]string{
		{"-w", "4294967296"},
		{"-h", "4294967296"},
		{"-w", "4294967296", "-config", writeConfig(t, "spawn \"cell\" {\n row = 0\n col = grid.width - 1\n}")},
	}
	for _, args := range cases {
		cfg, fs := parseFlags(t, args...)
		_, err := cfg.Resolve(fs)
		require.Error(t, err, "args %v", args)
	}
}
