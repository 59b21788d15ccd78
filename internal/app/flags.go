package app

import (
	"flag"
	"fmt"
	"math"
	"strconv"

	"bitlife/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim           string
	Scale         int
	TPS           int
	TicksPerFrame int
	Seed          int64
	Width         uint
	Height        uint
	Empty         bool
	ConfigPath    string
	Debug         bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 5, TPS: 60, TicksPerFrame: 1, Seed: 42, Width: 64, Height: 64}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.TicksPerFrame, "tpf", c.TicksPerFrame, "generations advanced per frame")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.UintVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.UintVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.BoolVar(&c.Empty, "empty", c.Empty, "start with every cell dead")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "HCL file with grid, host and spawn blocks")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log tick phase timings")
}

// Resolve checks the grid dimensions, loads the file named by -config, if
// any, beneath the flags that were set explicitly on fs, and returns its
// startup patterns evaluated against the final grid size.
func (c *Config) Resolve(fs *flag.FlagSet) ([]config.Spawn, error) {
	if c.Width > math.MaxUint32 || c.Height > math.MaxUint32 {
		return nil, fmt.Errorf("grid %dx%d exceeds the maximum dimension %d", c.Width, c.Height, uint32(math.MaxUint32))
	}

	if c.ConfigPath == "" {
		return nil, nil
	}
	f, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if f.Width > 0 && !set["w"] {
		c.Width = uint(f.Width)
	}
	if f.Height > 0 && !set["h"] {
		c.Height = uint(f.Height)
	}
	if f.Seed != nil && !set["seed"] {
		c.Seed = *f.Seed
	}
	if f.Fill != "" && !set["empty"] {
		c.Empty = f.Fill == config.FillEmpty
	}
	if f.TPS > 0 && !set["tps"] {
		c.TPS = f.TPS
	}
	if f.Scale > 0 && !set["scale"] {
		c.Scale = f.Scale
	}
	if f.TicksPerFrame > 0 && !set["tpf"] {
		c.TicksPerFrame = f.TicksPerFrame
	}

	spawns, err := f.Spawns(uint32(c.Width), uint32(c.Height))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", c.ConfigPath, err)
	}
	return spawns, nil
}

// SimMap renders the grid settings in the form sim factories accept.
func (c *Config) SimMap() map[string]string {
	return map[string]string{
		"w":     strconv.FormatUint(uint64(c.Width), 10),
		"h":     strconv.FormatUint(uint64(c.Height), 10),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"empty": strconv.FormatBool(c.Empty),
	}
}
