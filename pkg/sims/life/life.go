package life

import "bitlife/pkg/core"

// Sim adapts a Grid to the core.Sim contract.
type Sim struct {
	*Grid
	cfg Config
}

// NewSim builds a Grid from cfg, randomly seeded unless cfg.Empty is set.
func NewSim(cfg Config, opts ...Option) *Sim {
	opts = append([]Option{WithSeed(cfg.Seed)}, opts...)
	var g *Grid
	if cfg.Empty {
		g = Empty(cfg.Width, cfg.Height, opts...)
	} else {
		g = New(cfg.Width, cfg.Height, opts...)
	}
	return &Sim{Grid: g, cfg: cfg}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	return core.Size{W: int(s.Width()), H: int(s.Height())}
}

// Reset reseeds the board. A zero seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.Reseed(seed)
	if s.cfg.Empty {
		s.Clear()
		return
	}
	s.Randomize()
}

// Step advances the simulation by one generation.
func (s *Sim) Step() { s.Tick() }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
