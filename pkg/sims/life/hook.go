package life

import "bitlife/pkg/core"

// Phase names a sub-step of Tick.
type Phase string

const (
	// PhaseCompute covers evaluating every cell into the next buffer.
	PhaseCompute Phase = "compute"
	// PhaseSwap covers replacing the live buffer with the next one.
	PhaseSwap Phase = "swap"
)

// Hook observes Tick phases. Begin is called when a phase starts and the
// returned func when it ends, including when the phase panics.
type Hook interface {
	Begin(phase Phase) (end func())
}

// HookFunc adapts a plain function to Hook.
type HookFunc func(phase Phase) func()

// Begin calls f.
func (f HookFunc) Begin(phase Phase) func() { return f(phase) }

type nopHook struct{}

func (nopHook) Begin(Phase) func() { return func() {} }

// Option customises a Grid at construction.
type Option func(*Grid)

// WithHook installs an instrumentation hook around Tick phases.
func WithHook(h Hook) Option {
	return func(g *Grid) {
		if h != nil {
			g.hook = h
		}
	}
}

// WithSeed makes random seeding deterministic.
func WithSeed(seed int64) Option {
	return func(g *Grid) { g.rng = core.NewRNG(seed) }
}

// WithRNG supplies the random source used for seeding.
func WithRNG(r *core.RNG) Option {
	return func(g *Grid) {
		if r != nil {
			g.rng = r
		}
	}
}

// SetHook replaces the instrumentation hook. A nil hook restores the no-op default.
func (g *Grid) SetHook(h Hook) {
	if h == nil {
		h = nopHook{}
	}
	g.hook = h
}
