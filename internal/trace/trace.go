// Package trace times engine Tick phases and reports them through slog.
package trace

import (
	"log/slog"
	"time"

	"bitlife/pkg/sims/life"
)

// Tracer implements life.Hook. It is owned by the same goroutine as the grid
// it observes.
type Tracer struct {
	logger *slog.Logger
	now    func() time.Time

	totals map[life.Phase]time.Duration
	counts map[life.Phase]int
}

// New returns a Tracer logging each phase at debug level.
func New(logger *slog.Logger) *Tracer {
	return &Tracer{
		logger: logger,
		now:    time.Now,
		totals: make(map[life.Phase]time.Duration),
		counts: make(map[life.Phase]int),
	}
}

// Begin starts timing a phase.
func (t *Tracer) Begin(phase life.Phase) func() {
	start := t.now()
	return func() {
		elapsed := t.now().Sub(start)
		t.totals[phase] += elapsed
		t.counts[phase]++
		t.logger.Debug("tick phase", "phase", string(phase), "elapsed", elapsed)
	}
}

// Count returns how many times phase completed.
func (t *Tracer) Count(phase life.Phase) int { return t.counts[phase] }

// Mean returns the average duration of phase, or zero if it never ran.
func (t *Tracer) Mean(phase life.Phase) time.Duration {
	n := t.counts[phase]
	if n == 0 {
		return 0
	}
	return t.totals[phase] / time.Duration(n)
}
