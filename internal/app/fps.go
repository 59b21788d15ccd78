package app

import (
	"fmt"
	"math"
	"time"
)

const fpsWindow = 100

// FPSMeter tracks frame rates over the most recent frames.
type FPSMeter struct {
	frames []float64
	last   time.Time
}

// FPSStats summarises the recorded frame rates.
type FPSStats struct {
	Latest, Mean, Min, Max float64
}

// NewFPSMeter starts measuring from now.
func NewFPSMeter(now time.Time) *FPSMeter {
	return &FPSMeter{frames: make([]float64, 0, fpsWindow), last: now}
}

// Frame records a frame rendered at now.
func (m *FPSMeter) Frame(now time.Time) {
	delta := now.Sub(m.last)
	m.last = now
	if delta <= 0 {
		return
	}
	if len(m.frames) == fpsWindow {
		copy(m.frames, m.frames[1:])
		m.frames = m.frames[:fpsWindow-1]
	}
	m.frames = append(m.frames, float64(time.Second)/float64(delta))
}

// Stats returns the latest rate and the mean, min and max of the window.
func (m *FPSMeter) Stats() FPSStats {
	if len(m.frames) == 0 {
		return FPSStats{}
	}
	s := FPSStats{Latest: m.frames[len(m.frames)-1], Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, f := range m.frames {
		sum += f
		s.Min = math.Min(s.Min, f)
		s.Max = math.Max(s.Max, f)
	}
	s.Mean = sum / float64(len(m.frames))
	return s
}

// String formats the stats for a status line.
func (s FPSStats) String() string {
	return fmt.Sprintf("fps %d (avg %d min %d max %d)",
		int(math.Round(s.Latest)), int(math.Round(s.Mean)), int(math.Round(s.Min)), int(math.Round(s.Max)))
}
