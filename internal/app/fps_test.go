package app

import (
	"testing"
	"time"
)

func TestFPSMeterStats(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewFPSMeter(start)
	if got := m.Stats(); got != (FPSStats{}) {
		t.Fatalf("stats before any frame = %+v", got)
	}

	now := start.Add(10 * time.Millisecond) // 100 fps
	m.Frame(now)
	now = now.Add(20 * time.Millisecond) // 50 fps
	m.Frame(now)
	m.Frame(now) // zero delta is ignored

	s := m.Stats()
	if s.Latest != 50 || s.Min != 50 || s.Max != 100 || s.Mean != 75 {
		t.Fatalf("stats = %+v", s)
	}
	if got := s.String(); got != "fps 50 (avg 75 min 50 max 100)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestFPSMeterWindow(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewFPSMeter(now)

	now = now.Add(time.Second) // 1 fps, should fall out of the window
	m.Frame(now)
	for i := 0; i < fpsWindow; i++ {
		now = now.Add(10 * time.Millisecond)
		m.Frame(now)
	}

	if len(m.frames) != fpsWindow {
		t.Fatalf("window holds %d frames, want %d", len(m.frames), fpsWindow)
	}
	if s := m.Stats(); s.Min != 100 {
		t.Fatalf("oldest frame not evicted, min = %v", s.Min)
	}
}
