package core

import (
	"testing"
	"time"
)

func TestFitField(t *testing.T) {
	tests := []struct {
		name         string
		viewW, viewH float64
		ratio        float64
		wantW, wantH int
	}{
		{"wide viewport keeps max height", 1920, 1080, 1, 1280, 720},
		{"very wide viewport shortens field", 2560, 1080, 1, 1280, 540},
		{"tall viewport clamps to max", 800, 1200, 2, 1280, 720},
		{"pixel ratio cancels out", 1280, 600, 2, 1280, 600},
		{"degenerate viewport", 0, 0, 1, 1280, 720},
		{"zero ratio treated as one", 2560, 1080, 0, 1280, 540},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FitField(1280, 720, tc.viewW, tc.viewH, tc.ratio)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("FitField() = %dx%d, expected %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestTickInterval(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickInterval(); got != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() with zero rate = %v, expected 1/60s", got)
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(50, 100*time.Millisecond)
	start := time.Unix(1000, 0)

	if got := c.Delta(start); got != 20*time.Millisecond {
		t.Errorf("first Delta() = %v, expected nominal 20ms", got)
	}
	if got := c.Delta(start.Add(30 * time.Millisecond)); got != 30*time.Millisecond {
		t.Errorf("Delta() = %v, expected 30ms", got)
	}
	if got := c.Delta(start.Add(2 * time.Second)); got != 100*time.Millisecond {
		t.Errorf("stalled Delta() = %v, expected clamp to 100ms", got)
	}
	if got := c.Delta(start); got != 20*time.Millisecond {
		t.Errorf("backwards Delta() = %v, expected nominal 20ms", got)
	}

	c.Reset()
	if got := c.Delta(start.Add(time.Hour)); got != 20*time.Millisecond {
		t.Errorf("Delta() after Reset = %v, expected nominal 20ms", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Press(ActionLeft)
	f.Release(ActionRight)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has should report pressed actions only")
	}
	if !f.HasReleased(ActionRight) || f.HasReleased(ActionLeft) {
		t.Error("HasReleased should report released actions only")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should drop all signals")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	zero.Press(ActionLaunch)
	if !zero.Has(ActionLaunch) {
		t.Error("Press should initialize a zero frame")
	}
}

func TestActionDirection(t *testing.T) {
	if ActionLeft.Direction() != -1 || ActionRight.Direction() != 1 || ActionLaunch.Direction() != 0 {
		t.Error("Direction() mismatch")
	}
	if ActionLaunch.String() != "Launch" || Action(99).String() != "Unknown" {
		t.Error("String() mismatch")
	}
}
