package runner

import (
	"math"
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(0.05)
	start := time.Unix(1000, 0)

	if dt := c.Tick(start); dt != 0 {
		t.Errorf("first Tick() = %v, expected 0", dt)
	}
	if dt := c.Tick(start.Add(16 * time.Millisecond)); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Tick() = %v, expected 0.016", dt)
	}

	// A stall is capped
	if dt := c.Tick(start.Add(3 * time.Second)); dt != 0.05 {
		t.Errorf("stalled Tick() = %v, expected 0.05", dt)
	}

	// Time going backwards yields no step
	if dt := c.Tick(start); dt != 0 {
		t.Errorf("backwards Tick() = %v, expected 0", dt)
	}

	c.Reset()
	if dt := c.Tick(start.Add(time.Hour)); dt != 0 {
		t.Errorf("Tick() after Reset() = %v, expected 0", dt)
	}
}

func TestClampStep(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.016, 0.016},
		{0.05, 0.05},
		{0.2, 0.05},
		{-0.1, 0},
	}
	for _, tc := range tests {
		if got := ClampStep(tc.in, 0.05); got != tc.want {
			t.Errorf("ClampStep(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
