package core

import "testing"

func TestNewLayoutSpreadsLanes(t *testing.T) {
	l := NewLayout(960, 520, 420, 80, 3)

	expected := []float64{80, 480, 880}
	if l.Lanes() != len(expected) {
		t.Fatalf("Lanes() = %d, expected %d", l.Lanes(), len(expected))
	}
	for i, want := range expected {
		if l.LaneX[i] != want {
			t.Errorf("LaneX[%d] = %v, expected %v", i, l.LaneX[i], want)
		}
	}
	if l.GroundY != 420 {
		t.Errorf("GroundY = %v, expected 420", l.GroundY)
	}
}

func TestNewLayoutSingleLane(t *testing.T) {
	l := NewLayout(600, 400, 300, 80, 1)
	if l.LaneX[0] != 300 {
		t.Errorf("single lane should be centered, got %v", l.LaneX[0])
	}
}

func TestLayoutLaneCenterClamps(t *testing.T) {
	l := NewLayout(960, 520, 420, 80, 3)

	if l.LaneCenter(-4) != 80 {
		t.Errorf("LaneCenter(-4) = %v, expected 80", l.LaneCenter(-4))
	}
	if l.LaneCenter(7) != 880 {
		t.Errorf("LaneCenter(7) = %v, expected 880", l.LaneCenter(7))
	}
}

func TestLayoutClone(t *testing.T) {
	l := NewLayout(960, 520, 420, 80, 3)
	c := l.Clone()
	c.LaneX[0] = -1
	if l.LaneX[0] == -1 {
		t.Error("Clone() should not share lane storage")
	}
}
