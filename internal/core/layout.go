package core

// Layout is the viewport geometry the simulation runs against.
// All values are in viewport units, independent of the terminal size.
type Layout struct {
	LaneX   []float64 // Lane center x-coordinates, left to right
	GroundY float64   // Player top y when standing on the ground
	Width   float64   // Viewport width
	Height  float64   // Viewport height
}

// NewLayout spreads lanes evenly across the viewport, leaving padding on
// both sides. A single lane sits at the viewport center.
func NewLayout(width, height, groundY, padding float64, lanes int) Layout {
	l := Layout{
		LaneX:   make([]float64, lanes),
		GroundY: groundY,
		Width:   width,
		Height:  height,
	}

	if lanes == 1 {
		l.LaneX[0] = width / 2
		return l
	}

	usable := width - padding*2
	for i := range l.LaneX {
		l.LaneX[i] = padding + usable*(float64(i)/float64(lanes-1))
	}
	return l
}

// Lanes returns the number of lanes.
func (l Layout) Lanes() int {
	return len(l.LaneX)
}

// LaneCenter returns the center x of a lane, clamping the index.
func (l Layout) LaneCenter(lane int) float64 {
	if len(l.LaneX) == 0 {
		return l.Width / 2
	}
	return l.LaneX[Clamp(lane, 0, len(l.LaneX)-1)]
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	c := l
	c.LaneX = append([]float64(nil), l.LaneX...)
	return c
}
