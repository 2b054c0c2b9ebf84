package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody   = '█'
	PlayerHead   = '▀'
	ObstacleChar = '▓'
	GroundChar   = '═'
	LaneChar     = '┊'
)

// Render draws a snapshot into dst, scaling viewport units onto the cells.
// The screen is cleared first.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}

	v := viewportScale{
		sx: float64(dst.Width()) / s.Width,
		sy: float64(dst.Height()) / s.Height,
	}

	// Lane guides
	for _, x := range s.LaneX {
		dst.DrawVLine(v.col(x), 0, v.row(s.GroundLine), LaneChar, core.ColorDim)
	}

	// Ground
	dst.DrawHLine(0, v.row(s.GroundLine), dst.Width(), GroundChar, core.ColorGray)

	for _, o := range s.Obstacles {
		dst.DrawRect(v.rect(o), ObstacleChar, core.ColorRed)
	}

	p := v.rect(s.Player)
	dst.DrawRect(p, PlayerBody, core.ColorYellow)
	if !s.OnGround {
		// Tucked legs while airborne
		dst.DrawHLine(p.X, p.Bottom()-1, p.W, PlayerHead, core.ColorYellow)
	}
}

// viewportScale maps viewport units to screen cells.
type viewportScale struct {
	sx, sy float64
}

func (v viewportScale) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewportScale) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// rect converts a box to cells, keeping at least one cell per axis so small
// bodies never vanish on a narrow terminal.
func (v viewportScale) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
