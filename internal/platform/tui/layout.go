package tui

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// FitLayout derives viewport geometry for a playfield of cols x rows cells.
// The viewport height is fixed by the config; the width follows the
// terminal's shape so obstacles keep their proportions.
func FitLayout(cfg config.RunnerConfig, cols, rows int) core.Layout {
	width := cfg.Viewport.Width
	if cols > 0 && rows > 0 {
		aspect := float64(cols) / (float64(rows) * cellAspect)
		minWidth := cfg.Viewport.LanePadding*2 + cfg.Player.Width
		width = math.Max(cfg.Viewport.Height*aspect, minWidth)
	}

	return core.NewLayout(
		width,
		cfg.Viewport.Height,
		cfg.Viewport.GroundY,
		cfg.Viewport.LanePadding,
		cfg.Lanes,
	)
}
