package runner

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestRenderPlayfield(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(1))
	g.obstacles = append(g.obstacles, Obstacle{X: 800, Y: 452, W: 40, H: 40})

	screen := core.NewScreen(96, 52)
	Render(g.Snapshot(), screen)

	// Player 454..506 x 420..492 at 1/10 scale
	if cell := screen.GetCell(47, 45); cell.Rune != PlayerBody || cell.Color != core.ColorYellow {
		t.Errorf("expected player body at (47,45), got %+v", cell)
	}
	if cell := screen.GetCell(82, 47); cell.Rune != ObstacleChar || cell.Color != core.ColorRed {
		t.Errorf("expected obstacle at (82,47), got %+v", cell)
	}
	if screen.Get(0, 49) != GroundChar {
		t.Errorf("expected ground at row 49, got %q", screen.Row(49))
	}
	if screen.Get(8, 10) != LaneChar {
		t.Errorf("expected lane guide at column 8, got %q", screen.Get(8, 10))
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), rand.NewSource(1))
	screen := core.NewScreen(10, 3)
	Render(g.Snapshot(), screen)

	if !strings.ContainsRune(screen.String(), PlayerBody) {
		t.Error("player should stay visible on a tiny screen")
	}

	empty := core.NewScreen(0, 0)
	Render(g.Snapshot(), empty) // must not panic
}
