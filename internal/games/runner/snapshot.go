package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Snapshot is the render state of one frame.
// It is a copy: the renderer may keep it without aliasing game state.
type Snapshot struct {
	Player      core.Box
	PlayerLane  int
	OnGround    bool
	Obstacles   []core.Box // In spawn order
	Score       float64
	SpeedFactor float64
	GameOver    bool
	Frame       int

	LaneX      []float64 // Lane centers for guide lines
	GroundLine float64   // Y of the floor under the player's feet
	Width      float64
	Height     float64
}

// DisplayScore returns the score as shown to the player.
func (s Snapshot) DisplayScore() int {
	return int(math.Floor(s.Score))
}

// SpeedText formats the speed factor for display.
func (s Snapshot) SpeedText() string {
	return fmt.Sprintf("%.2fx", s.SpeedFactor)
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]core.Box, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = o.Box()
	}

	return Snapshot{
		Player:      g.player.Box(),
		PlayerLane:  g.player.Lane,
		OnGround:    g.player.OnGround,
		Obstacles:   obstacles,
		Score:       g.score,
		SpeedFactor: g.speedFactor,
		GameOver:    g.state == StateGameOver,
		Frame:       g.frames,
		LaneX:       append([]float64(nil), g.layout.LaneX...),
		GroundLine:  g.layout.GroundY + g.player.Height,
		Width:       g.layout.Width,
		Height:      g.layout.Height,
	}
}
