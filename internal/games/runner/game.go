// Package runner implements a lane-based endless runner.
// The player switches between lanes and jumps over obstacles that stream in
// from the right while the game speeds up, until a collision ends the run.
package runner

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// State is the run lifecycle.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Advance after each frame.
type StepResult struct {
	Snapshot Snapshot
	Ended    bool // The run ended during this frame
}

// Game owns all state of a single run.
type Game struct {
	cfg        config.RunnerConfig
	layout     core.Layout
	difficulty *config.Difficulty
	kinematics Kinematics
	spawner    *Spawner
	logger     *log.Logger

	player    Player
	obstacles []Obstacle
	pending   core.CommandBuffer

	state         State
	score         float64
	speedFactor   float64
	spawnInterval float64
	elapsed       float64 // Simulated seconds this run
	frames        int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger that receives run telemetry.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithLayout overrides the layout derived from the config viewport.
func WithLayout(l core.Layout) Option {
	return func(g *Game) {
		g.layout = l.Clone()
	}
}

// DefaultLayout builds the layout described by the config viewport.
func DefaultLayout(cfg config.RunnerConfig) core.Layout {
	return core.NewLayout(
		cfg.Viewport.Width,
		cfg.Viewport.Height,
		cfg.Viewport.GroundY,
		cfg.Viewport.LanePadding,
		cfg.Lanes,
	)
}

// New creates a game ready to run. src drives obstacle generation; a nil
// source is seeded from the clock.
func New(cfg config.RunnerConfig, src rand.Source, opts ...Option) *Game {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	g := &Game{
		cfg:        cfg,
		layout:     DefaultLayout(cfg),
		difficulty: config.NewDifficulty(cfg.Difficulty),
		kinematics: NewKinematics(cfg),
		spawner:    NewSpawner(rand.New(src), cfg),
		logger:     log.New(io.Discard),
		obstacles:  make([]Obstacle, 0, 16),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Reset()
	return g
}

// Reset puts every run field back to its starting value.
func (g *Game) Reset() {
	g.player = NewPlayer(g.cfg.Player, g.layout)
	g.obstacles = g.obstacles[:0]
	g.pending.Clear()
	g.spawner.Reset()

	g.state = StateRunning
	g.score = 0
	g.speedFactor = g.difficulty.InitialSpeedFactor()
	g.spawnInterval = g.difficulty.SpawnInterval(g.speedFactor)
	g.elapsed = 0
	g.frames = 0
}

// SetLayout applies new viewport geometry. The player snaps onto its lane
// in the new layout; obstacles keep their positions.
func (g *Game) SetLayout(l core.Layout) {
	g.layout = l.Clone()
	g.player.Lane = core.Clamp(g.player.Lane, 0, core.Max(l.Lanes()-1, 0))
	g.player.X = g.player.TargetX(g.layout)
}

// Layout returns the current geometry.
func (g *Game) Layout() core.Layout {
	return g.layout.Clone()
}

// Push buffers a command for the next frame. It may be called at any time
// between frames; commands of the same kind coalesce.
func (g *Game) Push(c core.Command) {
	g.pending.Push(c)
}

// Advance runs one frame of dt seconds.
// While the game is over nothing moves; only a pending restart is honoured.
func (g *Game) Advance(dt float64) StepResult {
	in := g.pending.Take()

	if g.state == StateGameOver {
		if in.Restart() {
			g.Reset()
			g.logger.Debug("run restarted")
		}
		return StepResult{Snapshot: g.Snapshot()}
	}

	dt = ClampStep(dt, g.cfg.Physics.MaxFrameStep)
	g.frames++
	g.elapsed += dt

	g.score += dt * g.cfg.Scoring.PointsPerSecond * g.speedFactor
	g.speedFactor = g.difficulty.Advance(g.speedFactor, dt)
	g.spawnInterval = g.difficulty.SpawnInterval(g.speedFactor)

	if o, ok := g.spawner.MaybeSpawn(dt, g.spawnInterval, g.speedFactor, g.layout); ok {
		g.obstacles = append(g.obstacles, o)
	}

	g.applyInput(in)
	g.kinematics.Update(&g.player, g.layout, dt)

	if g.updateObstacles(dt) {
		g.end()
		return StepResult{Snapshot: g.Snapshot(), Ended: true}
	}
	return StepResult{Snapshot: g.Snapshot()}
}

// applyInput applies buffered lane and jump commands to the player.
func (g *Game) applyInput(in core.CommandBuffer) {
	if shift := in.LaneShift(); shift != 0 {
		g.player.ShiftLane(shift, g.layout.Lanes())
	}
	if in.Jump() {
		g.player.Jump()
	}
}

// updateObstacles moves, aligns and prunes obstacles, and reports whether
// any of them hit the player.
func (g *Game) updateObstacles(dt float64) bool {
	hit := false
	playerBox := g.player.Box()

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.Advance(dt)
		o.Align(g.layout.GroundY, g.player.Height)

		if !hit && playerBox.Overlaps(o.Box()) {
			hit = true
		}
		if o.Gone(g.cfg.Obstacles.DespawnMargin) {
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept
	return hit
}

// end freezes the run.
func (g *Game) end() {
	g.state = StateGameOver
	g.logger.Info("run ended",
		"score", int(g.score),
		"speed", fmt.Sprintf("%.2f", g.speedFactor),
		"seconds", g.elapsed,
		"obstacles", len(g.obstacles),
	)
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the run is in progress.
func (g *Game) Running() bool {
	return g.state == StateRunning
}

// Score returns the raw accumulated score.
func (g *Game) Score() float64 {
	return g.score
}

// SpeedFactor returns the current speed multiplier.
func (g *Game) SpeedFactor() float64 {
	return g.speedFactor
}

// SpawnInterval returns the current seconds between spawns.
func (g *Game) SpawnInterval() float64 {
	return g.spawnInterval
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the live obstacles.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}
