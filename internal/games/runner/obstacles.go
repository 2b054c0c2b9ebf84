package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Obstacle is a block travelling from the right edge towards the player.
type Obstacle struct {
	Lane  int
	X, Y  float64
	W, H  float64
	Speed float64 // Units per second, leftwards
}

// Box returns the collision box for this obstacle.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Advance moves the obstacle left by dt seconds of travel.
func (o *Obstacle) Advance(dt float64) {
	o.X -= o.Speed * dt
}

// Align puts the obstacle's bottom on the player's feet line. Obstacle height
// only changes the silhouette, every obstacle stands on the same ground.
func (o *Obstacle) Align(groundY, playerHeight float64) {
	o.Y = groundY + (playerHeight - o.H)
}

// Gone reports whether the trailing edge is more than margin past the left edge.
func (o Obstacle) Gone(margin float64) bool {
	return o.X+o.W < -margin
}

// Spawner emits obstacles at a cadence set by the caller.
type Spawner struct {
	rng          *rand.Rand
	cfg          config.ObstacleConfig
	lanes        int
	playerHeight float64
	elapsed      float64 // Seconds since the last spawn
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.RunnerConfig) *Spawner {
	return &Spawner{
		rng:          rng,
		cfg:          cfg.Obstacles,
		lanes:        cfg.Lanes,
		playerHeight: cfg.Player.Height,
	}
}

// Reset zeroes the spawn accumulator.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Elapsed returns the seconds accumulated since the last spawn.
func (s *Spawner) Elapsed() float64 {
	return s.elapsed
}

// MaybeSpawn adds dt to the accumulator and returns a new obstacle once
// interval seconds have built up.
func (s *Spawner) MaybeSpawn(dt, interval, speedFactor float64, layout core.Layout) (Obstacle, bool) {
	s.elapsed += dt
	if s.elapsed < interval {
		return Obstacle{}, false
	}
	s.elapsed = 0
	return s.spawn(speedFactor, layout), true
}

// spawn creates an obstacle just past the right edge.
func (s *Spawner) spawn(speedFactor float64, layout core.Layout) Obstacle {
	lane := s.rng.Intn(core.Max(s.lanes, 1))
	w := s.uniform(s.cfg.MinWidth, s.cfg.MaxWidth)
	h := s.uniform(s.cfg.MinHeight, s.cfg.MaxHeight)
	jitter := s.uniform(s.cfg.SpeedJitterMin, s.cfg.SpeedJitterMax)

	o := Obstacle{
		Lane:  lane,
		X:     layout.Width + s.cfg.SpawnMargin,
		W:     w,
		H:     h,
		Speed: s.cfg.BaseSpeed * speedFactor * jitter,
	}
	o.Align(layout.GroundY, s.playerHeight)
	return o
}

// uniform draws from [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
