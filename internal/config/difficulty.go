package config

import "math"

// Difficulty derives the speed ramp and spawn cadence from the config.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a new difficulty model.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	return &Difficulty{cfg: cfg}
}

// InitialSpeedFactor is the speed factor every run starts at.
func (d *Difficulty) InitialSpeedFactor() float64 {
	return 1.0
}

// IsEnabled returns whether the speed factor grows over time.
func (d *Difficulty) IsEnabled() bool {
	return d.cfg.RampPerSecond > 0
}

// Advance returns the speed factor after dt seconds of running.
// Growth is linear and uncapped; it never decreases.
func (d *Difficulty) Advance(speedFactor, dt float64) float64 {
	if dt <= 0 || d.cfg.RampPerSecond <= 0 {
		return speedFactor
	}
	return speedFactor + dt*d.cfg.RampPerSecond
}

// SpawnInterval returns the seconds between obstacle spawns at the given
// speed factor, floored at the configured minimum.
func (d *Difficulty) SpawnInterval(speedFactor float64) float64 {
	interval := d.cfg.BaseSpawnInterval - (speedFactor-1)*d.cfg.SpawnIntervalSlope
	return math.Max(d.cfg.MinSpawnInterval, interval)
}
