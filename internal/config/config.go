// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

// RunnerConfig contains all tunable parameters of a run.
type RunnerConfig struct {
	Lanes      int              `yaml:"lanes"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// ViewportConfig defines the logical playfield the simulation runs in.
type ViewportConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	LanePadding float64 `yaml:"lane_padding"`
	GroundY     float64 `yaml:"ground_y"` // Player top when standing
}

// PlayerConfig defines the player body and controls.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	StartLane      int     `yaml:"start_lane"`
	LaneFollowRate float64 `yaml:"lane_follow_rate"` // Per-second approach rate towards the lane
	JumpStrength   float64 `yaml:"jump_strength"`    // Negative = upwards
}

// PhysicsConfig defines gravity and frame stepping.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFrameStep float64 `yaml:"max_frame_step"` // Seconds
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"` // Units per second at speed factor 1
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
	MinHeight      float64 `yaml:"min_height"`
	MaxHeight      float64 `yaml:"max_height"`
	SpawnMargin    float64 `yaml:"spawn_margin"`   // Distance past the right edge
	DespawnMargin  float64 `yaml:"despawn_margin"` // Distance past the left edge
	SpeedJitterMin float64 `yaml:"speed_jitter_min"`
	SpeedJitterMax float64 `yaml:"speed_jitter_max"`
}

// DifficultyConfig defines the speed ramp and spawn cadence.
type DifficultyConfig struct {
	RampPerSecond      float64 `yaml:"ramp_per_second"`
	BaseSpawnInterval  float64 `yaml:"base_spawn_interval"`
	SpawnIntervalSlope float64 `yaml:"spawn_interval_slope"`
	MinSpawnInterval   float64 `yaml:"min_spawn_interval"`
}

// ScoringConfig defines how fast score accrues.
type ScoringConfig struct {
	PointsPerSecond float64 `yaml:"points_per_second"` // At speed factor 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty and unknown values
// return "" meaning the config is used as loaded.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
