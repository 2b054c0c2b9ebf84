package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lanes: 3,
		Viewport: ViewportConfig{
			Width:       960,
			Height:      520,
			LanePadding: 80,
			GroundY:     420,
		},
		Player: PlayerConfig{
			Width:          52,
			Height:         72,
			StartLane:      1,
			LaneFollowRate: 12,
			JumpStrength:   -13,
		},
		Physics: PhysicsConfig{
			Gravity:      30,
			MaxFrameStep: 0.05,
		},
		Obstacles: ObstacleConfig{
			BaseSpeed:      220,
			MinWidth:       36,
			MaxWidth:       58,
			MinHeight:      36,
			MaxHeight:      76,
			SpawnMargin:    100,
			DespawnMargin:  200,
			SpeedJitterMin: 0.9,
			SpeedJitterMax: 1.2,
		},
		Difficulty: DifficultyConfig{
			RampPerSecond:      0.01,
			BaseSpawnInterval:  1.1,
			SpawnIntervalSlope: 0.14,
			MinSpawnInterval:   0.45,
		},
		Scoring: ScoringConfig{
			PointsPerSecond: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
