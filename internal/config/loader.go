package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Lanes < 1:
		return fmt.Errorf("%w: lanes must be at least 1, got %d", ErrInvalidConfig, c.Lanes)
	case c.Player.StartLane < 0 || c.Player.StartLane >= c.Lanes:
		return fmt.Errorf("%w: start_lane %d outside [0, %d]", ErrInvalidConfig, c.Player.StartLane, c.Lanes-1)
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport must have positive size", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player must have positive size", ErrInvalidConfig)
	case c.Player.JumpStrength >= 0:
		return fmt.Errorf("%w: jump_strength must be negative (upwards), got %v", ErrInvalidConfig, c.Player.JumpStrength)
	case c.Physics.MaxFrameStep <= 0:
		return fmt.Errorf("%w: max_frame_step must be positive", ErrInvalidConfig)
	case c.Obstacles.MinWidth <= 0 || c.Obstacles.MinWidth > c.Obstacles.MaxWidth:
		return fmt.Errorf("%w: obstacle width range [%v, %v)", ErrInvalidConfig, c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	case c.Obstacles.MinHeight <= 0 || c.Obstacles.MinHeight > c.Obstacles.MaxHeight:
		return fmt.Errorf("%w: obstacle height range [%v, %v)", ErrInvalidConfig, c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	case c.Obstacles.SpeedJitterMin <= 0 || c.Obstacles.SpeedJitterMin > c.Obstacles.SpeedJitterMax:
		return fmt.Errorf("%w: speed jitter range [%v, %v)", ErrInvalidConfig, c.Obstacles.SpeedJitterMin, c.Obstacles.SpeedJitterMax)
	case c.Difficulty.RampPerSecond < 0:
		return fmt.Errorf("%w: ramp_per_second must not be negative", ErrInvalidConfig)
	case c.Difficulty.MinSpawnInterval <= 0:
		return fmt.Errorf("%w: min_spawn_interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets only change how fast the run gets harder, never the starting state.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	def := DefaultRunnerConfig()

	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseSpeed = 190
		cfg.Difficulty.RampPerSecond = 0.005
	case DifficultyNormal:
		cfg.Obstacles.BaseSpeed = def.Obstacles.BaseSpeed
		cfg.Difficulty.RampPerSecond = def.Difficulty.RampPerSecond
	case DifficultyHard:
		cfg.Obstacles.BaseSpeed = 260
		cfg.Difficulty.RampPerSecond = 0.02
	case DifficultyFixed:
		cfg.Difficulty.RampPerSecond = 0
	}
}
