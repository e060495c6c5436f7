// Package config provides YAML-based game configuration loading and
// difficulty management for Falling Up.
package config

import (
	"errors"
	"fmt"
)

// FallingConfig contains all configuration for the Falling Up game.
// Distances are world units on a 240x400 virtual field (y grows upward);
// speeds named "per tick" are applied once per simulation step.
type FallingConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the virtual resolution seen by every camera.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`          // vy loss per second
	JumpImpulse     float64 `yaml:"jump_impulse"`     // vy after a jump, units per tick
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // units per second
}

// PlayerConfig defines the player's hitbox.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	EdgeInset float64 `yaml:"edge_inset"` // thickness of the edge boxes
	RestSink  float64 `yaml:"rest_sink"`  // how far a grounded player sinks into a bar
}

// ObstacleConfig defines bar geometry and the recycled pool.
type ObstacleConfig struct {
	BarWidth   float64 `yaml:"bar_width"`
	BarHeight  float64 `yaml:"bar_height"`
	Gap        float64 `yaml:"gap"`
	Spacing    float64 `yaml:"spacing"`
	OffsetMax  int     `yaml:"offset_max"` // xOffset is drawn from [-offset_max, 0]
	PoolSize   int     `yaml:"pool_size"`
	RightBound float64 `yaml:"right_bound"` // screen-wrap edge
}

// ScrollConfig defines the camera scroll and the camera-anchored boundaries.
type ScrollConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`   // units per tick
	SpeedIncrement float64 `yaml:"speed_increment"` // added per crossed threshold
	LossOffset     float64 `yaml:"loss_offset"`     // loss line, above camera center
	FloorOffset    float64 `yaml:"floor_offset"`    // clamp line, below camera center
}

// InputConfig defines how terminal key repeats are turned into held state.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// Validate reports configuration values the simulation cannot run with.
func (c FallingConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.EdgeInset <= 0 || 2*c.Player.EdgeInset >= c.Player.Height {
		errs = append(errs, fmt.Errorf("edge_inset %v must be positive and under half the player height", c.Player.EdgeInset))
	}
	if c.Obstacles.BarWidth <= 0 || c.Obstacles.BarHeight <= 0 {
		errs = append(errs, fmt.Errorf("bar size must be positive, got %vx%v", c.Obstacles.BarWidth, c.Obstacles.BarHeight))
	}
	if c.Obstacles.BarHeight+c.Obstacles.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("bar_height + spacing must be positive, got %v", c.Obstacles.BarHeight+c.Obstacles.Spacing))
	}
	if c.Obstacles.RightBound <= 0 {
		errs = append(errs, fmt.Errorf("right_bound must be positive, got %v", c.Obstacles.RightBound))
	}
	if c.Obstacles.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("pool_size must be positive, got %d", c.Obstacles.PoolSize))
	}
	if c.Obstacles.OffsetMax < 0 {
		errs = append(errs, fmt.Errorf("offset_max must not be negative, got %d", c.Obstacles.OffsetMax))
	}
	if c.Difficulty.Ramp.Period <= 0 {
		errs = append(errs, fmt.Errorf("difficulty ramp period must be positive, got %v", c.Difficulty.Ramp.Period))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled bool       `yaml:"enabled"`
	Ramp    RampConfig `yaml:"ramp"`
}

// RampConfig places the score thresholds that raise the scroll speed.
// Thresholds sit at Offset, Offset+Period, Offset+2*Period, ...
type RampConfig struct {
	Period float64 `yaml:"period"`
	Offset float64 `yaml:"offset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// Empty input yields an empty preset, meaning "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// SpeedFactorForPreset returns the multiplier applied to the initial scroll speed.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.4
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
