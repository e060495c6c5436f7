package config

import (
	_ "embed"
)

//go:embed defaults/fallingup.yaml
var defaultFallingYAML []byte

// DefaultFallingConfig returns the default Falling Up configuration.
// It mirrors defaults/fallingup.yaml and backs the loader when the
// embedded document cannot be parsed.
func DefaultFallingConfig() FallingConfig {
	return FallingConfig{
		World: WorldConfig{
			Width:  240,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:         42,
			JumpImpulse:     7,
			HorizontalSpeed: 95,
		},
		Player: PlayerConfig{
			StartX:    205,
			StartY:    205,
			Width:     24,
			Height:    24,
			EdgeInset: 8,
			RestSink:  5,
		},
		Obstacles: ObstacleConfig{
			BarWidth:   150,
			BarHeight:  20,
			Gap:        30,
			Spacing:    55,
			OffsetMax:  135,
			PoolSize:   8,
			RightBound: 240,
		},
		Scroll: ScrollConfig{
			InitialSpeed:   0.5,
			SpeedIncrement: 0.1,
			LossOffset:     35,
			FloorOffset:    200,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Ramp: RampConfig{
				Period: 10,
				Offset: 9,
			},
		},
		Input: InputConfig{
			HoldWindowMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultFallingYAML
}
