package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Board: BoardConfig{
			Width:  750,
			Height: 250,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  88,
			Height: 94,
		},
		Physics: PhysicsConfig{
			Gravity:          1,
			JumpVelocity:     -17,
			ObstacleVelocity: -12,
		},
		Timing: TimingConfig{
			TickRate:        60,
			SpawnIntervalMS: 1500,
		},
		Obstacles: ObstacleConfig{
			SpawnX:         700,
			HistoryCap:     10,
			EvictOffscreen: false,
			MediumAbove:    0.70,
			LargeAbove:     0.90,
			Small:          Size{Width: 34, Height: 70},
			Medium:         Size{Width: 69, Height: 70},
			Large:          Size{Width: 102, Height: 70},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

// TickInterval returns the nominal period of the simulation clock.
func (t TimingConfig) TickInterval() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}

// SpawnInterval returns the period of the spawn clock.
func (t TimingConfig) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnIntervalMS) * time.Millisecond
}
