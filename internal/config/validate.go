package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid value")

// Validate checks that cfg describes a playable board.
// All problems are reported together.
func (c RunnerConfig) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: %s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalid))
	}

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		bad("board", "size must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		bad("player", "size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	}
	if c.Player.Height > c.Board.Height {
		bad("player.height", "%d exceeds board height %d", c.Player.Height, c.Board.Height)
	}
	if c.Physics.Gravity <= 0 {
		bad("physics.gravity", "must be positive, got %d", c.Physics.Gravity)
	}
	if c.Physics.JumpVelocity >= 0 {
		bad("physics.jump_velocity", "must be negative (upward), got %d", c.Physics.JumpVelocity)
	}
	if c.Timing.TickRate < 1 {
		bad("timing.tick_rate", "must be at least 1, got %d", c.Timing.TickRate)
	}
	if c.Timing.SpawnIntervalMS < 1 {
		bad("timing.spawn_interval_ms", "must be at least 1, got %d", c.Timing.SpawnIntervalMS)
	}

	o := c.Obstacles
	if o.HistoryCap < 1 {
		bad("obstacles.history_cap", "must be at least 1, got %d", o.HistoryCap)
	}
	if o.MediumAbove < 0 || o.MediumAbove >= 1 {
		bad("obstacles.medium_above", "must be in [0,1), got %v", o.MediumAbove)
	}
	if o.LargeAbove < 0 || o.LargeAbove >= 1 {
		bad("obstacles.large_above", "must be in [0,1), got %v", o.LargeAbove)
	}
	if o.MediumAbove > o.LargeAbove {
		bad("obstacles", "medium_above %v is greater than large_above %v", o.MediumAbove, o.LargeAbove)
	}
	sizes := []struct {
		name string
		size Size
	}{{"small", o.Small}, {"medium", o.Medium}, {"large", o.Large}}
	for _, s := range sizes {
		if s.size.Width <= 0 || s.size.Height <= 0 {
			bad("obstacles."+s.name, "size must be positive, got %dx%d", s.size.Width, s.size.Height)
		}
		if s.size.Height > c.Board.Height {
			bad("obstacles."+s.name+".height", "%d exceeds board height %d", s.size.Height, c.Board.Height)
		}
	}

	return errors.Join(errs...)
}
