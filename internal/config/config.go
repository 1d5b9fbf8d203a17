// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains all tunable constants of the endless runner.
// Coordinates are in logical board units, not terminal cells.
type RunnerConfig struct {
	Board     BoardConfig    `yaml:"board"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Timing    TimingConfig   `yaml:"timing"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// BoardConfig defines the logical viewport.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's fixed column and hitbox.
// The player rests on the bottom edge of the board.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-tick integration constants.
type PhysicsConfig struct {
	Gravity          int `yaml:"gravity"`           // Added to vertical velocity each tick
	JumpVelocity     int `yaml:"jump_velocity"`     // Vertical velocity set by a jump (negative = up)
	ObstacleVelocity int `yaml:"obstacle_velocity"` // Horizontal obstacle speed (negative = left)
}

// TimingConfig defines the two clock cadences.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`         // Simulation ticks per second
	SpawnIntervalMS int `yaml:"spawn_interval_ms"` // Milliseconds between spawn attempts
}

// ObstacleConfig defines spawn placement, the size distribution, and history bounds.
type ObstacleConfig struct {
	SpawnX         int     `yaml:"spawn_x"`
	HistoryCap     int     `yaml:"history_cap"`
	EvictOffscreen bool    `yaml:"evict_offscreen"` // Drop obstacles once fully left of the board
	MediumAbove    float64 `yaml:"medium_above"`    // r > MediumAbove selects at least Medium
	LargeAbove     float64 `yaml:"large_above"`     // r > LargeAbove selects Large
	Small          Size    `yaml:"small"`
	Medium         Size    `yaml:"medium"`
	Large          Size    `yaml:"large"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GroundY returns the resting top coordinate of the player.
func (c RunnerConfig) GroundY() int {
	return c.Board.Height - c.Player.Height
}
