package dino

import (
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

// VisualState selects the player's sprite.
type VisualState int

const (
	Running VisualState = iota
	Jumping
	Dead
)

// String returns a human-readable name for the state.
func (v VisualState) String() string {
	switch v {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// SizeClass is the obstacle size drawn by the spawner.
type SizeClass int

const (
	Small SizeClass = iota
	Medium
	Large
)

// String returns a human-readable name for the size class.
func (s SizeClass) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// Kind tags what an Entity represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
)

// Player is the jumping character.
// Rect.Y never exceeds GroundY; Rect.Y == GroundY means grounded.
type Player struct {
	Rect      core.Rect
	VelocityY int
	GroundY   int
	State     VisualState
}

// Grounded reports whether the player rests on the ground.
func (p Player) Grounded() bool {
	return p.Rect.Y == p.GroundY
}

// Obstacle is a cactus scrolling toward the player.
type Obstacle struct {
	Rect core.Rect
	Size SizeClass
}

// Entity is the drawable form of either a player or an obstacle.
// State is meaningful for KindPlayer, Size for KindObstacle.
type Entity struct {
	Kind   Kind
	Rect   core.Rect
	Sprite sprites.ID
	State  VisualState
	Size   SizeClass
}

func (p Player) entity() Entity {
	return Entity{
		Kind:   KindPlayer,
		Rect:   p.Rect,
		Sprite: playerSprite(p.State),
		State:  p.State,
	}
}

func (o Obstacle) entity() Entity {
	return Entity{
		Kind:   KindObstacle,
		Rect:   o.Rect,
		Sprite: obstacleSprite(o.Size),
		Size:   o.Size,
	}
}

func playerSprite(v VisualState) sprites.ID {
	switch v {
	case Jumping:
		return sprites.DinoJump
	case Dead:
		return sprites.DinoDead
	default:
		return sprites.DinoRun
	}
}

func obstacleSprite(s SizeClass) sprites.ID {
	switch s {
	case Medium:
		return sprites.CactusMedium
	case Large:
		return sprites.CactusLarge
	default:
		return sprites.CactusSmall
	}
}
