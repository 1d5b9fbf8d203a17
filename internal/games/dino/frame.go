package dino

import (
	"strconv"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Frame is a read-only snapshot of everything a renderer needs.
type Frame struct {
	Board     core.Rect
	GroundY   int // Resting top of the player; the floor is Board.Bottom()
	Player    Entity
	Obstacles []Entity
	Score     int
	HighScore int
	GameOver  bool
}

// Frame captures the current state for rendering.
func (s *Session) Frame() Frame {
	obstacles := make([]Entity, 0, s.obstacles.Len())
	for i := 0; i < s.obstacles.Len(); i++ {
		obstacles = append(obstacles, s.obstacles.At(i).entity())
	}
	return Frame{
		Board:     core.NewRect(0, 0, s.cfg.Board.Width, s.cfg.Board.Height),
		GroundY:   s.player.GroundY,
		Player:    s.player.entity(),
		Obstacles: obstacles,
		Score:     s.score,
		HighScore: s.highScore,
		GameOver:  !s.running,
	}
}

// Overlay returns the score text lines, top to bottom.
func (f Frame) Overlay() []string {
	if f.GameOver {
		return []string{
			"Game Over: " + strconv.Itoa(f.Score),
			"High Score: " + strconv.Itoa(f.HighScore),
		}
	}
	return []string{strconv.Itoa(f.Score)}
}
