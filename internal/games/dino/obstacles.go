package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// History holds live obstacles in insertion order.
// Once more than cap obstacles are pushed, the oldest are evicted first,
// regardless of where they are on the board.
type History struct {
	items []Obstacle
	cap   int
}

// NewHistory creates an empty history bounded to capacity entries.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		items: make([]Obstacle, 0, capacity+1),
		cap:   capacity,
	}
}

// Push appends o and evicts from the front while over capacity.
// Returns the number of evicted obstacles.
func (h *History) Push(o Obstacle) int {
	h.items = append(h.items, o)
	evicted := 0
	for len(h.items) > h.cap {
		copy(h.items, h.items[1:])
		h.items = h.items[:len(h.items)-1]
		evicted++
	}
	return evicted
}

// Len returns the number of live obstacles.
func (h *History) Len() int {
	return len(h.items)
}

// Cap returns the capacity bound.
func (h *History) Cap() int {
	return h.cap
}

// At returns the i-th oldest obstacle.
func (h *History) At(i int) Obstacle {
	return h.items[i]
}

// All returns a copy of the obstacles, oldest first.
func (h *History) All() []Obstacle {
	out := make([]Obstacle, len(h.items))
	copy(out, h.items)
	return out
}

// Clear removes every obstacle.
func (h *History) Clear() {
	h.items = h.items[:0]
}

// Advance moves every obstacle horizontally by dx.
func (h *History) Advance(dx int) {
	for i := range h.items {
		h.items[i].Rect.X += dx
	}
}

// Collides reports whether r intersects any obstacle.
func (h *History) Collides(r core.Rect) bool {
	for _, o := range h.items {
		if r.Intersects(o.Rect) {
			return true
		}
	}
	return false
}

// EvictOffscreen drops obstacles whose right edge is left of x = 0.
// Returns the number removed.
func (h *History) EvictOffscreen() int {
	kept := h.items[:0]
	for _, o := range h.items {
		if o.Rect.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	removed := len(h.items) - len(kept)
	h.items = kept
	return removed
}

// Source supplies uniform random values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Spawner creates obstacles with a randomly drawn size class.
type Spawner struct {
	src    Source
	cfg    config.ObstacleConfig
	floorY int
}

// NewSpawner creates a spawner placing obstacles on the bottom edge of the board.
func NewSpawner(cfg config.RunnerConfig, src Source) *Spawner {
	return &Spawner{
		src:    src,
		cfg:    cfg.Obstacles,
		floorY: cfg.Board.Height,
	}
}

// ClassFor maps a draw r in [0, 1) to a size class.
// Each bracket excludes its lower bound: with the defaults r = 0.90 is Medium
// and r = 0.70 is Small.
func (s *Spawner) ClassFor(r float64) SizeClass {
	switch {
	case r > s.cfg.LargeAbove:
		return Large
	case r > s.cfg.MediumAbove:
		return Medium
	default:
		return Small
	}
}

// Spawn draws a size class and returns a new obstacle at the spawn column,
// resting on the floor.
func (s *Spawner) Spawn() Obstacle {
	class := s.ClassFor(s.src.Float64())
	size := s.size(class)
	return Obstacle{
		Rect: core.NewRect(s.cfg.SpawnX, s.floorY-size.Height, size.Width, size.Height),
		Size: class,
	}
}

func (s *Spawner) size(c SizeClass) config.Size {
	switch c {
	case Large:
		return s.cfg.Large
	case Medium:
		return s.cfg.Medium
	default:
		return s.cfg.Small
	}
}
