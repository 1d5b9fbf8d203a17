// Package dino implements a Chrome Dino-style endless runner.
// The player jumps over cacti that scroll toward it; the run ends on contact
// and restarts on the next press of the primary key.
//
// Session holds the whole game state and is driven from outside: one clock
// calls Tick at the simulation rate, a second clock calls Spawn, and input
// calls Press. All calls must come from a single goroutine.
package dino

import (
	"math/rand"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Session is one player's game: entities, score, and running state.
// The high score lives here too and survives Restart.
type Session struct {
	cfg       config.RunnerConfig
	player    Player
	obstacles *History
	spawner   *Spawner
	score     int
	highScore int
	running   bool
}

// TickResult reports the outcome of a single tick.
// When Running is false the driver must stop both clocks.
type TickResult struct {
	Collided bool
	Running  bool
	Score    int
}

// PressResult reports what the primary action did.
type PressResult int

const (
	PressIgnored PressResult = iota
	PressJumped
	PressRestarted
)

// String returns a human-readable name for the result.
func (r PressResult) String() string {
	switch r {
	case PressJumped:
		return "jumped"
	case PressRestarted:
		return "restarted"
	default:
		return "ignored"
	}
}

// New creates a running session whose obstacle sizes are drawn from a seeded RNG.
func New(cfg config.RunnerConfig, seed int64) *Session {
	return NewWithSource(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithSource creates a running session drawing obstacle sizes from src.
func NewWithSource(cfg config.RunnerConfig, src Source) *Session {
	s := &Session{
		cfg:       cfg,
		obstacles: NewHistory(cfg.Obstacles.HistoryCap),
		spawner:   NewSpawner(cfg, src),
	}
	s.reset()
	return s
}

// reset puts the session into a fresh Playing state, keeping the high score.
func (s *Session) reset() {
	groundY := s.cfg.GroundY()
	s.player = Player{
		Rect:    core.NewRect(s.cfg.Player.X, groundY, s.cfg.Player.Width, s.cfg.Player.Height),
		GroundY: groundY,
		State:   Running,
	}
	s.obstacles.Clear()
	s.score = 0
	s.running = true
}

// Tick advances the simulation by one step: gravity, landing, obstacle
// movement, collision, and score. The score increments on every tick,
// including the one that ends the game.
// Calling Tick after the game is over does nothing.
func (s *Session) Tick() TickResult {
	if !s.running {
		return TickResult{Running: false, Score: s.score}
	}

	p := &s.player
	p.VelocityY += s.cfg.Physics.Gravity
	p.Rect.Y += p.VelocityY
	if p.Rect.Y > p.GroundY {
		p.Rect.Y = p.GroundY
		p.VelocityY = 0
		p.State = Running
	}

	s.obstacles.Advance(s.cfg.Physics.ObstacleVelocity)

	collided := s.obstacles.Collides(p.Rect)
	if collided {
		s.running = false
		p.State = Dead
		s.highScore = core.Max(s.highScore, s.score)
	}

	if s.cfg.Obstacles.EvictOffscreen {
		s.obstacles.EvictOffscreen()
	}

	s.score++

	return TickResult{Collided: collided, Running: s.running, Score: s.score}
}

// Jump launches the player if it is grounded and the game is running.
// Returns whether a jump started. There is no double jump.
func (s *Session) Jump() bool {
	if !s.running || !s.player.Grounded() {
		return false
	}
	s.player.VelocityY = s.cfg.Physics.JumpVelocity
	s.player.State = Jumping
	return true
}

// Restart starts a new run after a game over. The high score is kept.
// Returns false, doing nothing, while a run is in progress.
func (s *Session) Restart() bool {
	if s.running {
		return false
	}
	s.reset()
	return true
}

// Press handles the primary action: jump while playing, restart when over.
func (s *Session) Press() PressResult {
	if !s.running {
		s.Restart()
		return PressRestarted
	}
	if s.Jump() {
		return PressJumped
	}
	return PressIgnored
}

// Spawn adds a new obstacle while the game is running.
// Returns the obstacle and true, or false if the game is over.
func (s *Session) Spawn() (Obstacle, bool) {
	if !s.running {
		return Obstacle{}, false
	}
	o := s.spawner.Spawn()
	s.obstacles.Push(o)
	return o, true
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Running reports whether a run is in progress.
func (s *Session) Running() bool {
	return s.running
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns a copy of the live obstacles, oldest first.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles.All()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
