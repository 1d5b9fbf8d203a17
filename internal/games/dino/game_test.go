package dino

import (
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

// newTestSession returns a session whose spawner always draws a small cactus.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewWithSource(config.DefaultRunnerConfig(), &seqSource{vals: []float64{0.1}})
}

// runToGameOver spawns one small cactus and ticks until it hits the grounded player.
func runToGameOver(t *testing.T, s *Session) TickResult {
	t.Helper()
	if _, ok := s.Spawn(); !ok {
		t.Fatal("Spawn() should succeed while running")
	}
	for i := 0; i < 200; i++ {
		res := s.Tick()
		if !res.Running {
			return res
		}
	}
	t.Fatal("game should have ended within 200 ticks")
	return TickResult{}
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t)

	if !s.Running() {
		t.Error("new session should be running")
	}
	if s.Score() != 0 || s.HighScore() != 0 {
		t.Errorf("score/high = %d/%d, expected 0/0", s.Score(), s.HighScore())
	}
	p := s.Player()
	if !p.Grounded() || p.GroundY != 156 || p.Rect.Y != 156 {
		t.Errorf("player should rest at 156, got %+v", p)
	}
	if p.State != Running {
		t.Errorf("player state = %v, expected running", p.State)
	}
	if len(s.Obstacles()) != 0 {
		t.Error("new session should have no obstacles")
	}
}

func TestScoreIncrementsEveryTick(t *testing.T) {
	s := newTestSession(t)

	const n = 250
	for i := 0; i < n; i++ {
		s.Tick()
	}
	if s.Score() != n {
		t.Errorf("Score() = %d after %d ticks, expected %d", s.Score(), n, n)
	}
	if !s.Player().Grounded() {
		t.Error("player should stay grounded without input")
	}
}

func TestJumpArcLandsExactlyOnGround(t *testing.T) {
	s := newTestSession(t)
	groundY := s.Player().GroundY

	if !s.Jump() {
		t.Fatal("Jump() should succeed when grounded")
	}
	if p := s.Player(); p.VelocityY != -17 || p.State != Jumping {
		t.Fatalf("after Jump: vy=%d state=%v, expected -17 jumping", p.VelocityY, p.State)
	}

	apex := groundY
	landed := -1
	for i := 1; i <= 60; i++ {
		s.Tick()
		p := s.Player()
		if p.Rect.Y > groundY {
			t.Fatalf("tick %d: y = %d is below ground %d", i, p.Rect.Y, groundY)
		}
		apex = min(apex, p.Rect.Y)
		if p.Grounded() && p.VelocityY == 0 {
			landed = i
			break
		}
	}

	if landed < 0 {
		t.Fatal("player never landed")
	}
	if landed != 34 {
		t.Errorf("landed on tick %d, expected 34", landed)
	}
	if apex != 20 {
		t.Errorf("apex y = %d, expected 20", apex)
	}
	if s.Player().State != Running {
		t.Errorf("state after landing = %v, expected running", s.Player().State)
	}
}

func TestNoDoubleJump(t *testing.T) {
	s := newTestSession(t)
	s.Jump()
	s.Tick()

	if s.Jump() {
		t.Error("Jump() should fail while airborne")
	}
	if s.Player().VelocityY != -16 {
		t.Errorf("VelocityY = %d, expected -16 (unchanged by the failed jump)", s.Player().VelocityY)
	}
}

func TestCollisionEndsGame(t *testing.T) {
	s := newTestSession(t)

	res := runToGameOver(t, s)

	// Small cactus from x=700 at 12/tick first overlaps x<138 on tick 47.
	if !res.Collided {
		t.Error("final tick should report the collision")
	}
	if res.Score != 47 || s.Score() != 47 {
		t.Errorf("score = %d (result %d), expected 47 including the collision tick", s.Score(), res.Score)
	}
	if s.HighScore() != 46 {
		t.Errorf("HighScore() = %d, expected the pre-increment score 46", s.HighScore())
	}
	if s.Player().State != Dead {
		t.Errorf("player state = %v, expected dead", s.Player().State)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	s := newTestSession(t)
	runToGameOver(t, s)

	score, high, obstacles := s.Score(), s.HighScore(), s.Obstacles()

	res := s.Tick()
	if res.Running || res.Collided {
		t.Errorf("Tick() after game over = %+v, expected no-op", res)
	}
	if _, ok := s.Spawn(); ok {
		t.Error("Spawn() should be a no-op after game over")
	}
	if s.Jump() {
		t.Error("Jump() should not fire after game over")
	}

	if s.Score() != score || s.HighScore() != high {
		t.Errorf("score/high changed to %d/%d", s.Score(), s.HighScore())
	}
	if got := s.Obstacles(); len(got) != len(obstacles) || got[0].Rect != obstacles[0].Rect {
		t.Errorf("obstacles changed after game over: %+v", got)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	s := newTestSession(t)
	runToGameOver(t, s)
	first := s.HighScore()

	// Second run dies after 6 ticks.
	s.Restart()
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	s.obstacles.Push(Obstacle{Rect: s.Player().Rect, Size: Small})
	s.Tick()

	if s.Running() {
		t.Fatal("overlapping obstacle should end the run")
	}
	if s.HighScore() != first {
		t.Errorf("HighScore() = %d, expected it to stay at %d", s.HighScore(), first)
	}
}

func TestRestartResetsRunButKeepsHighScore(t *testing.T) {
	s := newTestSession(t)

	if s.Restart() {
		t.Error("Restart() should be a no-op while running")
	}

	runToGameOver(t, s)
	high := s.HighScore()

	if !s.Restart() {
		t.Fatal("Restart() should succeed after game over")
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacles = %d, expected none", len(s.Obstacles()))
	}
	if !s.Running() {
		t.Error("session should be running after restart")
	}
	p := s.Player()
	if !p.Grounded() || p.VelocityY != 0 || p.State != Running {
		t.Errorf("player after restart = %+v, expected grounded and running", p)
	}
	if s.HighScore() != high {
		t.Errorf("HighScore() = %d, expected %d", s.HighScore(), high)
	}
}

func TestPressDispatch(t *testing.T) {
	s := newTestSession(t)

	if got := s.Press(); got != PressJumped {
		t.Errorf("Press() grounded = %v, expected jumped", got)
	}
	s.Tick()
	if got := s.Press(); got != PressIgnored {
		t.Errorf("Press() airborne = %v, expected ignored", got)
	}

	s2 := newTestSession(t)
	runToGameOver(t, s2)
	if got := s2.Press(); got != PressRestarted {
		t.Errorf("Press() after game over = %v, expected restarted", got)
	}
	if !s2.Running() || s2.Player().VelocityY != 0 {
		t.Error("restart via Press() should not also start a jump")
	}
}

func TestJumpClearsSmallCactus(t *testing.T) {
	s := newTestSession(t)
	s.Spawn()

	for i := 1; i <= 80; i++ {
		if i == 36 {
			if !s.Jump() {
				t.Fatal("Jump() should succeed on the ground")
			}
		}
		if res := s.Tick(); !res.Running {
			t.Fatalf("collided on tick %d", i)
		}
	}
	if s.Score() != 80 {
		t.Errorf("Score() = %d, expected 80", s.Score())
	}
}

func TestSpawnFIFOCapThroughSession(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 15; i++ {
		if _, ok := s.Spawn(); !ok {
			t.Fatalf("spawn %d failed", i)
		}
		s.Tick()
	}

	obstacles := s.Obstacles()
	if len(obstacles) != 10 {
		t.Fatalf("len(Obstacles()) = %d, expected 10", len(obstacles))
	}
	// The k-th spawn has seen 16-k ticks; the survivors are spawns 6..15.
	for j, o := range obstacles {
		k := j + 6
		if want := 700 - 12*(16-k); o.Rect.X != want {
			t.Errorf("obstacle %d: X = %d, expected %d (spawn #%d)", j, o.Rect.X, want, k)
		}
	}
}

func TestOffscreenObstaclesLingerByDefault(t *testing.T) {
	s := newTestSession(t)
	s.obstacles.Push(Obstacle{Rect: s.spawner.Spawn().Rect.Translate(-800, 0), Size: Small})

	s.Tick()
	if len(s.Obstacles()) != 1 {
		t.Error("off-screen obstacle should keep its slot unless eviction is enabled")
	}
}

func TestEvictOffscreenOption(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.EvictOffscreen = true
	s := NewWithSource(cfg, &seqSource{vals: []float64{0.1}})

	s.obstacles.Push(Obstacle{Rect: s.spawner.Spawn().Rect.Translate(-700, 0), Size: Small}) // x=0 -> -12 after tick, right edge 22
	s.obstacles.Push(Obstacle{Rect: s.spawner.Spawn().Rect.Translate(-720, 0), Size: Small}) // x=-20 -> -32, right edge 2
	s.obstacles.Push(Obstacle{Rect: s.spawner.Spawn().Rect.Translate(-740, 0), Size: Small}) // x=-40 -> -52, right edge -18

	s.Tick()

	if got := len(s.Obstacles()); got != 2 {
		t.Errorf("len(Obstacles()) = %d, expected 2 after evicting the fully hidden one", got)
	}
}

func TestSeedDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	a := New(cfg, 12345)
	b := New(cfg, 12345)

	for i := 0; i < 50; i++ {
		oa, _ := a.Spawn()
		ob, _ := b.Spawn()
		if oa != ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
		a.Jump()
		b.Jump()
		a.Tick()
		b.Tick()
	}
	if a.Score() != b.Score() || a.Running() != b.Running() {
		t.Error("identical seeds and inputs should produce identical runs")
	}
}

func TestFrameSnapshot(t *testing.T) {
	s := NewWithSource(config.DefaultRunnerConfig(), &seqSource{vals: []float64{0.1, 0.8, 0.95}})
	s.Spawn()
	s.Spawn()
	s.Spawn()
	s.Jump()
	s.Tick()

	f := s.Frame()
	if f.Board.W != 750 || f.Board.H != 250 {
		t.Errorf("board = %+v, expected 750x250", f.Board)
	}
	if f.Player.Kind != KindPlayer || f.Player.Sprite != sprites.DinoJump || f.Player.State != Jumping {
		t.Errorf("player entity = %+v, expected jumping sprite", f.Player)
	}
	wantSprites := []sprites.ID{sprites.CactusSmall, sprites.CactusMedium, sprites.CactusLarge}
	if len(f.Obstacles) != 3 {
		t.Fatalf("len(f.Obstacles) = %d, expected 3", len(f.Obstacles))
	}
	for i, e := range f.Obstacles {
		if e.Kind != KindObstacle || e.Sprite != wantSprites[i] {
			t.Errorf("obstacle %d = %+v, expected sprite %q", i, e, wantSprites[i])
		}
	}
	if f.GameOver {
		t.Error("frame should not be game over")
	}
	if got := f.Overlay(); len(got) != 1 || got[0] != "1" {
		t.Errorf("Overlay() = %q, expected [\"1\"]", got)
	}

	// Mutating the frame must not touch the session
	f.Obstacles[0].Rect.X = -1
	if s.Obstacles()[0].Rect.X == -1 {
		t.Error("frame should be a snapshot")
	}
}

func TestFrameOverlayGameOver(t *testing.T) {
	s := newTestSession(t)
	runToGameOver(t, s)

	f := s.Frame()
	if !f.GameOver {
		t.Fatal("frame should report game over")
	}
	if f.Player.Sprite != sprites.DinoDead {
		t.Errorf("player sprite = %q, expected %q", f.Player.Sprite, sprites.DinoDead)
	}
	got := f.Overlay()
	if len(got) != 2 || got[0] != "Game Over: 47" || got[1] != "High Score: 46" {
		t.Errorf("Overlay() = %q", got)
	}
}
