package dino

import (
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// seqSource replays fixed draws, repeating the last one.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

func TestSpawnerClassBoundaries(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), &seqSource{vals: []float64{0}})

	tests := []struct {
		r        float64
		expected SizeClass
	}{
		{0.0, Small},
		{0.5, Small},
		{0.70, Small}, // lower bound of Medium is exclusive
		{0.7000001, Medium},
		{0.85, Medium},
		{0.90, Medium}, // lower bound of Large is exclusive
		{0.9000001, Large},
		{0.999, Large},
	}

	for _, tc := range tests {
		if got := sp.ClassFor(tc.r); got != tc.expected {
			t.Errorf("ClassFor(%v) = %v, expected %v", tc.r, got, tc.expected)
		}
	}
}

func TestSpawnerPlacement(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sp := NewSpawner(cfg, &seqSource{vals: []float64{0.1, 0.8, 0.95}})

	expected := []struct {
		size SizeClass
		w    int
	}{
		{Small, 34},
		{Medium, 69},
		{Large, 102},
	}

	for i, e := range expected {
		o := sp.Spawn()
		if o.Size != e.size {
			t.Errorf("spawn %d: size = %v, expected %v", i, o.Size, e.size)
		}
		want := core.NewRect(700, 180, e.w, 70)
		if o.Rect != want {
			t.Errorf("spawn %d: rect = %+v, expected %+v", i, o.Rect, want)
		}
		if o.Rect.Bottom() != cfg.Board.Height {
			t.Errorf("spawn %d: bottom = %d, expected to rest on %d", i, o.Rect.Bottom(), cfg.Board.Height)
		}
	}
}

func TestHistoryFIFOCap(t *testing.T) {
	h := NewHistory(10)

	for i := 1; i <= 15; i++ {
		evicted := h.Push(Obstacle{Rect: core.NewRect(i, 0, 1, 1)})
		if i <= 10 && evicted != 0 {
			t.Errorf("push %d: evicted %d, expected 0", i, evicted)
		}
		if i > 10 && evicted != 1 {
			t.Errorf("push %d: evicted %d, expected 1", i, evicted)
		}
	}

	if h.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", h.Len())
	}
	for j := 0; j < 10; j++ {
		if got := h.At(j).Rect.X; got != j+6 {
			t.Errorf("At(%d).X = %d, expected %d", j, got, j+6)
		}
	}
}

func TestHistoryEvictsByInsertionNotPosition(t *testing.T) {
	h := NewHistory(2)
	h.Push(Obstacle{Rect: core.NewRect(-500, 0, 10, 10)}) // oldest, so evicted first
	h.Push(Obstacle{Rect: core.NewRect(900, 0, 10, 10)})
	h.Push(Obstacle{Rect: core.NewRect(100, 0, 10, 10)})

	all := h.All()
	if len(all) != 2 || all[0].Rect.X != 900 || all[1].Rect.X != 100 {
		t.Errorf("All() = %+v, expected X 900 then 100", all)
	}
}

func TestHistoryAllIsACopy(t *testing.T) {
	h := NewHistory(3)
	h.Push(Obstacle{Rect: core.NewRect(1, 0, 1, 1)})

	all := h.All()
	all[0].Rect.X = 99
	if h.At(0).Rect.X != 1 {
		t.Error("mutating All() result should not affect the history")
	}
}

func TestHistoryAdvanceAndEvictOffscreen(t *testing.T) {
	h := NewHistory(10)
	h.Push(Obstacle{Rect: core.NewRect(10, 0, 34, 70)})
	h.Push(Obstacle{Rect: core.NewRect(300, 0, 34, 70)})

	h.Advance(-12)
	if h.At(0).Rect.X != -2 || h.At(1).Rect.X != 288 {
		t.Fatalf("Advance(-12) gave X %d, %d", h.At(0).Rect.X, h.At(1).Rect.X)
	}

	// Right edge at 32: still partly visible
	if n := h.EvictOffscreen(); n != 0 {
		t.Errorf("EvictOffscreen() removed %d, expected 0", n)
	}

	h.Advance(-33) // right edge of the first at -1
	if n := h.EvictOffscreen(); n != 1 {
		t.Errorf("EvictOffscreen() removed %d, expected 1", n)
	}
	if h.Len() != 1 || h.At(0).Rect.X != 255 {
		t.Errorf("remaining history = %+v", h.All())
	}
}

func TestHistoryCollides(t *testing.T) {
	h := NewHistory(10)
	h.Push(Obstacle{Rect: core.NewRect(138, 180, 34, 70)})

	player := core.NewRect(50, 156, 88, 94)
	if h.Collides(player) {
		t.Error("touching edges should not collide")
	}

	h.Advance(-1)
	if !h.Collides(player) {
		t.Error("one unit of overlap should collide")
	}

	h.Clear()
	if h.Len() != 0 || h.Collides(player) {
		t.Error("Clear() should remove every obstacle")
	}
}
