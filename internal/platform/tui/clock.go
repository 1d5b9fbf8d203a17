// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, the simulation and spawn clocks,
// input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockID identifies one of the periodic clocks.
type ClockID int

const (
	ClockTick  ClockID = iota // Simulation step
	ClockSpawn                // Obstacle spawn
)

// String returns a human-readable name for the clock.
func (id ClockID) String() string {
	switch id {
	case ClockTick:
		return "tick"
	case ClockSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// ClockMsg is delivered each time a clock fires.
type ClockMsg struct {
	ID  ClockID
	Gen int
	At  time.Time
}

// Clock is a start/stoppable periodic timer built on tea.Tick.
// Each firing schedules only the next one, so the chain ends as soon as a
// message is rejected. Every Start and Stop bumps the generation; messages
// already in flight from an older generation are rejected by Accept, which
// makes Stop effective before the next firing is handled.
type Clock struct {
	id       ClockID
	interval time.Duration
	gen      int
	running  bool
}

// NewClock creates a stopped clock.
func NewClock(id ClockID, interval time.Duration) *Clock {
	return &Clock{id: id, interval: interval}
}

// Start begins firing and returns the command that schedules the first message.
// Starting a running clock restarts its period.
func (c *Clock) Start() tea.Cmd {
	c.gen++
	c.running = true
	return c.schedule()
}

// Stop halts the clock. Messages already scheduled will be rejected.
func (c *Clock) Stop() {
	c.gen++
	c.running = false
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	return c.running
}

// Interval returns the clock period.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Accept reports whether msg is a current firing of this clock.
func (c *Clock) Accept(msg ClockMsg) bool {
	return c.running && msg.ID == c.id && msg.Gen == c.gen
}

// Next schedules the following firing, or returns nil if the clock is stopped.
func (c *Clock) Next() tea.Cmd {
	if !c.running {
		return nil
	}
	return c.schedule()
}

func (c *Clock) schedule() tea.Cmd {
	id, gen := c.id, c.gen
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return ClockMsg{ID: id, Gen: gen, At: t}
	})
}
