package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// Options configures a Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Sheet    sprites.Sheet
	Renderer FrameRenderer // Defaults to a SheetRenderer over Sheet
	Notice   string        // Diagnostic shown on the status line, e.g. a sprite load failure
	Logger   *log.Logger
}

// Model is the Bubble Tea model driving a dino.Session.
// The simulation and spawn clocks run while the session is playing and
// stop together on game over; a restart starts both again.
type Model struct {
	session  *dino.Session
	screen   *core.Screen
	renderer FrameRenderer
	tick     *Clock
	spawn    *Clock
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	notice   string
	runtime  core.RuntimeConfig
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *dino.Session, opts Options) Model {
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewSheetRenderer(opts.Sheet)
	}

	timing := session.Config().Timing
	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		session:  session,
		screen:   core.NewScreen(opts.Runtime.ScreenW, playfieldHeight(opts.Runtime.ScreenH)),
		renderer: opts.Renderer,
		tick:     NewClock(ClockTick, timing.TickInterval()),
		spawn:    NewClock(ClockSpawn, timing.SpawnInterval()),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   opts.Logger,
		notice:   opts.Notice,
		runtime:  opts.Runtime,
	}
}

// playfieldHeight leaves the last terminal row for the status line.
func playfieldHeight(screenH int) int {
	return core.Max(screenH-1, 0)
}

// Init starts both clocks.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "tick", m.tick.Interval(), "spawn", m.spawn.Interval())
	return m.startClocks()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ClockMsg:
		switch msg.ID {
		case ClockTick:
			return m.handleTick(msg)
		case ClockSpawn:
			return m.handleSpawn(msg)
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case core.ActionJump:
		switch m.session.Press() {
		case dino.PressRestarted:
			m.logger.Info("restart", "high_score", m.session.HighScore())
			return m, m.startClocks()
		case dino.PressJumped:
			m.logger.Debug("jump", "score", m.session.Score())
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The logical board is fixed, so the session is left untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and stops both clocks on game over.
func (m Model) handleTick(msg ClockMsg) (tea.Model, tea.Cmd) {
	if !m.tick.Accept(msg) {
		return m, nil
	}

	result := m.session.Tick()
	if !result.Running {
		m.stopClocks()
		m.logger.Info("game over", "score", result.Score, "high_score", m.session.HighScore())
		return m, nil
	}

	return m, m.tick.Next()
}

// handleSpawn adds an obstacle.
func (m Model) handleSpawn(msg ClockMsg) (tea.Model, tea.Cmd) {
	if !m.spawn.Accept(msg) {
		return m, nil
	}

	if o, ok := m.session.Spawn(); ok {
		m.logger.Debug("spawn", "size", o.Size, "x", o.Rect.X, "live", len(m.session.Obstacles()))
	}

	return m, m.spawn.Next()
}

func (m Model) startClocks() tea.Cmd {
	return tea.Batch(m.tick.Start(), m.spawn.Start())
}

func (m Model) stopClocks() {
	m.tick.Stop()
	m.spawn.Stop()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.renderer.Render(m.screen, m.session.Frame())

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".dino-runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dino_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.session.Frame())

	status := m.help.View(m.keys)
	if m.notice != "" {
		status = noticeStyle.Render(m.notice) + "  " + status
	}

	return RenderScreen(m.screen) + "\n" + status
}

// Run starts the Bubble Tea program for session.
func Run(session *dino.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
