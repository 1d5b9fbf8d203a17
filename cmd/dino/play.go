package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump (restart after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  dino play
  dino play --seed 7 --fps 30
  dino play --config ./my-runner.yaml --log-file dino.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// overrides are the flag values that replace config fields when set.
type overrides struct {
	fps            int
	evictOffscreen bool
}

func (o overrides) apply(cfg config.RunnerConfig) (config.RunnerConfig, error) {
	if o.fps > 0 {
		cfg.Timing.TickRate = o.fps
	}
	if o.evictOffscreen {
		cfg.Obstacles.EvictOffscreen = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadRunnerConfig resolves the runner config from the search path and flags.
func loadRunnerConfig() (config.RunnerConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	cfg, err = overrides{fps: flagFPS, evictOffscreen: flagEvictOffscreen}.apply(cfg)
	return cfg, source, err
}

// newLogger writes to path, or discards everything when path is empty.
// The returned closer must be called on exit.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
		Level:           lvl,
	})
	return logger, closer, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, source, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "tick_rate", cfg.Timing.TickRate)

	var notice string
	sheet, err := sprites.LoadOrPlaceholder(flagSprites)
	if err != nil {
		logger.Warn("using placeholder sprites", "err", err)
		notice = err.Error()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seed", "value", seed)

	session := dino.New(cfg, seed)

	if err := tui.Run(session, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     seed,
		},
		Sheet:  sheet,
		Notice: notice,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("exit", "high_score", session.HighScore())
	return nil
}
