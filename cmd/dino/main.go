// dino is the Chrome-style endless runner, played in the terminal.
//
// Usage:
//
//	dino                     - Play (same as "dino play")
//	dino play                - Play
//	dino config              - Print the effective runner config as YAML
//
// Global flags:
//
//	--fps <rate>          - Simulation tick rate (default: from config, 60)
//	--seed <value>        - RNG seed for reproducible obstacle sizes
//	--config <path>       - Custom runner config YAML
//	--sprites <path>      - Custom sprite sheet YAML
//	--evict-offscreen     - Drop obstacles that scrolled past the left edge
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS            int
	flagSeed           int64
	flagConfig         string
	flagSprites        string
	flagEvictOffscreen bool
	flagLogFile        string
	flagLogLevel       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump over cacti in your terminal",
	Long: `Dino Runner is an endless runner: the dinosaur keeps running,
cacti scroll in from the right, and you jump over them for as long as you can.

Available commands:
  play     - Start a run (default)
  config   - Print the effective config

Examples:
  dino
  dino --seed 42
  dino play --sprites ./my-sprites.yaml
  dino config --config ./fast.yaml > runner.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().BoolVar(&flagEvictOffscreen, "evict-offscreen", false, "Evict obstacles once they leave the board")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
