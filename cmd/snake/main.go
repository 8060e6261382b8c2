// snake is the classic wraparound Snake game for the terminal.
//
// Usage:
//
//	snake                  - Play in this terminal (same as "snake play")
//	snake play             - Play in this terminal
//	snake serve            - Start SSH server for remote play
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--fps <rate>        - Override the tick rate (default: 10)
//	--seed <value>      - Override the RNG seed for reproducible games
//	--log-level <level> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic wraparound snake game in your terminal",
	Long: `Snake is the classic arcade game on a wraparound grid. Steer the
snake to the apples; every apple makes it one cell longer. Running off an
edge brings it back on the opposite side. Running into its own body starts
it over from the centre.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --fps 15
  snake play --seed 42 --log-file snake.log --log-level debug
  snake serve --ssh :2222
  snake config > ~/.snake/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (ticks per second), overrides the config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time), overrides the config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
