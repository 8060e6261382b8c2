package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLogFile string
	flagName    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. The game runs until you quit; running
into the snake's own body starts a new run from the centre.

Controls:
  Arrows / WASD / HJKL  - Steer
  Q / Esc / Ctrl+C      - Quit
  ?                     - More help

Scores of the runs played are shown when you quit. They are kept in
memory only and are gone when the program exits.

Examples:
  snake play
  snake play --fps 15
  snake play --config ./my-snake.yaml
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated); logging is off otherwise")
	cmd.Flags().StringVar(&flagName, "name", defaultPlayerName(), "Player name shown in the run summary")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	warnIfTerminalTooSmall(cmd.ErrOrStderr(), cfg)

	journal, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer journal.Close()

	stats, err := tui.Play(cmd.Context(), tui.PlayOptions{
		Player:  flagName,
		Config:  cfg,
		Journal: journal,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	logger.Info("session stats",
		"ticks", stats.Ticks,
		"apples", stats.ApplesEaten,
		"resets", stats.Resets,
		"mean_step", stats.MeanStep(),
	)

	sum, err := journal.Summary("")
	if err != nil {
		return err
	}
	top, err := journal.TopRuns(10)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.SummaryView(sum, top))
	return nil
}

// playLogger returns the logger for a local game. The game owns the
// terminal, so logs go to --log-file or nowhere.
func playLogger() (*log.Logger, func(), error) {
	level, err := tui.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	if flagLogFile == "" {
		return tui.NewLogger(io.Discard, level, "snake"), func() {}, nil
	}

	w := tui.OpenLogFile(flagLogFile)
	closeLog := func() {
		//nolint:errcheck // Best-effort close on exit
		w.Close()
	}
	return tui.NewLogger(w, level, "snake"), closeLog, nil
}

// warnIfTerminalTooSmall checks the terminal before the game takes it over.
func warnIfTerminalTooSmall(w io.Writer, cfg core.RuntimeConfig) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return
	}

	grid := cfg.Grid()
	boardW, boardH := grid.Width*core.CellColumns, grid.Height
	if width < boardW || height < boardH {
		fmt.Fprintf(w, "Warning: terminal is %dx%d, the board needs %dx%d. Enlarge the window or use a smaller board.\n",
			width, height, boardW, boardH)
	}
}

func defaultPlayerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
