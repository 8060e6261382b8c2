package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration snake would run with, after applying the
config file search order and the --fps and --seed flags.

Search order:
  --config <path>
  ~/.snake/config.yaml
  ./configs/snake.yaml
  built-in defaults

Examples:
  snake config
  snake config --fps 20 > ./configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
	return nil
}

// loadConfig loads the config file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, string, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("config: %w", err)
	}
	return cfg, source, nil
}

// loadRuntime is loadConfig converted to the game's runtime settings.
func loadRuntime(cmd *cobra.Command) (core.RuntimeConfig, string, error) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return core.RuntimeConfig{}, "", err
	}
	rc, err := cfg.Runtime()
	if err != nil {
		return core.RuntimeConfig{}, "", fmt.Errorf("config: %w", err)
	}
	return rc, source, nil
}
