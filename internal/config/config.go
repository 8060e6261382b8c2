// Package config provides YAML-based configuration loading for the snake
// game: board geometry, tick rate, seed and colour palette.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Tick rate bounds accepted by Validate.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// MinGridCells is the smallest grid width and height Validate accepts. On a
// single-cell axis a move wraps the head back onto itself.
const MinGridCells = 2

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Screen   ScreenConfig `yaml:"screen"`
	TickRate int          `yaml:"tick_rate"`
	Seed     int64        `yaml:"seed"` // 0 = seed from the clock
	Colors   ColorConfig  `yaml:"colors"`
}

// ScreenConfig defines the board size in pixels and the pixel size of one cell.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// ColorConfig holds palette colours as #rrggbb strings.
type ColorConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
	Text       string `yaml:"text"`
}

// Validate checks sizes, tick rate and colours.
func (c SnakeConfig) Validate() error {
	s := c.Screen
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d must be positive", ErrInvalid, s.Width, s.Height)
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d must be positive", ErrInvalid, s.CellSize)
	}
	if gw, gh := s.Width/s.CellSize, s.Height/s.CellSize; gw < MinGridCells || gh < MinGridCells {
		return fmt.Errorf("%w: screen %dx%d with cell_size %d gives a %dx%d grid, need at least %dx%d",
			ErrInvalid, s.Width, s.Height, s.CellSize, gw, gh, MinGridCells, MinGridCells)
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d outside %d..%d", ErrInvalid, c.TickRate, MinTickRate, MaxTickRate)
	}
	_, err := c.Colors.Palette()
	return err
}

// Palette parses the configured colours.
func (c ColorConfig) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"background", c.Background, &p.Background},
		{"border", c.Border, &p.Border},
		{"apple", c.Apple, &p.Apple},
		{"snake", c.Snake, &p.Snake},
		{"text", c.Text, &p.Text},
	}
	for _, f := range fields {
		col, err := core.ParseHexColor(f.value)
		if err != nil {
			return p, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Runtime validates the config and converts it to the immutable settings
// handed to the game loop.
func (c SnakeConfig) Runtime() (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, _ := c.Colors.Palette()
	return core.RuntimeConfig{
		ScreenW:  c.Screen.Width,
		ScreenH:  c.Screen.Height,
		CellSize: c.Screen.CellSize,
		TickRate: c.TickRate,
		Seed:     c.Seed,
		Palette:  palette,
	}, nil
}
