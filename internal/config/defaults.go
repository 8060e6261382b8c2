package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 640x480 board of 20px cells
// ticking 10 times per second.
func Default() SnakeConfig {
	rc := core.DefaultConfig()
	p := rc.Palette
	return SnakeConfig{
		Screen: ScreenConfig{
			Width:    rc.ScreenW,
			Height:   rc.ScreenH,
			CellSize: rc.CellSize,
		},
		TickRate: rc.TickRate,
		Seed:     rc.Seed,
		Colors: ColorConfig{
			Background: p.Background.Hex(),
			Border:     p.Border.Hex(),
			Apple:      p.Apple.Hex(),
			Snake:      p.Snake.Hex(),
			Text:       p.Text.Hex(),
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
