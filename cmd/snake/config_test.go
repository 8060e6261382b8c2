package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 12\nseed: 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runRoot(t, "config", "--config", path, "--fps", "20")
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	if !strings.HasPrefix(out, "# source: "+path) {
		t.Errorf("output should start with the source comment, got %q", out)
	}

	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if cfg.TickRate != 20 {
		t.Errorf("TickRate = %d, expected the --fps override 20", cfg.TickRate)
	}
	if cfg.Seed != 5 {
		t.Errorf("Seed = %d, expected 5 from the file", cfg.Seed)
	}

	if _, err := runRoot(t, "config", "--config", path, "--fps", "0"); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("--fps 0 error = %v, expected ErrInvalid", err)
	}
}
