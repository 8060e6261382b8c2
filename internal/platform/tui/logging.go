package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger creates a timestamped logger writing to w.
func NewLogger(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// OpenLogFile returns a size-rotated log file writer for path.
// The file is created on first write.
func OpenLogFile(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   false,
	}
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (log.Level, error) {
	level, err := log.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("tui: log level: %w", err)
	}
	return level, nil
}
