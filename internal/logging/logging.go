// Package logging points the standard logger at stderr and, when configured,
// a size-rotated log file.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/user/diffract_plot_go/internal/config"
)

// Setup configures the standard library logger and returns a closer for the log file.
// The closer is a no-op when no file is configured.
func Setup(cfg config.LoggingConfig, stderr io.Writer) io.Closer {
	if stderr == nil {
		stderr = os.Stderr
	}
	log.SetFlags(log.LstdFlags)

	if cfg.File == "" {
		log.SetOutput(stderr)
		return nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(stderr, rotator))
	return rotator
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
