// Package logging configures the process-wide logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"metamerge/internal/config"
)

// Setup installs the default logger described by cfg. When a log file is
// configured, output is teed to stderr and a rotating file; the returned
// closer releases the file and is a no-op otherwise.
func Setup(cfg config.LogConfig, prefix string) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if f := cfg.File; f != nil {
		rotating := &lumberjack.Logger{
			Filename:   f.Path,
			MaxSize:    f.MaxSizeMB,
			MaxBackups: f.MaxBackups,
			MaxAge:     f.MaxAgeDays,
			Compress:   f.Compress,
		}
		out = io.MultiWriter(os.Stderr, rotating)
		closer = rotating
	}

	log.SetDefault(New(out, level, prefix))
	return closer, nil
}

// New creates a logger writing to w
func New(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
