// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// stdout is where user-facing results are printed. Tests swap it.
var stdout io.Writer = os.Stdout

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level and caller reporting, and forces
	// timestamps on.
	Verbose bool

	// Timestamps toggles timestamps. Nil means on.
	Timestamps *bool

	// Writer receives log lines. Nil means stderr.
	Writer io.Writer
}

func (c LogConfig) timestamps() bool {
	return c.Verbose || c.Timestamps == nil || *c.Timestamps
}

// SetupLogging replaces the package logger according to cfg.
func SetupLogging(cfg LogConfig) {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      time.TimeOnly,
	})
}

// ProjectLogger returns a child logger that prefixes every line with the
// project name. It inherits the level of the package logger.
func ProjectLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(name))
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug, Info, Warn and Error log through the package logger.
func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any) { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any) { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }

// Print writes msg to stdout as is.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println writes msg and a newline to stdout.
func Println(msg string) {
	Print(msg + "\n")
}
