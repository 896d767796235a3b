package output

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

var timestampPrefix = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)

func logInto(t *testing.T, cfg LogConfig) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Writer = &buf
	SetupLogging(cfg)
	t.Cleanup(func() { SetupLogging(LogConfig{}) })
	return &buf
}

func TestSetupLogging_Timestamps(t *testing.T) {
	tests := []struct {
		name string
		cfg  LogConfig
		want bool
	}{
		{"default on", LogConfig{}, true},
		{"disabled", LogConfig{Timestamps: BoolPtr(false)}, false},
		{"verbose forces on", LogConfig{Verbose: true, Timestamps: BoolPtr(false)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := logInto(t, tt.cfg)
			Info("rendered", "path", "setup.py")
			line := strings.TrimSpace(buf.String())
			assert.Contains(t, line, "rendered")
			assert.Equal(t, tt.want, timestampPrefix.MatchString(line), line)
		})
	}
}

func TestSetupLogging_Level(t *testing.T) {
	buf := logInto(t, LogConfig{})
	Debug("hidden")
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.Empty(t, buf.String())

	buf = logInto(t, LogConfig{Verbose: true})
	Debug("shown")
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "shown")
}

func TestProjectLogger(t *testing.T) {
	buf := logInto(t, LogConfig{Verbose: true, Timestamps: BoolPtr(false)})

	pl := ProjectLogger("demo")
	assert.Equal(t, log.DebugLevel, pl.GetLevel())
	pl.Warn("git init failed")
	assert.Contains(t, buf.String(), "demo")
	assert.Contains(t, buf.String(), "git init failed")
}

func TestPrintln(t *testing.T) {
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })

	Println("hello")
	Print("world")
	assert.Equal(t, "hello\nworld", buf.String())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
