package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/Borislavv/ownership/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// ConfigureRuntime sets the global logger up for the command: stderr, info level.
func ConfigureRuntime() {
	Configure(os.Stderr, ProfileRuntime, nil)
}

// ConfigureTests sets the global logger up for tests: debug level, no timestamps, no color.
func ConfigureTests(w io.Writer) {
	Configure(w, ProfileTest, nil)
}

// Configure replaces the global zerolog logger. Lifecycle lines never go through
// it, so w is expected to be stderr or a test buffer. cfg may be nil.
func Configure(w io.Writer, profile Profile, cfg *config.Config) {
	level := defaultLevel(profile)
	if cfg != nil {
		if cfg.IsDebugOn() {
			level = zerolog.DebugLevel
		}
		if lvl, ok := ParseLevel(cfg.LogLevel); ok {
			level = lvl
		}
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    profile == ProfileTest,
	}
	if profile == ProfileTest {
		console.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

func defaultLevel(profile Profile) zerolog.Level {
	if profile == ProfileTest {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
