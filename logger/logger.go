// Package logger configures the global zerolog logger used by launchutil.
// Library packages log through github.com/rs/zerolog/log; this package only
// decides where that output goes and at which level.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// TimeFormat is the timestamp layout of console output.
const TimeFormat = "2006-01-02 15:04:05"

var currentLevel = INFO

// Setup sends the global logger to w as human readable console output and
// applies level.
func Setup(w io.Writer, level LogLevel, color bool) {
	SetOutput(ConsoleWriter(w, color))
	SetLevel(level)
}

// ConsoleWriter returns the console formatter used by Setup.
func ConsoleWriter(w io.Writer, color bool) zerolog.ConsoleWriter {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: TimeFormat,
	}
}

// SetLevel sets the minimum log level that will be output
func SetLevel(level LogLevel) {
	currentLevel = level
	zerolog.SetGlobalLevel(level.Zerolog())
}

// SetOutput replaces the writer of the global logger, keeping its level
func SetOutput(w io.Writer) {
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// GetLevel returns the current logging level
func GetLevel() LogLevel {
	return currentLevel
}

// ParseLevel accepts the names printed by LogLevel.String, in any case.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return INFO, errors.Errorf("unknown log level %q", s)
	}
}

// Zerolog maps the level to its zerolog equivalent.
func (l LogLevel) Zerolog() zerolog.Level {
	switch l {
	case DEBUG:
		return zerolog.DebugLevel
	case INFO:
		return zerolog.InfoLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	case FATAL:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
