// Package console provides a scoped output filter for noisy collaborators.
//
// A Filter wraps a writer and drops every write whose text contains one of a
// set of excluded substrings. Events written by a zerolog logger are matched on
// their message only; plain writes are matched on the raw bytes. Releasing the filter turns it into a plain
// pass-through, so anything still holding it behaves exactly as if it wrote to
// the original writer:
//
//	f := console.NewFilter(os.Stderr, []string{"heartbeat"})
//	defer f.Release()
//	logger := f.Logger()
//	logger.Info().Msg("heartbeat ok") // dropped
//	logger.Info().Msg("node up")      // written
package console

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// DefaultLevels are the levels filtered when NewFilter is given none.
// zerolog.NoLevel covers plain Write calls and level-less events.
var DefaultLevels = []zerolog.Level{
	zerolog.NoLevel,
	zerolog.DebugLevel,
	zerolog.InfoLevel,
	zerolog.WarnLevel,
	zerolog.ErrorLevel,
}

// Filter is a zerolog.LevelWriter that suppresses matching output until it is
// released. It is safe for concurrent use if the wrapped writer is.
type Filter struct {
	out      io.Writer
	exclude  []string
	levels   map[zerolog.Level]struct{}
	released atomic.Bool
	dropped  atomic.Int64
}

var _ zerolog.LevelWriter = (*Filter)(nil)

// NewFilter starts filtering writes to out. Only writes at one of levels are
// checked; the rest always pass.
func NewFilter(out io.Writer, exclude []string, levels ...zerolog.Level) *Filter {
	if len(levels) == 0 {
		levels = DefaultLevels
	}
	f := &Filter{
		out:     out,
		exclude: append([]string(nil), exclude...),
		levels:  make(map[zerolog.Level]struct{}, len(levels)),
	}
	for _, l := range levels {
		f.levels[l] = struct{}{}
	}
	return f
}

// Write implements io.Writer. Plain writes are treated as NoLevel and matched
// on their raw text.
func (f *Filter) Write(p []byte) (int, error) {
	if f.suppressed(zerolog.NoLevel, string(p)) {
		f.dropped.Add(1)
		return len(p), nil
	}
	return f.out.Write(p)
}

// WriteLevel implements zerolog.LevelWriter. The event is matched on its
// message field, or on the raw text when p is not a JSON object. Suppressed
// writes report success.
func (f *Filter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if f.suppressed(level, messageOf(p)) {
		f.dropped.Add(1)
		return len(p), nil
	}
	if lw, ok := f.out.(zerolog.LevelWriter); ok {
		return lw.WriteLevel(level, p)
	}
	return f.out.Write(p)
}

// messageOf extracts the zerolog message of an encoded event. An event without
// a message has empty text and never matches.
func messageOf(p []byte) string {
	trimmed := bytes.TrimSpace(p)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return string(p)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return string(p)
	}
	raw, ok := fields[zerolog.MessageFieldName]
	if !ok {
		return ""
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return string(raw)
	}
	return msg
}

func (f *Filter) suppressed(level zerolog.Level, text string) bool {
	if text == "" || f.released.Load() {
		return false
	}
	if _, ok := f.levels[level]; !ok {
		return false
	}
	for _, pattern := range f.exclude {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

// Logger returns a logger writing through the filter.
func (f *Filter) Logger() zerolog.Logger {
	return zerolog.New(f).With().Timestamp().Logger()
}

// Wrap returns a copy of logger whose output goes through the filter. The
// filter's own writer should be the logger's original output.
func (f *Filter) Wrap(logger zerolog.Logger) zerolog.Logger {
	return logger.Output(f)
}

// Release stops filtering. It is idempotent.
func (f *Filter) Release() {
	f.released.Store(true)
}

// Released reports whether Release has been called.
func (f *Filter) Released() bool {
	return f.released.Load()
}

// Dropped returns the number of writes suppressed so far.
func (f *Filter) Dropped() int64 {
	return f.dropped.Load()
}
