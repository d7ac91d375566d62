// Package logging provides a slog handler for command-line output that
// colors level prefixes through the color package when the terminal
// supports it, and degrades to plain text otherwise. Each handler carries a
// ULID run ID so log lines from one invocation can be correlated.
package logging

import (
	"log/slog"
	"strings"

	"github.com/isseis/go-termstyle/internal/color"
)

// MessageFormatter formats log records for terminal display.
type MessageFormatter interface {
	// FormatRecord formats a log record, coloring the level prefix when
	// useColor is true.
	FormatRecord(record slog.Record, useColor bool) string
}

// DefaultMessageFormatter renders "LEVEL message key=value ..." lines.
type DefaultMessageFormatter struct{}

// NewDefaultMessageFormatter creates a new DefaultMessageFormatter.
func NewDefaultMessageFormatter() *DefaultMessageFormatter {
	return &DefaultMessageFormatter{}
}

// FormatRecord formats a log record with optional color support.
func (f *DefaultMessageFormatter) FormatRecord(record slog.Record, useColor bool) string {
	var sb strings.Builder

	sb.WriteString(f.formatLevel(record.Level, useColor))
	sb.WriteString(" ")
	sb.WriteString(record.Message)

	record.Attrs(func(attr slog.Attr) bool {
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString("=")
		sb.WriteString(attr.Value.String())
		return true
	})

	return sb.String()
}

// formatLevel renders the level prefix, colored by severity when requested.
func (f *DefaultMessageFormatter) formatLevel(level slog.Level, useColor bool) string {
	var c color.Color
	switch {
	case level >= slog.LevelError:
		c = color.Red
	case level >= slog.LevelWarn:
		c = color.Yellow
	case level >= slog.LevelInfo:
		c = color.Green
	default:
		c = color.Gray
	}

	return color.ConditionalColor(c, useColor)(level.String() + ":")
}
