package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/isseis/go-termstyle/internal/terminal"
)

// Static errors for TerminalHandler validation
var (
	ErrTerminalHandlerWriterRequired       = errors.New("TerminalHandler: Writer is required")
	ErrTerminalHandlerCapabilitiesRequired = errors.New("TerminalHandler: Capabilities is required")
)

// TerminalHandler is a slog handler for terminal output. Level prefixes are
// colored when the terminal supports color; otherwise output is plain text,
// so redirecting logs to a file never captures escape sequences.
type TerminalHandler struct {
	capabilities terminal.Capabilities
	formatter    MessageFormatter
	writer       io.Writer
	level        slog.Level
	runID        string
	attrs        []slog.Attr
	groups       []string
}

// TerminalHandlerOptions configures the TerminalHandler.
type TerminalHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities

	// Formatter handles message formatting and coloring. Defaults to
	// DefaultMessageFormatter when nil.
	Formatter MessageFormatter
}

// NewTerminalHandler creates a new TerminalHandler with the given options
// and a fresh run ID. Returns an error if required options are missing.
func NewTerminalHandler(opts TerminalHandlerOptions) (*TerminalHandler, error) {
	if opts.Writer == nil {
		return nil, ErrTerminalHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrTerminalHandlerCapabilitiesRequired
	}

	formatter := opts.Formatter
	if formatter == nil {
		formatter = NewDefaultMessageFormatter()
	}

	return &TerminalHandler{
		capabilities: opts.Capabilities,
		formatter:    formatter,
		writer:       opts.Writer,
		level:        opts.Level,
		runID:        ulid.Make().String(),
	}, nil
}

// RunID returns the ULID identifying this handler's run.
func (h *TerminalHandler) RunID() string {
	return h.runID
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	record := r.Clone()

	// Apply group context to accumulated attributes by prefixing keys.
	attrs := h.attrs
	if len(h.groups) > 0 {
		prefix := ""
		for _, group := range h.groups {
			if prefix != "" {
				prefix += "."
			}
			prefix += group
		}
		prefix += "."

		prefixedAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			prefixedAttrs[i] = slog.Attr{Key: prefix + attr.Key, Value: attr.Value}
		}
		attrs = prefixedAttrs
	}
	record.AddAttrs(attrs...)

	// Debug output carries the run ID so interleaved runs stay separable.
	if record.Level <= slog.LevelDebug {
		record.AddAttrs(slog.String("run_id", h.runID))
	}

	message := h.formatter.FormatRecord(record, h.capabilities.SupportsColor())

	_, err := h.writer.Write([]byte(message + "\n"))
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	clone := *h
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new handler with an additional group.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	clone := *h
	clone.groups = newGroups
	return &clone
}
