// Package styler applies ANSI escape codes to text, honoring the current
// output capability policy: styling is emitted only when output is
// interactive, unless forced per call or process-wide.
//
// Codes may be plain strings or arbitrarily nested groups of strings
// ([]any or []string); groups are flattened depth-first, left to right,
// before the styled string is assembled.
package styler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/isseis/go-termstyle/internal/ansi"
	"github.com/isseis/go-termstyle/internal/terminal"
)

// ErrInvalidCode indicates a code argument that is neither a string nor a
// nested group of strings. The whole call fails before any output is
// assembled.
var ErrInvalidCode = errors.New("invalid ANSI code")

// ForceColor forces escape output regardless of terminal detection. It is
// process-wide configuration: set it at startup or around a group of calls;
// it has no effect on strings already produced. A single boolean with no
// cross-field invariant, so no locking is required.
var ForceColor bool

// capabilities supplies the interactive signal consulted on every call.
var capabilities terminal.Capabilities = terminal.NewCapabilities(terminal.Options{})

// SetCapabilities replaces the capability source, returning the previous
// one. Startup code uses it to install options derived from command-line
// flags; tests use it to pin the interactive signal.
func SetCapabilities(c terminal.Capabilities) terminal.Capabilities {
	prev := capabilities
	capabilities = c
	return prev
}

// Colorize applies one or more ANSI codes to text.
//
// With no codes, text is returned unchanged. When output is not interactive
// and ForceColor is false, text is returned unchanged; otherwise the result
// is the flattened codes, in argument order, followed by text and a reset.
// Code validation always runs, even when the result would be plain text.
func Colorize(text string, codes ...any) (string, error) {
	return colorize(text, codes, ForceColor)
}

// ColorizeWithForce is Colorize with an explicit per-call capability
// override that takes precedence over ForceColor.
func ColorizeWithForce(force bool, text string, codes ...any) (string, error) {
	return colorize(text, codes, force)
}

func colorize(text string, codes []any, force bool) (string, error) {
	if len(codes) == 0 {
		return text, nil
	}

	flat, err := flatten(codes)
	if err != nil {
		return "", err
	}

	if !force && !capabilities.IsInteractive() {
		return text, nil
	}

	var b strings.Builder
	for _, code := range flat {
		b.WriteString(code)
	}
	b.WriteString(text)
	b.WriteString(ansi.Reset)
	return b.String(), nil
}

// flatten walks the nested code groups depth-first and collects the string
// leaves in visit order. Any leaf that is not a string or a nested slice
// aborts the whole traversal.
func flatten(codes []any) ([]string, error) {
	flat := make([]string, 0, len(codes))

	// Explicit stack instead of recursion; children are pushed in reverse
	// so pop order matches left-to-right argument order.
	stack := make([]any, len(codes))
	for i, code := range codes {
		stack[len(codes)-1-i] = code
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := current.(type) {
		case string:
			flat = append(flat, v)
		case []any:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, v[i])
			}
		case []string:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, v[i])
			}
		default:
			return nil, fmt.Errorf("%w: must be a string or nested group of strings, got %T", ErrInvalidCode, current)
		}
	}

	return flat, nil
}
