// Package color converts caller-supplied color representations into ANSI
// escape sequences: 256-palette indices and truecolor RGB values given as
// hex strings, integer triples, or separate components. It also provides
// small wrap-and-reset helpers for the standard 16-color palette, used by
// the logging handler and the demo.
//
//nolint:revive // package name conflicts with standard library
package color

import (
	"fmt"

	"github.com/isseis/go-termstyle/internal/ansi"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + ansi.Reset
	}
}

// Sprintf formats according to a format specifier and colors the result.
func (c Color) Sprintf(format string, args ...any) string {
	return c(fmt.Sprintf(format, args...))
}

// ConditionalColor returns c when enabled, otherwise a pass-through that
// leaves text unstyled.
func ConditionalColor(c Color, enabled bool) Color {
	if enabled {
		return c
	}
	return NoColor
}

// NoColor returns text unchanged. It satisfies Color so callers can swap it
// in where styling is disabled.
func NoColor(text string) string { return text }

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = NewColor(ansi.FgBrightBlack)

	// Red colors text in red
	Red = NewColor(ansi.FgRed)

	// Green colors text in green
	Green = NewColor(ansi.FgGreen)

	// Yellow colors text in yellow
	Yellow = NewColor(ansi.FgYellow)

	// Blue colors text in blue
	Blue = NewColor(ansi.FgBlue)

	// Magenta colors text in magenta
	Magenta = NewColor(ansi.FgMagenta)

	// Cyan colors text in cyan
	Cyan = NewColor(ansi.FgCyan)

	// White colors text in white
	White = NewColor(ansi.FgWhite)

	// BrightGreen colors text in bright green
	BrightGreen = NewColor(ansi.FgBrightGreen)

	// BrightYellow colors text in bright yellow
	BrightYellow = NewColor(ansi.FgBrightYellow)

	// BrightRed colors text in bright red
	BrightRed = NewColor(ansi.FgBrightRed)
)
