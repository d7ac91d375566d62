// Package terminal decides whether styled output makes sense for the
// current process: whether output is going to an interactive terminal, and
// whether that terminal (and the user) want ANSI color at all.
//
// The styler package consults this package on every styling call; the
// platform-specific virtual terminal setup is a one-shot call made by
// program startup code.
package terminal

import (
	"os"
	"strings"
)

// Options bundles the command-line level overrides for capability
// detection.
type Options struct {
	// PreferenceOptions for color settings
	PreferenceOptions PreferenceOptions
	// DetectorOptions for interactive detection
	DetectorOptions DetectorOptions
}

// Capabilities reports what the current output environment supports.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	HasExplicitUserPreference() bool
}

// DefaultCapabilities combines interactive detection, terminal color
// capability, and user preference into the Capabilities interface.
type DefaultCapabilities struct {
	detector   InteractiveDetector
	preference *UserPreference
}

// NewCapabilities creates a Capabilities instance with the given options.
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		detector:   NewInteractiveDetector(options.DetectorOptions),
		preference: NewUserPreference(options.PreferenceOptions),
	}
}

// IsInteractive returns true if the current environment should be treated
// as interactive.
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.detector.IsInteractive()
}

// SupportsColor returns true if color output should be enabled. Priority:
//
//  1. Command line options
//  2. CLICOLOR_FORCE (truthy value overrides everything else)
//  3. NO_COLOR (any value, even empty)
//  4. CLICOLOR (only considered in interactive mode)
//  5. TERM-based capability detection
func (c *DefaultCapabilities) SupportsColor() bool {
	// User preference covers priorities 1-3.
	if c.preference.HasExplicitPreference() {
		return c.preference.SupportsColor()
	}

	if !c.IsInteractive() || !termSupportsColor() {
		return false
	}

	// CLICOLOR only applies once we know output is interactive; for pipes
	// it is ignored, following the usual Unix convention.
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	return true
}

// HasExplicitUserPreference returns true if the user explicitly requested
// color on or off via options or environment variables.
func (c *DefaultCapabilities) HasExplicitUserPreference() bool {
	return c.preference.HasExplicitPreference()
}

// isTruthy checks if a string value should be considered "true".
// Supports: "1", "true", "yes" (case insensitive).
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
