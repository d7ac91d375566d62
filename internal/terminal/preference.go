package terminal

import (
	"os"
)

// PreferenceOptions contains command-line options for terminal preferences
type PreferenceOptions struct {
	ForceColor   bool // Force color output regardless of environment
	DisableColor bool // Disable color output regardless of environment
}

// UserPreference resolves explicit user color preferences from options and
// environment variables.
type UserPreference struct {
	options PreferenceOptions
}

// NewUserPreference creates a new UserPreference instance
func NewUserPreference(options PreferenceOptions) *UserPreference {
	return &UserPreference{options: options}
}

// SupportsColor returns true if the explicit preferences ask for color.
func (p *UserPreference) SupportsColor() bool {
	if p.options.ForceColor {
		return true
	}
	if p.options.DisableColor {
		return false
	}

	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" {
		if isTruthy(cliColorForce) {
			return true
		}
	}

	// NO_COLOR disables color when set to anything, even the empty string.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	return false
}

// HasExplicitPreference returns true if the user has explicitly set a color
// preference. CLICOLOR is deliberately not explicit: it only applies in
// interactive mode and is resolved by Capabilities.
func (p *UserPreference) HasExplicitPreference() bool {
	if p.options.ForceColor || p.options.DisableColor {
		return true
	}

	// CLICOLOR_FORCE=0 is not an explicit preference.
	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" {
		if isTruthy(cliColorForce) {
			return true
		}
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}

	return false
}
