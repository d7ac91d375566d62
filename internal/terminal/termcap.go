package terminal

import (
	"os"
	"strings"
)

// colorTerminals lists TERM values (or prefixes) known to support basic
// terminal colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// termSupportsColor reports whether TERM names a color-capable terminal.
// Unknown terminals default to no color: emitting escape sequences at a
// terminal that cannot interpret them is worse than missing color support.
func termSupportsColor() bool {
	termEnv := os.Getenv("TERM")
	if termEnv == "" {
		return false
	}

	termEnv = strings.ToLower(strings.TrimSpace(termEnv))
	if termEnv == "dumb" {
		return false
	}

	for _, known := range colorTerminals {
		if termEnv == known || strings.HasPrefix(termEnv, known+"-") {
			return true
		}
	}

	return false
}
