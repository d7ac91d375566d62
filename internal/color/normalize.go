package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a validated truecolor value. Each component is within [0, 255].
type RGB struct {
	R, G, B int
}

// ParseIndex validates v as an index into the 256-entry ANSI palette.
//
// v must be a true integer in [0, 255]. A boolean is rejected explicitly,
// ahead of the range check, because it signals a caller mistake rather than
// a color choice; the check is kept even though Go never treats bool as an
// integer, so behavior and tests stay portable across implementations.
func ParseIndex(v any) (int, error) {
	switch n := v.(type) {
	case bool:
		return 0, fmt.Errorf("%w: color index cannot be a boolean", ErrInvalidType)
	case int:
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: color index must be between 0 and 255, got %d", ErrOutOfRange, n)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: color index must be an integer, got %T", ErrInvalidType, v)
	}
}

// ParseRGB normalizes any accepted color representation to an RGB value.
//
// spec may be one of:
//   - a hex string such as "#FF8800", "CC33AA", or the shorthand "F80"
//   - a sequence of exactly three integers: [3]int, []int, or []any
//   - a single red integer, with green and blue supplied via rest
//
// Components are validated in red, green, blue order so failures are
// deterministic. Booleans are rejected in every numeric slot.
func ParseRGB(spec any, rest ...any) (RGB, error) {
	var red, green, blue any

	switch s := spec.(type) {
	case string:
		return parseHex(s)
	case [3]int:
		red, green, blue = s[0], s[1], s[2]
	case []int:
		if len(s) != 3 {
			return RGB{}, fmt.Errorf("%w: RGB sequence must have exactly 3 values, got %d", ErrComponentCount, len(s))
		}
		red, green, blue = s[0], s[1], s[2]
	case []any:
		if len(s) != 3 {
			return RGB{}, fmt.Errorf("%w: RGB sequence must have exactly 3 values, got %d", ErrComponentCount, len(s))
		}
		red, green, blue = s[0], s[1], s[2]
	case int, bool:
		// bool takes the separate-component path so the red slot reports
		// the boolean error, matching triple validation.
		if len(rest) != 2 {
			return RGB{}, fmt.Errorf("%w: when providing a single integer, green and blue must also be provided", ErrComponentCount)
		}
		red, green, blue = s, rest[0], rest[1]
	default:
		return RGB{}, fmt.Errorf("%w: provide a hex string, a 3-value sequence, or three separate integers, got %T", ErrInvalidType, spec)
	}

	return validateComponents(red, green, blue)
}

// parseHex converts a hex color string to RGB. A single leading '#' is
// stripped; 3-digit shorthand expands by doubling each digit.
func parseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		var expanded strings.Builder
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: must be 6 characters (RRGGBB), got %q", ErrMalformedHex, hex)
	}

	var out [3]int
	for i := range out {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: invalid hex color format %q", ErrMalformedHex, hex)
		}
		out[i] = int(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// validateComponents checks the three raw components in fixed red, green,
// blue order and assembles the RGB value.
func validateComponents(red, green, blue any) (RGB, error) {
	names := [3]string{"red", "green", "blue"}
	raw := [3]any{red, green, blue}
	var out [3]int

	for i, v := range raw {
		switch n := v.(type) {
		case bool:
			return RGB{}, fmt.Errorf("%w: %s cannot be a boolean", ErrInvalidType, names[i])
		case int:
			if n < 0 || n > 255 {
				return RGB{}, fmt.Errorf("%w: %s must be between 0 and 255, got %d", ErrOutOfRange, names[i], n)
			}
			out[i] = n
		default:
			return RGB{}, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidType, names[i], v)
		}
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// Foreground256 returns the escape sequence selecting a 256-palette
// foreground color.
func Foreground256(index any) (string, error) {
	n, err := ParseIndex(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\033[38;5;%dm", n), nil
}

// Background256 returns the escape sequence selecting a 256-palette
// background color.
func Background256(index any) (string, error) {
	n, err := ParseIndex(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\033[48;5;%dm", n), nil
}

// ForegroundRGB returns the truecolor (24-bit) foreground escape sequence
// for any representation ParseRGB accepts.
func ForegroundRGB(spec any, rest ...any) (string, error) {
	c, err := ParseRGB(spec, rest...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B), nil
}

// BackgroundRGB returns the truecolor (24-bit) background escape sequence
// for any representation ParseRGB accepts.
func BackgroundRGB(spec any, rest ...any) (string, error) {
	c, err := ParseRGB(spec, rest...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B), nil
}
