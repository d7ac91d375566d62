package color

import "errors"

// Error kinds for color normalization. All validation failures wrap exactly
// one of these sentinels so callers can discriminate with errors.Is.
var (
	// ErrInvalidType indicates an input of the wrong shape or type,
	// including boolean values supplied where an integer is required.
	ErrInvalidType = errors.New("invalid type for color value")

	// ErrOutOfRange indicates an integer component outside [0, 255].
	ErrOutOfRange = errors.New("color value out of range")

	// ErrMalformedHex indicates a hex color string of the wrong length or
	// containing non-hex characters.
	ErrMalformedHex = errors.New("malformed hex color")

	// ErrComponentCount indicates the wrong number of color components: a
	// triple that is not exactly three values, or a lone red component
	// without green and blue.
	ErrComponentCount = errors.New("wrong number of color components")
)
