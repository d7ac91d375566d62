// Package ansi is a static catalogue of ANSI escape sequences for terminal
// text styling: text attributes, selective attribute resets, and the
// standard 16-color foreground and background palettes.
//
// The package holds data only. Generated sequences (256-color and truecolor)
// live in the color package; applying sequences to text is the styler
// package's job.
package ansi

// Reset clears all active styles and colors.
const Reset = "\033[0m"

// Text style codes.
const (
	Bold            = "\033[1m"
	Dim             = "\033[2m"
	Italic          = "\033[3m"
	Underline       = "\033[4m"
	DoubleUnderline = "\033[21m"
	Reversed        = "\033[7m"
	Hidden          = "\033[8m"
	Strikethrough   = "\033[9m"
	Overline        = "\033[53m"
)

// Selective reset codes. Each clears one attribute without touching the
// rest of the current rendition.
const (
	ResetBoldDim       = "\033[22m"
	ResetItalic        = "\033[23m"
	ResetUnderline     = "\033[24m"
	ResetReversed      = "\033[27m"
	ResetHidden        = "\033[28m"
	ResetStrikethrough = "\033[29m"
	ResetOverline      = "\033[55m"
	ResetForeground    = "\033[39m"
	ResetBackground    = "\033[49m"
)

// Standard 16-color foreground codes.
const (
	FgBlack   = "\033[30m"
	FgRed     = "\033[31m"
	FgGreen   = "\033[32m"
	FgYellow  = "\033[33m"
	FgBlue    = "\033[34m"
	FgMagenta = "\033[35m"
	FgCyan    = "\033[36m"
	FgWhite   = "\033[37m"

	FgBrightBlack   = "\033[90m"
	FgBrightRed     = "\033[91m"
	FgBrightGreen   = "\033[92m"
	FgBrightYellow  = "\033[93m"
	FgBrightBlue    = "\033[94m"
	FgBrightMagenta = "\033[95m"
	FgBrightCyan    = "\033[96m"
	FgBrightWhite   = "\033[97m"
)

// Standard 16-color background codes.
const (
	BgBlack   = "\033[40m"
	BgRed     = "\033[41m"
	BgGreen   = "\033[42m"
	BgYellow  = "\033[43m"
	BgBlue    = "\033[44m"
	BgMagenta = "\033[45m"
	BgCyan    = "\033[46m"
	BgWhite   = "\033[47m"

	BgBrightBlack   = "\033[100m"
	BgBrightRed     = "\033[101m"
	BgBrightGreen   = "\033[102m"
	BgBrightYellow  = "\033[103m"
	BgBrightBlue    = "\033[104m"
	BgBrightMagenta = "\033[105m"
	BgBrightCyan    = "\033[106m"
	BgBrightWhite   = "\033[107m"
)

// Styles maps display names to style codes, in catalogue order. Used by the
// demo renderer; selective resets are deliberately excluded.
var Styles = []Entry{
	{"BOLD", Bold},
	{"DIM", Dim},
	{"ITALIC", Italic},
	{"UNDERLINE", Underline},
	{"DOUBLE_UNDERLINE", DoubleUnderline},
	{"REVERSED", Reversed},
	{"HIDDEN", Hidden},
	{"STRIKETHROUGH", Strikethrough},
	{"OVERLINE", Overline},
}

// Foregrounds lists the 16-color foreground palette in catalogue order.
var Foregrounds = []Entry{
	{"BLACK", FgBlack},
	{"RED", FgRed},
	{"GREEN", FgGreen},
	{"YELLOW", FgYellow},
	{"BLUE", FgBlue},
	{"MAGENTA", FgMagenta},
	{"CYAN", FgCyan},
	{"WHITE", FgWhite},
	{"BRIGHT_BLACK", FgBrightBlack},
	{"BRIGHT_RED", FgBrightRed},
	{"BRIGHT_GREEN", FgBrightGreen},
	{"BRIGHT_YELLOW", FgBrightYellow},
	{"BRIGHT_BLUE", FgBrightBlue},
	{"BRIGHT_MAGENTA", FgBrightMagenta},
	{"BRIGHT_CYAN", FgBrightCyan},
	{"BRIGHT_WHITE", FgBrightWhite},
}

// Backgrounds lists the 16-color background palette in catalogue order.
var Backgrounds = []Entry{
	{"BLACK", BgBlack},
	{"RED", BgRed},
	{"GREEN", BgGreen},
	{"YELLOW", BgYellow},
	{"BLUE", BgBlue},
	{"MAGENTA", BgMagenta},
	{"CYAN", BgCyan},
	{"WHITE", BgWhite},
	{"BRIGHT_BLACK", BgBrightBlack},
	{"BRIGHT_RED", BgBrightRed},
	{"BRIGHT_GREEN", BgBrightGreen},
	{"BRIGHT_YELLOW", BgBrightYellow},
	{"BRIGHT_BLUE", BgBrightBlue},
	{"BRIGHT_MAGENTA", BgBrightMagenta},
	{"BRIGHT_CYAN", BgBrightCyan},
	{"BRIGHT_WHITE", BgBrightWhite},
}

// Entry pairs a human-readable constant name with its escape sequence.
type Entry struct {
	Name string
	Code string
}
