// Package demo renders showcase output for the styling library: the style
// catalogue, the 16-color and 256-color palettes, truecolor gradients, and
// user-defined theme swatches. All rendering goes to an injected io.Writer;
// grid layout adapts to the terminal width.
package demo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/isseis/go-termstyle/internal/ansi"
	"github.com/isseis/go-termstyle/internal/color"
	"github.com/isseis/go-termstyle/internal/styler"
)

const (
	fallbackWidth   = 80
	gridCellPadding = 2
)

// Renderer writes demo sections to out. The width function is replaceable
// for tests; the default queries the controlling terminal.
type Renderer struct {
	out   io.Writer
	width func() int
}

// NewRenderer creates a Renderer writing to out, sized to the current
// terminal.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, width: terminalWidth}
}

// NewRendererWithWidth creates a Renderer with a fixed width, for tests and
// non-terminal output.
func NewRendererWithWidth(out io.Writer, width int) *Renderer {
	if width < 1 {
		width = fallbackWidth
	}
	return &Renderer{out: out, width: func() int { return width }}
}

// terminalWidth returns the current terminal width in columns, falling back
// to 80 when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// Run executes the sections enabled in cfg, in catalogue order.
func (r *Renderer) Run(cfg Config) error {
	if cfg.Styles {
		if err := r.RenderStyles(); err != nil {
			return err
		}
	}
	if cfg.Palette16 {
		if err := r.Render16Palette(); err != nil {
			return err
		}
	}
	if cfg.Palette256 {
		if err := r.Render256Palette(true); err != nil {
			return err
		}
		if err := r.Render256Palette(false); err != nil {
			return err
		}
	}
	if cfg.RGB {
		if err := r.RenderRGBGradient(true, cfg.RGBStep, cfg.RGBBlockFg); err != nil {
			return err
		}
		if err := r.RenderRGBGradient(false, cfg.RGBStep, cfg.RGBBlockBg); err != nil {
			return err
		}
	}
	if len(cfg.Theme) > 0 {
		if err := r.RenderTheme(cfg.Theme); err != nil {
			return err
		}
	}
	return nil
}

// RenderStyles renders all text styles in a grid.
func (r *Renderer) RenderStyles() error {
	return r.renderGrid("Text Styles", ansi.Styles)
}

// Render16Palette renders the 16-color foreground and background palettes.
func (r *Renderer) Render16Palette() error {
	if err := r.renderGrid("16-Color Foreground Palette", ansi.Foregrounds); err != nil {
		return err
	}
	return r.renderGrid("16-Color Background Palette", ansi.Backgrounds)
}

// Render256Palette renders the full 256-color palette as numbered cells.
func (r *Renderer) Render256Palette(foreground bool) error {
	side := "Background"
	if foreground {
		side = "Foreground"
	}
	if err := r.header(fmt.Sprintf("256-Color Palette (%s)", side)); err != nil {
		return err
	}

	perRow := r.itemsPerRow(4, 1)
	for index := 0; index < 256; index++ {
		code, err := paletteCode(foreground, index)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%s%3d%s ", code, index, ansi.Reset)
		if (index+1)%perRow == 0 {
			fmt.Fprintln(r.out)
		}
	}
	if 256%perRow != 0 {
		fmt.Fprintln(r.out)
	}
	return nil
}

// RenderRGBGradient renders a truecolor gradient sweeping each component by
// step, printing block in each sampled color.
func (r *Renderer) RenderRGBGradient(foreground bool, step int, block string) error {
	side := "Background"
	if foreground {
		side = "Foreground"
	}
	if err := r.header(fmt.Sprintf("Truecolor RGB Gradient (%s)", side)); err != nil {
		return err
	}

	perRow := r.itemsPerRow(len(block)+1, gridCellPadding)
	count := 0
	for red := 0; red < 256; red += step {
		for green := 0; green < 256; green += step {
			for blue := 0; blue < 256; blue += step {
				code, err := truecolorCode(foreground, red, green, blue)
				if err != nil {
					return err
				}
				fmt.Fprintf(r.out, "%s%s%s ", code, block, ansi.Reset)
				count++
				if count%perRow == 0 {
					fmt.Fprintln(r.out)
				}
			}
		}
	}
	if count%perRow != 0 {
		fmt.Fprintln(r.out)
	}
	return nil
}

// RenderTheme renders named theme colors as truecolor swatches.
func (r *Renderer) RenderTheme(theme []ThemeColor) error {
	if err := r.header("Theme Colors"); err != nil {
		return err
	}
	for _, tc := range theme {
		code, err := color.ForegroundRGB(tc.Color)
		if err != nil {
			return fmt.Errorf("theme color %q: %w", tc.Name, err)
		}
		fmt.Fprintf(r.out, "%s%s%s  %s\n", code, "██████", ansi.Reset, tc.Name)
	}
	return nil
}

// renderGrid renders one named catalogue section as a width-aware grid.
func (r *Renderer) renderGrid(title string, entries []ansi.Entry) error {
	if err := r.header(title); err != nil {
		return err
	}

	maxLen := 0
	for _, e := range entries {
		if len(e.Name) > maxLen {
			maxLen = len(e.Name)
		}
	}
	maxLen += gridCellPadding

	perRow := r.itemsPerRow(maxLen, gridCellPadding)
	for i := 0; i < len(entries); i += perRow {
		end := i + perRow
		if end > len(entries) {
			end = len(entries)
		}
		cells := make([]string, 0, end-i)
		for _, e := range entries[i:end] {
			cells = append(cells, fmt.Sprintf("%s%-*s%s", e.Code, maxLen, e.Name, ansi.Reset))
		}
		fmt.Fprintln(r.out, strings.Join(cells, " "))
	}
	return nil
}

// header writes a bold cyan section header centered in a '=' rule.
func (r *Renderer) header(title string) error {
	width := r.width()
	line := center(" "+title+" ", width, '=')
	styled, err := styler.Colorize(line, ansi.Bold, ansi.FgCyan)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "\n%s\n\n", styled)
	return err
}

// itemsPerRow returns how many cells of the given width fit on one line,
// at least one.
func (r *Renderer) itemsPerRow(cellWidth, padding int) int {
	perRow := r.width() / (cellWidth + padding)
	if perRow < 1 {
		return 1
	}
	return perRow
}

// center pads s on both sides with fill to the given width.
func center(s string, width int, fill rune) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
}

func paletteCode(foreground bool, index int) (string, error) {
	if foreground {
		return color.Foreground256(index)
	}
	return color.Background256(index)
}

func truecolorCode(foreground bool, red, green, blue int) (string, error) {
	if foreground {
		return color.ForegroundRGB(red, green, blue)
	}
	return color.BackgroundRGB(red, green, blue)
}
