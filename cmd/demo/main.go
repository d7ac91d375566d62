// Package main provides the demo utility for the go-termstyle library. It
// showcases text styles, the 16- and 256-color palettes, truecolor
// gradients, and theme colors defined in an optional TOML config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/isseis/go-termstyle/internal/ansi"
	"github.com/isseis/go-termstyle/internal/demo"
	"github.com/isseis/go-termstyle/internal/logging"
	"github.com/isseis/go-termstyle/internal/styler"
	"github.com/isseis/go-termstyle/internal/terminal"
)

// Build-time variables (set via ldflags)
var version = "dev"

// Error definitions
var (
	ErrANSIUnsupported    = errors.New("failed to enable ANSI support; use -force to bypass")
	ErrRGBFlagsWithoutRGB = errors.New("RGB options specified without -rgb enabled")
)

var (
	showStyles     = flag.Bool("styles", false, "display all available text styles")
	showPalette16  = flag.Bool("palette16", false, "display the standard 16-color ANSI palette")
	showPalette256 = flag.Bool("palette256", false, "display the extended 256-color ANSI palette")
	showRGB        = flag.Bool("rgb", false, "display the truecolor (RGB) gradient demo")
	showAll        = flag.Bool("all", false, "run all available demos")
	rgbStep        = flag.Int("rgb-step", demo.DefaultRGBStep, "step size for RGB components")
	rgbBlockFg     = flag.String("rgb-block-fg", "", "text block for the foreground RGB gradient (default \""+demo.DefaultBlock+"\")")
	rgbBlockBg     = flag.String("rgb-block-bg", "", "text block for the background RGB gradient (default \""+demo.DefaultBlock+"\")")
	configPath     = flag.String("config", "", "path to TOML config file with demo sections and theme colors")
	forceColor     = flag.Bool("force", false, "force styled output even without ANSI support")
	noColor        = flag.Bool("no-color", false, "disable styled output")
	showVersion    = flag.Bool("version", false, "show version and exit")
	logLevel       = flag.String("log-level", "info", "log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	capabilities := terminal.NewCapabilities(terminal.Options{
		PreferenceOptions: terminal.PreferenceOptions{
			ForceColor:   *forceColor,
			DisableColor: *noColor,
		},
	})
	styler.SetCapabilities(capabilities)
	styler.ForceColor = *forceColor

	if err := setupLogging(capabilities); err != nil {
		return err
	}

	ansiSupported := terminal.EnableVirtualTerminal()

	if *showVersion {
		printVersion(ansiSupported)
		return nil
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if !cfg.Styles && !cfg.Palette16 && !cfg.Palette256 && !cfg.RGB && len(cfg.Theme) == 0 {
		flag.Usage()
		return nil
	}

	switch {
	case ansiSupported:
		slog.Info("ANSI terminal support enabled")
	case *forceColor:
		slog.Warn("ANSI support unavailable, continuing with -force")
	default:
		return ErrANSIUnsupported
	}

	return demo.NewRenderer(os.Stdout).Run(cfg)
}

// setupLogging installs the colored terminal handler as the slog default.
func setupLogging(capabilities terminal.Capabilities) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}

	handler, err := logging.NewTerminalHandler(logging.TerminalHandlerOptions{
		Level:        level,
		Writer:       os.Stderr,
		Capabilities: capabilities,
	})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// buildConfig merges the optional TOML config with command-line flags.
// Flags turn sections on in addition to the config; explicitly set gradient
// flags override config values.
func buildConfig() (demo.Config, error) {
	cfg := demo.DefaultConfig()
	if *configPath != "" {
		loaded, err := demo.LoadConfig(*configPath)
		if err != nil {
			return demo.Config{}, err
		}
		cfg = loaded
	}

	if err := validateRGBFlags(cfg.RGB); err != nil {
		return demo.Config{}, err
	}

	cfg.Styles = cfg.Styles || *showStyles || *showAll
	cfg.Palette16 = cfg.Palette16 || *showPalette16 || *showAll
	cfg.Palette256 = cfg.Palette256 || *showPalette256 || *showAll
	cfg.RGB = cfg.RGB || *showRGB || *showAll

	flagSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { flagSet[f.Name] = true })
	if flagSet["rgb-step"] {
		cfg.RGBStep = *rgbStep
	}
	if flagSet["rgb-block-fg"] {
		cfg.RGBBlockFg = *rgbBlockFg
	}
	if flagSet["rgb-block-bg"] {
		cfg.RGBBlockBg = *rgbBlockBg
	}

	if err := cfg.Validate(); err != nil {
		return demo.Config{}, err
	}
	return cfg, nil
}

// validateRGBFlags rejects gradient tuning flags when the gradient section
// is not requested on the command line or in the config.
func validateRGBFlags(configRGB bool) error {
	if *showRGB || *showAll || configRGB {
		return nil
	}

	var used []string
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rgb-step", "rgb-block-fg", "rgb-block-bg":
			used = append(used, "-"+f.Name)
		}
	})
	if len(used) > 0 {
		return fmt.Errorf("%w: %s", ErrRGBFlagsWithoutRGB, strings.Join(used, ", "))
	}
	return nil
}

// printVersion prints the styled version banner; plain when styling is off.
func printVersion(ansiSupported bool) {
	message := "go-termstyle " + version
	styled, err := styler.ColorizeWithForce(ansiSupported || *forceColor, message, ansi.Bold, ansi.FgBrightGreen)
	if err != nil {
		styled = message
	}
	fmt.Println(styled)
}
