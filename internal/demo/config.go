package demo

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for the RGB gradient demo.
const (
	DefaultRGBStep = 51
	DefaultBlock   = "ABC"
)

// Error definitions for demo configuration
var (
	// ErrInvalidRGBStep is returned when the gradient step is outside [1, 255].
	ErrInvalidRGBStep = errors.New("rgb step must be between 1 and 255")
)

// Config selects which demo sections run and how the gradient and theme
// sections render. Loaded from TOML; zero values fall back to defaults.
type Config struct {
	// Section toggles
	Styles     bool `toml:"styles"`
	Palette16  bool `toml:"palette16"`
	Palette256 bool `toml:"palette256"`
	RGB        bool `toml:"rgb"`

	// Gradient options
	RGBStep    int    `toml:"rgb_step"`
	RGBBlockFg string `toml:"rgb_block_fg"`
	RGBBlockBg string `toml:"rgb_block_bg"`

	// Theme lists named colors rendered as truecolor swatches.
	Theme []ThemeColor `toml:"theme"`
}

// ThemeColor names a color given in any hex form the color package accepts.
type ThemeColor struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// DefaultConfig returns a config with gradient defaults filled in and no
// sections enabled.
func DefaultConfig() Config {
	return Config{
		RGBStep:    DefaultRGBStep,
		RGBBlockFg: DefaultBlock,
		RGBBlockBg: DefaultBlock,
	}
}

// LoadConfig reads a TOML config file over the defaults and validates it.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option ranges and fills empty gradient blocks with the
// defaults.
func (c *Config) Validate() error {
	if c.RGBStep < 1 || c.RGBStep > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidRGBStep, c.RGBStep)
	}
	if c.RGBBlockFg == "" {
		c.RGBBlockFg = DefaultBlock
	}
	if c.RGBBlockBg == "" {
		c.RGBBlockBg = DefaultBlock
	}
	return nil
}
