// Package config holds the generation settings, optionally loaded from a
// TOML file and overridden by command line flags.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/HavilandTuff/cover-generator/card"
)

// Selection policies for entries that have both an image and a marquee.
const (
	ChoiceImage   = "image"
	ChoiceMarquee = "marquee"
	ChoiceAsk     = "ask"
)

// Config is the full set of generation settings.
type Config struct {
	// Template is the path to the card template image. Relative paths are
	// taken from the current directory.
	Template string `toml:"template"`

	// Output is the directory cards and sheets are written to. A relative
	// path is taken from the system folder being processed.
	Output string `toml:"output"`

	// Choice decides between image and marquee when both exist on disk:
	// "image", "marquee" or "ask".
	Choice string `toml:"choice"`

	// Viewer is an optional command used to preview candidates during
	// interactive selection, e.g. "feh --borderless". The command is split
	// on whitespace; quoted arguments are not supported.
	Viewer string `toml:"viewer"`

	// Quantize reduces sheets to a 256 color palette.
	Quantize bool `toml:"quantize"`

	// Region is the template area artwork is composited into. Zero means
	// the whole template.
	Region card.Region `toml:"region"`
}

// Default returns the settings used when no config file or flags are given.
func Default() *Config {
	return &Config{
		Template: "template.png",
		Output:   "covers",
		Choice:   ChoiceAsk,
	}
}

// Load reads a TOML config file over the defaults.
func Load(file string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: parsing %q: %w", file, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks settings that have a closed set of values.
func (c *Config) Validate() error {
	switch c.Choice {
	case ChoiceImage, ChoiceMarquee, ChoiceAsk:
		return nil
	default:
		return fmt.Errorf("config: invalid choice %q", c.Choice)
	}
}
