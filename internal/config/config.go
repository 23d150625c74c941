// Package config holds the conversion settings shared by the CLI and the
// MCP server, and loads them from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/image-ascii/internal/ascii"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// homePrefix marks an input path relative to the user's home directory.
const homePrefix = "home/"

// Config is the full set of conversion settings.
//
// A zero Width selects the default width of the chosen variant.
type Config struct {
	Ramp               string              `toml:"ramp"`
	Width              int                 `toml:"width"`
	Padding            int                 `toml:"padding"`
	Flip               bool                `toml:"flip"`
	Crop               bool                `toml:"crop"`
	Square             bool                `toml:"square"`
	SuppressHighlights bool                `toml:"suppress_highlights"`
	Color              bool                `toml:"color"`
	Fit                bool                `toml:"fit"`
	Adjust             imaging.Adjustments `toml:"adjust"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Ramp:    ascii.DefaultRamp,
		Padding: ascii.DefaultPadding,
	}
}

// Load reads a TOML file over the built-in settings. Keys missing from the
// file keep their default. Unknown keys are rejected so that typos do not
// pass silently.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s",
			ascii.ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Options converts the settings into validated conversion options.
func (c *Config) Options() (ascii.Options, error) {
	ramp, err := ascii.NewRamp(c.Ramp)
	if err != nil {
		return ascii.Options{}, err
	}

	width := c.Width
	if width == 0 {
		width = ascii.DefaultWidth
		if c.Square {
			width = ascii.DefaultSquareWidth
		}
	}

	opts := ascii.Options{
		Ramp:               ramp,
		Width:              width,
		Padding:            c.Padding,
		Flip:               c.Flip,
		Crop:               c.Crop,
		Square:             c.Square,
		SuppressHighlights: c.SuppressHighlights,
	}
	if err := opts.Validate(); err != nil {
		return ascii.Options{}, err
	}
	if err := c.Adjust.Validate(); err != nil {
		return ascii.Options{}, err
	}
	return opts, nil
}

// ResolveInput expands a leading "home/" to the user's home directory and
// checks that the path names a supported image format. Bad input paths wrap
// ascii.ErrInvalidConfig.
func ResolveInput(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: input path is required", ascii.ErrInvalidConfig)
	}

	if strings.HasPrefix(path, homePrefix) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, homePrefix))
	}

	if !imaging.SupportedFormat(path) {
		return "", fmt.Errorf("%w: unsupported image format %q", ascii.ErrInvalidConfig, filepath.Ext(path))
	}
	return path, nil
}
