package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/ironsheep/image-ascii/internal/ascii"
	"github.com/ironsheep/image-ascii/internal/config"
	"github.com/ironsheep/image-ascii/internal/imaging"
	"github.com/ironsheep/image-ascii/internal/output"
)

type cliOptions struct {
	Input              string  `short:"i" long:"input" value-name:"FILE" description:"Image file to convert. A leading home/ is resolved under your home directory"`
	Ramp               string  `short:"a" long:"ascii" value-name:"RAMP" description:"Density ramp, darkest glyph first (default \" .:-=+*#%@\")"`
	Width              int     `short:"w" long:"width" value-name:"N" description:"Output width in samples (default 150, or 70 with --square)"`
	Padding            int     `short:"p" long:"padding" value-name:"N" description:"Uniform lines kept on each edge when cropping (default 2)"`
	Flip               bool    `short:"f" long:"flip" description:"Reverse the density ramp"`
	Crop               bool    `short:"c" long:"crop" description:"Trim border rows and columns made of a single glyph"`
	Output             bool    `short:"o" long:"output" description:"Also save the art next to the input as a .txt file, replacing any earlier one"`
	Square             bool    `long:"square" description:"Square cells: one glyph and a space per sample, blank rows dropped"`
	SuppressHighlights bool    `long:"suppress-highlights" description:"Render near-white pixels as spaces"`
	Color              bool    `long:"color" description:"Color glyphs with their source pixel when stdout supports it"`
	Fit                bool    `long:"fit" description:"Use the terminal width as the output width"`
	Contrast           float64 `long:"contrast" value-name:"X" description:"Contrast change in [-1,1] applied before sampling"`
	Brightness         float64 `long:"brightness" value-name:"X" description:"Brightness change in [-1,1] applied before sampling"`
	Gamma              float64 `long:"gamma" value-name:"X" description:"Gamma correction applied before sampling"`
	Config             string  `long:"config" value-name:"FILE" description:"TOML file with default settings; flags override it"`
	Serve              bool    `long:"serve" description:"Run as an MCP server on stdin/stdout"`
	Version            bool    `short:"v" long:"version" description:"Print version information"`
}

// settings layers the flags given on the command line over the config file,
// or over the built-in defaults when there is none.
func settings(opts *cliOptions, isSet func(long string) bool) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}

	if isSet("ascii") {
		cfg.Ramp = opts.Ramp
	}
	if isSet("width") {
		if opts.Width <= 0 {
			return nil, fmt.Errorf("%w: width must be positive, got %d", ascii.ErrInvalidConfig, opts.Width)
		}
		cfg.Width = opts.Width
	}
	if isSet("padding") {
		cfg.Padding = opts.Padding
	}
	if isSet("contrast") {
		cfg.Adjust.Contrast = opts.Contrast
	}
	if isSet("brightness") {
		cfg.Adjust.Brightness = opts.Brightness
	}
	if isSet("gamma") {
		cfg.Adjust.Gamma = opts.Gamma
	}
	cfg.Flip = cfg.Flip || opts.Flip
	cfg.Crop = cfg.Crop || opts.Crop
	cfg.Square = cfg.Square || opts.Square
	cfg.SuppressHighlights = cfg.SuppressHighlights || opts.SuppressHighlights
	cfg.Color = cfg.Color || opts.Color
	cfg.Fit = cfg.Fit || opts.Fit
	return cfg, nil
}

// terminalWidth returns the column count of the terminal on f, or 0 when f
// is not a terminal.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// fitWidth turns a terminal column count into a sample width. Square cells
// take two columns each.
func fitWidth(columns int, square bool) int {
	if square {
		return columns / 2
	}
	return columns
}

// run converts one image and writes it to stdout, and to a text file when
// asked. Nothing is written when any step fails.
func run(opts *cliOptions, isSet func(long string) bool, stdout io.Writer, debug bool) error {
	cfg, err := settings(opts, isSet)
	if err != nil {
		return err
	}
	if cfg.Fit {
		if cols := terminalWidth(os.Stdout); cols > 0 {
			cfg.Width = fitWidth(cols, cfg.Square)
		} else if debug {
			log.Printf("[DEBUG] stdout is not a terminal, keeping configured width")
		}
	}

	path, err := config.ResolveInput(opts.Input)
	if err != nil {
		return err
	}
	convOpts, err := cfg.Options()
	if err != nil {
		return err
	}
	if debug {
		log.Printf("[DEBUG] converting %s: width=%d padding=%d flip=%v crop=%v square=%v ramp=%q",
			path, convOpts.Width, convOpts.Padding, convOpts.Flip, convOpts.Crop, convOpts.Square, convOpts.Ramp.String())
	}

	start := time.Now()
	buf, err := imaging.LoadBuffer(imaging.NewImageCache(), path, cfg.Adjust)
	if err != nil {
		return err
	}
	grid, err := ascii.Convert(buf, convOpts)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("[DEBUG] rendered %dx%d grid in %s", grid.Rows(), grid.Cols(), time.Since(start))
	}

	if opts.Output {
		txt := output.TextPath(path)
		if err := output.WriteFile(txt, grid.Lines()); err != nil {
			return err
		}
		if debug {
			log.Printf("[DEBUG] wrote %s", txt)
		}
	}

	lines := grid.Lines()
	if cfg.Color {
		lines = output.Colorize(grid, termenv.ColorProfile())
	}
	if err := output.WriteLines(stdout, lines); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
