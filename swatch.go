// Package swatch renders color codes into an image of labeled color swatches.
//
// The swatches are laid out in a roughly square grid, every swatch is a filled
// square with its color code written in the bottom left corner:
//
//	err := swatch.Render([]string{"#1F1F28", "#DCD7BA", "#72A7BC"}, &swatch.Config{
//		Scale:  2,
//		Output: "palette.png",
//	})
package swatch

import (
	"image"
	"image/color"
	"log"

	"github.com/BeatGlow/swatch/draw"
	"github.com/BeatGlow/swatch/pixel"
)

// Defaults for zero valued [Config] fields.
const (
	DefaultSwatchSize = 80
	DefaultScale      = 1
	DefaultOutput     = "color_swatches_with_codes.png"
)

// Config is the renderer configuration.
type Config struct {
	// SwatchSize is the width and height of each swatch in pixels, before scaling.
	SwatchSize int

	// Scale multiplies the swatch size, padding and label size.
	Scale int

	// Output is the image file path, the extension selects the format.
	Output string

	// Display opens the image with Viewer after it has been saved.
	Display bool

	// Font is the TrueType font file used for labels.
	Font string

	// Viewer used if Display is set, defaults to SystemViewer.
	Viewer Viewer

	// Logger receives warnings, defaults to log.Default().
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	var config Config
	if c != nil {
		config = *c
	}
	if config.SwatchSize == 0 {
		config.SwatchSize = DefaultSwatchSize
	}
	if config.Scale == 0 {
		config.Scale = DefaultScale
	}
	if config.Output == "" {
		config.Output = DefaultOutput
	}
	if config.Font == "" {
		config.Font = DefaultFont
	}
	if config.Viewer == nil {
		config.Viewer = SystemViewer
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return config
}

// Draw renders the swatches for codes and returns the canvas. It does not write
// any file; config.Output and config.Display are ignored.
func Draw(codes []string, config *Config) (*image.RGBA, error) {
	c := config.withDefaults()

	layout, err := NewLayout(len(codes), c.SwatchSize, c.Scale)
	if err != nil {
		return nil, &RenderError{Op: "layout", Err: err}
	}

	hexes, err := pixel.ParseHexes(codes)
	if err != nil {
		return nil, &RenderError{Op: "parse", Err: err}
	}

	face, err := LoadFace(c.Font, layout.FontSize())
	if err != nil {
		c.Logger.Printf("warning: %v, using default font", err)
	}
	defer face.Close()

	img := image.NewRGBA(layout.Bounds())
	draw.Fill(img, color.White)
	for i, pt := range layout.Cells() {
		h := hexes[i]
		draw.Square(img, pt, layout.Size, h)
		draw.Text(img, pt.Add(layout.LabelOffset()), h.String(), face, h.Label())
	}
	return img, nil
}

// Render draws the swatches for codes and saves them to config.Output.
//
// A nil config uses the defaults. If config.Display is set the saved image is
// opened with config.Viewer; failing to display is logged, not returned.
func Render(codes []string, config *Config) error {
	c := config.withDefaults()

	img, err := Draw(codes, &c)
	if err != nil {
		return err
	}

	format, err := FormatFromPath(c.Output)
	if err != nil {
		return &RenderError{Op: "encode", Path: c.Output, Err: err}
	}
	if err = Save(c.Output, img, format); err != nil {
		return &RenderError{Op: "save", Path: c.Output, Err: err}
	}

	if c.Display {
		if err = c.Viewer.Show(c.Output); err != nil {
			c.Logger.Printf("warning: failed to display %s: %v", c.Output, err)
		}
	}
	return nil
}
