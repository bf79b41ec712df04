package swatch

import (
	"errors"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultFont is the label font looked up when [Config.Font] is empty.
const DefaultFont = "RobotoMono.ttf"

// LoadFont reads and parses a TrueType font file.
func LoadFont(name string) (*truetype.Font, error) {
	if name == "" {
		return nil, &FontError{Name: name, Err: os.ErrNotExist}
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, &FontError{Name: name, Err: err}
	}
	f, err := freetype.ParseFont(b)
	if err != nil {
		return nil, &FontError{Name: name, Err: err}
	}
	return f, nil
}

// FallbackFont returns the built-in Go Mono font.
func FallbackFont() *truetype.Font {
	f, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		// The embedded font is known good.
		panic(err)
	}
	return f
}

// LoadFace returns a face for the named font at size pixels.
//
// The returned face is always usable: if the font can't be loaded, the face uses
// [FallbackFont] and the error (a *[FontError]) tells why.
func LoadFace(name string, size float64) (font.Face, error) {
	f, err := LoadFont(name)
	if err != nil {
		f = FallbackFont()
	}
	return newFace(f, size), err
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// IsFontError reports whether err is a recoverable font error.
func IsFontError(err error) bool {
	var fe *FontError
	return errors.As(err, &fe)
}
