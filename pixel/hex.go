package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Errors
var (
	ErrMalformed = errors.New("pixel: malformed color code")
)

// Hex is a color code in the form "#RRGGBB".
//
// The code is kept verbatim, so it can be printed as the swatch label.
type Hex string

// ParseHex validates a color code. Both upper and lower case digits are accepted.
func ParseHex(s string) (Hex, error) {
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("%w %q: expected #RRGGBB", ErrMalformed, s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return "", fmt.Errorf("%w %q: invalid hex digits", ErrMalformed, s)
	}
	return Hex(s), nil
}

// ParseHexes validates all codes, the first malformed code is returned as error.
func ParseHexes(codes []string) ([]Hex, error) {
	out := make([]Hex, 0, len(codes))
	for i, code := range codes {
		h, err := ParseHex(code)
		if err != nil {
			return nil, fmt.Errorf("code %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}

func (h Hex) String() string {
	return string(h)
}

// Value is the packed 0xRRGGBB value, zero if h is not a valid code.
func (h Hex) Value() uint32 {
	if len(h) != 7 {
		return 0
	}
	v, err := strconv.ParseUint(string(h[1:]), 16, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// RGBA converts h to an opaque color; invalid codes are black.
func (h Hex) RGBA() (r, g, b, a uint32) {
	return h.Color().RGBA()
}

// Color converts h to a [color.RGBA].
func (h Hex) Color() color.RGBA {
	if len(h) != 7 {
		return color.RGBA{A: 0xff}
	}
	c, err := colorful.Hex(string(h))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Label is the color of the text drawn on top of a swatch filled with h.
func (h Hex) Label() Mono {
	return Contrast(h)
}

// Interface checks.
var (
	_ color.Color = Hex("")
	_ color.Color = Mono{}
)
