package pixel

import "image/color"

// Threshold is the packed 0xRRGGBB value from which on labels are drawn in black.
//
// This compares the raw packed value, not the luminance, so a bright color with a
// low red channel (#00FF00) still gets a white label.
const Threshold = 0xAAAAAA

var (
	Off = Mono{false}
	On  = Mono{true}
)

// Mono represents a 1-bit monochrome color, On is white and Off is black.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func (c Mono) String() string {
	if c.On {
		return "white"
	}
	return "black"
}

// Packed returns the 24-bit 0xRRGGBB value of c, alpha is ignored.
func Packed(c color.Color) uint32 {
	if h, ok := c.(Hex); ok {
		return h.Value()
	}
	r, g, b, _ := c.RGBA()
	return (r>>8)<<16 | (g>>8)<<8 | b>>8
}

// Contrast returns the label color for text drawn on top of c.
func Contrast(c color.Color) Mono {
	return Mono{On: Packed(c) < Threshold}
}
