package draw

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Text draws s with the top of the face's ascent at pt, and returns the
// position of the dot after the last glyph.
func Text(dst Image, pt image.Point, s string, face font.Face, c color.Color) fixed.Point26_6 {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(pt.X), Y: fixed.I(pt.Y) + face.Metrics().Ascent},
	}
	d.DrawString(s)
	return d.Dot
}

// TextBounds returns the bounding box of s drawn by [Text] at pt.
func TextBounds(pt image.Point, s string, face font.Face) image.Rectangle {
	dot := fixed.Point26_6{X: fixed.I(pt.X), Y: fixed.I(pt.Y) + face.Metrics().Ascent}
	b, _ := font.BoundString(face, s)
	return image.Rect(
		(dot.X + b.Min.X).Floor(), (dot.Y + b.Min.Y).Floor(),
		(dot.X + b.Max.X).Ceil(), (dot.Y + b.Max.Y).Ceil(),
	)
}
