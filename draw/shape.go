package draw

import (
	"image"
	"image/color"
)

// Box draws a filled rectangle, rect.Max is exclusive.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	Draw(dst, rect, image.NewUniform(c), image.Point{}, Src)
}

// Square draws a filled square with its top left corner at pt.
func Square(dst Image, pt image.Point, size int, c color.Color) {
	Box(dst, image.Rectangle{Min: pt, Max: pt.Add(image.Pt(size, size))}, c)
}

// Fill paints the whole image with a single color.
func Fill(dst Image, c color.Color) {
	Box(dst, dst.Bounds(), c)
}
