package swatch

import (
	"fmt"
	"image"
	"math"
)

// MaxPixels is the largest canvas, in pixels, a layout may describe.
const MaxPixels = 1 << 28

// Layout is the grid geometry for a number of swatches.
//
// All lengths are in output pixels, so they already include the scale factor.
type Layout struct {
	// Count is the number of swatches.
	Count int

	// Columns and Rows of the grid, Columns is ceil(sqrt(Count)).
	Columns int
	Rows    int

	// Size is the scaled swatch width and height.
	Size int

	// Padding between swatches and around the edges.
	Padding int

	// Scale factor the layout was computed with.
	Scale int
}

// NewLayout computes the grid for count swatches of swatchSize pixels at scale.
func NewLayout(count, swatchSize, scale int) (Layout, error) {
	if count <= 0 {
		return Layout{}, ErrNoInput
	}
	if swatchSize <= 0 || scale <= 0 {
		return Layout{}, fmt.Errorf("%w (size %d, scale %d)", ErrLayout, swatchSize, scale)
	}

	columns := int(math.Ceil(math.Sqrt(float64(count))))
	for columns*columns < count {
		columns++
	}
	for columns > 1 && (columns-1)*(columns-1) >= count {
		columns--
	}

	rows := (count + columns - 1) / columns

	// Checked in floating point so that huge values can't wrap around.
	var (
		size   = float64(swatchSize) * float64(scale)
		step   = size + 10*float64(scale)
		width  = float64(columns)*step + 10*float64(scale)
		height = float64(rows)*step + 10*float64(scale)
	)
	if width*height > MaxPixels {
		return Layout{}, fmt.Errorf("%w (size %d, scale %d: %.0fx%.0f canvas exceeds %d pixels)",
			ErrLayout, swatchSize, scale, width, height, MaxPixels)
	}

	return Layout{
		Count:   count,
		Columns: columns,
		Rows:    rows,
		Size:    swatchSize * scale,
		Padding: 10 * scale,
		Scale:   scale,
	}, nil
}

// Step is the distance between the top left corners of two adjacent swatches.
func (l Layout) Step() int {
	return l.Size + l.Padding
}

// Width of the canvas.
func (l Layout) Width() int {
	return l.Columns*l.Step() + l.Padding
}

// Height of the canvas.
func (l Layout) Height() int {
	return l.Rows*l.Step() + l.Padding
}

// Bounds is the canvas bounding box.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Width(), l.Height())
}

// Cells returns the top left corner of every swatch in drawing order.
func (l Layout) Cells() []image.Point {
	var (
		cells = make([]image.Point, 0, l.Count)
		width = l.Width()
		x, y  = l.Padding, l.Padding
	)
	for i := 0; i < l.Count; i++ {
		cells = append(cells, image.Pt(x, y))
		x += l.Step()
		if x > width-l.Size-l.Padding {
			x = l.Padding
			y += l.Step()
		}
	}
	return cells
}

// Cell returns the swatch rectangle at index i.
func (l Layout) Cell(i int) image.Rectangle {
	pt := image.Pt(l.Padding+(i%l.Columns)*l.Step(), l.Padding+(i/l.Columns)*l.Step())
	return image.Rectangle{Min: pt, Max: pt.Add(image.Pt(l.Size, l.Size))}
}

// LabelOffset is the position of the label relative to the swatch corner.
func (l Layout) LabelOffset() image.Point {
	return image.Pt(5*l.Scale, l.Size-20*l.Scale)
}

// FontSize is the label font size in pixels.
func (l Layout) FontSize() float64 {
	return math.Max(1, math.Round(10*float64(l.Scale)))
}

func (l Layout) String() string {
	return fmt.Sprintf("%d swatches in %dx%d grid, %dx%d pixels", l.Count, l.Columns, l.Rows, l.Width(), l.Height())
}
