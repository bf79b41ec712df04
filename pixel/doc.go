// Package pixel implements the color codes drawn by the swatch renderer.
//
// A [Hex] is a "#RRGGBB" color code that satisfies Go's native [color.Color] interface,
// and [Mono] is the two-tone color used for the text label drawn on top of a swatch.
package pixel
