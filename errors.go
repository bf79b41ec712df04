package swatch

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrNoInput = errors.New("swatch: no color codes")
	ErrLayout  = errors.New("swatch: swatch size and scale must be positive")
	ErrFormat  = errors.New("swatch: unsupported image format")
)

// RenderError is returned by [Render] and [Draw], it records the failed step and
// the output path (if any) next to the cause.
type RenderError struct {
	Op   string // "layout", "parse", "encode" or "save"
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// FontError reports a label font that could not be used. It is never fatal, the
// renderer continues with the built-in font.
type FontError struct {
	Name string
	Err  error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("swatch: font %q: %v", e.Name, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
