// Package render scales a logo onto a square favicon canvas.
//
// The logo keeps its aspect ratio: its longer side is mapped onto the inner
// square left after padding, and the result is centred on a canvas filled
// with the background colour.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

var (
	ErrInvalidSize    = errors.New("render: size must be positive")
	ErrInvalidPadding = errors.New("render: padding must be in [0, 0.5)")
	ErrEmptySource    = errors.New("render: source image is empty")
)

// Options controls how a source is placed on the canvas.
type Options struct {
	// Padding is the fraction of the canvas side reserved as border on
	// each edge.
	Padding float64
	// Background fills the canvas. Nil means fully transparent.
	Background color.Color
	// Filter selects the resampling filter; empty means Lanczos.
	Filter Filter
}

// Render returns a new size x size image with src scaled and centred on it.
// src is never modified.
func Render(src image.Image, size int, opts Options) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if err := CheckPadding(opts.Padding); err != nil {
		return nil, err
	}
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptySource
	}
	scale, err := opts.Filter.scaler()
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), Inner(size, opts.Padding))

	bg := opts.Background
	if bg == nil {
		bg = color.Transparent
	}
	canvas := imaging.New(size, size, bg)

	scaled := scale(src, w, h)
	x, y := (size-w)/2, (size-h)/2
	draw.Draw(canvas, image.Rect(x, y, x+w, y+h), scaled, scaled.Bounds().Min, draw.Over)
	return canvas, nil
}

// CheckPadding reports whether p is a usable padding ratio.
func CheckPadding(p float64) error {
	if math.IsNaN(p) || p < 0 || p >= 0.5 {
		return fmt.Errorf("%w: %g", ErrInvalidPadding, p)
	}
	return nil
}

// Inner is the side of the square left for content once padding is taken
// from both edges. It is never less than 1.
func Inner(size int, padding float64) int {
	// 1e-9 absorbs float error in products such as 100*(1-2*0.1).
	inner := int(math.Floor(float64(size)*(1-2*padding) + 1e-9))
	return max(inner, 1)
}

// Fit maps the longer side of a w x h image onto inner and scales the
// shorter side proportionally, rounding down. Neither result is below 1.
func Fit(w, h, inner int) (int, int) {
	if w <= 0 || h <= 0 {
		return inner, inner
	}
	var sw, sh int
	if w > h {
		sw, sh = inner, inner*h/w
	} else {
		sw, sh = inner*w/h, inner
	}
	return max(sw, 1), max(sh, 1)
}
