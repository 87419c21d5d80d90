// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides a hue, saturation, lightness color type
// and transforms on it. It is the computation basis for the
// swatch and theme packages; colors are stored as [color.RGBA]
// everywhere else and pass through HSL only as an intermediate.
package hsl

import (
	"fmt"
	"image/color"

	"goki.dev/mat32/v2"
)

// HSL represents a color in the hue, saturation, lightness color space,
// with an alpha channel. Hue is in degrees [0, 360), and saturation,
// lightness, and alpha are in [0, 1].
type HSL struct {

	// H is the hue in degrees, ranging from 0 to 360
	H float32

	// S is the saturation, ranging from 0 to 1
	S float32

	// L is the lightness, ranging from 0 to 1
	L float32

	// A is the alpha (opacity), ranging from 0 to 1
	A float32
}

// New returns a new fully opaque HSL color
// from the given hue, saturation, and lightness.
func New(h, s, l float32) HSL {
	return HSL{h, s, l, 1}
}

// Model is the [color.Model] for the [HSL] color type.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// FromColor returns an [HSL] representation
// of the given color.
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// SetColor sets the HSL values from the given color.
func (h *HSL) SetColor(c color.Color) {
	h.SetUint32(c.RGBA())
}

// SetUint32 sets the HSL values from the given 16-bit
// alpha-premultiplied RGBA channel values in the range 0 to 0xffff.
func (h *HSL) SetUint32(r, g, b, a uint32) {
	h.A = float32(a) / 0xffff
	if a == 0 {
		h.H, h.S, h.L = 0, 0, 0
		return
	}
	// undo the alpha premultiplication
	fr := float32(r) / float32(a)
	fg := float32(g) / float32(a)
	fb := float32(b) / float32(a)

	max := mat32.Max(fr, mat32.Max(fg, fb))
	min := mat32.Min(fr, mat32.Min(fg, fb))
	h.L = (max + min) / 2

	if max == min {
		// achromatic
		h.H = 0
		h.S = 0
		return
	}

	d := max - min
	if h.L > 0.5 {
		h.S = d / (2 - max - min)
	} else {
		h.S = d / (max + min)
	}
	switch max {
	case fr:
		h.H = (fg - fb) / d
		if fg < fb {
			h.H += 6
		}
	case fg:
		h.H = (fb-fr)/d + 2
	default:
		h.H = (fr-fg)/d + 4
	}
	h.H *= 60
}

// RGBA implements the [color.Color] interface, returning
// alpha-premultiplied 16-bit channel values.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := h.rgb()
	r = uint32(mat32.Round(fr * h.A * 0xffff))
	g = uint32(mat32.Round(fg * h.A * 0xffff))
	b = uint32(mat32.Round(fb * h.A * 0xffff))
	a = uint32(mat32.Round(h.A * 0xffff))
	return
}

// AsRGBA returns the color as a standard alpha-premultiplied
// 8-bit [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	fr, fg, fb := h.rgb()
	return color.RGBA{
		R: uint8(mat32.Round(fr * h.A * 255)),
		G: uint8(mat32.Round(fg * h.A * 255)),
		B: uint8(mat32.Round(fb * h.A * 255)),
		A: uint8(mat32.Round(h.A * 255)),
	}
}

// rgb returns the color converted to normalized red,
// green, and blue channel values in the range 0 to 1.
func (h HSL) rgb() (r, g, b float32) {
	s := mat32.Clamp(h.S, 0, 1)
	l := mat32.Clamp(h.L, 0, 1)
	hue := WrapHue(h.H)

	c := (1 - mat32.Abs(2*l-1)) * s
	x := c * (1 - mat32.Abs(mat32.Mod(hue/60, 2)-1))
	m := l - c/2

	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// String implements [fmt.Stringer].
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

// WrapHue returns the given hue in degrees wrapped
// to the range [0, 360).
func WrapHue(hue float32) float32 {
	m := mat32.Mod(hue, 360)
	if m < 0 {
		m += 360
	}
	return m
}
