// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"

	"goki.dev/mat32/v2"
)

// WithLightness returns a color with its HSL lightness
// set to the given absolute value (0-1, ranges enforced),
// keeping hue, saturation, and alpha.
func WithLightness(c color.Color, lightness float32) color.RGBA {
	h := FromColor(c)
	h.L = mat32.Clamp(lightness, 0, 1)
	return h.AsRGBA()
}

// Lighten returns a color that is lighter by the
// given absolute HSL lightness amount (0-1, ranges enforced).
func Lighten(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.L = mat32.Clamp(h.L+amount, 0, 1)
	return h.AsRGBA()
}

// Darken returns a color that is darker by the
// given absolute HSL lightness amount (0-1, ranges enforced).
func Darken(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.L = mat32.Clamp(h.L-amount, 0, 1)
	return h.AsRGBA()
}

// Spin returns a color with its hue rotated by the
// given amount in degrees, wrapped around the color wheel.
func Spin(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.H = WrapHue(h.H + amount)
	return h.AsRGBA()
}

// Luminance returns the WCAG 2 relative luminance of the
// given color, ranging from 0 (darkest) to 1 (lightest).
func Luminance(c color.Color) float32 {
	r, g, b, _ := c.RGBA()
	rl := gammaExpand(float32(r) / 0xffff)
	gl := gammaExpand(float32(g) / 0xffff)
	bl := gammaExpand(float32(b) / 0xffff)
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// gammaExpand linearizes an sRGB channel value.
func gammaExpand(v float32) float32 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return mat32.Pow((v+0.055)/1.055, 2.4)
}

// IsLight returns whether the given color is light
// (has a relative luminance greater than 0.5).
func IsLight(c color.Color) bool {
	return Luminance(c) > 0.5
}

// IsDark returns whether the given color is dark
// (has a relative luminance of 0.5 or less).
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to
// contrast the given color: black on light colors and
// white on dark ones, based on [Luminance].
func ContrastColor(c color.Color) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
