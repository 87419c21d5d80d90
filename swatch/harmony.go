// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"image/color"

	"goki.dev/mat32/v2"

	"github.com/seedtone/seedtone/hsl"
)

// Monochromatic returns the given number of colors sharing the hue,
// saturation, and alpha of the base color, with lightness following
// a quadratic ease-in from 0.15 to 0.85. The curve concentrates
// samples near the dark end, where lightness differences are easier
// to see. It returns [ErrInvalidSteps] if steps is less than 2.
func Monochromatic(base color.RGBA, steps int) ([]color.RGBA, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: monochromatic needs at least 2 steps, got %d", ErrInvalidSteps, steps)
	}
	h := hsl.FromColor(base)
	res := make([]color.RGBA, steps)
	for i := range res {
		t := float32(i) / float32(steps-1)
		sh := h
		sh.L = 0.15 + 0.7*t*t
		res[i] = sh.AsRGBA()
	}
	return res, nil
}

// Analogous returns the given number of colors with hues spread
// symmetrically around the base hue at the given angle in degrees,
// keeping saturation, lightness, and alpha. With 3 steps and a 30
// degree angle, the hue offsets are -30, 0, and +30. It returns
// [ErrInvalidSteps] if steps is less than 1.
func Analogous(base color.RGBA, steps int, angle float32) ([]color.RGBA, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: analogous needs at least 1 step, got %d", ErrInvalidSteps, steps)
	}
	h := hsl.FromColor(base)
	res := make([]color.RGBA, steps)
	for i := range res {
		offset := (float32(i) - float32(steps-1)/2) * angle
		sh := h
		sh.H = hsl.WrapHue(h.H + offset)
		res[i] = sh.AsRGBA()
	}
	return res, nil
}

// Complementary returns the base color followed by its complement,
// the color on the opposite side of the color wheel. The complement
// lightness is scaled away from the base's extreme: by 0.8 if the
// base lightness is above 0.5 and by 1.2 otherwise, clamped to [0, 1],
// so the two colors keep contrast between them.
func Complementary(base color.RGBA) []color.RGBA {
	h := hsl.FromColor(base)
	comp := h
	comp.H = hsl.WrapHue(h.H + 180)
	if h.L > 0.5 {
		comp.L = h.L * 0.8
	} else {
		comp.L = h.L * 1.2
	}
	comp.L = mat32.Clamp(comp.L, 0, 1)
	return []color.RGBA{base, comp.AsRGBA()}
}
