// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch generates tonal shade ladders and color-harmony
// palettes from a single base color. All computation happens in
// HSL space; see the hsl package.
package swatch

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/seedtone/seedtone/hsl"
)

var (
	// ErrInvalidShade indicates a shade index outside of [Keys].
	ErrInvalidShade = errors.New("invalid shade index")

	// ErrInvalidSteps indicates a step count too small for the
	// requested harmony.
	ErrInvalidSteps = errors.New("invalid step count")
)

// Keys are the shade indices of a [Swatch], from lightest (50)
// to darkest (900), in order.
var Keys = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// lightness is the fixed HSL lightness assigned to each shade.
// The 500 shade is the base color itself and has no entry.
var lightness = map[int]float32{
	50:  0.95,
	100: 0.88,
	200: 0.80,
	300: 0.70,
	400: 0.60,
	600: 0.40,
	700: 0.30,
	800: 0.20,
	900: 0.12,
}

// Swatch is a tonal ladder of ten shades generated from a base
// color. The 500 shade is always exactly the base color; the other
// shades keep its hue, saturation, and alpha and set the HSL
// lightness to a fixed value per shade, decreasing from 50 to 900.
type Swatch struct {

	// Key is the base color the swatch was generated from.
	Key color.RGBA

	// Shades maps each entry of [Keys] to its color.
	Shades map[int]color.RGBA
}

// New returns the [Swatch] for the given base color.
func New(base color.RGBA) Swatch {
	h := hsl.FromColor(base)
	sw := Swatch{
		Key:    base,
		Shades: make(map[int]color.RGBA, len(Keys)),
	}
	for _, key := range Keys {
		if key == 500 {
			sw.Shades[key] = base
			continue
		}
		sh := h
		sh.L = lightness[key]
		sw.Shades[key] = sh.AsRGBA()
	}
	return sw
}

// Shade returns the color of the given shade of the swatch.
// It returns [ErrInvalidShade] if the index is not one of [Keys].
func (sw Swatch) Shade(index int) (color.RGBA, error) {
	c, ok := sw.Shades[index]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %d", ErrInvalidShade, index)
	}
	return c, nil
}

// Shade returns the given shade of the swatch of the given base
// color. It returns [ErrInvalidShade] if the index is not one
// of [Keys].
func Shade(base color.RGBA, index int) (color.RGBA, error) {
	return New(base).Shade(index)
}

// AllShades returns all ten shades of the swatch of the given
// base color. The returned map is freshly constructed on every
// call, so callers may not mutate shared state through it.
func AllShades(base color.RGBA) map[int]color.RGBA {
	return New(base).Shades
}
