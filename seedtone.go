// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seedtone derives tonal swatches, color-harmony palettes,
// and Material Design 3 color schemes from a single seed color.
//
// The swatch package generates the ten-shade ladders and the
// monochromatic, analogous, and complementary harmonies; the theme
// package assembles the full role-to-color schemes. This root
// package holds the shared parsing and formatting helpers.
package seedtone

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromHex parses the given hex color string and returns the
// resulting color. It accepts 3, 6, and 8 digit forms, with an
// optional leading #. It returns any resulting error; see
// [MustFromHex] for a version that does not return an error.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	switch len(hex) {
	case 3:
		format := "%1x%1x%1x"
		fmt.Sscanf(hex, format, &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		format := "%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b)
	case 8:
		format := "%02x%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("seedtone.FromHex: could not process: " + hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex parses the given hex color string and returns the
// resulting color. It panics on any resulting error; see [FromHex]
// for a version that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("seedtone.MustFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the color as a standard 2-digit lowercase hex
// string with a leading #. The alpha digits are included only
// when the color is not fully opaque.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r.R, r.G, r.B, r.A)
}

// AsString returns the given color as a string, using its String
// method if it exists and formatting it as rgba(r, g, b, a)
// otherwise, with 8-bit channel values.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}
