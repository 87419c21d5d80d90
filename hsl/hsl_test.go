// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tolEqual is the tolerance-based equality used for the float
// components of converted colors, which accumulate rounding
// error through the 8-bit and 16-bit representations.
func tolEqual(t *testing.T, want, have float32) {
	t.Helper()
	assert.InDelta(t, want, have, 0.001)
}

func TestHSL(t *testing.T) {
	assert.Equal(t, HSL{152, 0.61, 0.33, 1}, New(152, 0.61, 0.33))

	want := HSL{202.97872, 0.7382199, 0.5829694, 0.8980392}
	assert.Equal(t, want, Model.Convert(want))
	have := Model.Convert(color.RGBA{63, 150, 204, 229}).(HSL)
	tolEqual(t, want.H, have.H)
	tolEqual(t, want.S, have.S)
	tolEqual(t, want.L, have.L)
	tolEqual(t, want.A, have.A)

	r, g, b, a := want.RGBA()
	assert.Equal(t, uint32(0x3f3f), r)
	assert.Equal(t, uint32(0x9696), g)
	assert.Equal(t, uint32(0xcccc), b)
	assert.Equal(t, uint32(0xe5e5), a)

	assert.Equal(t, color.RGBA{63, 150, 204, 229}, want.AsRGBA())

	have = HSL{}
	have.SetUint32(r, g, b, a)
	tolEqual(t, want.H, have.H)
	tolEqual(t, want.S, have.S)
	tolEqual(t, want.L, have.L)
	tolEqual(t, want.A, have.A)

	have = HSL{}
	have.SetColor(want)
	tolEqual(t, want.H, have.H)
	tolEqual(t, want.S, have.S)
	tolEqual(t, want.L, have.L)
	tolEqual(t, want.A, have.A)

	assert.Equal(t, "hsl(213, 0.68, 0.45)", New(213, 0.68, 0.45).String())
}

func TestFromColor(t *testing.T) {
	h := FromColor(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, HSL{0, 1, 0.5, 1}, h)

	h = FromColor(color.RGBA{0, 204, 204, 255})
	tolEqual(t, 180, h.H)
	tolEqual(t, 1, h.S)
	tolEqual(t, 0.4, h.L)

	// achromatic colors have zero hue and saturation
	h = FromColor(color.RGBA{128, 128, 128, 255})
	assert.Equal(t, float32(0), h.H)
	assert.Equal(t, float32(0), h.S)

	h = FromColor(color.RGBA{})
	assert.Equal(t, HSL{}, h)
}

func TestAsRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 204, 204, 255}, New(180, 1, 0.4).AsRGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, New(0, 0, 1).AsRGBA())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, New(211, 0.73, 0).AsRGBA())

	// out-of-range hue wraps, saturation and lightness clamp
	assert.Equal(t, New(300, 1, 0.5).AsRGBA(), New(-60, 1, 0.5).AsRGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, New(42, 0.3, 1.7).AsRGBA())
}

func TestWrapHue(t *testing.T) {
	tolEqual(t, 0, WrapHue(360))
	tolEqual(t, 30, WrapHue(390))
	tolEqual(t, 330, WrapHue(-30))
	tolEqual(t, 180, WrapHue(180))
}
