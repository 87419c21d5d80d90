// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	assert.Equal(t, color.RGBA{153, 153, 255, 255}, Lighten(color.RGBA{0, 0, 255, 255}, 0.3))
	assert.Equal(t, color.RGBA{0, 0, 102, 255}, Darken(color.RGBA{0, 0, 255, 255}, 0.3))

	assert.Equal(t, color.RGBA{153, 0, 0, 255}, WithLightness(color.RGBA{255, 0, 0, 255}, 0.3))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, WithLightness(color.RGBA{255, 0, 0, 255}, 4))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, WithLightness(color.RGBA{255, 0, 0, 255}, -1))

	assert.Equal(t, color.RGBA{105, 30, 116, 255}, Spin(color.RGBA{30, 85, 116, 255}, 91))
	assert.Equal(t, color.RGBA{0, 255, 255, 255}, Spin(color.RGBA{255, 0, 0, 255}, 180))
	assert.Equal(t, color.RGBA{0, 255, 255, 255}, Spin(color.RGBA{255, 0, 0, 255}, -180))
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1, Luminance(color.RGBA{255, 255, 255, 255}), 0.0001)
	assert.InDelta(t, 0, Luminance(color.RGBA{0, 0, 0, 255}), 0.0001)
	assert.InDelta(t, 0.2126, Luminance(color.RGBA{255, 0, 0, 255}), 0.0001)
	assert.InDelta(t, 0.9278, Luminance(color.RGBA{255, 255, 0, 255}), 0.0001)
	assert.InDelta(t, 0.2159, Luminance(color.RGBA{128, 128, 128, 255}), 0.001)
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ContrastColor(color.RGBA{87, 32, 65, 255}))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ContrastColor(color.RGBA{255, 255, 0, 255}))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ContrastColor(color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ContrastColor(color.RGBA{0, 0, 0, 255}))

	// the middle gray has a relative luminance well below 0.5,
	// so it still takes a white contrast color
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ContrastColor(color.RGBA{128, 128, 128, 255}))

	assert.True(t, IsLight(color.RGBA{255, 255, 0, 255}))
	assert.False(t, IsLight(color.RGBA{128, 128, 128, 255}))
	assert.True(t, IsDark(color.RGBA{17, 38, 91, 255}))
	assert.False(t, IsDark(color.RGBA{178, 229, 203, 255}))
}
