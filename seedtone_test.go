// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seedtone

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seedtone/seedtone/hsl"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#4285f4")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{66, 133, 244, 255}, c)

	c, err = FromHex("4285F4")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{66, 133, 244, 255}, c)

	c, err = FromHex("#f00")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromHex("#4285f480")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{66, 133, 244, 128}, c)

	_, err = FromHex("#12345")
	assert.Error(t, err)

	assert.Equal(t, color.RGBA{66, 133, 244, 255}, MustFromHex("#4285f4"))
	assert.Panics(t, func() { MustFromHex("bad") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#4285f4", AsHex(color.RGBA{66, 133, 244, 255}))
	assert.Equal(t, "#4285f480", AsHex(color.RGBA{66, 133, 244, 128}))
	assert.Equal(t, "#000000", AsHex(color.RGBA{0, 0, 0, 255}))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "rgba(66, 133, 244, 255)", AsString(color.RGBA{66, 133, 244, 255}))
	assert.Equal(t, "hsl(120, 0.5, 0.5)", AsString(hsl.New(120, 0.5, 0.5)))
}

func TestAsRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{}, AsRGBA(nil))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, AsRGBA(color.NRGBA{255, 0, 0, 255}))
}
