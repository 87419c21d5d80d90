// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seedtone/seedtone/theme"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
brightness = "dark"

[harmony]
kind = "monochromatic"
steps = 5

[overrides]
primary = "#ff0000"
onPrimary = "#ffffff"
`)
	cfg, err := loadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, theme.Dark, cfg.Brightness)
	assert.NotNil(t, cfg.Harmony)
	assert.Equal(t, theme.HarmonyMonochromatic, cfg.Harmony.Kind)
	assert.Equal(t, 5, cfg.Harmony.Steps)
	assert.Equal(t, map[theme.Role]color.RGBA{
		theme.Primary:   {255, 0, 0, 255},
		theme.OnPrimary: {255, 255, 255, 255},
	}, cfg.Overrides)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	assert.NoError(t, err)
	assert.Equal(t, theme.Light, cfg.Brightness)
	assert.Nil(t, cfg.Harmony)
	assert.Nil(t, cfg.Overrides)

	// unset harmony fields fall back to the defaults
	cfg, err = loadConfig(writeConfig(t, "[harmony]\nkind = \"analogous\"\n"))
	assert.NoError(t, err)
	assert.Equal(t, theme.DefaultHarmony(), *cfg.Harmony)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "brightness = \"dim\"\n"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "[overrides]\nnotARole = \"#fff\"\n"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "[overrides]\nprimary = \"#12345\"\n"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "[harmony]\nkind = \"triadic\"\n"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
