// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/seedtone/seedtone"
	"github.com/seedtone/seedtone/theme"
)

// fileConfig is the TOML form of a [theme.Config]. Role override
// keys use the role names (e.g. "onPrimaryContainer") and hex
// color values.
type fileConfig struct {
	Brightness string            `toml:"brightness"`
	Harmony    *fileHarmony      `toml:"harmony"`
	Overrides  map[string]string `toml:"overrides"`
}

type fileHarmony struct {
	Kind  string  `toml:"kind"`
	Angle float32 `toml:"angle"`
	Steps int     `toml:"steps"`
}

// buildConfig assembles the scheme config from the config file (if
// given) and the command line flags, with explicit flags winning.
func buildConfig(path string, dark, darkSet bool, kind string, angle float32, steps int) (*theme.Config, error) {
	cfg := &theme.Config{}
	if path != "" {
		fc, err := loadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fc
	}
	if darkSet {
		cfg.Brightness = theme.Light
		if dark {
			cfg.Brightness = theme.Dark
		}
	}
	if kind != "" {
		var k theme.HarmonyKind
		if err := k.SetString(kind); err != nil {
			return nil, err
		}
		cfg.Harmony = &theme.Harmony{Kind: k, Angle: angle, Steps: steps}
	}
	return cfg, nil
}

func loadConfig(path string) (*theme.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := fileConfig{}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg := &theme.Config{}
	switch fc.Brightness {
	case "", "light":
	case "dark":
		cfg.Brightness = theme.Dark
	default:
		return nil, fmt.Errorf("%s: %q is not a valid brightness", path, fc.Brightness)
	}

	if fc.Harmony != nil {
		har := theme.DefaultHarmony()
		if fc.Harmony.Kind != "" {
			if err := har.Kind.SetString(fc.Harmony.Kind); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		if fc.Harmony.Angle != 0 {
			har.Angle = fc.Harmony.Angle
		}
		if fc.Harmony.Steps != 0 {
			har.Steps = fc.Harmony.Steps
		}
		cfg.Harmony = &har
	}

	if len(fc.Overrides) > 0 {
		cfg.Overrides = make(map[theme.Role]color.RGBA, len(fc.Overrides))
		for name, hex := range fc.Overrides {
			var role theme.Role
			if err := role.SetString(name); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			c, err := seedtone.FromHex(hex)
			if err != nil {
				return nil, fmt.Errorf("%s: role %s: %w", path, name, err)
			}
			cfg.Overrides[role] = c
		}
	}
	return cfg, nil
}
