// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme assembles complete Material Design 3 color schemes
// from a single seed color, using the swatch package for shade and
// harmony generation. All constructors are pure: they share no
// state and return freshly built values.
package theme

import (
	"image/color"
	"strconv"

	"goki.dev/mat32/v2"

	"github.com/seedtone/seedtone/hsl"
	"github.com/seedtone/seedtone/swatch"
)

// Brightness is the light or dark mode a scheme is generated for.
type Brightness int32

const (
	// Light generates a light-background scheme.
	Light Brightness = iota

	// Dark generates a dark-background scheme.
	Dark
)

// String implements [fmt.Stringer].
func (b Brightness) String() string {
	switch b {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "Brightness(" + strconv.Itoa(int(b)) + ")"
}

// Config configures scheme generation. The zero value generates a
// light scheme with the default harmony and no overrides.
type Config struct {

	// Brightness is the mode the scheme is generated for.
	Brightness Brightness

	// Harmony configures the derivation of the secondary and
	// tertiary seed colors. nil means [DefaultHarmony].
	Harmony *Harmony

	// Overrides replace the generated color for the given roles.
	// Overrides apply after all defaults are computed, so
	// overriding a role never changes any other role.
	Overrides map[Role]color.RGBA
}

// WithBrightness returns a copy of the config with the given
// brightness, keeping the harmony and overrides.
func (c Config) WithBrightness(b Brightness) Config {
	c.Brightness = b
	return c
}

// Scheme is a total mapping from every [Role] to a color, generated
// for one brightness. It is built once and never mutated.
type Scheme struct {

	// Brightness is the mode the scheme was generated for.
	Brightness Brightness

	// Colors maps every role to its color.
	Colors map[Role]color.RGBA
}

// Color returns the color of the given role.
func (s *Scheme) Color(r Role) color.RGBA {
	return s.Colors[r]
}

// Schemes is a light and dark [Scheme] pair generated from the same
// seed color and harmony configuration.
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}

	// Material 3 baseline error reds.
	errorLight = color.RGBA{179, 38, 30, 255}
	errorDark  = color.RGBA{242, 184, 181, 255}
)

// NewScheme generates the [Scheme] for the given seed color and
// config. A nil config means the zero [Config]. The only error
// condition is an invalid harmony step count.
func NewScheme(seed color.RGBA, cfg *Config) (*Scheme, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	har := DefaultHarmony()
	if cfg.Harmony != nil {
		har = *cfg.Harmony
	}
	harmonic, err := har.Colors(seed)
	if err != nil {
		return nil, err
	}

	dark := cfg.Brightness == Dark
	secondary := pick(harmonic, 1)
	tertiary := pick(harmonic, 2)

	surface := white
	if dark {
		surface = black
	}
	switch l := hsl.FromColor(seed).L; {
	case l < 0.2:
		surface = pick(harmonic, 1)
	case l > 0.8:
		surface = pick(harmonic, 2)
	}

	errSeed := errorLight
	inverseBase := black
	if dark {
		errSeed = errorDark
		inverseBase = white
	}

	primSw := swatch.New(seed)
	secSw := swatch.New(secondary)
	terSw := swatch.New(tertiary)
	errSw := swatch.New(errSeed)
	surfSw := swatch.New(surface)

	surfaceContainer := adjustSurfaceContainer(surface, cfg.Brightness)
	inverseSurface := blendOver(inverseBase, seed, 0.05)

	colors := map[Role]color.RGBA{
		Primary:            seed,
		OnPrimary:          hsl.ContrastColor(seed),
		PrimaryContainer:   primSw.Shades[700],
		OnPrimaryContainer: hsl.ContrastColor(primSw.Shades[700]),

		Secondary:            secondary,
		OnSecondary:          hsl.ContrastColor(secondary),
		SecondaryContainer:   secSw.Shades[700],
		OnSecondaryContainer: hsl.ContrastColor(secSw.Shades[700]),

		Tertiary:            tertiary,
		OnTertiary:          hsl.ContrastColor(tertiary),
		TertiaryContainer:   terSw.Shades[700],
		OnTertiaryContainer: hsl.ContrastColor(terSw.Shades[700]),

		Error:            errSeed,
		OnError:          hsl.ContrastColor(errSeed),
		ErrorContainer:   errSw.Shades[700],
		OnErrorContainer: hsl.ContrastColor(errSw.Shades[700]),

		Background:   surface,
		OnBackground: hsl.ContrastColor(surface),
		Surface:      surface,
		OnSurface:    hsl.ContrastColor(surface),

		SurfaceBright: surfSw.Shades[100],
		SurfaceDim:    surfSw.Shades[600],

		SurfaceContainerLowest:  surfSw.Shades[200],
		SurfaceContainerLow:     surfSw.Shades[300],
		SurfaceContainer:        surfaceContainer,
		SurfaceContainerHigh:    surfSw.Shades[700],
		SurfaceContainerHighest: surfSw.Shades[800],

		SurfaceVariant:   surfaceContainer,
		OnSurfaceVariant: hsl.ContrastColor(surfaceContainer),

		Outline:        surfSw.Shades[400],
		OutlineVariant: surfSw.Shades[200],

		InverseSurface:   inverseSurface,
		OnInverseSurface: hsl.ContrastColor(inverseBase),
		InversePrimary:   primSw.Shades[200],

		Shadow: black,
		Scrim:  black,

		PrimaryFixed:          primSw.Shades[100],
		PrimaryFixedDim:       primSw.Shades[200],
		OnPrimaryFixed:        primSw.Shades[900],
		OnPrimaryFixedVariant: primSw.Shades[700],

		SecondaryFixed:          secSw.Shades[100],
		SecondaryFixedDim:       secSw.Shades[200],
		OnSecondaryFixed:        secSw.Shades[900],
		OnSecondaryFixedVariant: secSw.Shades[700],

		TertiaryFixed:          terSw.Shades[100],
		TertiaryFixedDim:       terSw.Shades[200],
		OnTertiaryFixed:        terSw.Shades[900],
		OnTertiaryFixedVariant: terSw.Shades[700],
	}

	for role, c := range cfg.Overrides {
		if role.IsValid() {
			colors[role] = c
		}
	}

	return &Scheme{Brightness: cfg.Brightness, Colors: colors}, nil
}

// NewSchemes generates the light and dark [Scheme] pair for the
// given seed color. Both halves share the seed, harmony, and
// overrides of the given config; only the brightness differs.
func NewSchemes(seed color.RGBA, cfg *Config) (*Schemes, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	light, err := NewScheme(seed, ptr(cfg.WithBrightness(Light)))
	if err != nil {
		return nil, err
	}
	dark, err := NewScheme(seed, ptr(cfg.WithBrightness(Dark)))
	if err != nil {
		return nil, err
	}
	return &Schemes{Light: *light, Dark: *dark}, nil
}

func ptr(c Config) *Config {
	return &c
}

// pick returns the harmonic color at the given index, falling back
// to the last entry when the harmony produced fewer colors (e.g.
// complementary always yields 2, and index 2 falls back to the
// complement).
func pick(harmonic []color.RGBA, i int) color.RGBA {
	if i >= len(harmonic) {
		return harmonic[len(harmonic)-1]
	}
	return harmonic[i]
}

// adjustSurfaceContainer nudges the surface color to a container
// tone: slightly darker in light mode and slightly lighter in dark
// mode. Pure white and pure black surfaces map to fixed neutral
// grays instead, since nudging those would leave the container
// indistinguishable at one extreme.
func adjustSurfaceContainer(surface color.RGBA, b Brightness) color.RGBA {
	if surface == white || surface == black {
		if b == Dark {
			return hsl.New(0, 0, 0.07).AsRGBA()
		}
		return hsl.New(0, 0, 0.95).AsRGBA()
	}
	h := hsl.FromColor(surface)
	if b == Dark {
		h.L += 0.05
	} else {
		h.L -= 0.05
	}
	h.L = mat32.Clamp(h.L, 0, 1)
	return h.AsRGBA()
}

// blendOver composites fg at the given opacity over bg,
// both treated as fully opaque.
func blendOver(bg, fg color.RGBA, opacity float32) color.RGBA {
	mix := func(b, f uint8) uint8 {
		return uint8(mat32.Round((1-opacity)*float32(b) + opacity*float32(f)))
	}
	return color.RGBA{
		R: mix(bg.R, fg.R),
		G: mix(bg.G, fg.G),
		B: mix(bg.B, fg.B),
		A: 255,
	}
}
