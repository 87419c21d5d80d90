// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/seedtone/seedtone/swatch"
)

// HarmonyKind selects the harmony strategy used to derive the
// secondary and tertiary seed colors from the primary seed.
type HarmonyKind int32

const (
	// HarmonyAnalogous spreads hues symmetrically around the seed.
	HarmonyAnalogous HarmonyKind = iota

	// HarmonyComplementary pairs the seed with its opposite hue.
	HarmonyComplementary

	// HarmonyMonochromatic varies only the lightness of the seed.
	HarmonyMonochromatic

	// HarmonyKindsN is the number of valid [HarmonyKind] values.
	HarmonyKindsN
)

var harmonyKindNames = [HarmonyKindsN]string{"analogous", "complementary", "monochromatic"}

// String implements [fmt.Stringer].
func (k HarmonyKind) String() string {
	if k < 0 || k >= HarmonyKindsN {
		return "HarmonyKind(" + strconv.Itoa(int(k)) + ")"
	}
	return harmonyKindNames[k]
}

// SetString sets the kind from its string representation,
// returning an error if the string does not name a kind.
func (k *HarmonyKind) SetString(s string) error {
	for i, n := range harmonyKindNames {
		if n == s {
			*k = HarmonyKind(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid harmony kind", s)
}

// Harmony configures how harmonic seed colors are generated.
// The zero value is not useful; use [DefaultHarmony] as the
// starting point.
type Harmony struct {

	// Kind is the harmony strategy.
	Kind HarmonyKind

	// Angle is the hue spread in degrees, used only by
	// [HarmonyAnalogous].
	Angle float32

	// Steps is the number of colors generated, used by
	// [HarmonyAnalogous] and [HarmonyMonochromatic].
	Steps int
}

// DefaultHarmony returns the harmony configuration used when a
// [Config] does not specify one: analogous, 30 degrees, 3 steps.
func DefaultHarmony() Harmony {
	return Harmony{Kind: HarmonyAnalogous, Angle: 30, Steps: 3}
}

// Colors returns the harmonic colors for the given seed color,
// dispatching on [Harmony.Kind]. The first entry always relates
// most closely to the seed; see the swatch package for the per-kind
// semantics. Step count errors from the generators pass through.
func (h Harmony) Colors(seed color.RGBA) ([]color.RGBA, error) {
	switch h.Kind {
	case HarmonyAnalogous:
		return swatch.Analogous(seed, h.Steps, h.Angle)
	case HarmonyComplementary:
		return swatch.Complementary(seed), nil
	case HarmonyMonochromatic:
		return swatch.Monochromatic(seed, h.Steps)
	default:
		return nil, fmt.Errorf("unknown harmony kind %d", h.Kind)
	}
}
