// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"strconv"
)

// Role is a semantic color slot of a [Scheme]. Every role of a
// generated scheme maps to exactly one color.
type Role int32

const (
	Primary Role = iota
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer
	Tertiary
	OnTertiary
	TertiaryContainer
	OnTertiaryContainer
	Error
	OnError
	ErrorContainer
	OnErrorContainer
	Background
	OnBackground
	Surface
	OnSurface
	SurfaceBright
	SurfaceDim
	SurfaceContainerLowest
	SurfaceContainerLow
	SurfaceContainer
	SurfaceContainerHigh
	SurfaceContainerHighest
	SurfaceVariant
	OnSurfaceVariant
	Outline
	OutlineVariant
	InverseSurface
	OnInverseSurface
	InversePrimary
	Shadow
	Scrim
	PrimaryFixed
	PrimaryFixedDim
	OnPrimaryFixed
	OnPrimaryFixedVariant
	SecondaryFixed
	SecondaryFixedDim
	OnSecondaryFixed
	OnSecondaryFixedVariant
	TertiaryFixed
	TertiaryFixedDim
	OnTertiaryFixed
	OnTertiaryFixedVariant

	// RolesN is the number of valid [Role] values.
	RolesN
)

var roleNames = [RolesN]string{
	"primary",
	"onPrimary",
	"primaryContainer",
	"onPrimaryContainer",
	"secondary",
	"onSecondary",
	"secondaryContainer",
	"onSecondaryContainer",
	"tertiary",
	"onTertiary",
	"tertiaryContainer",
	"onTertiaryContainer",
	"error",
	"onError",
	"errorContainer",
	"onErrorContainer",
	"background",
	"onBackground",
	"surface",
	"onSurface",
	"surfaceBright",
	"surfaceDim",
	"surfaceContainerLowest",
	"surfaceContainerLow",
	"surfaceContainer",
	"surfaceContainerHigh",
	"surfaceContainerHighest",
	"surfaceVariant",
	"onSurfaceVariant",
	"outline",
	"outlineVariant",
	"inverseSurface",
	"onInverseSurface",
	"inversePrimary",
	"shadow",
	"scrim",
	"primaryFixed",
	"primaryFixedDim",
	"onPrimaryFixed",
	"onPrimaryFixedVariant",
	"secondaryFixed",
	"secondaryFixedDim",
	"onSecondaryFixed",
	"onSecondaryFixedVariant",
	"tertiaryFixed",
	"tertiaryFixedDim",
	"onTertiaryFixed",
	"onTertiaryFixedVariant",
}

var roleValues = func() map[string]Role {
	m := make(map[string]Role, RolesN)
	for r := Primary; r < RolesN; r++ {
		m[roleNames[r]] = r
	}
	return m
}()

// IsValid returns whether the role is one of the defined values.
func (r Role) IsValid() bool {
	return r >= 0 && r < RolesN
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	if !r.IsValid() {
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// SetString sets the role from its string representation
// (e.g. "onPrimaryContainer"), returning an error if the
// string does not name a role.
func (r *Role) SetString(s string) error {
	v, ok := roleValues[s]
	if !ok {
		return fmt.Errorf("%q is not a valid theme color role", s)
	}
	*r = v
	return nil
}

// Roles returns all valid [Role] values, in declaration order.
func Roles() []Role {
	rs := make([]Role, RolesN)
	for i := range rs {
		rs[i] = Role(i)
	}
	return rs
}
