// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command themegen renders the swatches, harmony palettes, and
// Material 3 color schemes that seedtone derives from a seed color.
package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/seedtone/seedtone"
	"github.com/seedtone/seedtone/swatch"
	"github.com/seedtone/seedtone/theme"
)

var out = termenv.NewOutput(os.Stdout)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each subcommand owns its own
// flag variables: pflag assigns defaults at registration time, so
// sharing a variable between two commands would let the later
// registration clobber the earlier default.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "themegen",
		Short: "derive color swatches, harmonies, and Material 3 schemes from a seed color",
	}
	root.PersistentFlags().StringP("seed", "s", "#4285f4", "seed color as a hex string")
	root.AddCommand(newSwatchCmd(), newHarmonyCmd(), newSchemeCmd())
	return root
}

func seedFlag(cmd *cobra.Command) (color.RGBA, error) {
	s, err := cmd.Flags().GetString("seed")
	if err != nil {
		return color.RGBA{}, err
	}
	return seedtone.FromHex(s)
}

func newSwatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swatch",
		Short: "print the ten-shade tonal swatch of the seed color",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seedFlag(cmd)
			if err != nil {
				return err
			}
			sw := swatch.New(seed)
			for _, key := range swatch.Keys {
				c := sw.Shades[key]
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s  %s\n", key, cell(c), seedtone.AsHex(c))
			}
			return nil
		},
	}
}

func newHarmonyCmd() *cobra.Command {
	var (
		kind  string
		angle float32
		steps int
	)
	cmd := &cobra.Command{
		Use:   "harmony",
		Short: "print a harmony palette generated from the seed color",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seedFlag(cmd)
			if err != nil {
				return err
			}
			var k theme.HarmonyKind
			if err := k.SetString(kind); err != nil {
				return err
			}
			if k == theme.HarmonyMonochromatic && !cmd.Flags().Changed("steps") {
				steps = 5
			}
			har := theme.Harmony{Kind: k, Angle: angle, Steps: steps}
			cs, err := har.Colors(seed)
			if err != nil {
				return err
			}
			for i, c := range cs {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s  %s\n", i, cell(c), seedtone.AsHex(c))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "analogous", "harmony kind: analogous, complementary, or monochromatic")
	cmd.Flags().Float32Var(&angle, "angle", 30, "hue spread in degrees for analogous harmonies")
	cmd.Flags().IntVar(&steps, "steps", 3, "number of colors to generate (monochromatic defaults to 5)")
	return cmd
}

func newSchemeCmd() *cobra.Command {
	var (
		dark       bool
		pair       bool
		kind       string
		angle      float32
		steps      int
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "print the full Material 3 color scheme for the seed color",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seedFlag(cmd)
			if err != nil {
				return err
			}
			cfg, err := buildConfig(configPath, dark, cmd.Flags().Changed("dark"), kind, angle, steps)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if pair {
				p, err := theme.NewSchemes(seed, cfg)
				if err != nil {
					return err
				}
				printScheme(w, &p.Light)
				fmt.Fprintln(w)
				printScheme(w, &p.Dark)
				return nil
			}
			s, err := theme.NewScheme(seed, cfg)
			if err != nil {
				return err
			}
			printScheme(w, s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", false, "generate the dark scheme")
	cmd.Flags().BoolVar(&pair, "pair", false, "generate both the light and dark schemes")
	cmd.Flags().StringVar(&kind, "kind", "", "harmony kind for the secondary and tertiary seeds")
	cmd.Flags().Float32Var(&angle, "angle", 30, "hue spread in degrees for analogous harmonies")
	cmd.Flags().IntVar(&steps, "steps", 3, "number of harmony colors to generate")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with brightness, harmony, and role overrides")
	return cmd
}

func printScheme(w io.Writer, s *theme.Scheme) {
	fmt.Fprintf(w, "%s scheme:\n", s.Brightness)
	for _, role := range theme.Roles() {
		c := s.Color(role)
		fmt.Fprintf(w, "  %-24s %s  %s\n", role, cell(c), seedtone.AsHex(c))
	}
}

// cell renders a block of the given color for terminal output.
func cell(c color.RGBA) string {
	return out.String("      ").Background(out.Color(seedtone.AsHex(c))).String()
}
