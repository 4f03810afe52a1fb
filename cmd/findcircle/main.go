// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// findcircle prints the hoop circle found in each image given, which
// is useful for tuning the detection settings.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bastidor.xyz/hooppdf"
	"bastidor.xyz/hooppdf/hoop"
)

const usage = `findcircle [flags] image...

Prints the centre and radius of the circle found in each image, in
pixels, or "no circle found". Uses the same detection settings as
hooppdf, so is useful for finding settings that work for a batch.`

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	flags := hooppdf.DefaultConf()
	var config string

	cmd := &cobra.Command{
		Use:           "findcircle [flags] image...",
		Short:         "Print the circle found in each image",
		Long:          usage,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := settings(cmd, config, flags)
			if err != nil {
				return err
			}
			p := conf.DetectParams()

			failed := 0
			for _, fn := range args {
				line, err := find(fn, p)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", fn, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fn, line)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d images could not be read", failed, len(args))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&config, "config", "c", "", "TOML settings file")
	f.Float64Var(&flags.MinDistance, "min-distance", flags.MinDistance, "minimum distance between circle centres, in pixels")
	f.Float64Var(&flags.EdgeSensitivity, "edge-sensitivity", flags.EdgeSensitivity, "edge detection threshold; lower detects weaker edges")
	f.Float64Var(&flags.AccumulatorThreshold, "accumulator-threshold", flags.AccumulatorThreshold, "votes needed for a circle")
	f.Float64Var(&flags.AccumulatorScale, "accumulator-scale", flags.AccumulatorScale, "inverse ratio of accumulator resolution to image resolution")

	return cmd
}

// settings returns the settings from the config file, if any, with
// any set by flag taking precedence. They are checked the same way
// as for hooppdf.
func settings(cmd *cobra.Command, config string, flags hooppdf.Conf) (hooppdf.Conf, error) {
	conf := flags
	if config != "" {
		var err error
		conf, err = hooppdf.LoadConf(config)
		if err != nil {
			return conf, err
		}
		f := cmd.Flags()
		if f.Changed("min-distance") {
			conf.MinDistance = flags.MinDistance
		}
		if f.Changed("edge-sensitivity") {
			conf.EdgeSensitivity = flags.EdgeSensitivity
		}
		if f.Changed("accumulator-threshold") {
			conf.AccumulatorThreshold = flags.AccumulatorThreshold
		}
		if f.Changed("accumulator-scale") {
			conf.AccumulatorScale = flags.AccumulatorScale
		}
	}
	err := conf.Validate()
	if err != nil {
		return conf, fmt.Errorf("Invalid settings: %w", err)
	}
	return conf, nil
}

func find(fn string, p hoop.DetectParams) (string, error) {
	img, format, err := hooppdf.DecodeImage(fn)
	if err != nil {
		return "", err
	}
	c, found, err := hoop.Detect(hoop.Gray(img), p)
	if err != nil {
		return "", err
	}
	if !found {
		return "no circle found", nil
	}
	b := img.Bounds()
	return fmt.Sprintf("%s (%s %dx%d)", c, format, b.Dx(), b.Dy()), nil
}
