// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hooppdf

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"bastidor.xyz/hooppdf/hoop"
)

// Conf holds all the settings for processing a batch of images. The
// zero value is not useful; start from DefaultConf.
type Conf struct {
	// Circle detection
	MinDistance          float64 `toml:"min_distance"`
	EdgeSensitivity      float64 `toml:"edge_sensitivity"`
	AccumulatorThreshold float64 `toml:"accumulator_threshold"`
	AccumulatorScale     float64 `toml:"accumulator_scale"`

	// Page, in points
	PageWidth        float64 `toml:"page_width"`
	PageHeight       float64 `toml:"page_height"`
	DiameterFraction float64 `toml:"diameter_fraction"`

	// Resolution is the number of image pixels per point of the
	// output page.
	Resolution  float64 `toml:"resolution"`
	JPEGQuality int     `toml:"jpeg_quality"`
	Background  string  `toml:"background"`
}

// DefaultConf returns settings for A4 pages, with the hoop taking up
// just over 95% of the page width.
func DefaultConf() Conf {
	p := hoop.DefaultDetectParams()
	return Conf{
		MinDistance:          p.MinDist,
		EdgeSensitivity:      p.EdgeThreshold,
		AccumulatorThreshold: p.AccumulatorThreshold,
		AccumulatorScale:     p.Resolution,
		PageWidth:            hoop.A4.Width,
		PageHeight:           hoop.A4.Height,
		DiameterFraction:     0.952380952,
		Resolution:           1,
		JPEGQuality:          75,
		Background:           "#ffffff",
	}
}

// LoadConf reads settings from a TOML file, using DefaultConf for
// anything the file doesn't set.
func LoadConf(path string) (Conf, error) {
	c := DefaultConf()
	_, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("Error reading settings from %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate checks that the settings make sense together.
func (c Conf) Validate() error {
	var errs []error
	if c.MinDistance <= 0 {
		errs = append(errs, fmt.Errorf("min_distance must be positive, got %v", c.MinDistance))
	}
	if c.EdgeSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("edge_sensitivity must be positive, got %v", c.EdgeSensitivity))
	}
	if c.AccumulatorThreshold <= 0 {
		errs = append(errs, fmt.Errorf("accumulator_threshold must be positive, got %v", c.AccumulatorThreshold))
	}
	if c.AccumulatorScale < 1 {
		errs = append(errs, fmt.Errorf("accumulator_scale must be at least 1, got %v", c.AccumulatorScale))
	}
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %vx%v", c.PageWidth, c.PageHeight))
	}
	if c.DiameterFraction <= 0 {
		errs = append(errs, fmt.Errorf("diameter_fraction must be positive, got %v", c.DiameterFraction))
	}
	if c.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %v", c.Resolution))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", c.JPEGQuality))
	}
	if _, err := ParseColour(c.Background); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DetectParams returns the circle detection part of the settings.
func (c Conf) DetectParams() hoop.DetectParams {
	return hoop.DetectParams{
		Resolution:           c.AccumulatorScale,
		MinDist:              c.MinDistance,
		EdgeThreshold:        c.EdgeSensitivity,
		AccumulatorThreshold: c.AccumulatorThreshold,
	}
}

// Page returns the output page size.
func (c Conf) Page() hoop.Page {
	return hoop.Page{Width: c.PageWidth, Height: c.PageHeight}
}

// Diameter returns the physical diameter, in points, that every hoop
// is scaled to.
func (c Conf) Diameter() float64 {
	return c.DiameterFraction * c.Page().ShortEdge()
}

// DiameterPixels returns the diameter, in image pixels, that every
// hoop is scaled to.
func (c Conf) DiameterPixels() float64 {
	return c.Diameter() * c.Resolution
}

// BackgroundColour returns the parsed background colour, or white
// if it can't be parsed.
func (c Conf) BackgroundColour() color.Color {
	bg, err := ParseColour(c.Background)
	if err != nil {
		return color.White
	}
	return bg
}

// ParseColour parses a colour in the form #rrggbb.
func ParseColour(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("Invalid colour %q, expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("Invalid colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
