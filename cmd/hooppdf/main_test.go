// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bastidor.xyz/hooppdf"
	"bastidor.xyz/hooppdf/internal/pipeline"
)

func TestMergeConf(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "hooppdf.toml")
	err := os.WriteFile(settings, []byte("min_distance = 40\njpeg_quality = 90\n"), 0644)
	if err != nil {
		t.Fatalf("Could not write settings file: %v", err)
	}

	a4 := hooppdf.DefaultConf().PageWidth
	cases := []struct {
		name    string
		args    []string
		mindist float64
		quality int
		scale   float64
		width   float64
		bg      string
	}{
		{"defaults", []string{}, 32, 75, 2, a4, "#ffffff"},
		{"flags", []string{"--min-distance", "50", "--accumulator-scale", "1.5"}, 50, 75, 1.5, a4, "#ffffff"},
		{"file", []string{"-c", settings}, 40, 90, 2, a4, "#ffffff"},
		{"fileandflag", []string{"-c", settings, "--quality", "60", "--accumulator-scale", "3"}, 40, 60, 3, a4, "#ffffff"},
		{"page", []string{"-c", settings, "--page-width", "612", "--page-height", "792", "--background", "#f0f0f0"}, 40, 90, 2, 612, "#f0f0f0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cmd := rootCommand()
			err := cmd.ParseFlags(c.args)
			if err != nil {
				t.Fatalf("Could not parse flags: %v", err)
			}
			o := options{conf: hooppdf.DefaultConf()}
			o.config, _ = cmd.Flags().GetString("config")
			o.conf.MinDistance, _ = cmd.Flags().GetFloat64("min-distance")
			o.conf.EdgeSensitivity, _ = cmd.Flags().GetFloat64("edge-sensitivity")
			o.conf.AccumulatorThreshold, _ = cmd.Flags().GetFloat64("accumulator-threshold")
			o.conf.AccumulatorScale, _ = cmd.Flags().GetFloat64("accumulator-scale")
			o.conf.PageWidth, _ = cmd.Flags().GetFloat64("page-width")
			o.conf.PageHeight, _ = cmd.Flags().GetFloat64("page-height")
			o.conf.Background, _ = cmd.Flags().GetString("background")
			o.conf.DiameterFraction, _ = cmd.Flags().GetFloat64("diameter-fraction")
			o.conf.Resolution, _ = cmd.Flags().GetFloat64("resolution")
			o.conf.JPEGQuality, _ = cmd.Flags().GetInt("quality")
			conf, err := mergeConf(cmd, &o)
			if err != nil {
				t.Fatalf("mergeConf failed: %v", err)
			}
			if conf.MinDistance != c.mindist || conf.JPEGQuality != c.quality {
				t.Errorf("Expected min_distance %v and quality %d, got %v and %d", c.mindist, c.quality, conf.MinDistance, conf.JPEGQuality)
			}
			if conf.AccumulatorScale != c.scale {
				t.Errorf("Expected accumulator_scale %v, got %v", c.scale, conf.AccumulatorScale)
			}
			if conf.PageWidth != c.width || conf.Background != c.bg {
				t.Errorf("Expected page width %v and background %s, got %v and %s", c.width, c.bg, conf.PageWidth, conf.Background)
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	s := pipeline.Summary{
		RunID: "test",
		Processed: []pipeline.Result{
			{Path: "imagens/a.jpg", Output: "pdfs/a.pdf"},
			{Path: "imagens/a.png", Output: "pdfs/a.pdf", Overwrote: "imagens/a.jpg"},
		},
		Skipped: []pipeline.Result{
			{Path: "imagens/b.jpg", Err: &pipeline.Error{Kind: pipeline.KindDetection, Path: "imagens/b.jpg", Err: pipeline.ErrNoCircle}},
			{Path: "imagens/c.jpg", Err: &pipeline.Error{Kind: pipeline.KindDecode, Path: "imagens/c.jpg", Err: errors.New("bad header")}},
		},
	}
	var buf bytes.Buffer
	printSummary(&buf, s)
	out := buf.String()
	for _, want := range []string{"imagens/a.jpg", "pdfs/a.pdf", "no circle found", "decode: bad header", "replaced the PDF of imagens/a.jpg"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}

	buf.Reset()
	printSummary(&buf, pipeline.Summary{})
	if buf.Len() != 0 {
		t.Errorf("Expected no summary for an empty run, got %q", buf.String())
	}
}
