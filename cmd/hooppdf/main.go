// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// hooppdf turns a directory of photographs of embroidery hoops into
// one PDF per image, ready for printing.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"bastidor.xyz/hooppdf"
	"bastidor.xyz/hooppdf/internal/pipeline"
)

const usage = `hooppdf [flags] [imagedir]

Finds the hoop in each image in imagedir (default "imagens"), crops and
scales it to the same physical size, makes everything outside the hoop
white, and saves it centred on a page as a PDF named after the image.

Images in which no hoop is found are skipped with a warning. A summary
of the images processed and skipped is printed at the end.`

const defaultInput = "imagens"

type options struct {
	verbose bool
	config  string
	out     string
	bucket  string
	prefix  string
	region  string
	graph   string
	conf    hooppdf.Conf
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCommand().ExecuteContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	o := options{conf: hooppdf.DefaultConf()}

	cmd := &cobra.Command{
		Use:           "hooppdf [flags] [imagedir]",
		Short:         "Turn photographs of embroidery hoops into printable PDFs",
		Long:          usage,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultInput
			if len(args) > 0 {
				dir = args[0]
			}
			return run(cmd, dir, &o)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
	f.StringVarP(&o.config, "config", "c", "", "TOML settings file")
	f.StringVarP(&o.out, "out", "o", "pdfs", "directory to save PDFs to")
	f.StringVar(&o.bucket, "bucket", "", "S3 bucket to save PDFs to, instead of a local directory")
	f.StringVar(&o.prefix, "prefix", "", "prefix to save PDFs under in the S3 bucket")
	f.StringVar(&o.region, "region", "", "AWS region of the S3 bucket")
	f.StringVar(&o.graph, "graph", "", "save a PNG graph of the hoop radius in each image to this file")
	addConfFlags(cmd, &o.conf)

	return cmd
}

// addConfFlags adds flags for the settings, which override those
// from the settings file only if they are set.
func addConfFlags(cmd *cobra.Command, c *hooppdf.Conf) {
	f := cmd.Flags()
	f.Float64Var(&c.MinDistance, "min-distance", c.MinDistance, "minimum distance between circle centres, in pixels")
	f.Float64Var(&c.EdgeSensitivity, "edge-sensitivity", c.EdgeSensitivity, "edge detection threshold; lower detects weaker edges")
	f.Float64Var(&c.AccumulatorThreshold, "accumulator-threshold", c.AccumulatorThreshold, "votes needed for a circle; higher finds fewer, stronger circles")
	f.Float64Var(&c.AccumulatorScale, "accumulator-scale", c.AccumulatorScale, "inverse ratio of accumulator resolution to image resolution")
	f.Float64Var(&c.PageWidth, "page-width", c.PageWidth, "page width, in points")
	f.Float64Var(&c.PageHeight, "page-height", c.PageHeight, "page height, in points")
	f.StringVar(&c.Background, "background", c.Background, "colour outside the hoop, as #rrggbb")
	f.Float64Var(&c.DiameterFraction, "diameter-fraction", c.DiameterFraction, "hoop diameter as a fraction of the page's short edge")
	f.Float64Var(&c.Resolution, "resolution", c.Resolution, "image pixels per point of the page")
	f.IntVar(&c.JPEGQuality, "quality", c.JPEGQuality, "JPEG quality of the embedded images")
}

// mergeConf loads the settings file, if any, and reapplies any
// settings which were set by flag.
func mergeConf(cmd *cobra.Command, o *options) (hooppdf.Conf, error) {
	if o.config == "" {
		return o.conf, o.conf.Validate()
	}
	c, err := hooppdf.LoadConf(o.config)
	if err != nil {
		return c, err
	}
	f := cmd.Flags()
	if f.Changed("min-distance") {
		c.MinDistance = o.conf.MinDistance
	}
	if f.Changed("edge-sensitivity") {
		c.EdgeSensitivity = o.conf.EdgeSensitivity
	}
	if f.Changed("accumulator-threshold") {
		c.AccumulatorThreshold = o.conf.AccumulatorThreshold
	}
	if f.Changed("accumulator-scale") {
		c.AccumulatorScale = o.conf.AccumulatorScale
	}
	if f.Changed("page-width") {
		c.PageWidth = o.conf.PageWidth
	}
	if f.Changed("page-height") {
		c.PageHeight = o.conf.PageHeight
	}
	if f.Changed("background") {
		c.Background = o.conf.Background
	}
	if f.Changed("diameter-fraction") {
		c.DiameterFraction = o.conf.DiameterFraction
	}
	if f.Changed("resolution") {
		c.Resolution = o.conf.Resolution
	}
	if f.Changed("quality") {
		c.JPEGQuality = o.conf.JPEGQuality
	}
	return c, c.Validate()
}

func run(cmd *cobra.Command, dir string, o *options) error {
	level := log.InfoLevel
	if o.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	conf, err := mergeConf(cmd, o)
	if err != nil {
		return fmt.Errorf("Error with settings: %w", err)
	}

	var conn pipeline.Storer
	if o.bucket != "" {
		a := &hooppdf.AwsConn{Region: o.region, Bucket: o.bucket, Prefix: o.prefix, Logger: logger}
		err = a.Init()
		conn = a
	} else {
		l := &hooppdf.LocalConn{Dir: o.out, Logger: logger}
		err = l.Init()
		conn = l
	}
	if err != nil {
		return fmt.Errorf("Error setting up output: %w", err)
	}

	s, err := pipeline.ProcessDir(cmd.Context(), dir, conf, conn)
	printSummary(cmd.OutOrStdout(), s)
	if err != nil {
		return err
	}

	if o.graph != "" {
		err = saveGraph(o.graph, filepath.Base(dir), s)
		if err != nil {
			logger.Error("Could not save graph", "err", err)
		}
	}
	return nil
}

func saveGraph(fn, title string, s pipeline.Summary) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	err = hooppdf.Graph(s.Detections(), title, f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
