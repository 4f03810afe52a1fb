// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pipeline is a package used by the hooppdf command, which handles
// running a batch of images through the hoop geometry and saving the
// resulting PDFs. Note that it is considered an "internal" package,
// not intended for external use, and no guarantee is made of the
// stability of any interfaces provided.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"bastidor.xyz/hooppdf"
	"bastidor.xyz/hooppdf/hoop"
)

type Storer interface {
	GetLogger() *log.Logger
	Location(key string) string
	Log(v ...interface{})
	Upload(key string, r io.Reader) error
}

// Result records what happened to one image.
type Result struct {
	Path   string
	Circle hoop.Circle
	// Rect is where the image was placed on the page, in points
	Rect hoop.Rect
	// Output is where the PDF was saved
	Output string
	// Err is the reason the image was skipped
	Err error
	// Overwrote is the earlier image whose PDF had the same name,
	// and was replaced by this one
	Overwrote string
}

// Summary records what happened to a batch of images.
type Summary struct {
	RunID     string
	Processed []Result
	Skipped   []Result
}

// Detections returns the circles found in all processed images,
// for graphing.
func (s Summary) Detections() []hooppdf.Detection {
	var dets []hooppdf.Detection
	for _, r := range s.Processed {
		dets = append(dets, hooppdf.Detection{Path: r.Path, Radius: r.Circle.R})
	}
	return dets
}

// ProcessImage runs one image through the whole pipeline: finding
// the hoop, cropping and scaling it, masking out everything outside
// it, and placing it on a page. The finished PDF is returned. Any
// error is an *Error.
func ProcessImage(path string, conf hooppdf.Conf) ([]byte, Result, error) {
	img, _, err := hooppdf.DecodeImage(path)
	if err != nil {
		return nil, Result{Path: path}, newError(KindDecode, path, err)
	}
	return processRaster(img, path, conf)
}

// processRaster does everything after decoding, for an image which
// came from path.
func processRaster(img image.Image, path string, conf hooppdf.Conf) ([]byte, Result, error) {
	res := Result{Path: path}

	c, found, err := hoop.Detect(hoop.Gray(img), conf.DetectParams())
	if err != nil {
		return nil, res, newError(KindGeometry, path, err)
	}
	if !found {
		return nil, res, newError(KindDetection, path, ErrNoCircle)
	}
	res.Circle = c

	scaled, err := hoop.Normalize(img, c, conf.DiameterPixels())
	if err != nil {
		return nil, res, newError(KindGeometry, path, err)
	}

	flat, err := hoop.CircleCrop(scaled, conf.BackgroundColour())
	if err != nil {
		return nil, res, newError(KindGeometry, path, err)
	}

	b := flat.Bounds()
	w := float64(b.Dx()) / conf.Resolution
	h := float64(b.Dy()) / conf.Resolution

	var pdf hooppdf.Fpdf
	err = pdf.Setup(conf.Page(), conf.JPEGQuality)
	if err != nil {
		return nil, res, newError(KindWrite, path, fmt.Errorf("Could not set up PDF: %w", err))
	}
	res.Rect, err = hoop.Place(&pdf, flat, conf.Page(), w, h)
	if err != nil {
		return nil, res, newError(KindWrite, path, fmt.Errorf("Could not add page: %w", err))
	}
	var buf bytes.Buffer
	err = pdf.Save(&buf)
	if err != nil {
		return nil, res, newError(KindWrite, path, fmt.Errorf("Could not save PDF: %w", err))
	}

	return buf.Bytes(), res, nil
}

// ProcessDir processes every image in dir, saving a PDF for each to
// conn. Images which can't be processed are skipped and recorded in
// the summary; only setup errors, write errors and cancellation of
// ctx stop the run, in which case the summary so far is returned
// along with the error.
func ProcessDir(ctx context.Context, dir string, conf hooppdf.Conf, conn Storer) (Summary, error) {
	s := Summary{RunID: uuid.NewString()}
	logger := conn.GetLogger().With("run", s.RunID)

	err := conf.Validate()
	if err != nil {
		return s, newError(KindSetup, "", fmt.Errorf("Invalid settings: %w", err))
	}

	paths, err := CheckInput(dir)
	if err != nil {
		return s, err
	}
	logger.Info("Number of images to convert", "n", len(paths), "dir", dir)

	saved := make(map[string]string)

	for i, path := range paths {
		select {
		case <-ctx.Done():
			return s, ctx.Err()
		default:
		}

		logger.Info(fmt.Sprintf("Converting image %d of %d", i+1, len(paths)), "file", path)
		pdf, res, err := ProcessImage(path, conf)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) && perr.Kind.Fatal() {
				return s, err
			}
			if IsKind(err, KindDetection) {
				logger.Warn("No circle detected, skipping", "file", path)
			} else {
				logger.Error("Skipping image", "file", path, "err", err)
			}
			res.Err = err
			s.Skipped = append(s.Skipped, res)
			continue
		}
		logger.Debug("Circle detected", "file", path, "circle", res.Circle)

		key := OutputName(path)
		if prev, ok := saved[key]; ok {
			logger.Warn("PDF name already used, overwriting", "file", path, "previous", prev, "key", key)
			res.Overwrote = prev
		}
		err = conn.Upload(key, bytes.NewReader(pdf))
		if err != nil {
			return s, newError(KindWrite, path, fmt.Errorf("Could not save %s: %w", key, err))
		}
		res.Output = conn.Location(key)
		saved[key] = path
		s.Processed = append(s.Processed, res)
		logger.Info("Saved PDF", "file", res.Output)
	}

	logger.Info("Conversion complete", "processed", len(s.Processed), "skipped", len(s.Skipped))
	return s, nil
}
