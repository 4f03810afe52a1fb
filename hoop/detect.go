// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hoop

import (
	"fmt"
	"image"
	"image/draw"

	"gocv.io/x/gocv"
)

// DetectParams are the tuning knobs of the Hough gradient transform.
type DetectParams struct {
	// Resolution is the inverse ratio of the accumulator resolution to
	// the image resolution; 2 means the accumulator has half the
	// width and height of the image.
	Resolution float64
	// MinDist is the minimum distance in pixels between the centres
	// of candidate circles.
	MinDist float64
	// EdgeThreshold is the higher Canny edge threshold; lower values
	// detect weaker edges.
	EdgeThreshold float64
	// AccumulatorThreshold is the number of votes a centre needs to
	// be a candidate; higher values favour fewer, stronger circles.
	AccumulatorThreshold float64
}

// DefaultDetectParams returns parameters which find the hoop in
// typical photographs of a whole embroidery hoop.
func DefaultDetectParams() DetectParams {
	return DetectParams{
		Resolution:           2,
		MinDist:              32,
		EdgeThreshold:        30,
		AccumulatorThreshold: 550,
	}
}

// Gray converts an image to a grayscale image with its origin at
// (0, 0), using the ITU-R 601 luma weights.
func Gray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Detect finds the most prominent circle in a grayscale image. The
// radius is unbounded, so the circle may span almost the whole image
// or be very small. If several candidates are found the first, which
// has the strongest accumulator score, is used. The bool result is
// false if no circle was found.
func Detect(gray *image.Gray, p DetectParams) (Circle, bool, error) {
	b := gray.Bounds()
	if b.Empty() {
		return Circle{}, false, ErrEmptyImage
	}

	// the conversion to a Mat reads Pix directly, so it needs a
	// compact image starting at the origin
	if b.Min != (image.Point{}) || gray.Stride != b.Dx() {
		gray = Gray(gray)
	}

	src, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return Circle{}, false, fmt.Errorf("Could not convert image for circle detection: %w", err)
	}
	defer src.Close()

	circles := gocv.NewMat()
	defer circles.Close()

	gocv.HoughCirclesWithParams(src, &circles, gocv.HoughGradient,
		p.Resolution, p.MinDist,
		p.EdgeThreshold, p.AccumulatorThreshold,
		0, 0)

	if circles.Empty() || circles.Cols() == 0 {
		return Circle{}, false, nil
	}

	c := Circle{
		X: float64(circles.GetFloatAt(0, 0)) + float64(b.Min.X),
		Y: float64(circles.GetFloatAt(0, 1)) + float64(b.Min.Y),
		R: float64(circles.GetFloatAt(0, 2)),
	}
	if !validRadius(c.R) {
		return Circle{}, false, nil
	}
	return c, true, nil
}
