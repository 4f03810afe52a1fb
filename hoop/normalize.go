// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hoop

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Crop extracts the square [x-r, y-r, x+r, y+r] bounding a circle,
// with the top left corner and the side rounded to the nearest pixel.
// Any part of the square which lies outside the source image is filled
// with opaque black, so circles touching the edge of a scan are still
// usable.
func Crop(img image.Image, c Circle) (*image.NRGBA, error) {
	if !validRadius(c.R) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, c.R)
	}
	// the side is rounded once so the result is always square
	side := int(math.Round(2 * c.R))
	if side < 1 {
		side = 1
	}
	x0 := int(math.Round(c.X - c.R))
	y0 := int(math.Round(c.Y - c.R))

	sq := imaging.New(side, side, color.Black)
	pos := img.Bounds().Min.Sub(image.Pt(x0, y0))
	return imaging.Paste(sq, img, pos), nil
}

// Scale resizes an image by the same factor on both axes. Each new
// dimension is rounded independently, so the aspect ratio may be off
// by a pixel.
func Scale(img image.Image, factor float64) (*image.NRGBA, error) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("Invalid scale factor %v", factor)
	}
	b := img.Bounds()
	w := scaledDim(b.Dx(), factor)
	h := scaledDim(b.Dy(), factor)
	return imaging.Resize(img, w, h, imaging.CatmullRom), nil
}

func scaledDim(n int, factor float64) int {
	d := int(math.Round(float64(n) * factor))
	if d < 1 {
		d = 1
	}
	return d
}

// Normalize crops img to the square around c and scales it so that
// the circle is diameter pixels across.
func Normalize(img image.Image, c Circle, diameter float64) (*image.NRGBA, error) {
	if !(diameter > 0) || math.IsInf(diameter, 0) {
		return nil, fmt.Errorf("Invalid target diameter %v", diameter)
	}
	sq, err := Crop(img, c)
	if err != nil {
		return nil, err
	}
	return Scale(sq, diameter/(2*c.R))
}
