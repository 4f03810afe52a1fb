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

// DiskMask creates a w by h mask which is opaque (255) inside the
// disk inscribed in it and transparent (0) outside. A pixel is inside
// if its centre is. The edge is not antialiased.
func DiskMask(w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	r := math.Min(cx, cy)
	for y := 0; y < h; y++ {
		dy := float64(y) + 0.5 - cy
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r*r {
				m.Pix[y*m.Stride+x] = 255
			}
		}
	}
	return m
}

// StackAlpha returns the colour channels of img with mask as its
// alpha channel. Any alpha img already had is discarded.
func StackAlpha(img image.Image, mask *image.Alpha) (*image.NRGBA, error) {
	b := img.Bounds()
	mb := mask.Bounds()
	if b.Dx() != mb.Dx() || b.Dy() != mb.Dy() {
		return nil, fmt.Errorf("Mask size %v does not match image size %v", mb.Size(), b.Size())
	}
	out := imaging.Clone(img)
	for y := 0; y < b.Dy(); y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < b.Dx(); x++ {
			row[x*4+3] = mask.AlphaAt(mb.Min.X+x, mb.Min.Y+y).A
		}
	}
	return out, nil
}

// Flatten composites img over an opaque background of colour bg,
// so fully transparent pixels become exactly bg.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	base := imaging.New(b.Dx(), b.Dy(), opaque(bg))
	return imaging.Overlay(base, img, image.Pt(0, 0), 1.0)
}

// FlipVertical mirrors an image top to bottom.
func FlipVertical(img image.Image) *image.NRGBA {
	return imaging.FlipV(img)
}

// CircleCrop cuts the disk inscribed in img out, composites it onto
// bg and flips it vertically, ready to be drawn into a page whose
// vertical axis runs the other way to the raster's.
func CircleCrop(img image.Image, bg color.Color) (*image.NRGBA, error) {
	b := img.Bounds()
	masked, err := StackAlpha(img, DiskMask(b.Dx(), b.Dy()))
	if err != nil {
		return nil, err
	}
	return FlipVertical(Flatten(masked, bg)), nil
}

func opaque(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}
