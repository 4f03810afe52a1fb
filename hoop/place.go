// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hoop

import (
	"image"
	"io"
)

// Pager is a document writer which takes one image per page.
type Pager interface {
	AddPage(img image.Image, r Rect) error
	Save(w io.Writer) error
}

// Center returns the rectangle which centres a w by h image on page.
// The offsets are negative if the image is bigger than the page.
func Center(page Page, w, h float64) Rect {
	return Rect{
		X:      (page.Width - w) / 2,
		Y:      (page.Height - h) / 2,
		Width:  w,
		Height: h,
	}
}

// Place adds a page to p with img drawn w by h points in its centre,
// returning where it was placed.
func Place(p Pager, img image.Image, page Page, w, h float64) (Rect, error) {
	r := Center(page, w, h)
	return r, p.AddPage(img, r)
}
