// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// hoop contains the per-image geometry used to turn a scan of a round
// embroidery hoop into a centred, white backed page image: finding the
// circle, cropping and scaling it to a physical diameter, masking
// everything outside it, and placing the result on a page.
//
// Each function takes an image and returns a new one; inputs are never
// modified.
package hoop

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyImage    = errors.New("image is empty")
	ErrInvalidRadius = errors.New("circle radius must be positive")
)

// Circle is a circle in source image pixel coordinates.
type Circle struct {
	X, Y, R float64
}

func (c Circle) String() string {
	return fmt.Sprintf("(%.1f, %.1f) r=%.1f", c.X, c.Y, c.R)
}

// Page is the size of an output page, in points.
type Page struct {
	Width, Height float64
}

// A4 is the ISO A4 page size in points (72 per inch)
var A4 = Page{Width: 595.2755905511812, Height: 841.8897637795277}

// ShortEdge returns the smaller of the page width and height
func (p Page) ShortEdge() float64 {
	return math.Min(p.Width, p.Height)
}

// Rect is a placement rectangle on a page, in points.
type Rect struct {
	X, Y, Width, Height float64
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}
