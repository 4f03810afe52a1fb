// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hooppdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/jung-kurt/gofpdf"

	"bastidor.xyz/hooppdf/hoop"
)

// Fpdf is a PDF document writer with one image per page, all pages
// being the same size.
type Fpdf struct {
	fpdf    *gofpdf.Fpdf
	page    hoop.Page
	quality int
	n       int
}

// Setup creates a new PDF with pages of the given size (in points),
// embedding images as JPEGs of the given quality
func (p *Fpdf) Setup(page hoop.Page, quality int) error {
	p.page = page
	p.quality = quality
	p.n = 0
	p.fpdf = gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	p.fpdf.SetMargins(0, 0, 0)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	p.fpdf.SetCreator("hooppdf", true)
	return p.fpdf.Error()
}

// AddPage adds a page to the pdf with img drawn in the rectangle r.
// Pages are drawn in a frame whose vertical axis is inverted relative
// to the raster, so img should already be flipped top to bottom.
func (p *Fpdf) AddPage(img image.Image, r hoop.Rect) error {
	if p.fpdf == nil {
		return errors.New("PDF not set up")
	}

	var buf bytes.Buffer
	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality})
	if err != nil {
		return fmt.Errorf("Could not encode image for page %d: %w", p.n+1, err)
	}

	p.n++
	name := fmt.Sprintf("page%d", p.n)
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	p.fpdf.RegisterImageOptionsReader(name, opts, &buf)

	p.fpdf.AddPage()
	p.fpdf.TransformBegin()
	p.fpdf.TransformMirrorVertical(p.page.Height / 2)
	p.fpdf.ImageOptions(name, r.X, r.Y, r.Width, r.Height, false, opts, 0, "")
	p.fpdf.TransformEnd()

	return p.fpdf.Error()
}

// PageCount returns the number of pages added so far
func (p *Fpdf) PageCount() int {
	return p.n
}

// Save finishes the PDF and writes it to w
func (p *Fpdf) Save(w io.Writer) error {
	if p.fpdf == nil {
		return errors.New("PDF not set up")
	}
	return p.fpdf.Output(w)
}
