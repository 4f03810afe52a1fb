package hoop

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
)

// disk draws a light disk on a dark background.
func disk(w, h int, x, y, r float64) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.Clear()
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.DrawCircle(x, y, r)
	dc.Fill()
	return dc.Image()
}

// faintNoise creates a grayscale image of noise too weak to produce
// any edges.
func faintNoise(w, h int, seed int64) *image.Gray {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(127 + rnd.Intn(3))
	}
	return img
}

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = n.R, n.G, n.B, n.A
	}
	return img
}

func imgsequal(img1, img2 image.Image) bool {
	b := img1.Bounds()
	if !b.Eq(img2.Bounds()) {
		return false
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r0, g0, b0, a0 := img1.At(x, y).RGBA()
			r1, g1, b1, a1 := img2.At(x, y).RGBA()
			if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
				return false
			}
		}
	}
	return true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
