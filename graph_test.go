// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hooppdf

import (
	"bytes"
	"fmt"
	"testing"
)

func TestGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := Graph([]Detection{{"a.jpg", 400}}, "one", &buf); err == nil {
		t.Errorf("Expected an error graphing a single detection")
	}

	var dets []Detection
	for i := 0; i < 25; i++ {
		dets = append(dets, Detection{Path: fmt.Sprintf("imagens/%04d.jpg", i), Radius: 400 + float64(i%5)})
	}
	dets = append(dets, Detection{Path: "imagens/odd.jpg", Radius: 35})

	buf.Reset()
	err := Graph(dets, "batch", &buf)
	if err != nil {
		t.Fatalf("Graph failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("Graph output is not a PNG")
	}
}

func TestGraphOutliers(t *testing.T) {
	cases := []struct {
		n        int
		labelled int
	}{
		{2, 0},
		{5, 0},
		{9, 0},
		{10, 1},
		{19, 2},
		{20, 3},
		{100, 19},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.n), func(t *testing.T) {
			var radii []float64
			for i := 0; i < c.n; i++ {
				radii = append(radii, 400+float64(i))
			}
			lowr, highr := radiusBounds(radii)
			if lowr > highr {
				t.Fatalf("Low line %v is above high line %v", lowr, highr)
			}
			labelled := 0
			for _, r := range radii {
				if outlier(r, lowr, highr) {
					labelled++
				}
			}
			if labelled != c.labelled {
				t.Errorf("Expected %d of %d labelled, got %d (lines at %v and %v)", c.labelled, c.n, labelled, lowr, highr)
			}
		})
	}
}
