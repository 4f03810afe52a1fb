// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hooppdf

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40
const yticknum = 20

// Detection is the radius of the hoop found in an image
type Detection struct {
	Path   string
	Radius float64
}

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor:     c,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// radiusBounds returns the radii at the 10th and 90th percentiles
func radiusBounds(r []float64) (float64, float64) {
	radii := make([]float64, len(r))
	copy(radii, r)
	sort.Float64s(radii)
	hi := len(radii) * 9 / 10
	if hi > len(radii)-1 {
		hi = len(radii) - 1
	}
	return radii[len(radii)/10], radii[hi]
}

func outlier(r, lowr, highr float64) bool {
	return r < lowr || r > highr
}

// Graph creates a graph of the detected hoop radius of each image in
// a batch, in file name order, as a PNG. Images whose radius is
// outside the middle 80% of the batch are labelled, as they are the
// ones most likely to have been detected badly.
func Graph(dets []Detection, title string, w io.Writer) error {
	if len(dets) < 2 {
		return errors.New("Not enough detections to graph")
	}

	sorted := make([]Detection, len(dets))
	copy(sorted, dets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	tickevery := len(sorted) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	maxr := 0.0
	for i, d := range sorted {
		x := float64(i + 1)
		xvalues = append(xvalues, x)
		yvalues = append(yvalues, d.Radius)
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
		}
		if d.Radius > maxr {
			maxr = d.Radius
		}
	}
	// Make last tick the final image
	last := float64(len(sorted))
	ticks[len(ticks)-1] = chart.Tick{Value: last, Label: fmt.Sprintf("%.0f", last)}

	ymax := maxr * 1.1
	var yticks []chart.Tick
	for i := 0; i <= yticknum; i++ {
		n := ymax * float64(i) / yticknum
		yticks = append(yticks, chart.Tick{Value: n, Label: fmt.Sprintf("%.0f", n)})
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	// Lines marking the bottom and top 10% of radii
	lowr, highr := radiusBounds(yvalues)
	minSeries := createLine(xvalues, lowr, chart.ColorAlternateGray)
	maxSeries := createLine(xvalues, highr, chart.ColorAlternateGray)

	var annotations []chart.Value2
	for i, d := range sorted {
		if outlier(d.Radius, lowr, highr) {
			annotations = append(annotations, chart.Value2{Label: filepath.Base(d.Path), XValue: xvalues[i], YValue: d.Radius})
		}
	}
	annotations = append(annotations, chart.Value2{Label: fmt.Sprintf("%.0f", lowr), XValue: last, YValue: lowr})
	annotations = append(annotations, chart.Value2{Label: fmt.Sprintf("%.0f", highr), XValue: last, YValue: highr})

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Image",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Radius (px)",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: ymax,
			},
			Ticks: yticks,
		},
		Series: []chart.Series{
			mainSeries,
			minSeries,
			maxSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
