// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"bastidor.xyz/hooppdf/internal/pipeline"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// printSummary lists what happened to each image in a run
func printSummary(w io.Writer, s pipeline.Summary) {
	if len(s.Processed) == 0 && len(s.Skipped) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle.Render("Summary"), styleDim.Render(s.RunID))
	for _, r := range s.Processed {
		fmt.Fprintf(w, "  %s %s %s\n", styleSuccess.Render("✓"), r.Path, styleDim.Render("→ "+r.Output))
		if r.Overwrote != "" {
			fmt.Fprintf(w, "    %s\n", styleWarning.Render("replaced the PDF of "+r.Overwrote))
		}
	}
	for _, r := range s.Skipped {
		style := styleError
		if pipeline.IsKind(r.Err, pipeline.KindDetection) {
			style = styleWarning
		}
		fmt.Fprintf(w, "  %s %s %s\n", style.Render("✗"), r.Path, styleDim.Render(reason(r.Err)))
	}
	fmt.Fprintf(w, "%s processed, %s skipped\n",
		styleSuccess.Render(fmt.Sprint(len(s.Processed))),
		styleWarning.Render(fmt.Sprint(len(s.Skipped))))
}

// reason gives the short reason an image was skipped
func reason(err error) string {
	if pipeline.IsKind(err, pipeline.KindDetection) {
		return "no circle found"
	}
	if e, ok := err.(*pipeline.Error); ok {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return err.Error()
}
