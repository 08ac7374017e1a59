// File: figure.go
// Role: renderer-independent figure model built from degree histograms.

package render

import (
	"fmt"

	"github.com/katalvlaran/randnet/metrics"
)

// Axis labels used by every degree-distribution figure.
const (
	DegreeAxisLabel = "Average degree"
	CountAxisLabel  = "Number of nodes"
)

// Point is one (x, y) sample of a Line.
type Point struct {
	X, Y float64
}

// Line is a labelled polyline.
type Line struct {
	Label  string
	Points []Point
}

// Figure is a renderer-independent description of one plot.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
}

// FromHistograms builds a degree-distribution figure with one line per
// histogram. indices[i] is the zero-based trial number of hists[i] and
// becomes the legend label "Graph <indices[i]+1>".
//
// Complexity: O(Σ len(hists[i])).
func FromHistograms(title string, hists []metrics.Histogram, indices []int) (Figure, error) {
	if len(hists) != len(indices) {
		return Figure{}, fmt.Errorf("render: %d histograms but %d indices: %w", len(hists), len(indices), ErrMismatchedSeries)
	}

	fig := Figure{Title: title, XLabel: DegreeAxisLabel, YLabel: CountAxisLabel}
	for i, h := range hists {
		line := Line{Label: fmt.Sprintf("Graph %d", indices[i]+1), Points: make([]Point, len(h))}
		for j, b := range h {
			line.Points[j] = Point{X: float64(b.Degree), Y: float64(b.Count)}
		}
		fig.Lines = append(fig.Lines, line)
	}

	return fig, nil
}
