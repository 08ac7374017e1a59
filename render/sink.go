// File: sink.go
// Role: Sink interface and the gonum/plot implementation.
//
// Concurrency:
//   - PlotSink holds no mutable state of its own.

package render

import (
	"context"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/randnet/common"
)

// Sink writes a Figure to path.
type Sink interface {
	Render(ctx context.Context, fig Figure, path string) error
}

// Default figure size, close to matplotlib's 6.4x4.8 inch default.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// PlotSink renders figures with gonum/plot. The image format follows the
// path extension (png, svg, pdf, ...). Existing files are overwritten.
type PlotSink struct {
	Width  vg.Length
	Height vg.Length
}

// NewPlotSink returns a PlotSink with the default size.
func NewPlotSink() *PlotSink {
	return &PlotSink{Width: DefaultWidth, Height: DefaultHeight}
}

// Render draws one line per fig.Lines entry, with distinct colors and a
// legend entry each, and saves the image.
//
// Errors:
//   - ctx.Err() when cancelled before drawing.
//   - ErrEmptyLine for a line without points.
//   - I/O and encoder errors from Save, wrapped with the path.
//
// Complexity: O(P) in the total number of points, plus encoding.
func (s *PlotSink) Render(ctx context.Context, fig Figure, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.build(fig)
	if err != nil {
		return err
	}
	if err = p.Save(s.Width, s.Height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	common.Logger(ctx).WithField("path", path).Debug("figure written")

	return nil
}

// build lays out the plot: grid first, then one colored line and legend
// entry per Line in order.
// Complexity: O(P).
func (s *PlotSink) build(fig Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Add(plotter.NewGrid())

	for i, line := range fig.Lines {
		if len(line.Points) == 0 {
			return nil, fmt.Errorf("render: %q: %w", line.Label, ErrEmptyLine)
		}
		xys := make(plotter.XYs, len(line.Points))
		for j, pt := range line.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: %q: %w", line.Label, err)
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(line.Label, l)
	}

	return p, nil
}

var _ Sink = (*PlotSink)(nil)
