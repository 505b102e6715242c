// Package geom implements the gonum/plot plotters used by distplot:
// scatter points and histograms which can be laid along either axis.
package geom

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/distplot/stat"
)

// Orientation selects the axis the bins of a histogram are laid along.
type Orientation int

const (
	// Vertical bars: bins along x, counts along y.
	Vertical Orientation = iota
	// Horizontal bars: bins along y, counts along x.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Hist draws binned counts as adjacent bars.
type Hist struct {
	Bins        []stat.Bin
	Orientation Orientation

	// FillColor is the bar color. A nil FillColor leaves bars unfilled.
	FillColor color.Color

	// LineStyle is used to draw the bar outlines.
	draw.LineStyle
}

var (
	_ plot.Plotter    = (*Hist)(nil)
	_ plot.DataRanger = (*Hist)(nil)
)

// NewHist bins values into n bins.
func NewHist(values []float64, n int, o Orientation) (*Hist, error) {
	if n <= 0 {
		return nil, errors.New("geom: histogram with non-positive number of bins")
	}
	return &Hist{
		Bins:        stat.Histogram(values, n),
		Orientation: o,
		FillColor:   color.Gray{Y: 128},
		LineStyle: draw.LineStyle{
			Color: color.Gray{Y: 128},
			Width: vg.Points(0.5),
		},
	}, nil
}

// Total is the sum of all bin counts.
func (h *Hist) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// Plot implements plot.Plotter.
func (h *Hist) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, b := range h.Bins {
		var x0, x1, y0, y1 vg.Length
		if h.Orientation == Horizontal {
			x0, x1 = trX(0), trX(float64(b.Count))
			y0, y1 = trY(b.Min), trY(b.Max)
		} else {
			x0, x1 = trX(b.Min), trX(b.Max)
			y0, y1 = trY(0), trY(float64(b.Count))
		}
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		if h.FillColor != nil {
			c.FillPolygon(h.FillColor, c.ClipPolygonXY(pts))
		}
		pts = append(pts, pts[0])
		c.StrokeLines(h.LineStyle, c.ClipLinesXY(pts)...)
	}
}

// DataRange implements plot.DataRanger. A histogram without bins has an
// empty range.
func (h *Hist) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(h.Bins) == 0 {
		return math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	}
	lo, hi := h.Bins[0].Min, h.Bins[len(h.Bins)-1].Max
	top := 0.0
	for _, b := range h.Bins {
		top = math.Max(top, float64(b.Count))
	}
	if h.Orientation == Horizontal {
		return 0, top, lo, hi
	}
	return lo, hi, 0, top
}
