package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Points pairs x[i] with y[i]. Pairs with a NaN or infinite coordinate
// are dropped as they cannot be drawn.
func Points(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("geom: %d x values but %d y values", len(x), len(y))
	}
	xys := make(plotter.XYs, 0, len(x))
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
	}
	return xys, nil
}

// NewScatter returns a scatter of the (x[i], y[i]) drawn with sty.
func NewScatter(x, y []float64, sty draw.GlyphStyle) (*plotter.Scatter, error) {
	xys, err := Points(x, y)
	if err != nil {
		return nil, err
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = sty
	return s, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
