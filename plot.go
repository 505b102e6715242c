package distplot

import (
	"errors"
	"fmt"

	"github.com/vdobler/distplot/geom"
	"github.com/vdobler/distplot/stat"
)

// DistOptions controls PlotDistribution.
type DistOptions struct {
	// Bins is the number of histogram bins; zero means 50.
	Bins int

	Title  string
	XLabel string // label of column 0
	YLabel string // label of column 1

	// Theme overrides DefaultTheme if not nil.
	Theme *Theme
}

func (o DistOptions) theme() Theme {
	if o.Theme != nil {
		return *o.Theme
	}
	return DefaultTheme
}

// PlotDistribution draws a scatter of column 0 against column 1 of X on
// g.Scatter, a histogram of column 1 laid along the y-axis on g.HistY and
// a histogram of column 0 on g.HistX. The histogram ranges are locked to
// the scatter's ranges and their axes are hidden.
func PlotDistribution(g AxesGroup, X *DataFrame, opts DistOptions) error {
	if g.Scatter == nil || g.HistY == nil || g.HistX == nil {
		return errors.New("distplot: incomplete axes group")
	}
	rows, cols := X.Dims()
	if cols < 2 {
		return fmt.Errorf("%w: %s has %d columns, need 2", ErrShape, X.Name, cols)
	}
	bins := opts.Bins
	if bins == 0 {
		bins = 50
	}
	if bins < 0 {
		return fmt.Errorf("distplot: %d histogram bins", bins)
	}
	theme := opts.theme()
	x0, x1 := X.Column(0), X.Column(1)

	// The scatter plot.
	sp := g.Scatter.Plot
	sp.Title.Text = opts.Title
	sp.X.Label.Text = opts.XLabel
	sp.Y.Label.Text = opts.YLabel
	scatter, err := geom.NewScatter(x0, x1, theme.GlyphStyle())
	if err != nil {
		return fmt.Errorf("scatter of %s: %w", X.Name, err)
	}
	g.Scatter.Add(scatter)

	// Only the bottom and left axes are drawn; move them away from the data.
	sp.X.Padding = theme.AxisOffset()
	sp.Y.Padding = theme.AxisOffset()

	expand := theme.Expand()
	xscale, yscale := NewScale("x"), NewScale("y")
	xscale.Train(x0)
	yscale.Train(x1)
	xscale.Apply(&sp.X, expand)
	yscale.Apply(&sp.Y, expand)

	fill, line := theme.HistFill()

	// Histogram of column 1 next to the y-axis.
	hy, err := geom.NewHist(x1, bins, geom.Horizontal)
	if err != nil {
		return err
	}
	hy.FillColor, hy.LineStyle = fill, line
	g.HistY.Add(hy)
	g.HistY.Plot.Y.Min, g.HistY.Plot.Y.Max = sp.Y.Min, sp.Y.Max
	g.HistY.Plot.HideAxes()

	// Histogram of column 0 above the x-axis.
	hx, err := geom.NewHist(x0, bins, geom.Vertical)
	if err != nil {
		return err
	}
	hx.FillColor, hx.LineStyle = fill, line
	g.HistX.Add(hx)
	g.HistX.Plot.X.Min, g.HistX.Plot.X.Max = sp.X.Min, sp.X.Max
	g.HistX.Plot.HideAxes()

	logger.Debug("distribution plotted",
		"data", X.Name, "title", opts.Title, "samples", rows, "points", len(scatter.XYs), "bins", bins)
	return nil
}

// ZoomOptions controls MakePlot. Zero fields take the value of
// DefaultZoomOptions.
type ZoomOptions struct {
	Size Size

	FullBins int // bins of the full view histograms
	ZoomBins int // bins of the zoomed view histograms

	// Low and High are the percentiles bounding the zoomed view. A zero
	// High means 99 unless ExplicitBox is set.
	Low, High float64

	// ExplicitBox uses Low and High as given, zero included.
	ExplicitBox bool

	FullTitle, ZoomTitle string
	XLabel, YLabel       string

	Theme *Theme
}

// DefaultZoomOptions returns the settings for median income against
// number of households data.
func DefaultZoomOptions() ZoomOptions {
	return ZoomOptions{
		Size:      DefaultSize,
		FullBins:  200,
		ZoomBins:  50,
		Low:       0,
		High:      99,
		FullTitle: "Full data",
		ZoomTitle: "Zoom-in",
		XLabel:    "Median Income",
		YLabel:    "Number of households",
	}
}

func (o *ZoomOptions) withDefaults() ZoomOptions {
	d := DefaultZoomOptions()
	if o == nil {
		return d
	}
	r := *o
	if r.Size.Width <= 0 || r.Size.Height <= 0 {
		r.Size = d.Size
	}
	if r.FullBins == 0 {
		r.FullBins = d.FullBins
	}
	if r.ZoomBins == 0 {
		r.ZoomBins = d.ZoomBins
	}
	if r.High == 0 && !r.ExplicitBox {
		r.High = d.High
	}
	if r.FullTitle == "" {
		r.FullTitle = d.FullTitle
	}
	if r.ZoomTitle == "" {
		r.ZoomTitle = d.ZoomTitle
	}
	if r.XLabel == "" {
		r.XLabel = d.XLabel
	}
	if r.YLabel == "" {
		r.YLabel = d.YLabel
	}
	return r
}

// ZoomMask marks the samples of X whose first two features both lie
// strictly between their low-th and high-th percentile.
func ZoomMask(X *DataFrame, low, high float64) ([]bool, error) {
	_, cols := X.Dims()
	if cols < 2 {
		return nil, fmt.Errorf("%w: %s has %d columns, need 2", ErrShape, X.Name, cols)
	}
	if low < 0 || high > 100 || low > high {
		return nil, fmt.Errorf("distplot: bad percentile range [%g, %g]", low, high)
	}
	x0, x1 := X.Column(0), X.Column(1)
	c0 := stat.Cutoffs(x0, low, high)
	c1 := stat.Cutoffs(x1, low, high)
	logger.Debug("zoom cutoffs", "data", X.Name,
		"x0.low", c0.Low, "x0.high", c0.High, "x1.low", c1.Low, "x1.high", c1.High)
	return stat.And(stat.InclusionMask(x0, c0), stat.InclusionMask(x1, c1)), nil
}

// MakePlot draws X twice into a new figure: all samples in the full view
// and the samples inside the percentile box in the zoomed view. A nil
// opts uses DefaultZoomOptions.
func MakePlot(title string, X *DataFrame, opts *ZoomOptions) (*Figure, error) {
	o := opts.withDefaults()

	fig, full, zoom := CreateAxes(title, o.Size)
	err := PlotDistribution(full, X, DistOptions{
		Bins:   o.FullBins,
		Title:  o.FullTitle,
		XLabel: o.XLabel,
		YLabel: o.YLabel,
		Theme:  o.Theme,
	})
	if err != nil {
		return nil, err
	}

	mask, err := ZoomMask(X, o.Low, o.High)
	if err != nil {
		return nil, err
	}
	inliers, err := X.Filter(mask)
	if err != nil {
		return nil, err
	}
	if n, _ := inliers.Dims(); n == 0 {
		Warnf("%s: no samples inside the %g-%g percentile box, zoomed view is empty", X.Name, o.Low, o.High)
	}

	err = PlotDistribution(zoom, inliers, DistOptions{
		Bins:   o.ZoomBins,
		Title:  o.ZoomTitle,
		XLabel: o.XLabel,
		YLabel: o.YLabel,
		Theme:  o.Theme,
	})
	if err != nil {
		return nil, err
	}
	return fig, nil
}
