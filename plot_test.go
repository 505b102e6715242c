package distplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/distplot/geom"
)

// sampleFrame is 100 households: income i/10 and i*7 households, with
// two outliers which the zoomed view must drop.
func sampleFrame(t *testing.T) *DataFrame {
	t.Helper()
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i) / 10, float64(i * 7)}
	}
	rows[98] = []float64{150, 300}
	rows[99] = []float64{2, 35000}
	df, err := NewDataFrame("households", rows, "MedInc", "Households")
	require.NoError(t, err)
	return df
}

func histOf(t *testing.T, a *Axes) *geom.Hist {
	t.Helper()
	for _, p := range a.Plotters() {
		if h, ok := p.(*geom.Hist); ok {
			return h
		}
	}
	t.Fatalf("no histogram on %s", a.Name)
	return nil
}

func TestPlotDistribution(t *testing.T) {
	X := sampleFrame(t)
	_, full, _ := CreateAxes("", Size{})

	err := PlotDistribution(full, X, DistOptions{Title: "Full data", XLabel: "inc", YLabel: "hh"})
	require.NoError(t, err)

	sp := full.Scatter.Plot
	assert.Equal(t, "Full data", sp.Title.Text)
	assert.Equal(t, "inc", sp.X.Label.Text)
	assert.Equal(t, "hh", sp.Y.Label.Text)

	sc := full.Scatter.Scatter()
	require.NotNil(t, sc)
	assert.Len(t, sc.XYs, 100)
	assert.Equal(t, 150.0, sc.XYs[98].X)

	hy := histOf(t, full.HistY)
	hx := histOf(t, full.HistX)
	assert.Equal(t, geom.Horizontal, hy.Orientation)
	assert.Equal(t, geom.Vertical, hx.Orientation)
	assert.Len(t, hy.Bins, 50)
	assert.Equal(t, 100, hy.Total())
	assert.Equal(t, 100, hx.Total())

	assert.Equal(t, sp.Y.Min, full.HistY.Plot.Y.Min)
	assert.Equal(t, sp.Y.Max, full.HistY.Plot.Y.Max)
	assert.Equal(t, sp.X.Min, full.HistX.Plot.X.Min)
	assert.Equal(t, sp.X.Max, full.HistX.Plot.X.Max)
	assert.InDelta(t, -7.5, sp.X.Min, 1e-9)
	assert.InDelta(t, 157.5, sp.X.Max, 1e-9)

	assert.Zero(t, full.HistY.Plot.X.Tick.Length)
	assert.Zero(t, full.HistX.Plot.Y.Tick.Length)
}

func TestPlotDistributionErrors(t *testing.T) {
	_, full, _ := CreateAxes("", Size{})

	one, err := NewDataFrame("one", [][]float64{{1}, {2}})
	require.NoError(t, err)
	err = PlotDistribution(full, one, DistOptions{})
	assert.ErrorIs(t, err, ErrShape)

	err = PlotDistribution(full, sampleFrame(t), DistOptions{Bins: -1})
	assert.Error(t, err)

	err = PlotDistribution(AxesGroup{}, sampleFrame(t), DistOptions{})
	assert.Error(t, err)
}

func TestZoomMask(t *testing.T) {
	X := sampleFrame(t)
	mask, err := ZoomMask(X, 0, 99)
	require.NoError(t, err)
	assert.Len(t, mask, 100)

	n := 0
	for _, in := range mask {
		if in {
			n++
		}
	}
	// Row 0 holds the minimum of both features, which lies on the 0th
	// percentile and is excluded along with the two outliers.
	assert.Equal(t, 97, n)
	assert.False(t, mask[0])
	assert.False(t, mask[98])
	assert.False(t, mask[99])

	_, err = ZoomMask(X, 50, 10)
	assert.Error(t, err)
}

func TestMakePlot(t *testing.T) {
	X := sampleFrame(t)
	log := captureLog(t)
	fig, err := MakePlot("Housing", X, nil)
	require.NoError(t, err)
	assert.Empty(t, log.String())
	require.Len(t, fig.Axes, 6)
	assert.Equal(t, "Housing", fig.Title)

	full, zoom := fig.Axes[0], fig.Axes[3]
	assert.Equal(t, "Full data", full.Plot.Title.Text)
	assert.Equal(t, "Zoom-in", zoom.Plot.Title.Text)
	assert.Equal(t, "Median Income", zoom.Plot.X.Label.Text)
	assert.Equal(t, "Number of households", zoom.Plot.Y.Label.Text)

	mask, err := ZoomMask(X, 0, 99)
	require.NoError(t, err)
	want := 0
	for _, in := range mask {
		if in {
			want++
		}
	}
	assert.Len(t, full.Scatter().XYs, 100)
	assert.Len(t, zoom.Scatter().XYs, want)
	assert.Len(t, histOf(t, fig.Axes[1]).Bins, 200)
	assert.Len(t, histOf(t, fig.Axes[4]).Bins, 50)

	for _, xy := range zoom.Scatter().XYs {
		assert.Less(t, xy.X, 150.0)
		assert.Less(t, xy.Y, 35000.0)
	}
}

func TestMakePlotEmptyZoom(t *testing.T) {
	X, err := NewDataFrame("flat", [][]float64{{1, 1}, {1, 1}, {1, 1}})
	require.NoError(t, err)

	log := captureLog(t)
	fig, err := MakePlot("flat", X, nil)
	require.NoError(t, err)
	assert.Contains(t, log.String(), "flat: no samples inside the 0-99 percentile box")
	zoom := fig.Axes[3]
	assert.Empty(t, zoom.Scatter().XYs)
	assert.Empty(t, histOf(t, fig.Axes[4]).Bins)
	assert.Empty(t, histOf(t, fig.Axes[5]).Bins)
}

func TestMakePlotNonFinite(t *testing.T) {
	X, err := NewDataFrame("gaps", [][]float64{{1, 2}, {math.NaN(), 3}, {2, 4}, {3, math.Inf(1)}})
	require.NoError(t, err)

	fig, err := MakePlot("gaps", X, &ZoomOptions{FullBins: 4, ZoomBins: 2})
	require.NoError(t, err)
	assert.Len(t, fig.Axes[0].Scatter().XYs, 2)
}

func TestZoomMaskDropsExtremes(t *testing.T) {
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i + 1), float64(10 * (i + 1))}
	}
	X, err := NewDataFrame("linear", rows)
	require.NoError(t, err)

	mask, err := ZoomMask(X, 0, 99)
	require.NoError(t, err)
	inliers, err := X.Filter(mask)
	require.NoError(t, err)

	n, _ := inliers.Dims()
	assert.Equal(t, 98, n)
	assert.Equal(t, 2.0, inliers.At(0, 0))
	assert.Equal(t, 99.0, inliers.At(n-1, 0))
}

func TestMakePlotZeroHigh(t *testing.T) {
	X := sampleFrame(t)

	fig, err := MakePlot("Housing", X, &ZoomOptions{High: 0})
	require.NoError(t, err)
	assert.Len(t, fig.Axes[3].Scatter().XYs, 97, "zero High falls back to 99")

	log := captureLog(t)
	fig, err = MakePlot("Housing", X, &ZoomOptions{High: 0, ExplicitBox: true})
	require.NoError(t, err)
	assert.Empty(t, fig.Axes[3].Scatter().XYs)
	assert.Contains(t, log.String(), "0-0 percentile box")

	_, err = MakePlot("Housing", X, &ZoomOptions{Low: 50, High: 0, ExplicitBox: true})
	assert.Error(t, err)
}
