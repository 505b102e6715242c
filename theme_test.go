package distplot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestMergeStyles(t *testing.T) {
	a := AesMapping{"color": "red", "size": ""}
	b := AesMapping{"color": "blue", "size": "3", "alpha": "0.2"}
	got := MergeStyles(a, b)
	assert.Equal(t, AesMapping{"color": "red", "size": "3", "alpha": "0.2"}, got)

	c := b.Copy()
	c["color"] = "green"
	assert.Equal(t, "blue", b["color"])
}

func TestDefaultTheme(t *testing.T) {
	var th Theme

	gs := th.GlyphStyle()
	assert.Equal(t, color.NRGBA{0x1f, 0x77, 0xb4, 0x80}, gs.Color)
	assert.InDelta(t, 1.118, float64(gs.Radius), 1e-3)
	assert.IsType(t, draw.CircleGlyph{}, gs.Shape)

	fill, line := th.HistFill()
	assert.Equal(t, color.NRGBA{0x80, 0x80, 0x80, 0xff}, fill)
	assert.Equal(t, vg.Points(0.5), line.Width)
	assert.Nil(t, line.Dashes)

	assert.Equal(t, vg.Points(10), th.AxisOffset())
	assert.Equal(t, 0.05, th.Expand())
}

func TestThemeOverride(t *testing.T) {
	th := Theme{
		PointStyle: AesMapping{"color": "red", "shape": "x"},
		HistStyle:  AesMapping{"linetype": "blank", "fill": "#00000080"},
		AxisStyle:  AesMapping{"offset": "0"},
	}

	gs := th.GlyphStyle()
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0x80}, gs.Color)
	assert.IsType(t, draw.CrossGlyph{}, gs.Shape)

	fill, line := th.HistFill()
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, fill, "alpha of the theme replaces the color's")
	assert.Zero(t, line.Width)
	assert.Zero(t, th.AxisOffset())
	assert.Equal(t, 0.05, th.Expand())
}
