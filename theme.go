package distplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AesMapping holds fixed aesthetics like "color" or "size" as strings.
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, v := range m {
		c[a] = v
	}
	return c
}

// MergeStyles merges the given mappings. The first mapping which sets an
// aesthetic to a non-empty value wins.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for a, v := range am {
			if v == "" {
				continue
			}
			if _, ok := merged[a]; !ok {
				merged[a] = v
			}
		}
	}
	return merged
}

// Theme controls the look of a distribution plot. Unset aesthetics fall
// back to DefaultTheme.
type Theme struct {
	// PointStyle: color, alpha, size (marker area in pt²), shape.
	PointStyle AesMapping

	// HistStyle: fill, color, alpha, size (outline width in pt), linetype.
	HistStyle AesMapping

	// AxisStyle: offset (outward shift of the scatter axes in pt) and
	// expand (fraction of the data range added on each side).
	AxisStyle AesMapping
}

var DefaultTheme = Theme{
	PointStyle: AesMapping{
		"color": "C0",
		"alpha": "0.5",
		"size":  "5",
		"shape": "solid-circle",
	},
	HistStyle: AesMapping{
		"fill":     "grey",
		"color":    "grey",
		"alpha":    "1",
		"size":     "0.5",
		"linetype": "solid",
	},
	AxisStyle: AesMapping{
		"offset": "10",
		"expand": "0.05",
	},
}

// GlyphStyle is the style of the scatter points.
func (t Theme) GlyphStyle() draw.GlyphStyle {
	s := MergeStyles(t.PointStyle, DefaultTheme.PointStyle)
	return draw.GlyphStyle{
		Color:  SetAlpha(String2Color(s["color"]), String2Float(s["alpha"], 0, 1, 1)),
		Radius: String2PointSize(s["size"]),
		Shape:  String2PointShape(s["shape"]).Glyph(),
	}
}

// HistFill returns the bar fill color and outline style of histograms.
func (t Theme) HistFill() (color.Color, draw.LineStyle) {
	s := MergeStyles(t.HistStyle, DefaultTheme.HistStyle)
	alpha := String2Float(s["alpha"], 0, 1, 1)
	fill := SetAlpha(String2Color(s["fill"]), alpha)
	line := draw.LineStyle{
		Color: SetAlpha(String2Color(s["color"]), alpha),
		Width: vg.Points(String2Float(s["size"], 0, 100, 0.5)),
	}
	lt := String2LineType(s["linetype"])
	if lt == BlankLine {
		line.Width = 0
	}
	line.Dashes = lt.Dashes()
	return fill, line
}

// AxisOffset is the padding between the scatter axes and the data.
func (t Theme) AxisOffset() vg.Length {
	s := MergeStyles(t.AxisStyle, DefaultTheme.AxisStyle)
	return vg.Points(String2Float(s["offset"], 0, 100, 10))
}

// Expand is the fraction of the data range added as margin on each side
// of the scatter.
func (t Theme) Expand() float64 {
	s := MergeStyles(t.AxisStyle, DefaultTheme.AxisStyle)
	return String2Float(s["expand"], 0, 1, 0.05)
}
