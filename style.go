package distplot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// String2Float parses s as a number clamped to [low, high]. A trailing
// "%" divides by 100. Unparsable input yields def.
func String2Float(s string, low, high, def float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		Warnf("cannot parse style %q as float: %s", s, err)
		return def
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha returns c with opacity a in [0,1]. Existing opacity of c is
// replaced.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(a * 0xff))
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DeltaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDeltaPoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "delta":
		return DeltaPoint
	case "solid-circle", "o":
		return SolidCirclePoint
	case "solid-square", "s":
		return SolidSquarePoint
	case "solid-delta", "^":
		return SolidDeltaPoint
	case "cross", "x":
		return CrossPoint
	case "plus", "+":
		return PlusPoint
	}
	return BlankPoint
}

// Glyph returns the gonum glyph drawing shape p. BlankPoint draws nothing.
func (p PointShape) Glyph() draw.GlyphDrawer {
	switch p {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return blankGlyph{}
}

type blankGlyph struct{}

func (blankGlyph) DrawGlyph(*draw.Canvas, draw.GlyphStyle, vg.Point) {}

// String2PointSize converts a marker area in square points (the "s" of
// a scatter call) to a glyph radius.
func String2PointSize(s string) vg.Length {
	area := String2Float(s, 0, 1e4, 36)
	return vg.Points(math.Sqrt(area) / 2)
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt for draw.LineStyle.
func (lt LineType) Dashes() []vg.Length {
	p := vg.Points
	switch lt {
	case DashedLine:
		return []vg.Length{p(4), p(4)}
	case DottedLine:
		return []vg.Length{p(1), p(3)}
	case DotDashLine:
		return []vg.Length{p(1), p(3), p(4), p(3)}
	case LongdashLine:
		return []vg.Length{p(8), p(4)}
	case TwodashLine:
		return []vg.Length{p(2), p(2), p(6), p(2)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
	"C0":      {0x1f, 0x77, 0xb4, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a name from
// BuiltinColors. Unknown colors are reported and drawn in a muted red.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			if len(s) == 7 {
				v = v<<8 | 0xff
			}
			return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
		}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	Warnf("unknown color %q", s)
	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// ColorString formats c as "#rrggbbaa".
func ColorString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
