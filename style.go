package spread

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/spread/geom"
)

// AesMapping holds styling aesthetics as strings, e.g.
//
//	AesMapping{"color": "#1f77b4", "size": "3", "shape": "solid-circle", "alpha": "0.6"}
//
// The values are parsed with the String2... functions below which fall
// back to a default instead of failing on malformed input.
type AesMapping map[string]string

// Keys returns the sorted aesthetics set in m.
func (m AesMapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for a := range m {
		keys = append(keys, a)
	}
	sort.Strings(keys)
	return keys
}

// MergeAes merges all ams into one mapping. Earlier mappings take
// precedence over later ones; empty values are treated as unset.
func MergeAes(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for i := len(ams) - 1; i >= 0; i-- {
		for a, v := range ams[i] {
			if v == "" {
				continue
			}
			merged[a] = v
		}
	}
	return merged
}

// String2Float parses s as a float and clamps it to [low, high].
// A trailing "%" divides the value by 100. Unparsable input yields the
// middle of the range.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return (low + high) / 2
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha sets the alpha of c to a. The color channels of c are
// kept; any alpha c already had is replaced.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*0xff + 0.5)
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
	case "circle", "ring":
		return CirclePoint
	case "square":
		return SquarePoint
	case "delta", "triangle":
		return DeltaPoint
	case "solid-circle", "dot":
		return SolidCirclePoint
	case "solid-square", "box":
		return SolidSquarePoint
	case "solid-delta", "pyramid":
		return SolidDeltaPoint
	case "cross":
		return CrossPoint
	case "plus":
		return PlusPoint
	}
	return BlankPoint
}

// Glyph returns the gonum glyph drawing shape.
func (s PointShape) Glyph() draw.GlyphDrawer {
	switch s {
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
	return geom.BlankGlyph{}
}

// String2PointSize parses the glyph radius in points.
func String2PointSize(s string) vg.Length {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil && f >= 0 {
		return vg.Points(f)
	}
	return vg.Points(2.5)
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

// Dashes returns the dash pattern of t. Solid and blank lines have none.
func (t LineType) Dashes() []vg.Length {
	var pattern []float64
	switch t {
	case DashedLine:
		pattern = []float64{4, 2}
	case DottedLine:
		pattern = []float64{1, 2}
	case DotDashLine:
		pattern = []float64{1, 2, 4, 2}
	case LongdashLine:
		pattern = []float64{8, 2}
	case TwodashLine:
		pattern = []float64{6, 2, 2, 2}
	default:
		return nil
	}
	dashes := make([]vg.Length, len(pattern))
	for i, p := range pattern {
		dashes[i] = vg.Points(p)
	}
	return dashes
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
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"grey":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or one of the BuiltinColors.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// -------------------------------------------------------------------------
// Conversion of aesthetics to gonum styles

// glyphStyle interpretes the aesthetics color, size, shape and alpha.
func glyphStyle(aes AesMapping) draw.GlyphStyle {
	c := String2Color(aes["color"])
	if a, ok := aes["alpha"]; ok {
		c = SetAlpha(c, String2Float(a, 0, 1))
	}
	return draw.GlyphStyle{
		Color:  c,
		Radius: String2PointSize(aes["size"]),
		Shape:  String2PointShape(aes["shape"]).Glyph(),
	}
}

// lineStyle interpretes the aesthetics color, size (the width in
// points), linetype and alpha. A blank linetype yields a line of width 0.
func lineStyle(aes AesMapping) draw.LineStyle {
	lt := String2LineType(aes["linetype"])
	if lt == BlankLine {
		return draw.LineStyle{}
	}
	c := String2Color(aes["color"])
	if a, ok := aes["alpha"]; ok {
		c = SetAlpha(c, String2Float(a, 0, 1))
	}
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(String2Float(aes["size"], 0, 10)),
		Dashes: lt.Dashes(),
	}
}
