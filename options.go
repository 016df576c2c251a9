package spread

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrUnknownOption is returned for extra style options which are not
// understood by the styled primitive.
var ErrUnknownOption = errors.New("spread: unknown style option")

// Options control the rendering of a spread diagram.
//
// A nil *Options is the same as DefaultOptions(). The zero value is
// usable too but draws neither the panel nor axis labels.
type Options struct {
	// Annotate adds the statistics panel in the upper left corner.
	Annotate bool

	// Grid draws grid lines below the data.
	Grid bool

	Scatter ScatterStyle

	// Theme overrides the styles of the layers. Unset aesthetics
	// fall back to DefaultTheme.
	Theme Theme

	// Window replaces the computed display window if non-nil.
	Window *Window

	// TextHandler renders all text of the diagram. Nil means plain
	// text; pass text.Latex{Fonts: font.DefaultCache} for math text.
	TextHandler text.Handler

	// Labels of the panel rows. The zero value selects PlainLabels,
	// or MathLabels if TextHandler is a text.Latex.
	Labels PanelLabels

	Title, XLabel, YLabel string
}

// DefaultOptions returns options with annotation and axis labels.
func DefaultOptions() *Options {
	return &Options{
		Annotate: true,
		XLabel:   "observed",
		YLabel:   "modelled",
	}
}

// PanelLabels are the row labels of the annotation panel in the order
// mean observed, mean modelled, slope, intercept, correlation, RMSE.
type PanelLabels [6]string

var (
	PlainLabels = PanelLabels{"avg x", "avg y", "slope", "intc.", "r", "RMSE"}
	MathLabels  = PanelLabels{`$\mu_x$`, `$\mu_y$`, "slope", "intc.", "$r$", "RMSE"}
)

func (o *Options) handler() text.Handler {
	if o.TextHandler != nil {
		return o.TextHandler
	}
	return plot.DefaultTextHandler
}

func (o *Options) labels() PanelLabels {
	if o.Labels != (PanelLabels{}) {
		return o.Labels
	}
	switch o.TextHandler.(type) {
	case text.Latex, *text.Latex:
		return MathLabels
	}
	return PlainLabels
}

// panelTextStyle returns the text style of the annotation panel.
func (o *Options) panelTextStyle(aes AesMapping) draw.TextStyle {
	size := String2Float(aes["fontsize"], 1, 72)
	return draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(size)),
		Handler: o.handler(),
	}
}

// ScatterStyle styles the markers of the scatter.
//
// The typed fields take precedence over Extra, which in turn takes
// precedence over the theme. Zero values are unset.
type ScatterStyle struct {
	Color  color.Color
	Radius vg.Length
	Shape  draw.GlyphDrawer
	Alpha  float64 // in (0, 1]

	// Extra are string options in the form understood by AesMapping:
	// "color", "size", "shape" and "alpha". Other keys are rejected
	// with ErrUnknownOption.
	Extra AesMapping
}

var scatterAes = NewStringSetFrom([]string{"color", "size", "shape", "alpha"})

// GlyphStyle resolves s on top of the theme aesthetics.
func (s ScatterStyle) GlyphStyle(theme AesMapping) (draw.GlyphStyle, error) {
	var unknown []string
	for _, a := range s.Extra.Keys() {
		if !scatterAes.Contains(a) {
			unknown = append(unknown, a)
		}
	}
	if len(unknown) > 0 {
		return draw.GlyphStyle{}, fmt.Errorf("%w: %v", ErrUnknownOption, unknown)
	}

	sty := glyphStyle(MergeAes(s.Extra, theme, DefaultTheme.PointStyle))
	if s.Color != nil {
		sty.Color = s.Color
		if a, ok := s.Extra["alpha"]; ok {
			sty.Color = SetAlpha(sty.Color, String2Float(a, 0, 1))
		}
	}
	if s.Alpha > 0 {
		sty.Color = SetAlpha(sty.Color, math.Min(s.Alpha, 1))
	}
	if s.Radius > 0 {
		sty.Radius = s.Radius
	}
	if s.Shape != nil {
		sty.Shape = s.Shape
	}
	return sty, nil
}
