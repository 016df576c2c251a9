package geom

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Points returns the scatter layer of the given data drawn with sty.
// The data is copied.
func Points(data plotter.XYer, sty draw.GlyphStyle) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(data)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = sty
	return s, nil
}

// BlankGlyph draws nothing.
type BlankGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (BlankGlyph) DrawGlyph(*draw.Canvas, draw.GlyphStyle, vg.Point) {}
