package geom

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Row is one "label : value" line of a Panel.
type Row struct {
	Label, Value string
}

// Panel is an opaque text box placed in axis-relative coordinates:
// (0,0) is the lower left and (1,1) the upper right corner of the data
// area. Add it to the plot after the data so that it is drawn on top.
type Panel struct {
	// X0, Y0, X1, Y1 are the corners of the box.
	X0, Y0, X1, Y1 float64

	Fill   color.Color // nil: transparent
	Border draw.LineStyle

	// LabelX and ValueX are the left edges of the label and value column.
	// The first row is centered at Top, each following one Step lower.
	LabelX, ValueX float64
	Top, Step      float64

	TextStyle draw.TextStyle
	Rows      []Row
}

var _ plot.Plotter = (*Panel)(nil)

// NewPanel returns a panel in the upper left corner of the data area
// with a white background and a thin black border.
func NewPanel(rows []Row, sty draw.TextStyle) *Panel {
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YCenter
	return &Panel{
		X0: 0, Y0: 0.65, X1: 0.35, Y1: 1,
		Fill: color.White,
		Border: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.5),
		},
		LabelX: 0.05, ValueX: 0.2,
		Top: 0.95, Step: 0.05,
		TextStyle: sty,
		Rows:      rows,
	}
}

// Plot implements the plot.Plotter interface.
func (p *Panel) Plot(c draw.Canvas, _ *plot.Plot) {
	x0, y0 := c.X(p.X0), c.Y(p.Y0)
	x1, y1 := c.X(p.X1), c.Y(p.Y1)
	box := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}

	if p.Fill != nil {
		c.FillPolygon(p.Fill, box)
	}
	if p.Border.Color != nil && p.Border.Width > 0 {
		c.StrokeLines(p.Border, append(box, box[0]))
	}

	lx, vx := c.X(p.LabelX), c.X(p.ValueX)
	for i, row := range p.Rows {
		y := c.Y(p.Top - float64(i)*p.Step)
		c.FillText(p.TextStyle, vg.Point{X: lx, Y: y}, row.Label)
		c.FillText(p.TextStyle, vg.Point{X: vx, Y: y}, ": "+row.Value)
	}
}
