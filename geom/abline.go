package geom

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ABLine is the straight line y = Intercept + Slope*x drawn between
// XMin and XMax. It is clipped to the data area and does not take part
// in the computation of the axis ranges.
type ABLine struct {
	Intercept, Slope float64
	XMin, XMax       float64

	draw.LineStyle
}

var (
	_ plot.Plotter     = (*ABLine)(nil)
	_ plot.Thumbnailer = (*ABLine)(nil)
)

// At returns the y value of the line at x.
func (l *ABLine) At(x float64) float64 { return l.Intercept + l.Slope*x }

// Plot implements the plot.Plotter interface.
func (l *ABLine) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	line := []vg.Point{
		{X: trX(l.XMin), Y: trY(l.At(l.XMin))},
		{X: trX(l.XMax), Y: trY(l.At(l.XMax))},
	}
	c.StrokeLines(l.LineStyle, c.ClipLinesXY(line)...)
}

// Thumbnail implements the plot.Thumbnailer interface so an ABLine
// can be put into a legend.
func (l *ABLine) Thumbnail(c *draw.Canvas) {
	y := (c.Min.Y + c.Max.Y) / 2
	c.StrokeLine2(l.LineStyle, c.Min.X, y, c.Max.X, y)
}
