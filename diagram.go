package spread

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/spread/geom"
	"github.com/vdobler/spread/stat"
)

// Diagram is a rendered spread diagram.
type Diagram struct {
	// Plot is the plot the diagram was drawn into.
	Plot *plot.Plot

	Summary stat.Summary
	Window  Window

	// The layers in drawing order. Grid and Panel are nil if
	// disabled in the Options.
	Grid     *plotter.Grid
	Scatter  *plotter.Scatter
	Identity *geom.ABLine
	Fit      *geom.ABLine
	Panel    *geom.Panel
}

// New renders the spread diagram of pair into a new plot.
func New(pair Pair, opts *Options) (*Diagram, error) {
	return Render(plot.New(), pair, opts)
}

// Render draws the spread diagram of pair into p: the scatter of
// modelled against observed, the identity line, the regression line
// and, if requested, a panel with the fit statistics. Both axes of p are
// set to the same window; the identity line is the diagonal at 45
// degrees only if p is drawn onto a square canvas. Diagram.Save and
// Diagram.WriteTo do that, a Figure tile is square only if the figure
// size and pads make it so.
//
// All statistics and styles are computed before p is modified, so p is
// left untouched if an error is returned.
func Render(p *plot.Plot, pair Pair, opts *Options) (*Diagram, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := pair.Check(); err != nil {
		return nil, err
	}

	summary, err := stat.Summarize(pair.Observed, pair.Modelled)
	if err != nil {
		return nil, err
	}

	var window Window
	if opts.Window != nil {
		window = *opts.Window
		if err := window.Check(); err != nil {
			return nil, err
		}
	} else {
		var scale Scale
		scale.Train(pair.Observed)
		scale.Train(pair.Modelled)
		if window, err = scale.Window(); err != nil {
			return nil, err
		}
	}

	theme := opts.Theme.merged()
	points, err := opts.Scatter.GlyphStyle(theme.PointStyle)
	if err != nil {
		return nil, err
	}
	scatter, err := geom.Points(pair, points)
	if err != nil {
		return nil, fmt.Errorf("spread: scatter: %w", err)
	}

	d := &Diagram{
		Plot:    p,
		Summary: summary,
		Window:  window,
		Scatter: scatter,
		Identity: &geom.ABLine{
			Intercept: 0, Slope: 1,
			XMin: window.Min, XMax: window.Max,
			LineStyle: lineStyle(theme.IdentityStyle),
		},
		Fit: &geom.ABLine{
			Intercept: summary.Intercept, Slope: summary.Slope,
			XMin: window.Min, XMax: window.Max,
			LineStyle: lineStyle(theme.FitStyle),
		},
	}
	if opts.Annotate {
		d.Panel = newPanel(summary, theme.PanelStyle, opts)
	}

	if opts.Grid {
		d.Grid = plotter.NewGrid()
		p.Add(d.Grid)
	}
	p.Add(d.Scatter, d.Identity, d.Fit)
	if d.Panel != nil {
		p.Add(d.Panel)
	}

	p.X.Min, p.X.Max = window.Min, window.Max
	p.Y.Min, p.Y.Max = window.Min, window.Max
	if opts.Title != "" {
		p.Title.Text = opts.Title
	}
	if opts.XLabel != "" {
		p.X.Label.Text = opts.XLabel
	}
	if opts.YLabel != "" {
		p.Y.Label.Text = opts.YLabel
	}
	if opts.TextHandler != nil {
		h := opts.TextHandler
		p.Title.TextStyle.Handler = h
		p.X.Label.TextStyle.Handler = h
		p.Y.Label.TextStyle.Handler = h
		p.X.Tick.Label.Handler = h
		p.Y.Tick.Label.Handler = h
	}
	return d, nil
}

// newPanel formats the statistics of s into an annotation panel.
func newPanel(s stat.Summary, aes AesMapping, opts *Options) *geom.Panel {
	labels := opts.labels()
	values := [6]float64{s.MeanObserved, s.MeanModelled, s.Slope, s.Intercept, s.R, s.RMSE}
	rows := make([]geom.Row, len(values))
	for i, v := range values {
		rows[i] = geom.Row{Label: labels[i], Value: fmt.Sprintf("%.2f", v)}
	}

	panel := geom.NewPanel(rows, opts.panelTextStyle(aes))
	panel.Fill = String2Color(aes["fill"])
	panel.Border = draw.LineStyle{
		Color: String2Color(aes["color"]),
		Width: vg.Points(String2Float(aes["size"], 0, 10)),
	}
	return panel
}

// Save writes the diagram to file on a square canvas of the given size.
// The format is taken from the file extension, see plot.Plot.Save.
func (d *Diagram) Save(size vg.Length, file string) error {
	return d.Plot.Save(size, size, file)
}

// WriteTo writes the diagram in the given format ("png", "svg", "pdf",
// ...) on a square canvas of the given size.
func (d *Diagram) WriteTo(w io.Writer, size vg.Length, format string) (int64, error) {
	wt, err := d.Plot.WriterTo(size, size, format)
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}
