package spread

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Canvas formats for draw.NewFormattedCanvas.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Figure is a grid of plots drawn onto one canvas, e.g. several spread
// diagrams side by side. Render into the plots returned by At.
//
// The tiles share the canvas evenly. Choose width and height in the
// ratio Cols:Rows (pads aside) to keep spread diagrams at a 1:1 aspect.
type Figure struct {
	Rows, Cols int
	Plots      [][]*plot.Plot
	Tiles      draw.Tiles
}

// NewFigure returns a figure of rows x cols empty plots.
func NewFigure(rows, cols int) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("spread: invalid figure layout %dx%d", rows, cols)
	}
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
		for c := range plots[r] {
			plots[r][c] = plot.New()
		}
	}
	pad := vg.Points(8)
	return &Figure{
		Rows:  rows,
		Cols:  cols,
		Plots: plots,
		Tiles: draw.Tiles{
			Rows: rows, Cols: cols,
			PadX: pad, PadY: pad,
			PadTop: pad, PadBottom: pad, PadLeft: pad, PadRight: pad,
		},
	}, nil
}

// At returns the plot in the given row and column.
func (f *Figure) At(row, col int) *plot.Plot {
	return f.Plots[row][col]
}

// Draw draws all plots into dc, aligning their axes.
func (f *Figure) Draw(dc draw.Canvas) {
	canvases := plot.Align(f.Plots, f.Tiles, dc)
	for r := range f.Plots {
		for c, p := range f.Plots[r] {
			p.Draw(canvases[r][c])
		}
	}
}

// WriteTo writes the figure in the given format ("png", "svg", "pdf", ...).
func (f *Figure) WriteTo(w io.Writer, width, height vg.Length, format string) (int64, error) {
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

// Save writes the figure to file; the format is taken from the extension.
func (f *Figure) Save(width, height vg.Length, file string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = e
		}
	}()

	_, err = f.WriteTo(out, width, height, format)
	return err
}
