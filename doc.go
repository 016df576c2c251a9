// Package spread draws spread diagrams: scatter plots comparing
// modelled (simulated, predicted) values against observed (measured)
// values with some information about the fit included.
//
//
// Diagram Layout
//
// A spread diagram consists of the following layers, drawn in this order
// onto a gonum plot:
//     grid        optional, see Options.Grid
//     scatter     one point per (observed, modelled) pair
//     identity    the dashed line y = x of perfect agreement
//     fit         the least squares line of modelled on observed
//     panel       optional box listing mean observed, mean modelled,
//                 slope, intercept, correlation r and RMSE
//
// Both axes share the same window so that the identity line is the
// diagonal of a square drawing area.
//
//
// Display Window
//
// The window is not the extent of the data but narrower: it starts at
// the larger of the two minima times 1.1 and ends at the smaller of the
// two maxima times 0.9. For tightly clustered data (e.g. everything near
// the origin) this yields an empty window and rendering fails with
// ErrDegenerateAxisBounds. Set Options.Window to choose the window
// explicitly.
//
//
// Input
//
// Observed and modelled values are given as a Pair. NewPair accepts any
// numeric slice or array, gota series and plotter.Valuer values:
//    pair, err := spread.NewPair(df.Col("observed"), df.Col("modelled"))
//    d, err := spread.New(pair, nil)
//    err = d.Save(4*vg.Inch, "evaluation.png")
//
// Render draws into an existing plot, e.g. one panel of a Figure:
//    fig, _ := spread.NewFigure(1, 2)
//    spread.Render(fig.At(0, 0), winter, nil)
//    spread.Render(fig.At(0, 1), summer, nil)
//    fig.Save(8*vg.Inch, 4*vg.Inch, "seasons.pdf")
//
// The statistics themselves live in package stat.
package spread
