// Package geom contains the geometrical objects a spread diagram is
// made of. All of them are gonum plot.Plotters and can be added to any
// plot.Plot.
package geom
