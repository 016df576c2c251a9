// Command spreaddiagram draws the spread diagram of the first two data
// columns of a CSV file and saves it as <YYYYMMDD>_evaluation.<format>.
//
// Usage:
//
//	spreaddiagram [flags] <data.csv> [format]
//
// The first column of the file is the index (usually a date), the next
// two are the observed and the modelled values. Rows with a missing
// value are dropped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/spread"
	"github.com/vdobler/spread/dataset"
	"github.com/vdobler/spread/internal/logging"
)

var errUsage = errors.New("usage error")

type config struct {
	input, format string
	outdir        string
	size          float64 // inch

	verbose bool
	loader  dataset.Options
	opts    spread.Options
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("spreaddiagram", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: spreaddiagram [flags] <data.csv> [format]\n\n"+
			"format is one of %s (default %s)\n\nflags:\n",
			strings.Join(SupportedFormats, ", "), DefaultFormat)
		fs.PrintDefaults()
	}

	cfg := &config{loader: *dataset.DefaultOptions(), opts: *spread.DefaultOptions()}
	noAnnotation := fs.Bool("no-annotation", false, "Do not draw the statistics panel")
	noIndex := fs.Bool("no-index", false, "First column holds data, not an index")
	latex := fs.Bool("latex", false, "Render labels as LaTeX math text")
	color := fs.String("color", "", "Marker color, e.g. #1f77b4 or red")
	shape := fs.String("shape", "", "Marker shape, e.g. circle, solid-square, plus")
	markerSize := fs.String("marker-size", "", "Marker radius in points")
	alpha := fs.Float64("alpha", 0, "Marker opacity in (0, 1]")
	fs.StringVar(&cfg.outdir, "outdir", ".", "Output directory")
	fs.Float64Var(&cfg.size, "size", float64(DefaultSize/vg.Inch), "Width and height of the diagram in inch")
	fs.StringVar(&cfg.loader.Observed, "obs", "", "Column of the observed values (default: first data column)")
	fs.StringVar(&cfg.loader.Modelled, "mod", "", "Column of the modelled values (default: second data column)")
	fs.StringVar(&cfg.opts.Title, "title", "", "Diagram title")
	fs.BoolVar(&cfg.opts.Grid, "grid", false, "Draw grid lines")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	switch fs.NArg() {
	case 1:
		cfg.format = DefaultFormat
	case 2:
		cfg.format = strings.ToLower(fs.Arg(1))
	default:
		fs.Usage()
		return nil, fmt.Errorf("%w: expected 1 or 2 arguments, got %d", errUsage, fs.NArg())
	}
	cfg.input = fs.Arg(0)
	if !supported(cfg.format) {
		return nil, fmt.Errorf("%w: unsupported format %q", errUsage, cfg.format)
	}
	if cfg.size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive", errUsage)
	}
	if *alpha < 0 || *alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must be in (0, 1]", errUsage)
	}

	cfg.loader.IndexColumn = !*noIndex
	cfg.opts.Annotate = !*noAnnotation
	if *latex {
		cfg.opts.TextHandler = text.Latex{Fonts: font.DefaultCache}
	}
	cfg.opts.Scatter.Alpha = *alpha
	extra := spread.AesMapping{"color": *color, "shape": *shape, "size": *markerSize}
	for k, v := range extra {
		if v == "" {
			delete(extra, k)
		}
	}
	if len(extra) > 0 {
		cfg.opts.Scatter.Extra = extra
	}
	return cfg, nil
}

func supported(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// outputName returns the date stamped name of the diagram file.
func outputName(dir string, now time.Time, format string) string {
	return filepath.Join(dir, now.Format(OutputDateStamp)+OutputSuffix+"."+format)
}

// run loads, renders and saves the diagram and returns the name of the
// written file.
func run(cfg *config, logger *zap.Logger, now time.Time) (string, error) {
	loader := dataset.NewLoader(logger, &cfg.loader)
	pair, err := loader.LoadCSV(cfg.input)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", cfg.input, err)
	}

	d, err := spread.New(pair, &cfg.opts)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	logger.Debug("rendered diagram",
		zap.Int("n", d.Summary.N),
		zap.Float64("rmse", d.Summary.RMSE),
		zap.Float64("bias", d.Summary.Bias),
		zap.Float64("slope", d.Summary.Slope),
		zap.Float64("intercept", d.Summary.Intercept),
		zap.Float64("r", d.Summary.R),
		zap.Float64("window_min", d.Window.Min),
		zap.Float64("window_max", d.Window.Max))

	if err := os.MkdirAll(cfg.outdir, 0o755); err != nil {
		return "", err
	}
	file := outputName(cfg.outdir, now, cfg.format)
	if err := d.Save(vg.Length(cfg.size)*vg.Inch, file); err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	return file, nil
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

func realMain(args []string, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return ExitUsage
	}

	logger, err := logging.New(cfg.verbose)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	defer func() { _ = logger.Sync() }()

	file, err := run(cfg, logger, time.Now())
	if err != nil {
		logger.Error("spread diagram failed", zap.String("input", cfg.input), zap.Error(err))
		return ExitFailure
	}
	logger.Info("saved spread diagram", zap.String("file", file))
	return ExitOK
}
