// Package dataset loads paired observed and modelled values from
// delimited text files.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"

	"github.com/vdobler/spread"
)

var (
	// ErrMissingColumn is returned if a requested column is not present in
	// the table or the table has too few columns.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrNotNumeric is returned for a cell which is neither one of the
	// NaNValues nor a finite number.
	ErrNotNumeric = errors.New("dataset: not a number")
)

// Options holds options for CSV loading.
type Options struct {
	IndexColumn bool     // First column is an index (e.g. dates) and not data (default: true)
	Observed    string   // Column name of the observed values (default: first data column)
	Modelled    string   // Column name of the modelled values (default: second data column)
	Delimiter   rune     // Field delimiter (default: ',')
	NaNValues   []string // Cells read as missing (default: "", "NA", "NaN", "null")
}

// DefaultOptions returns default options for CSV loading.
func DefaultOptions() *Options {
	return &Options{
		IndexColumn: true,
		Delimiter:   ',',
		NaNValues:   []string{"", "NA", "NaN", "null"},
	}
}

// Loader reads spread.Pair values from CSV tables with a header row.
type Loader struct {
	logger *zap.Logger
	opts   Options
}

// NewLoader returns a loader. A nil logger discards log output,
// nil opts means DefaultOptions.
func NewLoader(logger *zap.Logger, opts *Options) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	l := &Loader{logger: logger, opts: *opts}
	if l.opts.Delimiter == 0 {
		l.opts.Delimiter = ','
	}
	return l
}

// LoadCSV loads the pair from the named file.
func (l *Loader) LoadCSV(filename string) (spread.Pair, error) {
	file, err := os.Open(filename)
	if err != nil {
		return spread.Pair{}, err
	}
	defer file.Close()

	l.logger.Debug("loading data", zap.String("file", filename))
	return l.ReadCSV(file)
}

// ReadCSV reads the pair from r. Rows with a missing value in the
// observed or modelled column are dropped; any other cell of these
// columns which is not a finite number fails with ErrNotNumeric.
func (l *Loader) ReadCSV(r io.Reader) (spread.Pair, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(l.opts.Delimiter),
		dataframe.NaNValues(l.opts.NaNValues),
	)
	if df.Err != nil {
		return spread.Pair{}, fmt.Errorf("dataset: read csv: %w", df.Err)
	}

	obsName, modName, err := l.columns(df.Names())
	if err != nil {
		return spread.Pair{}, err
	}
	obs, obsNA, err := numbers(df.Col(obsName))
	if err != nil {
		return spread.Pair{}, err
	}
	mod, modNA, err := numbers(df.Col(modName))
	if err != nil {
		return spread.Pair{}, err
	}

	n := 0
	for i := range obs {
		if obsNA[i] || modNA[i] {
			continue
		}
		obs[n], mod[n] = obs[i], mod[i]
		n++
	}
	if dropped := len(obs) - n; dropped > 0 {
		l.logger.Info("dropped rows with missing values",
			zap.Int("dropped", dropped),
			zap.Int("kept", n),
			zap.String("observed", obsName),
			zap.String("modelled", modName))
	}

	pair, err := spread.NewPair(obs[:n], mod[:n])
	if err != nil {
		return spread.Pair{}, fmt.Errorf("dataset: columns %q and %q: %w", obsName, modName, err)
	}
	l.logger.Debug("loaded data", zap.Int("rows", n))
	return pair, nil
}

// columns resolves the names of the observed and modelled column.
func (l *Loader) columns(names []string) (obs, mod string, err error) {
	data := names
	if l.opts.IndexColumn && len(data) > 0 {
		data = data[1:]
	}

	pick := func(name string, pos int) (string, error) {
		if name == "" {
			if pos >= len(data) {
				return "", fmt.Errorf("%w: need %d data columns, got %d", ErrMissingColumn, pos+1, len(data))
			}
			return data[pos], nil
		}
		for _, n := range data {
			if n == name {
				return name, nil
			}
		}
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	if obs, err = pick(l.opts.Observed, 0); err != nil {
		return "", "", err
	}
	if mod, err = pick(l.opts.Modelled, 1); err != nil {
		return "", "", err
	}
	return obs, mod, nil
}

// numbers converts col to floats and reports which cells are missing.
func numbers(col series.Series) ([]float64, []bool, error) {
	xs := col.Float()
	na := col.IsNaN()
	for i, x := range xs {
		if na[i] {
			continue
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, nil, fmt.Errorf("%w: column %q, data row %d: %q",
				ErrNotNumeric, col.Name, i+1, col.Elem(i).String())
		}
	}
	return xs, na, nil
}
