package spread

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/spread/stat"
)

// ErrNotNumeric is returned by Values for input which cannot be
// interpreted as a sequence of finite numbers.
var ErrNotNumeric = errors.New("spread: not a numeric sequence")

// Values converts v to a freshly allocated []float64.
//
// Accepted are slices and arrays of any integer or float type,
// gota series (e.g. a column of a gota data frame) and anything
// implementing plotter.Valuer. NaN and infinite values are rejected:
// missing values must be removed before.
func Values(v interface{}) ([]float64, error) {
	var xs []float64
	switch s := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrNotNumeric)
	case []float64:
		xs = make([]float64, len(s))
		copy(xs, s)
	case series.Series:
		if s.Err != nil {
			return nil, fmt.Errorf("%w: series %q: %v", ErrNotNumeric, s.Name, s.Err)
		}
		if t := s.Type(); t != series.Float && t != series.Int {
			return nil, fmt.Errorf("%w: series %q has type %s", ErrNotNumeric, s.Name, t)
		}
		xs = s.Float()
	case plotter.Valuer:
		xs = make([]float64, s.Len())
		for i := range xs {
			xs[i] = s.Value(i)
		}
	default:
		var err error
		xs, err = reflectValues(reflect.ValueOf(v))
		if err != nil {
			return nil, err
		}
	}

	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: element %d is %g", ErrNotNumeric, i, x)
		}
	}
	return xs, nil
}

func reflectValues(v reflect.Value) ([]float64, error) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: cannot convert %s", ErrNotNumeric, v.Type())
	}

	n := v.Len()
	xs := make([]float64, n)
	switch v.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		for i := 0; i < n; i++ {
			xs[i] = float64(v.Index(i).Int())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		for i := 0; i < n; i++ {
			xs[i] = float64(v.Index(i).Uint())
		}
	case reflect.Float32, reflect.Float64:
		for i := 0; i < n; i++ {
			xs[i] = v.Index(i).Float()
		}
	default:
		return nil, fmt.Errorf("%w: cannot convert %s", ErrNotNumeric, v.Type())
	}
	return xs, nil
}

// Pair is a sample of paired observed and modelled values.
// It implements plotter.XYer with observed on x and modelled on y.
type Pair struct {
	Observed []float64
	Modelled []float64
}

var _ plotter.XYer = Pair{}

// NewPair converts observed and modelled with Values and checks that
// they form a non-empty pair of equal length.
func NewPair(observed, modelled interface{}) (Pair, error) {
	obs, err := Values(observed)
	if err != nil {
		return Pair{}, fmt.Errorf("observed: %w", err)
	}
	mod, err := Values(modelled)
	if err != nil {
		return Pair{}, fmt.Errorf("modelled: %w", err)
	}
	p := Pair{Observed: obs, Modelled: mod}
	if err := p.Check(); err != nil {
		return Pair{}, err
	}
	return p, nil
}

// Check reports stat.ErrShapeMismatch for sequences of different length
// and stat.ErrInsufficientData for an empty pair.
func (p Pair) Check() error {
	if len(p.Observed) != len(p.Modelled) {
		return fmt.Errorf("%w: %d observed vs. %d modelled values",
			stat.ErrShapeMismatch, len(p.Observed), len(p.Modelled))
	}
	if len(p.Observed) == 0 {
		return fmt.Errorf("%w: empty pair", stat.ErrInsufficientData)
	}
	return nil
}

// Len implements plotter.XYer.
func (p Pair) Len() int { return len(p.Observed) }

// XY implements plotter.XYer.
func (p Pair) XY(i int) (x, y float64) { return p.Observed[i], p.Modelled[i] }
