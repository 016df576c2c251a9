package stat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrShapeMismatch is returned if observed and modelled differ in length.
	ErrShapeMismatch = errors.New("stat: observed and modelled differ in length")

	// ErrInsufficientData is returned if there are too few paired values
	// for the requested statistic.
	ErrInsufficientData = errors.New("stat: insufficient data")

	// ErrDegenerateInput is returned if the regression is undefined
	// because the observed values have zero variance.
	ErrDegenerateInput = errors.New("stat: degenerate input")

	// ErrNotFinite is returned for NaN or infinite input values.
	ErrNotFinite = errors.New("stat: value is not finite")
)

// checkPair validates the shape of a pair, requires at least min values
// and rejects NaN and infinite values.
func checkPair(observed, modelled []float64, min int) error {
	if len(observed) != len(modelled) {
		return fmt.Errorf("%w: %d observed vs. %d modelled values",
			ErrShapeMismatch, len(observed), len(modelled))
	}
	if len(observed) < min {
		return fmt.Errorf("%w: got %d paired values, need at least %d",
			ErrInsufficientData, len(observed), min)
	}
	for i := range observed {
		if !finite(observed[i]) {
			return fmt.Errorf("%w: observed[%d] is %g", ErrNotFinite, i, observed[i])
		}
		if !finite(modelled[i]) {
			return fmt.Errorf("%w: modelled[%d] is %g", ErrNotFinite, i, modelled[i])
		}
	}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Residuals returns observed[i] - modelled[i] in a freshly allocated slice.
func Residuals(observed, modelled []float64) ([]float64, error) {
	if err := checkPair(observed, modelled, 1); err != nil {
		return nil, err
	}
	return floats.SubTo(make([]float64, len(observed)), observed, modelled), nil
}

// RMSE computes the root mean square error of modelled against observed.
//
// The root mean square error is an absolute criterion of the overall
// agreement of the pair. Squaring avoids error compensation and emphasises
// larger errors; the root yields a value in the units of the data, so it
// can be compared to the MAE to judge the prominence of outliers.
func RMSE(observed, modelled []float64) (float64, error) {
	r, err := Residuals(observed, modelled)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(floats.Dot(r, r) / float64(len(r))), nil
}

// Bias computes the mean residual E[observed - modelled].
func Bias(observed, modelled []float64) (float64, error) {
	r, err := Residuals(observed, modelled)
	if err != nil {
		return 0, err
	}
	return floats.Sum(r) / float64(len(r)), nil
}

// MAE computes the mean absolute error of modelled against observed.
func MAE(observed, modelled []float64) (float64, error) {
	r, err := Residuals(observed, modelled)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range r {
		sum += math.Abs(v)
	}
	return sum / float64(len(r)), nil
}
