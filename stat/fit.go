package stat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	gonumstat "gonum.org/v1/gonum/stat"
)

// Fit is the ordinary least squares line of modelled on observed.
type Fit struct {
	Slope     float64
	Intercept float64

	// R is the Pearson correlation coefficient. It is not squared;
	// use R*R for the coefficient of determination.
	R float64
}

// At evaluates the fitted line at x.
func (f Fit) At(x float64) float64 { return f.Intercept + f.Slope*x }

// LinearFit regresses modelled (y) on observed (x).
//
// At least two paired values are needed. If observed is constant the
// slope is undefined and ErrDegenerateInput is returned. A constant
// modelled sequence is fitted by the horizontal line through it with
// a correlation of 0.
func LinearFit(observed, modelled []float64) (Fit, error) {
	if err := checkPair(observed, modelled, 2); err != nil {
		return Fit{}, err
	}
	if constant(observed) {
		return Fit{}, fmt.Errorf("%w: observed values have zero variance", ErrDegenerateInput)
	}
	if constant(modelled) {
		return Fit{Slope: 0, Intercept: modelled[0], R: 0}, nil
	}

	alpha, beta := gonumstat.LinearRegression(observed, modelled, nil, false)
	r := gonumstat.Correlation(observed, modelled, nil)
	return Fit{Slope: beta, Intercept: alpha, R: r}, nil
}

func constant(xs []float64) bool {
	return floats.Min(xs) == floats.Max(xs)
}
