package stat

import (
	gonumstat "gonum.org/v1/gonum/stat"
)

// Summary bundles the statistics a spread diagram displays for one
// pair of observed and modelled values.
type Summary struct {
	N            int
	MeanObserved float64
	MeanModelled float64
	Slope        float64
	Intercept    float64
	R            float64 // Pearson correlation, not squared
	RMSE         float64
	Bias         float64
	MAE          float64
}

// R2 returns the coefficient of determination of the linear fit.
func (s Summary) R2() float64 { return s.R * s.R }

// Fit returns the regression line of the summary.
func (s Summary) Fit() Fit {
	return Fit{Slope: s.Slope, Intercept: s.Intercept, R: s.R}
}

// Summarize computes the complete Summary. It fails in the same
// situations as LinearFit.
func Summarize(observed, modelled []float64) (Summary, error) {
	fit, err := LinearFit(observed, modelled)
	if err != nil {
		return Summary{}, err
	}
	rmse, err := RMSE(observed, modelled)
	if err != nil {
		return Summary{}, err
	}
	bias, err := Bias(observed, modelled)
	if err != nil {
		return Summary{}, err
	}
	mae, err := MAE(observed, modelled)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		N:            len(observed),
		MeanObserved: gonumstat.Mean(observed, nil),
		MeanModelled: gonumstat.Mean(modelled, nil),
		Slope:        fit.Slope,
		Intercept:    fit.Intercept,
		R:            fit.R,
		RMSE:         rmse,
		Bias:         bias,
		MAE:          mae,
	}, nil
}
