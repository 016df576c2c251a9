// Package stat computes residual statistics of paired observed and
// modelled values.
//
// All functions take the observed (measured, ground truth) values first
// and the modelled (predicted, simulated) values second. Residuals are
// always observed minus modelled, so a positive Bias means the model
// under-predicts on average.
//
// Quick overview:
//
//	rmse, err := stat.RMSE(observed, modelled)  // range [0, inf), optimum 0
//	bias, err := stat.Bias(observed, modelled)  // range (-inf, inf), optimum 0
//	fit, err := stat.LinearFit(observed, modelled)
//	fmt.Printf("y = %.2f + %.2f x  (r = %.2f)\n", fit.Intercept, fit.Slope, fit.R)
//
// Summarize bundles everything a spread diagram annotates into one
// Summary value.
package stat
