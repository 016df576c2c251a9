package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearFit(t *testing.T) {
	tests := []struct {
		name      string
		obs, mod  []float64
		slope     float64
		intercept float64
		r         float64
	}{
		{"identity", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}, 1, 0, 1},
		{"offset", []float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5, 6}, 1, 1, 1},
		{"scaled", []float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 2, 1, 1},
		{"anticorrelated", []float64{1, 2, 3}, []float64{3, 2, 1}, -1, 4, -1},
		{"two points", []float64{-1, 1}, []float64{0, 4}, 2, 2, 1},
		{"noisy", []float64{1, 2, 3, 4}, []float64{1, 3, 2, 4}, 0.8, 0.5, 0.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fit, err := LinearFit(tc.obs, tc.mod)
			require.NoError(t, err)
			assert.InDelta(t, tc.slope, fit.Slope, 1e-9)
			assert.InDelta(t, tc.intercept, fit.Intercept, 1e-9)
			assert.InDelta(t, tc.r, fit.R, 1e-9)
		})
	}
}

func TestLinearFitOfItself(t *testing.T) {
	a := []float64{0.3, 12.5, -4, 7.25, 9, 1e3}
	fit, err := LinearFit(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fit.Slope, 1e-9)
	assert.InDelta(t, 0.0, fit.Intercept, 1e-9)
	assert.InDelta(t, 1.0, fit.R, 1e-9)
}

func TestLinearFitConstantModelled(t *testing.T) {
	fit, err := LinearFit([]float64{1, 2, 3, 4}, []float64{5, 5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, Fit{Slope: 0, Intercept: 5, R: 0}, fit)
	assert.Equal(t, 5.0, fit.At(100))
}

func TestLinearFitAt(t *testing.T) {
	fit := Fit{Slope: 2, Intercept: -1}
	assert.Equal(t, -1.0, fit.At(0))
	assert.Equal(t, 5.0, fit.At(3))
}

func TestLinearFitErrors(t *testing.T) {
	tests := []struct {
		name     string
		obs, mod []float64
		want     error
	}{
		{"shape", []float64{1, 2, 3}, []float64{1, 2}, ErrShapeMismatch},
		{"empty", nil, nil, ErrInsufficientData},
		{"single point", []float64{1}, []float64{2}, ErrInsufficientData},
		{"constant observed", []float64{3, 3, 3}, []float64{1, 2, 3}, ErrDegenerateInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LinearFit(tc.obs, tc.mod)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
