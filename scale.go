package spread

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/vdobler/spread/stat"
)

// ErrDegenerateAxisBounds is returned if the display window of a spread
// diagram is empty or inverted.
var ErrDegenerateAxisBounds = errors.New("spread: degenerate axis bounds")

// Window is the data range displayed on both axes of a spread diagram.
type Window struct {
	Min, Max float64
}

// Check reports ErrDegenerateAxisBounds unless w is a finite, non-empty
// interval.
func (w Window) Check() error {
	if math.IsNaN(w.Min) || math.IsNaN(w.Max) || math.IsInf(w.Min, 0) || math.IsInf(w.Max, 0) {
		return fmt.Errorf("%w: [%g, %g] is not finite", ErrDegenerateAxisBounds, w.Min, w.Max)
	}
	if w.Min >= w.Max {
		return fmt.Errorf("%w: lower bound %g is not below upper bound %g",
			ErrDegenerateAxisBounds, w.Min, w.Max)
	}
	return nil
}

// Factors applied to the extent of the trained data.
const (
	lowerExpand = 1.1
	upperShrink = 0.9
)

// Scale collects the extent of all samples it was trained on and derives
// the spread diagram window from them.
//
// The window is deliberately narrower than the data: it runs from the
// largest minimum times 1.1 to the smallest maximum times 0.9. For data
// clustered near the origin (or any tight cluster) this inverts, which
// Window reports as ErrDegenerateAxisBounds.
type Scale struct {
	mins, maxs []float64
}

// Train adds the extent of xs to s. Empty samples are ignored.
func (s *Scale) Train(xs []float64) {
	if len(xs) == 0 {
		return
	}
	min, max := stats.Sample{Xs: xs}.Bounds()
	s.mins = append(s.mins, min)
	s.maxs = append(s.maxs, max)
}

// Window returns the display window for the trained samples.
func (s *Scale) Window() (Window, error) {
	if len(s.mins) == 0 {
		return Window{}, fmt.Errorf("%w: scale has not been trained", stat.ErrInsufficientData)
	}
	lower, upper := math.Inf(-1), math.Inf(+1)
	for i := range s.mins {
		lower = math.Max(lower, s.mins[i])
		upper = math.Min(upper, s.maxs[i])
	}

	w := Window{Min: lower * lowerExpand, Max: upper * upperShrink}
	if err := w.Check(); err != nil {
		return Window{}, err
	}
	return w, nil
}
