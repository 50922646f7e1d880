package golden

import (
	"fmt"
	"math"
)

// Ideal runs the floating-point row model.
//
// h must be non-empty with finite coefficients no larger than
// MaxAbsIdealCoeff in magnitude. x must be finite; each sample is clamped to
// [0, 255] before filtering. The output has len(x) samples, centered on the
// kernel:
//
//	y[n] = sum_k h[k] * x[n-k+len(h)/2]
//
// where out-of-range input indices contribute nothing. The output is not
// clamped.
func Ideal(x, h []float64) ([]float64, error) {
	if err := validateIdealTaps(h); err != nil {
		return nil, err
	}
	xs, err := clampPixels(x)
	if err != nil {
		return nil, err
	}

	n := len(xs)
	center := len(h) / centerDivisor
	y := make([]float64, n)

	for i := range n {
		var acc float64
		for k, c := range h {
			idx := i - k + center
			if idx >= 0 && idx < n {
				acc += c * xs[idx]
			}
		}
		y[i] = acc
	}

	return y, nil
}

func validateIdealTaps(h []float64) error {
	if len(h) == 0 {
		return ErrEmptyTaps
	}
	for i, c := range h {
		if !isFinite(c) {
			return fmt.Errorf("%w: h[%d]=%v", ErrNonFinite, i, c)
		}
		if math.Abs(c) > MaxAbsIdealCoeff {
			return fmt.Errorf("%w: |h[%d]|=%v exceeds %v", ErrCoeffRange, i, math.Abs(c), MaxAbsIdealCoeff)
		}
	}
	return nil
}

// clampPixels rejects non-finite samples and saturates the rest to the pixel
// range.
func clampPixels(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, v := range x {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: x[%d]=%v", ErrNonFinite, i, v)
		}
		out[i] = max(minPixel, min(maxPixel, v))
	}
	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
