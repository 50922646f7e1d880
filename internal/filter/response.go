package filter

import (
	"math"

	"github.com/tphakala/go-fir/cplx"
)

// minMagnitude keeps MagnitudeDB finite at exact zeros.
const minMagnitude = 1e-10

// ResponseAt evaluates the filter's frequency response at one normalized
// frequency (cycles per sample):
//
//	H(f) = sum_n h[n] e^{-j 2π f n}
func ResponseAt(h []float64, freq float64) cplx.Complex {
	omega := windowNormalizationFactor * math.Pi * freq
	acc := cplx.Zero
	for n, c := range h {
		acc = acc.Add(cplx.Polar(-omega * float64(n)).Scale(c))
	}
	return acc
}

// MagnitudeDB returns 20 log10 |H(f)|.
func MagnitudeDB(h []float64, freq float64) float64 {
	m := max(ResponseAt(h, freq).Magnitude(), minMagnitude)
	return 20 * math.Log10(m)
}
