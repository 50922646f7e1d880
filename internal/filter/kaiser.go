// Package filter designs FIR coefficient sequences with the Kaiser window
// method.
package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-fir/internal/mathutil"
	"github.com/tphakala/go-fir/internal/simdops"
)

const (
	// Window normalization
	windowNormalizationFactor = 2.0

	// Sinc function constants
	sincZeroThreshold = 1e-10

	// Upper bound for normalized frequencies (Nyquist)
	nyquist = 0.5
)

// KaiserWindow generates a Kaiser window of the given length and β:
//
//	w[n] = I0(β sqrt(1 - ((n-α)/α)^2)) / I0(β),  α = (length-1)/2
//
// The window is symmetric and its center value is 1. A length below 1
// yields an empty window.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1.0
		return window
	}

	alpha := float64(length-1) / windowNormalizationFactor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(max(0, 1.0-x*x))) / i0Beta
	}

	return window
}

// Params holds lowpass design parameters.
type Params struct {
	// NumTaps is the filter length. It must be odd for a symmetric,
	// linear-phase design.
	NumTaps int

	// Cutoff is the normalized cutoff frequency in (0, 0.5).
	Cutoff float64

	// Attenuation is the desired stopband attenuation in dB.
	Attenuation float64

	// Gain is the DC gain of the result (sum of taps).
	Gain float64
}

// Validate checks if design parameters are valid.
func (p *Params) Validate() error {
	if p.NumTaps < mathutil.MinTaps {
		return fmt.Errorf("filter too short: %d taps (minimum %d)", p.NumTaps, mathutil.MinTaps)
	}
	if p.NumTaps > mathutil.MaxTaps {
		return fmt.Errorf("filter too long: %d taps (maximum %d)", p.NumTaps, mathutil.MaxTaps)
	}
	if p.NumTaps%2 == 0 {
		return fmt.Errorf("filter length %d must be odd", p.NumTaps)
	}
	if p.Cutoff <= 0 || p.Cutoff >= nyquist {
		return fmt.Errorf("invalid cutoff frequency: %f (must be in (0, 0.5))", p.Cutoff)
	}
	if p.Attenuation < 0 {
		return fmt.Errorf("invalid attenuation: %f dB (must be positive)", p.Attenuation)
	}
	if p.Gain <= 0 {
		return fmt.Errorf("invalid gain: %f (must be positive)", p.Gain)
	}
	return nil
}

// LowPass designs a Kaiser-windowed sinc lowpass filter. The ideal response
// sin(2π fc x)/(π x) is truncated to NumTaps samples around the center,
// windowed, and scaled so the taps sum to Gain.
func LowPass(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	window := KaiserWindow(p.NumTaps, mathutil.KaiserBeta(p.Attenuation))
	taps := make([]float64, p.NumTaps)
	center := float64(p.NumTaps-1) / windowNormalizationFactor

	for n := range p.NumTaps {
		x := float64(n) - center
		var s float64
		if math.Abs(x) < sincZeroThreshold {
			s = windowNormalizationFactor * p.Cutoff
		} else {
			s = math.Sin(windowNormalizationFactor*math.Pi*p.Cutoff*x) / (math.Pi * x)
		}
		taps[n] = s * window[n]
	}

	ops := simdops.Float64Ops()
	if sum := ops.Sum(taps); math.Abs(sum) > sincZeroThreshold {
		ops.Scale(taps, taps, p.Gain/sum)
	}

	return taps, nil
}

// LowPassAuto designs a lowpass filter whose length is estimated from the
// attenuation and transition width.
func LowPassAuto(cutoff, transitionBW, attenuation, gain float64) ([]float64, error) {
	return LowPass(Params{
		NumTaps:     mathutil.EstimateTaps(attenuation, transitionBW),
		Cutoff:      cutoff,
		Attenuation: attenuation,
		Gain:        gain,
	})
}
