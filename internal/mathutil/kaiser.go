// Package mathutil provides the special functions and empirical formulas
// behind Kaiser window FIR design.
package mathutil

import (
	"math"
)

// BesselI0 computes the zeroth-order modified Bessel function of the first
// kind by its power series:
//
//	I0(x) = sum_{m>=0} ((x/2)^m / m!)^2
//
// The series converges for every x; terms are added until they stop
// changing the sum.
func BesselI0(x float64) float64 {
	q := x * besselHalf
	q *= q

	sum, term := 1.0, 1.0
	for m := 1; m < besselMaxTerms; m++ {
		term *= q / float64(m*m)
		sum += term
		if term < besselEpsilon*sum {
			break
		}
	}
	return sum
}

// KaiserBeta returns the Kaiser window β that achieves the given stopband
// attenuation in dB:
//
//   - att > 50:       β = 0.1102 (att - 8.7)
//   - 21 <= att <= 50: β = 0.5842 (att - 21)^0.4 + 0.07886 (att - 21)
//   - att < 21:       β = 0 (rectangular window)
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		d := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(d, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*d
	default:
		return 0.0
	}
}

// EstimateTaps estimates the number of taps a Kaiser-windowed lowpass needs
// for the given attenuation (dB) and transition width (fraction of the
// sample rate). The result is odd and clamped to [MinTaps, MaxTaps].
func EstimateTaps(attenuation, transitionBW float64) int {
	if transitionBW <= 0 {
		transitionBW = defaultTransitionBW
	}

	n := int(math.Ceil((attenuation-kaiserLengthOffset)/(kaiserLengthScale*transitionBW))) + 1
	if n%2 == 0 {
		n++
	}
	return min(max(n, MinTaps), MaxTaps)
}
