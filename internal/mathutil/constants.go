package mathutil

// Bessel series constants
const (
	// besselMaxTerms bounds the power series; convergence is reached long
	// before this for the beta values used in window design.
	besselMaxTerms = 500

	// besselEpsilon stops the series once a term no longer changes the sum.
	besselEpsilon = 1e-17

	besselHalf = 0.5 // I0 series runs over (x/2)^2
)

// Kaiser window formula constants
// From Kaiser & Schafer's empirical formulas
const (
	kaiserAttHigh   = 50.0 // High attenuation threshold (dB)
	kaiserAttMedium = 21.0 // Medium attenuation threshold (dB)

	kaiserBetaHighCoeff  = 0.1102 // Coefficient for high attenuation
	kaiserBetaHighOffset = 8.7    // Offset for high attenuation

	kaiserBetaMediumCoeff1 = 0.5842  // Primary coefficient for medium attenuation
	kaiserBetaMediumPower  = 0.4     // Power for medium attenuation formula
	kaiserBetaMediumCoeff2 = 0.07886 // Secondary coefficient for medium attenuation
)

// Filter length estimation constants
const (
	// N ≈ (att - 7.95) / (14.36 * Δf) + 1
	kaiserLengthOffset = 7.95
	kaiserLengthScale  = 14.36

	// Filter length bounds
	MinTaps = 3
	MaxTaps = 8191

	defaultTransitionBW = 0.01 // Used when the transition width is not positive
)
