package golden

// Pixel range
const (
	minPixel = 0.0
	maxPixel = 255.0
)

// Ideal model limits
const (
	// MaxAbsIdealCoeff bounds |h[k]| for the ideal model.
	MaxAbsIdealCoeff = 1e6

	// centerDivisor places the kernel center at len(h)/2.
	centerDivisor = 2
)

// Default fixed-point format: Q1.7 coefficients, 16-bit accumulator.
const (
	DefaultFracBits  = 7
	DefaultAccBits   = 16
	DefaultCoeffBits = 8

	maxAccBits = 63
)

// Supported coefficient widths in bits.
var supportedCoeffBits = []int{8, 16, 32, 64}
