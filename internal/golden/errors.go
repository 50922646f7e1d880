// Package golden provides the bit-accurate reference models of the FIR row
// filter datapath used to generate and check hardware test vectors.
//
// Two models are provided:
//
//   - Ideal: float64 arithmetic, centered ("same") output, inputs clamped
//     to the 8-bit pixel range and outputs left unclamped.
//   - Fixed: Q-format coefficients, a wrapping accumulator of configurable
//     width, arithmetic right shift and saturation to [0, 255].
//
// Unlike the core fir package these models validate their inputs and
// return errors, since they stand in for hardware with a bounded range.
package golden

import "errors"

// Validation errors. Returned errors wrap one of these.
var (
	ErrEmptyTaps  = errors.New("golden: coefficients must not be empty")
	ErrNonFinite  = errors.New("golden: value must be finite")
	ErrCoeffRange = errors.New("golden: coefficient out of range")
	ErrCoeffBits  = errors.New("golden: unsupported coefficient width")
	ErrParams     = errors.New("golden: invalid fixed-point parameters")
	ErrRowLength  = errors.New("golden: row output length mismatch")
)
