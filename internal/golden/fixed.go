package golden

import (
	"fmt"
	"math"
	"slices"
)

// FixedParams describes the fixed-point datapath.
type FixedParams struct {
	// FracBits is the number of fractional bits of the coefficient format.
	FracBits int `json:"frac_bits" yaml:"frac_bits"`

	// AccBits is the accumulator width; sums wrap modulo 2^AccBits.
	AccBits int `json:"acc_bits" yaml:"acc_bits"`

	// CoeffBits is the signed coefficient width (8, 16, 32 or 64).
	CoeffBits int `json:"coeff_bits" yaml:"coeff_bits"`
}

// DefaultFixedParams returns the Q1.7 / 16-bit accumulator configuration.
func DefaultFixedParams() FixedParams {
	return FixedParams{
		FracBits:  DefaultFracBits,
		AccBits:   DefaultAccBits,
		CoeffBits: DefaultCoeffBits,
	}
}

// Validate checks the parameter combination.
func (p *FixedParams) Validate() error {
	if !slices.Contains(supportedCoeffBits, p.CoeffBits) {
		return fmt.Errorf("%w: coeff_bits=%d, supported %v", ErrCoeffBits, p.CoeffBits, supportedCoeffBits)
	}
	if p.AccBits < 1 || p.AccBits > maxAccBits {
		return fmt.Errorf("%w: acc_bits=%d out of range [1, %d]", ErrParams, p.AccBits, maxAccBits)
	}
	if p.FracBits < 0 || p.FracBits >= p.AccBits {
		return fmt.Errorf("%w: frac_bits=%d out of range [0, %d)", ErrParams, p.FracBits, p.AccBits)
	}
	return nil
}

// CoeffRange returns the real-valued range a coefficient must lie in,
// [-2^(CoeffBits-1), 2^(CoeffBits-1)-1] / 2^FracBits.
func (p *FixedParams) CoeffRange() (lo, hi float64) {
	minQ, maxQ := p.coeffLimits()
	return float64(minQ) / p.scale(), float64(maxQ) / p.scale()
}

func (p *FixedParams) coeffLimits() (minQ, maxQ int64) {
	minQ = int64(-1) << (p.CoeffBits - 1)
	return minQ, ^minQ
}

func (p *FixedParams) scale() float64 {
	return math.Ldexp(1, p.FracBits)
}

// QuantizeTaps converts real coefficients to the fixed-point format: each
// value is scaled by 2^FracBits, rounded half to even and clipped to the
// signed CoeffBits range.
func QuantizeTaps(h []float64, p FixedParams) ([]int64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(h) == 0 {
		return nil, ErrEmptyTaps
	}

	lo, hi := p.CoeffRange()
	for i, c := range h {
		if !isFinite(c) {
			return nil, fmt.Errorf("%w: h[%d]=%v", ErrNonFinite, i, c)
		}
		if c < lo || c > hi {
			return nil, fmt.Errorf("%w: h[%d]=%v outside [%v, %v] (coeff_bits=%d, frac_bits=%d)",
				ErrCoeffRange, i, c, lo, hi, p.CoeffBits, p.FracBits)
		}
	}

	minQ, maxQ := p.coeffLimits()
	scale := p.scale()
	q := make([]int64, len(h))
	for i, c := range h {
		r := math.RoundToEven(c * scale)
		switch {
		case r <= float64(minQ):
			q[i] = minQ
		case r >= float64(maxQ):
			q[i] = maxQ
		default:
			q[i] = int64(r)
		}
	}
	return q, nil
}

// Fixed runs the fixed-point row model and returns one 8-bit output per
// input sample.
//
// Samples are checked for finiteness, saturated to [0, 255] and truncated to
// integers. For each output the products pixel*hq[k] of the causal window
// are summed in ascending k; after every addition the accumulator keeps only
// its low AccBits bits. The result is sign-extended from AccBits, shifted
// right by FracBits (arithmetic) and saturated to [0, 255].
func Fixed(x, h []float64, p FixedParams) ([]uint8, error) {
	hq, err := QuantizeTaps(h, p)
	if err != nil {
		return nil, err
	}

	xs, err := clampPixels(x)
	if err != nil {
		return nil, err
	}
	pixels := make([]uint8, len(xs))
	for i, v := range xs {
		pixels[i] = uint8(v)
	}

	return fixedFilter(pixels, hq, p), nil
}

// fixedFilter is the datapath proper. Accumulation uses uint64 so products
// wrap modulo 2^64, which leaves the low AccBits bits exact.
func fixedFilter(pixels []uint8, hq []int64, p FixedParams) []uint8 {
	mask := uint64(1)<<p.AccBits - 1
	signBit := uint64(1) << (p.AccBits - 1)
	wrap := int64(1) << p.AccBits

	n := len(pixels)
	y := make([]uint8, n)

	for i := range n {
		var acc uint64
		for k, c := range hq {
			j := i - k
			if j < 0 || j >= n {
				// Zero padding contributes a zero term; the mask is a no-op.
				continue
			}
			acc += uint64(pixels[j]) * uint64(c)
			acc &= mask
		}

		signed := int64(acc)
		if acc&signBit != 0 {
			signed -= wrap
		}

		y[i] = saturatePixel(signed >> p.FracBits)
	}

	return y
}

func saturatePixel(v int64) uint8 {
	switch {
	case v > int64(maxPixel):
		return uint8(maxPixel)
	case v < int64(minPixel):
		return uint8(minPixel)
	default:
		return uint8(v)
	}
}
