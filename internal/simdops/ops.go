// Package simdops binds the SIMD kernels of github.com/tphakala/simd to a
// single generic API over float32 and float64.
//
// The FIR code needs only a handful of vector primitives; each one is held
// as a function pointer so generic callers pick the type-specific kernel
// once at construction time instead of per sample.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// ConvolveValid computes dst[i] = sum_j signal[i+j] * kernel[j] for
	// i in [0, len(signal)-len(kernel)]. Callers wanting a true convolution
	// pass the kernel reversed.
	ConvolveValid func(dst, signal, kernel []F)

	// DotProductUnsafe computes the dot product without bounds checking.
	// Both slices must have equal length.
	DotProductUnsafe func(a, b []F) F

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		ConvolveValid:    f32.ConvolveValid,
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		ConvolveValid:    f64.ConvolveValid,
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float64Ops returns the float64 operations for non-generic code.
func Float64Ops() *Ops[float64] {
	return &ops64
}

// ValidLength returns the number of outputs ConvolveValid produces for a
// signal of length n and a kernel of length k, or 0 if the kernel is longer
// than the signal.
func ValidLength(n, k int) int {
	if k == 0 || n < k {
		return 0
	}
	return n - k + 1
}
