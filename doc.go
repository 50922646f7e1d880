// Package fir provides a reference model of a one-dimensional FIR filter in
// pure Go.
//
// The package carries two independent realizations of the same causal,
// time-invariant filter
//
//	y[n] = sum_{k=0}^{K-1} h[k] * x[n-k]
//
// and keeps them numerically equivalent:
//
//   - [Filter] is a stateful Direct Form I filter. It holds the coefficient
//     sequence and an explicit delay line and produces one output per
//     input sample.
//   - [Convolve] is the stateless golden model. It computes the full linear
//     convolution of a whole input buffer with the coefficients.
//
// Feeding x[0..n] through a freshly reset [Filter] yields exactly
// Convolve(x, h)[n] for every n < len(x). Both paths accumulate products in
// ascending tap order, so the equality holds bit for bit.
//
// # Quick Start
//
// One-shot convolution:
//
//	y := fir.Convolve([]float64{1, 3, 5}, []float64{0.5, 0.5})
//	// y = [0.5 2 4 2.5]
//
// Sample-by-sample streaming:
//
//	f := fir.NewWithTaps([]float64{0.5, 0.5})
//	for _, x := range input {
//	    out = append(out, f.ProcessSample(x))
//	}
//	f.Reset() // clear history before the next independent stream
//
// # Realizations
//
//   - [Filter]: shifted delay line, the reference streaming model.
//   - [RingFilter]: circular delay line with O(1) shift cost. Its output is
//     bit-identical to [Filter].
//   - [BlockFilter]: block-oriented streaming on SIMD valid convolution
//     (github.com/tphakala/simd). Its output matches [Filter] within
//     floating-point tolerance only, since SIMD kernels sum in a different
//     order.
//
// # Degenerate Inputs
//
// No operation in this package fails. A filter with no coefficients returns
// 0 for every sample, and Convolve returns an empty slice when either input
// is empty.
//
// # Coefficient Presets
//
// [Presets3Tap] and [Presets5Tap] hold the moving-average, low-pass, edge and
// sharpen kernels used by the test-vector tooling. Additional sets can be
// loaded from YAML with [LoadPresets].
//
// # Thread Safety
//
// Filter, RingFilter and BlockFilter carry mutable state and do no locking.
// Use one instance per concurrent stream. Convolve is pure and safe for
// concurrent use.
package fir
