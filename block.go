package fir

import (
	"github.com/tphakala/go-fir/internal/simdops"
)

// Float is the set of sample types supported by [BlockFilter].
type Float = simdops.Float

// BlockFilter is a streaming FIR filter that processes whole blocks with SIMD
// valid convolution.
//
// It keeps the last K-1 input samples as history, prepends them to each new
// block and convolves against the coefficients stored in reversed order.
// Every input sample yields exactly one output, as with [Filter].
//
// Outputs agree with [Filter] to within floating-point rounding. They are not
// guaranteed to be bit-identical because the SIMD kernels sum products in a
// different order.
//
// Type parameter F controls the precision of sample processing.
type BlockFilter[F Float] struct {
	taps     []F // Coefficients in natural order
	reversed []F // Coefficients reversed for ConvolveValid

	history []F // Last len(taps)-1 inputs, oldest first
	work    []F // history followed by the current block

	ops *simdops.Ops[F]
}

// NewBlockFilter creates a block filter with the given coefficients.
// The coefficients are copied.
func NewBlockFilter[F Float](h []F) *BlockFilter[F] {
	b := &BlockFilter[F]{ops: simdops.For[F]()}
	b.SetTaps(h)
	return b
}

// SetTaps replaces the coefficients and clears the history.
func (b *BlockFilter[F]) SetTaps(h []F) {
	k := len(h)
	b.taps = make([]F, k)
	copy(b.taps, h)

	b.reversed = make([]F, k)
	for i, c := range h {
		b.reversed[k-1-i] = c
	}

	b.history = make([]F, max(k-1, 0))
	b.work = make([]F, 0, len(b.history)+defaultBlockSize)
}

// Taps returns a copy of the coefficients.
func (b *BlockFilter[F]) Taps() []F {
	c := make([]F, len(b.taps))
	copy(c, b.taps)
	return c
}

// Process filters one block and returns a new slice with one output per
// input sample. History carries over to the next call.
func (b *BlockFilter[F]) Process(block []F) []F {
	out := make([]F, len(block))
	if len(block) == 0 || len(b.taps) == 0 {
		return out
	}

	b.work = append(b.work[:0], b.history...)
	b.work = append(b.work, block...)

	b.ops.ConvolveValid(out, b.work, b.reversed)

	// Keep the newest K-1 samples for the next block.
	copy(b.history, b.work[len(b.work)-len(b.history):])

	return out
}

// Reset clears the history. Coefficients are kept.
func (b *BlockFilter[F]) Reset() {
	clear(b.history)
}
