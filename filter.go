package fir

// Filter is a causal FIR filter realized in Direct Form I.
//
// It owns a copy of the coefficient sequence h and a delay line (register)
// of the same length holding the most recent len(h) input samples,
// most recent first. The register length equals len(h) after every
// configuration or reset.
//
// A Filter is not safe for concurrent use. Streams that need to be filtered
// concurrently should each use their own Filter.
type Filter struct {
	taps     []float64 // Coefficients h[0..K-1]
	register []float64 // register[k] holds x[n-k]
}

// New creates a filter with no coefficients.
// Until SetTaps is called, ProcessSample returns 0 for every input.
func New() *Filter {
	return &Filter{
		taps:     []float64{},
		register: []float64{},
	}
}

// NewWithTaps creates a filter configured with the given coefficients.
// The coefficients are copied.
func NewWithTaps(h []float64) *Filter {
	f := New()
	f.SetTaps(h)
	return f
}

// SetTaps replaces the coefficients and resets the register to len(h)
// zeros. Prior history is discarded. An empty h is legal and yields a
// filter that outputs 0.
func (f *Filter) SetTaps(h []float64) {
	f.taps = cloneSamples(h)
	f.register = make([]float64, len(h))
}

// Taps returns a copy of the coefficients.
func (f *Filter) Taps() []float64 {
	return cloneSamples(f.taps)
}

// Register returns a snapshot of the delay line, most recent sample first.
func (f *Filter) Register() []float64 {
	return cloneSamples(f.register)
}

// Len returns the number of taps.
func (f *Filter) Len() int {
	return len(f.taps)
}

// Order returns the filter order len(taps)-1, or -1 for an empty filter.
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// ProcessSample pushes one input sample through the filter and returns the
// corresponding output:
//
//	y[n] = sum_{k=0}^{K-1} h[k] * x[n-k]
//
// The register is shifted right by one (the oldest sample falls off), x is
// stored at index 0 and the weighted sum is accumulated in ascending tap
// order. With no coefficients the call returns 0 and changes nothing.
func (f *Filter) ProcessSample(x float64) float64 {
	if len(f.taps) == 0 {
		return 0.0
	}

	copy(f.register[newestSample+shiftStep:], f.register[:len(f.register)-shiftStep])
	f.register[newestSample] = x

	var y float64
	for k, h := range f.taps {
		y += h * f.register[k]
	}
	return y
}

// Process filters src into dst, one ProcessSample call per element.
// It returns the number of samples written, which is min(len(dst), len(src)).
func (f *Filter) Process(dst, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = f.ProcessSample(src[i])
	}
	return n
}

// ProcessBlock filters src and returns a newly allocated output slice of the
// same length.
func (f *Filter) ProcessBlock(src []float64) []float64 {
	dst := make([]float64, len(src))
	f.Process(dst, src)
	return dst
}

// Reset zeroes the register in place. Coefficients are kept.
func (f *Filter) Reset() {
	clear(f.register)
}

// cloneSamples returns a non-nil copy of s.
func cloneSamples(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}
