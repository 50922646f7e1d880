package fir

// RingFilter is a Direct Form I FIR filter whose delay line is a circular
// buffer. Inserting a sample only moves the write index, so the shift costs
// O(1) instead of O(K).
//
// For any input sequence RingFilter produces exactly the same outputs as
// [Filter]: each step forms the same products and sums them in the same
// ascending tap order.
type RingFilter struct {
	taps  []float64
	delay []float64
	pos   int // Index of the most recent sample in delay
}

// NewRingFilter creates a circular-buffer filter with the given coefficients.
// The coefficients are copied.
func NewRingFilter(h []float64) *RingFilter {
	r := &RingFilter{}
	r.SetTaps(h)
	return r
}

// SetTaps replaces the coefficients and clears the delay line.
func (r *RingFilter) SetTaps(h []float64) {
	r.taps = cloneSamples(h)
	r.delay = make([]float64, len(h))
	r.pos = 0
}

// Taps returns a copy of the coefficients.
func (r *RingFilter) Taps() []float64 {
	return cloneSamples(r.taps)
}

// Register returns the delay line unrolled into most-recent-first order,
// matching [Filter.Register].
func (r *RingFilter) Register() []float64 {
	n := len(r.delay)
	out := make([]float64, n)
	p := r.pos
	for k := range n {
		out[k] = r.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	return out
}

// ProcessSample pushes one sample and returns the filter output.
// With no coefficients it returns 0 and changes nothing.
func (r *RingFilter) ProcessSample(x float64) float64 {
	n := len(r.taps)
	if n == 0 {
		return 0.0
	}

	r.pos++
	if r.pos >= n {
		r.pos = 0
	}
	r.delay[r.pos] = x

	var y float64
	p := r.pos
	for k := range n {
		y += r.taps[k] * r.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	return y
}

// ProcessBlock filters src and returns a new output slice of the same length.
func (r *RingFilter) ProcessBlock(src []float64) []float64 {
	dst := make([]float64, len(src))
	for i, x := range src {
		dst[i] = r.ProcessSample(x)
	}
	return dst
}

// Reset clears the delay line. Coefficients are kept.
func (r *RingFilter) Reset() {
	clear(r.delay)
	r.pos = 0
}
