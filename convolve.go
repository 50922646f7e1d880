package fir

// Convolve computes the full linear convolution of x (length N) and h
// (length K):
//
//	y[n] = sum_{k=0}^{K-1} h[k] * x[n-k],  n in [0, N+K-1)
//
// Terms with n-k outside [0, N) are omitted, which amounts to zero padding
// outside the support of x. The result has length N+K-1. If either input is
// empty the result is an empty, non-nil slice.
//
// Convolve is the golden model for [Filter]: for n < N, Convolve(x, h)[n] is
// the n-th output of a fresh Filter configured with h and fed x. Products are
// accumulated in ascending k so that equality is exact.
func Convolve(x, h []float64) []float64 {
	if len(x) == 0 || len(h) == 0 {
		return []float64{}
	}
	y := make([]float64, len(x)+len(h)-convLengthOffset)
	ConvolveTo(y, x, h)
	return y
}

// ConvolveTo writes the full linear convolution of x and h into dst and
// returns the number of values written (len(x)+len(h)-1).
// It writes nothing and returns 0 if either input is empty or dst is shorter
// than the full result.
func ConvolveTo(dst, x, h []float64) int {
	if len(x) == 0 || len(h) == 0 {
		return 0
	}

	n, k := len(x), len(h)
	yLen := n + k - convLengthOffset
	if len(dst) < yLen {
		return 0
	}

	for i := range yLen {
		var acc float64
		// Only taps whose input index i-j falls inside [0, n) contribute.
		lo := max(0, i-n+1)
		hi := min(k-1, i)
		for j := lo; j <= hi; j++ {
			acc += h[j] * x[i-j]
		}
		dst[i] = acc
	}

	return yLen
}

// ConvolutionLength returns the length of Convolve(x, h) for inputs of
// length n and k.
func ConvolutionLength(n, k int) int {
	if n <= 0 || k <= 0 {
		return 0
	}
	return n + k - convLengthOffset
}
