package fir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fir/internal/testutil"
)

var (
	testInput3   = []float64{1.0, 3.0, 5.0}
	testTapsHalf = []float64{0.5, 0.5}
)

func TestFilter_New_Empty(t *testing.T) {
	f := New()

	assert.Empty(t, f.Taps())
	assert.Empty(t, f.Register())
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, -1, f.Order())
}

// TestFilter_ZeroTap verifies the degenerate filter outputs 0 and keeps a
// zero-length register.
func TestFilter_ZeroTap(t *testing.T) {
	f := New()
	for _, x := range []float64{0, 1, -7.5, 1e300} {
		assert.Zero(t, f.ProcessSample(x), "input %v", x)
		assert.Empty(t, f.Register())
	}

	f = NewWithTaps(nil)
	assert.Zero(t, f.ProcessSample(42))
	assert.Empty(t, f.Register())
}

func TestFilter_StreamingMatchesExample(t *testing.T) {
	f := NewWithTaps(testTapsHalf)

	got := make([]float64, 0, len(testInput3))
	for _, x := range testInput3 {
		got = append(got, f.ProcessSample(x))
	}

	testutil.AssertSamplesEqual(t, []float64{0.5, 2.0, 4.0}, got)
}

func TestFilter_RegisterShift(t *testing.T) {
	f := NewWithTaps([]float64{1, 0, 0})

	f.ProcessSample(1)
	assert.Equal(t, []float64{1, 0, 0}, f.Register())
	f.ProcessSample(2)
	assert.Equal(t, []float64{2, 1, 0}, f.Register())
	f.ProcessSample(3)
	assert.Equal(t, []float64{3, 2, 1}, f.Register())
	f.ProcessSample(4)
	assert.Equal(t, []float64{4, 3, 2}, f.Register(), "oldest sample must fall off")
}

func TestFilter_ImpulseResponseIsTaps(t *testing.T) {
	h := []float64{0.1, -0.4, 0.7, 0.2}
	f := NewWithTaps(h)

	got := f.ProcessBlock(testutil.Impulse(len(h) + 3))

	testutil.AssertSamplesEqual(t, append(append([]float64{}, h...), 0, 0, 0), got)
}

// TestFilter_ResetReproducesOutput verifies determinism after Reset.
func TestFilter_ResetReproducesOutput(t *testing.T) {
	h := []float64{0.25, 0.5, 0.25, -0.125}
	x := testutil.RandomSignal(64, 1)

	f := NewWithTaps(h)
	first := f.ProcessBlock(x)

	f.Reset()
	assert.Equal(t, h, f.Taps(), "Reset must not touch taps")
	assert.Equal(t, make([]float64, len(h)), f.Register())

	second := f.ProcessBlock(x)
	fresh := NewWithTaps(h).ProcessBlock(x)

	testutil.AssertSamplesEqual(t, first, second)
	testutil.AssertSamplesEqual(t, first, fresh)
}

// TestFilter_SetTapsClearsHistory verifies reconfiguration discards history.
func TestFilter_SetTapsClearsHistory(t *testing.T) {
	f := NewWithTaps([]float64{1, 2})
	f.ProcessBlock([]float64{5, 6, 7})
	require.NotEqual(t, []float64{0, 0}, f.Register())

	newTaps := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	f.SetTaps(newTaps)

	assert.Equal(t, make([]float64, len(newTaps)), f.Register())
	assert.Equal(t, newTaps, f.Taps())
	assert.Equal(t, 4, f.Order())

	// The first output after reconfiguration only sees the new sample.
	assert.InDelta(t, 0.1*9, f.ProcessSample(9), testutil.DefaultTolerance)
}

func TestFilter_TapsIsSnapshot(t *testing.T) {
	h := []float64{1, 2, 3}
	f := NewWithTaps(h)

	// Mutating the caller's slice must not affect the filter.
	h[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, f.Taps())

	// Mutating the returned slice must not affect the filter either.
	taps := f.Taps()
	taps[1] = 100
	assert.Equal(t, []float64{1, 2, 3}, f.Taps())

	reg := f.Register()
	if len(reg) > 0 {
		reg[0] = 100
	}
	assert.Equal(t, []float64{0, 0, 0}, f.Register())
}

func TestFilter_Process(t *testing.T) {
	f := NewWithTaps(testTapsHalf)

	dst := make([]float64, 2)
	n := f.Process(dst, testInput3)

	assert.Equal(t, 2, n, "Process writes min(len(dst), len(src))")
	assert.Equal(t, []float64{0.5, 2.0}, dst)

	// The third sample was not consumed.
	assert.Equal(t, []float64{3, 1}, f.Register())
}

func TestFilter_ProcessBlockEmpty(t *testing.T) {
	f := NewWithTaps(testTapsHalf)
	out := f.ProcessBlock(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
