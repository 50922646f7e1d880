package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fir/internal/testutil"
)

const (
	testWindowLength21 = 21
	testBeta8          = 8.653728

	testAttenuation80 = 80.0
	testCutoff0_25    = 0.25
	testTransitionBW  = 0.05
	testGainUnity     = 1.0
)

func TestKaiserWindow_Symmetry(t *testing.T) {
	for _, length := range []int{11, 21, 51} {
		window := KaiserWindow(length, testBeta8)
		assert.Len(t, window, length)
		testutil.AssertSymmetric(t, window, testutil.WindowTolerance)
	}
}

func TestKaiserWindow_Center(t *testing.T) {
	window := KaiserWindow(testWindowLength21, testBeta8)
	center := window[testWindowLength21/2]

	assert.InDelta(t, 1.0, center, testutil.WindowTolerance)
	for i, v := range window {
		assert.LessOrEqual(t, v, center, "window[%d] exceeds center", i)
		assert.Positive(t, v, "window[%d] must be positive", i)
	}
}

func TestKaiserWindow_EdgeCases(t *testing.T) {
	assert.Empty(t, KaiserWindow(0, testBeta8))
	assert.Equal(t, []float64{1.0}, KaiserWindow(1, testBeta8))

	// β = 0 is the rectangular window.
	rect := KaiserWindow(9, 0)
	for _, v := range rect {
		assert.InDelta(t, 1.0, v, testutil.WindowTolerance)
	}
}

func TestParams_Validate(t *testing.T) {
	valid := Params{NumTaps: 31, Cutoff: testCutoff0_25, Attenuation: testAttenuation80, Gain: testGainUnity}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"too_short", func(p *Params) { p.NumTaps = 1 }},
		{"too_long", func(p *Params) { p.NumTaps = 10001 }},
		{"even_length", func(p *Params) { p.NumTaps = 32 }},
		{"cutoff_zero", func(p *Params) { p.Cutoff = 0 }},
		{"cutoff_nyquist", func(p *Params) { p.Cutoff = 0.5 }},
		{"negative_attenuation", func(p *Params) { p.Attenuation = -1 }},
		{"zero_gain", func(p *Params) { p.Gain = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestLowPass(t *testing.T) {
	taps, err := LowPass(Params{NumTaps: 63, Cutoff: testCutoff0_25, Attenuation: testAttenuation80, Gain: testGainUnity})
	require.NoError(t, err)

	assert.Len(t, taps, 63)
	testutil.AssertNoNaNOrInf(t, taps)
	testutil.AssertSymmetric(t, taps, testutil.DefaultTolerance)
	testutil.AssertDCGain(t, taps, testGainUnity, 1e-9)

	// Passband near unity, deep stopband.
	assert.InDelta(t, 0.0, MagnitudeDB(taps, 0.05), 0.1)
	assert.Less(t, MagnitudeDB(taps, 0.45), -60.0)
}

func TestLowPass_Gain(t *testing.T) {
	taps, err := LowPass(Params{NumTaps: 21, Cutoff: 0.1, Attenuation: 60, Gain: 2.0})
	require.NoError(t, err)
	testutil.AssertDCGain(t, taps, 2.0, 1e-9)
}

func TestLowPassAuto(t *testing.T) {
	taps, err := LowPassAuto(testCutoff0_25, testTransitionBW, testAttenuation80, testGainUnity)
	require.NoError(t, err)

	assert.Equal(t, 1, len(taps)%2, "auto length must be odd")
	testutil.AssertDCGain(t, taps, testGainUnity, 1e-9)

	_, err = LowPassAuto(0.6, testTransitionBW, testAttenuation80, testGainUnity)
	require.Error(t, err)
}

func TestResponseAt(t *testing.T) {
	// Two-tap average: |H(f)| = |cos(π f)|.
	h := []float64{0.5, 0.5}

	assert.InDelta(t, 1.0, ResponseAt(h, 0).Magnitude(), 1e-12)
	assert.InDelta(t, 0.0, ResponseAt(h, 0.5).Magnitude(), 1e-12)
	assert.InDelta(t, 0.70710678, ResponseAt(h, 0.25).Magnitude(), 1e-8)

	assert.InDelta(t, -200.0, MagnitudeDB(h, 0.5), 1e-6)
}
