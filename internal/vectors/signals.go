// Package vectors generates and verifies FIR test vectors.
//
// A manifest holds one case per (signal, preset) pair. Each case carries
// the input row, its statistics and the outputs of every model: the full
// convolution, the streaming filter, the centered ideal model and the
// fixed-point model. Verify recomputes all of them from the stored inputs.
package vectors

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// Signal names accepted by Synthesize.
const (
	SignalImpulse = "impulse"
	SignalStep    = "step"
	SignalRamp    = "ramp"
	SignalSine    = "sine"
	SignalNoise   = "noise"
)

const (
	pixelMax   = 255.0
	pixelMid   = pixelMax / 2
	sineCycles = 2.0

	// Second PCG word, fixed so a seed fully determines the noise row.
	noiseStream = 0x9e3779b97f4a7c15
)

// AllSignals lists every synthetic signal in generation order.
var AllSignals = []string{SignalImpulse, SignalStep, SignalRamp, SignalSine, SignalNoise}

// Synthesize returns an integer-valued row of n pixels in [0, 255].
func Synthesize(signal string, n int, seed uint64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("row length must be positive, got %d", n)
	}

	x := make([]float64, n)
	switch signal {
	case SignalImpulse:
		x[0] = pixelMax
	case SignalStep:
		for i := n / 2; i < n; i++ {
			x[i] = pixelMax
		}
	case SignalRamp:
		if n == 1 {
			break
		}
		for i := range x {
			x[i] = math.Round(pixelMax * float64(i) / float64(n-1))
		}
	case SignalSine:
		for i := range x {
			x[i] = math.Round(pixelMid + pixelMid*math.Sin(2*math.Pi*sineCycles*float64(i)/float64(n)))
		}
	case SignalNoise:
		rng := rand.New(rand.NewPCG(seed, noiseStream))
		for i := range x {
			x[i] = float64(rng.IntN(int(pixelMax) + 1))
		}
	default:
		return nil, fmt.Errorf("unknown signal %q (valid: %v)", signal, AllSignals)
	}
	return x, nil
}

// ValidSignal reports whether name is a known signal.
func ValidSignal(name string) bool {
	return slices.Contains(AllSignals, name)
}
