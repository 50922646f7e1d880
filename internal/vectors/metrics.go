package vectors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics summarizes how far the fixed-point output drifts from the ideal
// model for one row.
type Metrics struct {
	Samples         int     `json:"num_samples"`
	MaxAbsErr       float64 `json:"max_abs_err"`
	MAE             float64 `json:"mae"`
	RMSE            float64 `json:"rmse"`
	MeanErr         float64 `json:"mean_err"`
	SatLowRatio     float64 `json:"sat_low_ratio"`
	SatHighRatio    float64 `json:"sat_high_ratio"`
	SatRatio        float64 `json:"sat_ratio"`
	ClipNeededRatio float64 `json:"clip_needed_ratio"`
}

// Stats are summary statistics of an input row.
type Stats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Compare computes error metrics of fixed against ideal. Errors are
// fixed - ideal; saturation ratios count fixed outputs pinned at 0 or 255.
func Compare(ideal []float64, fixed []uint8) (Metrics, error) {
	if len(ideal) != len(fixed) {
		return Metrics{}, fmt.Errorf("length mismatch: ideal=%d, fixed=%d", len(ideal), len(fixed))
	}
	n := len(ideal)
	if n == 0 {
		return Metrics{}, nil
	}

	diff := make([]float64, n)
	abs := make([]float64, n)
	var low, high, clip int
	for i, v := range fixed {
		diff[i] = float64(v) - ideal[i]
		abs[i] = math.Abs(diff[i])
		switch v {
		case 0:
			low++
		case uint8(pixelMax):
			high++
		}
		if ideal[i] < 0 || ideal[i] > pixelMax {
			clip++
		}
	}

	m := Metrics{
		Samples:         n,
		MaxAbsErr:       floats.Max(abs),
		MAE:             stat.Mean(abs, nil),
		RMSE:            floats.Norm(diff, 2) / math.Sqrt(float64(n)),
		MeanErr:         stat.Mean(diff, nil),
		SatLowRatio:     float64(low) / float64(n),
		SatHighRatio:    float64(high) / float64(n),
		ClipNeededRatio: float64(clip) / float64(n),
	}
	m.SatRatio = m.SatLowRatio + m.SatHighRatio
	return m, nil
}

func computeStats(x []float64) Stats {
	if len(x) == 0 {
		return Stats{}
	}
	mean, std := stat.PopMeanStdDev(x, nil)
	return Stats{
		Min:  floats.Min(x),
		Max:  floats.Max(x),
		Mean: mean,
		Std:  std,
	}
}
