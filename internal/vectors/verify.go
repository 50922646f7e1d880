package vectors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	fir "github.com/tphakala/go-fir"
)

// DefaultTolerance bounds float differences accepted by Verify.
const DefaultTolerance = 1e-9

// Mismatch describes the first disagreement found in one field of a case.
type Mismatch struct {
	Case  string
	Field string
	Index int
	Want  float64
	Got   float64
}

func (m Mismatch) String() string {
	if m.Index < 0 {
		return fmt.Sprintf("%s: %s length differs (want %v, got %v)", m.Case, m.Field, m.Want, m.Got)
	}
	return fmt.Sprintf("%s: %s[%d] want %v, got %v", m.Case, m.Field, m.Index, m.Want, m.Got)
}

// Report is the outcome of Verify.
type Report struct {
	Cases      int
	Mismatches []Mismatch
}

// OK reports whether every case matched.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Verify recomputes every case from its stored input and taps and compares
// the result against the stored outputs. Float rows are compared within
// tol; fixed rows exactly. It also checks that each stored streaming
// output equals the leading part of the stored full convolution exactly.
func Verify(m *Manifest, tol float64) (*Report, error) {
	if err := m.Fixed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest params: %w", err)
	}

	r := &Report{Cases: len(m.Cases)}
	for i := range m.Cases {
		stored := &m.Cases[i]
		fresh, err := computeCase(stored.Signal, fir.Preset{Name: stored.Preset, Taps: stored.Taps}, stored.Input, m.Fixed)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", stored.Name, err)
		}

		r.checkFloats(stored.Name, "golden", stored.Golden, fresh.Golden, tol)
		r.checkFloats(stored.Name, "stream", stored.Stream, fresh.Stream, tol)
		r.checkFloats(stored.Name, "ideal", stored.Ideal, fresh.Ideal, tol)
		r.checkInts(stored.Name, "fixed", stored.Fixed, fresh.Fixed)
		r.checkInts(stored.Name, "quantized_taps", toInts(stored.QuantizedTaps), toInts(fresh.QuantizedTaps))

		if len(stored.Stream) <= len(stored.Golden) {
			r.checkFloats(stored.Name, "stream_prefix", stored.Golden[:len(stored.Stream)], stored.Stream, 0)
		} else {
			r.add(stored.Name, "stream_prefix", -1, float64(len(stored.Golden)), float64(len(stored.Stream)))
		}
	}
	return r, nil
}

func (r *Report) add(name, field string, idx int, want, got float64) {
	r.Mismatches = append(r.Mismatches, Mismatch{Case: name, Field: field, Index: idx, Want: want, Got: got})
}

func (r *Report) checkFloats(name, field string, want, got []float64, tol float64) {
	if len(want) != len(got) {
		r.add(name, field, -1, float64(len(want)), float64(len(got)))
		return
	}
	if tol > 0 && floats.EqualApprox(want, got, tol) {
		return
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > tol {
			r.add(name, field, i, want[i], got[i])
			return
		}
	}
}

func (r *Report) checkInts(name, field string, want, got []int) {
	if len(want) != len(got) {
		r.add(name, field, -1, float64(len(want)), float64(len(got)))
		return
	}
	for i := range want {
		if want[i] != got[i] {
			r.add(name, field, i, float64(want[i]), float64(got[i]))
			return
		}
	}
}

func toInts(v []int64) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}
