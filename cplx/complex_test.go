package cplx

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-12

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, New(3, 4).Magnitude(), tolerance)
	assert.InDelta(t, 0.0, Zero.Magnitude(), tolerance)
	assert.InDelta(t, 1.0, Polar(0.7).Magnitude(), tolerance)
}

func TestPolar(t *testing.T) {
	c := Polar(math.Pi / 2)
	assert.InDelta(t, 0.0, c.Re, tolerance)
	assert.InDelta(t, 1.0, c.Im, tolerance)
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	assert.Equal(t, New(4, -2), a.Add(b))
	assert.Equal(t, New(-2, 6), a.Sub(b))
	assert.Equal(t, New(2.5, 5), a.Scale(2.5))
	assert.Equal(t, New(11, 2), a.AddReal(10))
	assert.Equal(t, New(-9, 2), a.SubReal(10))

	// Receivers are values and stay untouched.
	assert.Equal(t, New(1, 2), a)
}

func TestDiv_MatchesBuiltin(t *testing.T) {
	pairs := [][2]Complex{
		{New(1, 2), New(3, -4)},
		{New(-5.5, 0.25), New(0, 2)},
		{New(7, 0), New(-1, 1)},
	}

	for _, p := range pairs {
		got := p[0].Div(p[1])
		want := p[0].Complex128() / p[1].Complex128()
		assert.InDelta(t, real(want), got.Re, tolerance)
		assert.InDelta(t, imag(want), got.Im, tolerance)
	}
}

// TestDiv_ZeroDivisor verifies division by zero yields Zero, not Inf or NaN.
func TestDiv_ZeroDivisor(t *testing.T) {
	got := New(3, 4).Div(Zero)
	assert.Equal(t, Zero, got)
	assert.True(t, got.IsZero())

	got = New(3, 4).Div(New(0, math.Copysign(0, -1)))
	assert.Equal(t, Zero, got)
}

func TestConversions(t *testing.T) {
	c := FromComplex128(complex(1.5, -2))
	assert.Equal(t, New(1.5, -2), c)
	assert.InDelta(t, cmplx.Abs(c.Complex128()), c.Magnitude(), tolerance)
}

func TestString(t *testing.T) {
	assert.Equal(t, "1 + i2", New(1, 2).String())
	assert.Equal(t, "1.5 - i2", New(1.5, -2).String())
	assert.Equal(t, "0 + i0", Zero.String())
}
