// Package cplx provides an immutable complex-number value type for
// frequency-domain work built on top of the FIR reference model.
//
// Arithmetic is exposed as explicit methods rather than operators. Every
// method returns a new value; no method mutates its receiver.
package cplx

import (
	"fmt"
	"math"
)

// Complex is the value x + iy.
type Complex struct {
	Re float64
	Im float64
}

// Zero is the additive identity. Div returns it for a zero divisor.
var Zero = Complex{}

// New returns re + i*im.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Polar returns the unit phasor cos(theta) + i*sin(theta).
func Polar(theta float64) Complex {
	return Complex{Re: math.Cos(theta), Im: math.Sin(theta)}
}

// FromComplex128 converts a built-in complex value.
func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex128 converts c to the built-in complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Magnitude returns sqrt(re^2 + im^2).
func (c Complex) Magnitude() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

// Add returns c + t.
func (c Complex) Add(t Complex) Complex {
	return Complex{Re: c.Re + t.Re, Im: c.Im + t.Im}
}

// Sub returns c - t.
func (c Complex) Sub(t Complex) Complex {
	return Complex{Re: c.Re - t.Re, Im: c.Im - t.Im}
}

// Scale returns c * s for a real s.
func (c Complex) Scale(s float64) Complex {
	return Complex{Re: c.Re * s, Im: c.Im * s}
}

// AddReal returns c + a for a real a.
func (c Complex) AddReal(a float64) Complex {
	return Complex{Re: c.Re + a, Im: c.Im}
}

// SubReal returns c - a for a real a.
func (c Complex) SubReal(a float64) Complex {
	return Complex{Re: c.Re - a, Im: c.Im}
}

// Div returns c / t.
//
// If t has zero magnitude the result is Zero rather than Inf or NaN.
// This guard can hide a real numerical problem upstream; callers that need
// to detect it should check t.IsZero first.
func (c Complex) Div(t Complex) Complex {
	den := t.Re*t.Re + t.Im*t.Im
	if den == 0 {
		return Zero
	}
	return Complex{
		Re: (c.Re*t.Re + c.Im*t.Im) / den,
		Im: (c.Im*t.Re - c.Re*t.Im) / den,
	}
}

// IsZero reports whether both parts are zero.
func (c Complex) IsZero() bool {
	return c.Re == 0 && c.Im == 0
}

// String formats c as "re + iim" or "re - iim", with the magnitude of the
// imaginary part after the sign.
func (c Complex) String() string {
	sign := '+'
	if c.Im < 0 {
		sign = '-'
	}
	return fmt.Sprintf("%v %c i%v", c.Re, sign, math.Abs(c.Im))
}
