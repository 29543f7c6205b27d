// Package cfunc evaluates complex-to-complex mappings under a uniform
// numeric policy: every evaluation either returns a finite value or an
// error, never a silent NaN/Inf.
//
// Division near a pole, exponential overflow and series-term blowup are
// all reported as wrapped sentinel errors so callers can decide how to
// present the degenerate sample.
package cfunc

import (
	"errors"
	"math"
	"math/cmplx"
)

// Eps is the magnitude below which a divisor counts as a pole.
const Eps = 1e-10

// ExpOverflow is the largest real part exp accepts before float64 exp
// overflows.
const ExpOverflow = 700.0

// TermBlowup is the series-term magnitude treated as divergence.
const TermBlowup = 1e100

var (
	ErrPole      = errors.New("pole")
	ErrOverflow  = errors.New("overflow")
	ErrNotFinite = errors.New("non-finite input")
	ErrDiverged  = errors.New("series diverged")
)

// Finite reports whether both components of z are finite.
func Finite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsNaN(imag(z)) &&
		!math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}

// Div divides a by b, failing with ErrPole when |b| < Eps. The returned
// value is 0 on error; callers paint the sample, they do not use the value.
func Div(a, b complex128) (complex128, error) {
	if cmplx.Abs(b) < Eps {
		return 0, ErrPole
	}
	return a / b, nil
}

// Phase returns the argument of z in (-pi, pi].
func Phase(z complex128) float64 {
	p := cmplx.Phase(z)
	if p == -math.Pi {
		p = math.Pi
	}
	return p
}
