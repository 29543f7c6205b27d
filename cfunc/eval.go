package cfunc

import (
	"fmt"
	"math/cmplx"
)

// Kind selects one mapping from the closed registry. The zero value is
// the identity map.
type Kind uint8

const (
	Identity Kind = iota
	Square
	Cube
	SquareMinusOne
	Poly5MinusZ
	Reciprocal
	Exp
	Sin
	Cos
	Tan
	Rational
	Mobius
	SeriesExp
	SeriesSin
	SeriesLog
	SeriesReciprocal

	numKinds
)

// KindCount is the number of registry entries, for front-ends that
// validate a selection index.
const KindCount = int(numKinds)

var kindNames = [numKinds]string{
	Identity:         "z",
	Square:           "z^2",
	Cube:             "z^3",
	SquareMinusOne:   "z^2 - 1",
	Poly5MinusZ:      "z^5 - z",
	Reciprocal:       "1/z",
	Exp:              "exp(z)",
	Sin:              "sin(z)",
	Cos:              "cos(z)",
	Tan:              "tan(z)",
	Rational:         "1/(z^2+z+1)",
	Mobius:           "(az+b)/(cz+d)",
	SeriesExp:        "exp(z) series",
	SeriesSin:        "sin(z) series",
	SeriesLog:        "log(z) series",
	SeriesReciprocal: "1/z series",
}

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Next cycles forward through the registry, Prev backward.
func (k Kind) Next() Kind { return (k + 1) % numKinds }
func (k Kind) Prev() Kind { return (k + numKinds - 1) % numKinds }

// SeriesKind reports whether k is a truncated-series entry.
func (k Kind) SeriesKind() bool {
	return k >= SeriesExp && k <= SeriesReciprocal
}

// SeriesMode distinguishes the two truncation flavors offered for the
// series kinds.
type SeriesMode uint8

const (
	Taylor SeriesMode = iota
	Laurent
)

func (m SeriesMode) String() string {
	if m == Laurent {
		return "Laurent"
	}
	return "Taylor"
}

// MaxTerms bounds the series truncation order.
const MaxTerms = 20

// Params carries the adjustable coefficients consumed by Evaluate:
// the four Möbius coefficients and, for the series kinds, the
// truncation order and mode.
type Params struct {
	A, B, C, D complex128

	Terms int
	Mode  SeriesMode
}

// DefaultParams returns identity Möbius coefficients and a 5-term
// Taylor truncation.
func DefaultParams() Params {
	return Params{A: 1, D: 1, Terms: 5}
}

// DiskToHalfPlane sets the coefficients of z -> i(1+z)/(1-z), carrying
// the unit disk onto the upper half-plane.
func (p *Params) DiskToHalfPlane() {
	p.A, p.B, p.C, p.D = 1i, 1i, 1, -1
}

// HalfPlaneToDisk sets the coefficients of z -> (z-i)/(z+i), the
// inverse carry of the upper half-plane onto the unit disk.
func (p *Params) HalfPlaneToDisk() {
	p.A, p.B, p.C, p.D = 1, -1i, 1, 1i
}

// ResetMobius restores identity coefficients.
func (p *Params) ResetMobius() {
	p.A, p.B, p.C, p.D = 1, 0, 0, 1
}

// Evaluate applies the mapping selected by k to z. Non-finite input is
// rejected before any arithmetic, and a result that overflowed to
// NaN/Inf comes back as ErrOverflow instead of escaping to the color
// pipeline. The returned value is only meaningful when err is nil.
func Evaluate(z complex128, k Kind, p Params) (complex128, error) {
	if !Finite(z) {
		return 0, ErrNotFinite
	}
	return checked(apply(z, k, p))
}

// checked guards the registry boundary: sin and cos overflow for large
// imaginary parts and the polynomials for large |z|, none of which have
// a cheap pre-check like the one exp gets.
func checked(w complex128, err error) (complex128, error) {
	if err != nil {
		return 0, err
	}
	if !Finite(w) {
		return 0, ErrOverflow
	}
	return w, nil
}

func apply(z complex128, k Kind, p Params) (complex128, error) {
	switch k {
	case Identity:
		return z, nil
	case Square:
		return z * z, nil
	case Cube:
		return z * z * z, nil
	case SquareMinusOne:
		return z*z - 1, nil
	case Poly5MinusZ:
		z2 := z * z
		return z2*z2*z - z, nil
	case Reciprocal:
		return Div(1, z)
	case Exp:
		if real(z) > ExpOverflow {
			return 0, ErrOverflow
		}
		return cmplx.Exp(z), nil
	case Sin:
		return cmplx.Sin(z), nil
	case Cos:
		return cmplx.Cos(z), nil
	case Tan:
		c := cmplx.Cos(z)
		if cmplx.Abs(c) < Eps {
			return 0, ErrPole
		}
		return cmplx.Sin(z) / c, nil
	case Rational:
		return Div(1, z*z+z+1)
	case Mobius:
		return Div(p.A*z+p.B, p.C*z+p.D)
	case SeriesExp, SeriesSin, SeriesLog, SeriesReciprocal:
		return evalSeries(z, k, p)
	}
	return 0, fmt.Errorf("cfunc: unknown kind %d", uint8(k))
}

// Exact evaluates the closed form that a series kind approximates; for
// non-series kinds it is identical to Evaluate. The series demo paints
// Exact beside the truncation and their pointwise difference.
func Exact(z complex128, k Kind, p Params) (complex128, error) {
	if !Finite(z) {
		return 0, ErrNotFinite
	}

	switch k {
	case SeriesExp:
		return Evaluate(z, Exp, p)
	case SeriesSin:
		return Evaluate(z, Sin, p)
	case SeriesLog:
		if cmplx.Abs(z) < Eps {
			return 0, ErrPole
		}
		return checked(cmplx.Log(z), nil)
	case SeriesReciprocal:
		return Div(1, z)
	}
	return Evaluate(z, k, p)
}
