package cfunc

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestReciprocalPole(t *testing.T) {
	p := DefaultParams()
	if _, err := Evaluate(1e-11+0i, Reciprocal, p); !errors.Is(err, ErrPole) {
		t.Fatalf("err=%v, want ErrPole", err)
	}
	w, err := Evaluate(2+0i, Reciprocal, p)
	if err != nil || cmplx.Abs(w-0.5) > 1e-12 {
		t.Fatalf("1/2 = %v err=%v", w, err)
	}
}

func TestExpOverflow(t *testing.T) {
	p := DefaultParams()
	if _, err := Evaluate(701+0i, Exp, p); !errors.Is(err, ErrOverflow) {
		t.Fatalf("err=%v, want ErrOverflow", err)
	}
	if _, err := Evaluate(699+0i, Exp, p); err != nil {
		t.Fatalf("Re=699 should evaluate, err=%v", err)
	}
}

func TestOverflowedResultFlagged(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		k Kind
		z complex128
	}{
		{Sin, complex(0, 800)},
		{Cos, complex(0, 800)},
		{Tan, complex(0, -800)},
		{Square, complex(1e200, 0)},
		{Cube, complex(0, 1e150)},
		{Poly5MinusZ, complex(1e100, 1e100)},
	}
	for _, c := range cases {
		if w, err := Evaluate(c.z, c.k, p); !errors.Is(err, ErrOverflow) {
			t.Fatalf("%v at %v: got %v err=%v, want ErrOverflow", c.k, c.z, w, err)
		}
	}

	// Well inside range these kinds still evaluate.
	if _, err := Evaluate(complex(0, 100), Sin, p); err != nil {
		t.Fatalf("sin(100i) errored: %v", err)
	}
	if _, err := Evaluate(complex(1e10, 0), Square, p); err != nil {
		t.Fatalf("(1e10)^2 errored: %v", err)
	}
}

func TestExactLogOverflow(t *testing.T) {
	p := DefaultParams()
	// |z| overflows float64 here, so the closed-form log does too.
	z := complex(math.MaxFloat64, math.MaxFloat64)
	if _, err := Exact(z, SeriesLog, p); !errors.Is(err, ErrOverflow) {
		t.Fatalf("err=%v, want ErrOverflow", err)
	}
	if _, err := Exact(1e10+0i, SeriesLog, p); err != nil {
		t.Fatalf("log(1e10) errored: %v", err)
	}
}

func TestTanPole(t *testing.T) {
	p := DefaultParams()
	if _, err := Evaluate(complex(math.Pi/2, 0), Tan, p); !errors.Is(err, ErrPole) {
		t.Fatalf("tan at pi/2: err=%v, want ErrPole", err)
	}
	w, err := Evaluate(complex(math.Pi/4, 0), Tan, p)
	if err != nil || math.Abs(real(w)-1) > 1e-12 {
		t.Fatalf("tan(pi/4)=%v err=%v", w, err)
	}
}

func TestRationalPole(t *testing.T) {
	p := DefaultParams()
	// z^2+z+1 vanishes at the primitive cube roots of unity,
	// z = (-1 +/- i sqrt 3)/2.
	root := complex(-0.5, math.Sqrt(3)/2)
	if _, err := Evaluate(root, Rational, p); !errors.Is(err, ErrPole) {
		t.Fatalf("err=%v, want ErrPole", err)
	}
	if _, err := Evaluate(1+0i, Rational, p); err != nil {
		t.Fatalf("regular point errored: %v", err)
	}
}

func TestNonFiniteInput(t *testing.T) {
	p := DefaultParams()
	z := complex(math.NaN(), 0)
	for k := Identity; k < numKinds; k++ {
		if _, err := Evaluate(z, k, p); !errors.Is(err, ErrNotFinite) {
			t.Fatalf("kind %v: err=%v, want ErrNotFinite", k, err)
		}
	}
}

func TestMobiusIdentity(t *testing.T) {
	p := DefaultParams()
	for _, z := range []complex128{0, 1, -2 + 3i, 0.5i} {
		w, err := Evaluate(z, Mobius, p)
		if err != nil {
			t.Fatalf("identity coefficients errored at %v: %v", z, err)
		}
		if cmplx.Abs(w-z) > 1e-12 {
			t.Fatalf("identity Mobius moved %v to %v", z, w)
		}
	}
}

func TestMobiusDiskToHalfPlane(t *testing.T) {
	p := DefaultParams()
	p.DiskToHalfPlane()

	w, err := Evaluate(0, Mobius, p)
	if err != nil {
		t.Fatalf("f(0) errored: %v", err)
	}
	if cmplx.Abs(w-1i) > 1e-12 {
		t.Fatalf("f(0)=%v, want i", w)
	}

	// z=1 sits on the pole: c*1 + d = 0.
	if _, err := Evaluate(1, Mobius, p); !errors.Is(err, ErrPole) {
		t.Fatalf("f(1): err=%v, want ErrPole", err)
	}
}

func TestKindCycle(t *testing.T) {
	k := Identity
	for i := 0; i < int(numKinds); i++ {
		k = k.Next()
	}
	if k != Identity {
		t.Fatalf("Next cycle returned to %v", k)
	}
	if Identity.Prev() != SeriesReciprocal {
		t.Fatalf("Prev(Identity)=%v", Identity.Prev())
	}
}
