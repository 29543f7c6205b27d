package cfunc

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestTaylorExpAtOne(t *testing.T) {
	p := DefaultParams()
	p.Terms = 20
	w, err := Evaluate(1, SeriesExp, p)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if math.Abs(real(w)-math.E) > 1e-6 || math.Abs(imag(w)) > 1e-6 {
		t.Fatalf("sum=%v, want e", w)
	}
}

func TestTaylorSinConverges(t *testing.T) {
	p := DefaultParams()
	p.Terms = 15
	z := 0.7 + 0.3i
	w, err := Evaluate(z, SeriesSin, p)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cmplx.Abs(w-cmplx.Sin(z)) > 1e-9 {
		t.Fatalf("sum=%v, sin=%v", w, cmplx.Sin(z))
	}
}

func TestTaylorLogAroundOne(t *testing.T) {
	p := DefaultParams()
	p.Terms = 20
	z := 1.3 + 0i
	w, err := Evaluate(z, SeriesLog, p)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cmplx.Abs(w-cmplx.Log(z)) > 1e-6 {
		t.Fatalf("sum=%v, log=%v", w, cmplx.Log(z))
	}
}

func TestLaurentFallsBackToClosedForm(t *testing.T) {
	p := DefaultParams()
	p.Mode = Laurent
	p.Terms = 3

	w, err := Evaluate(4+0i, SeriesReciprocal, p)
	if err != nil || cmplx.Abs(w-0.25) > 1e-12 {
		t.Fatalf("laurent 1/4 = %v err=%v", w, err)
	}

	z := 2 + 1i
	w, err = Evaluate(z, SeriesLog, p)
	if err != nil || cmplx.Abs(w-cmplx.Log(z)) > 1e-12 {
		t.Fatalf("laurent log = %v err=%v", w, err)
	}

	// Entire target: Laurent equals Taylor.
	p2 := p
	p2.Mode = Taylor
	a, _ := Evaluate(0.5i, SeriesExp, p)
	b, _ := Evaluate(0.5i, SeriesExp, p2)
	if a != b {
		t.Fatalf("laurent exp %v != taylor exp %v", a, b)
	}
}

func TestSeriesPoleAndClamp(t *testing.T) {
	p := DefaultParams()
	if _, err := Evaluate(0, SeriesReciprocal, p); err == nil {
		t.Fatalf("1/z series at 0 did not error")
	}
	if _, err := Evaluate(0, SeriesLog, p); err == nil {
		t.Fatalf("log series at 0 did not error")
	}

	// Terms outside 1..MaxTerms are clamped, not rejected.
	p.Terms = 0
	if _, err := Evaluate(1, SeriesExp, p); err != nil {
		t.Fatalf("terms=0 err=%v", err)
	}
	p.Terms = 999
	if _, err := Evaluate(1, SeriesExp, p); err != nil {
		t.Fatalf("terms=999 err=%v", err)
	}
}

func TestExactMatchesTarget(t *testing.T) {
	p := DefaultParams()
	z := 0.8 - 0.2i
	w, err := Exact(z, SeriesExp, p)
	if err != nil || cmplx.Abs(w-cmplx.Exp(z)) > 1e-12 {
		t.Fatalf("exact exp = %v err=%v", w, err)
	}
	w, err = Exact(z, SeriesReciprocal, p)
	if err != nil || cmplx.Abs(w-1/z) > 1e-12 {
		t.Fatalf("exact 1/z = %v err=%v", w, err)
	}
	// Non-series kinds pass through.
	w, err = Exact(z, Square, p)
	if err != nil || w != z*z {
		t.Fatalf("exact square = %v err=%v", w, err)
	}
}
