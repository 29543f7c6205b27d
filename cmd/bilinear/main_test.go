package main

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestRebuildCustomCircle(t *testing.T) {
	d := newDemo()
	d.obj = objects{custom: true}
	d.customCenter = 1 + 1i
	d.customRadius = 0.5
	d.rebuild()

	if len(d.domainSegs) != curveSteps {
		t.Fatalf("domain segments=%d, want %d", len(d.domainSegs), curveSteps)
	}
	// Identity coefficients: the mapped circle is the same circle.
	if len(d.mappedSegs) != curveSteps {
		t.Fatalf("mapped segments=%d, want %d", len(d.mappedSegs), curveSteps)
	}
	for _, s := range d.domainSegs {
		for _, z := range s {
			if r := cmplx.Abs(z - d.customCenter); math.Abs(r-d.customRadius) > 1e-9 {
				t.Fatalf("sample %v is %v from the center, want %v", z, r, d.customRadius)
			}
		}
	}
}

func TestRebuildTogglesObjects(t *testing.T) {
	d := newDemo()
	d.obj = objects{}
	d.rebuild()
	if len(d.domainSegs) != 0 || len(d.domainDots) != 0 {
		t.Fatalf("all objects off still built %d segs %d dots",
			len(d.domainSegs), len(d.domainDots))
	}

	d.obj = objects{circle: true, custom: true}
	d.rebuild()
	if len(d.domainSegs) != 2*curveSteps {
		t.Fatalf("two circles built %d segments, want %d", len(d.domainSegs), 2*curveSteps)
	}
	if len(d.domainSegCols) != len(d.domainSegs) {
		t.Fatalf("colors out of step: %d for %d segments",
			len(d.domainSegCols), len(d.domainSegs))
	}
}
