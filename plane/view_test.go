package plane

import (
	"math"
	"testing"

	"zplane/cfunc"
)

func TestViewDirtyLifecycle(t *testing.T) {
	v := NewView(cfunc.Exp)
	if !v.Dirty() {
		t.Fatalf("new view not dirty")
	}
	v.Rendered()
	if v.Dirty() {
		t.Fatalf("dirty after Rendered")
	}
	v.Pan(10, 0)
	if !v.Dirty() {
		t.Fatalf("pan did not dirty the view")
	}
}

func TestViewPanAgainstDrag(t *testing.T) {
	v := NewView(cfunc.Identity)
	v.Rendered()
	v.Pan(100, 0)
	if real(v.Center) != -1 {
		t.Fatalf("center=%v after dragging 100px right at scale 100", v.Center)
	}
	v.Pan(0, 50)
	if imag(v.Center) != 0.5 {
		t.Fatalf("center=%v after dragging 50px down", v.Center)
	}
}

func TestViewZoom(t *testing.T) {
	v := NewView(cfunc.Identity)
	v.Zoom(1)
	if math.Abs(v.Scale-120) > 1e-9 {
		t.Fatalf("scale=%v after one notch in", v.Scale)
	}
	v.Zoom(-1)
	if math.Abs(v.Scale-96) > 1e-9 {
		t.Fatalf("scale=%v after a notch back out", v.Scale)
	}
	for i := 0; i < 500; i++ {
		v.Zoom(-1)
	}
	if v.Scale <= 0 {
		t.Fatalf("scale collapsed to %v", v.Scale)
	}
}

func TestViewZoomIgnoresTinyDelta(t *testing.T) {
	v := NewView(cfunc.Identity)
	v.Rendered()
	v.Zoom(0.2)
	v.Zoom(-0.4)
	if v.Scale != DefaultScale {
		t.Fatalf("scale=%v after sub-notch deltas", v.Scale)
	}
	if v.Dirty() {
		t.Fatalf("sub-notch delta dirtied the view")
	}
	v.Zoom(0.6)
	if !v.Dirty() || v.Scale == DefaultScale {
		t.Fatalf("0.6 notches should round to one step, scale=%v", v.Scale)
	}
}

func TestViewSupersampleCycle(t *testing.T) {
	v := NewView(cfunc.Identity)
	got := []int{v.Style.Supersample}
	for i := 0; i < 3; i++ {
		v.CycleSupersample()
		got = append(got, v.Style.Supersample)
	}
	want := []int{1, 2, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("supersample cycle %v, want %v", got, want)
		}
	}
}

func TestViewStepMobius(t *testing.T) {
	v := NewView(cfunc.Mobius)
	v.StepMobius(CoeffB, true, true, false)
	if v.Params.B != complex(0.1, 0) {
		t.Fatalf("B=%v after coarse step", v.Params.B)
	}
	v.StepMobius(CoeffB, false, false, true)
	if v.Params.B != complex(0.1, -0.01) {
		t.Fatalf("B=%v after fine imaginary step down", v.Params.B)
	}
}

func TestViewPresetAndReset(t *testing.T) {
	v := NewView(cfunc.Mobius)
	v.ApplyPreset((*cfunc.Params).DiskToHalfPlane)
	if v.Params.A != 1i || v.Params.D != -1 {
		t.Fatalf("preset coefficients %+v", v.Params)
	}
	v.Pan(30, 40)
	v.Zoom(3)
	v.ResetAll()
	if v.Center != 0 || v.Scale != DefaultScale {
		t.Fatalf("reset left center=%v scale=%v", v.Center, v.Scale)
	}
	if v.Params.A != 1 || v.Params.B != 0 || v.Params.C != 0 || v.Params.D != 1 {
		t.Fatalf("reset left coefficients %+v", v.Params)
	}
}

func TestViewTermsClamp(t *testing.T) {
	v := NewView(cfunc.SeriesExp)
	v.SetTerms(0)
	if v.Params.Terms != 1 {
		t.Fatalf("terms=%d", v.Params.Terms)
	}
	v.SetTerms(cfunc.MaxTerms)
	v.CycleTerms()
	if v.Params.Terms != 1 {
		t.Fatalf("terms=%d after wrap", v.Params.Terms)
	}
}
