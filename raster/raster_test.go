package raster

import (
	"errors"
	"image"
	"testing"

	"zplane/paint"
	"zplane/plane"
)

func testFrame() plane.Frame {
	return plane.Frame{OriginX: 8, OriginY: 8, Scale: 4}
}

func TestRenderReusesBuffer(t *testing.T) {
	p := NewPlane(16, 16)
	img := p.Image()
	p.Render(img.Bounds(), testFrame(), func(z complex128) (complex128, error) {
		return z, nil
	}, paint.Options{ContrastK: 1}, 1)
	if p.Image() != img {
		t.Fatalf("render replaced the buffer")
	}
	p.Resize(16, 16)
	if p.Image() != img {
		t.Fatalf("same-size resize replaced the buffer")
	}
	p.Resize(8, 8)
	if p.Image() == img {
		t.Fatalf("resize kept the old buffer")
	}
}

func TestSupersampleAverage(t *testing.T) {
	// A mapping constant over each half of the pixel: supersampling at
	// N=2 must land on the per-channel arithmetic mean of the two
	// constant colors, identical to what manual averaging gives.
	eval := func(z complex128) (complex128, error) {
		if real(z) < 0 {
			return 1, nil // phase 0
		}
		return 100, nil // same phase, brighter
	}
	o := paint.Options{Scheme: paint.Grayscale, ContrastK: 1}

	one := NewPlane(1, 1)
	one.Render(image.Rect(0, 0, 1, 1), plane.Frame{Scale: 1}, func(complex128) (complex128, error) { return 1, nil }, o, 1)
	dark := one.Image().RGBAAt(0, 0)
	one.Render(image.Rect(0, 0, 1, 1), plane.Frame{Scale: 1}, func(complex128) (complex128, error) { return 100, nil }, o, 1)
	bright := one.Image().RGBAAt(0, 0)

	// Pixel 0 with origin at its center: sub-samples straddle re=0.
	p := NewPlane(1, 1)
	p.Render(image.Rect(0, 0, 1, 1), plane.Frame{Scale: 1}, eval, o, 2)
	got := p.Image().RGBAAt(0, 0)

	want := uint8((2*int(dark.R) + 2*int(bright.R)) / 4)
	if got.R != want {
		t.Fatalf("averaged R=%d, want %d (dark %d bright %d)", got.R, want, dark.R, bright.R)
	}
}

func TestAllInvalidPaintsSentinel(t *testing.T) {
	fail := func(complex128) (complex128, error) {
		return 0, errors.New("nope")
	}
	p := NewPlane(2, 2)
	st := p.Render(p.Image().Bounds(), testFrame(), fail, paint.Options{ContrastK: 1}, 4)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if p.Image().RGBAAt(x, y) != paint.Sentinel {
				t.Fatalf("pixel (%d,%d)=%v, want sentinel", x, y, p.Image().RGBAAt(x, y))
			}
		}
	}
	if st.Errors != 2*2*16 {
		t.Fatalf("errors=%d", st.Errors)
	}
}

func TestNoisyThreshold(t *testing.T) {
	if (Stats{Errors: ErrorThreshold}).Noisy() {
		t.Fatalf("threshold itself counts as noisy")
	}
	if !(Stats{Errors: ErrorThreshold + 1}).Noisy() {
		t.Fatalf("above threshold not noisy")
	}
}

func TestRenderDiff(t *testing.T) {
	exact := func(complex128) (complex128, error) { return 3, nil }
	approx := func(complex128) (complex128, error) { return 3, nil }
	p := NewPlane(2, 2)
	p.RenderDiff(p.Image().Bounds(), testFrame(), exact, approx)
	if got := p.Image().RGBAAt(0, 0); got != paint.Heat(0) {
		t.Fatalf("zero error pixel=%v", got)
	}

	bad := func(complex128) (complex128, error) { return 0, errors.New("pole") }
	st := p.RenderDiff(p.Image().Bounds(), testFrame(), exact, bad)
	if got := p.Image().RGBAAt(1, 1); got != paint.Sentinel {
		t.Fatalf("error pixel=%v", got)
	}
	if st.Errors != 4 {
		t.Fatalf("errors=%d", st.Errors)
	}
}
