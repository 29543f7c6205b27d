// Package raster drives the sampling passes: it owns the reusable pixel
// buffer, walks every pixel of a region through a mapping and the color
// encoder, and builds the point graphs of the conformal demos.
package raster

import (
	"image"
	"image/color"
	"math/cmplx"

	"zplane/cfunc"
	"zplane/paint"
	"zplane/plane"
)

// ErrorThreshold is the per-pass evaluation-error count above which the
// driver reports that the view probably straddles a pole or branch cut.
const ErrorThreshold = 1000

// Source evaluates the active mapping at one plane point.
type Source func(z complex128) (complex128, error)

// Stats summarizes one sampling pass.
type Stats struct {
	Errors int
}

// Noisy reports whether the pass saw enough per-sample errors to be
// worth a user-facing warning.
func (s Stats) Noisy() bool { return s.Errors > ErrorThreshold }

// Plane owns one RGBA buffer reused across passes. It is resized only
// when the target size changes and overwritten in place otherwise.
type Plane struct {
	img *image.RGBA
}

// NewPlane allocates the buffer for a w by h target.
func NewPlane(w, h int) *Plane {
	return &Plane{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the buffer for upload. The driver retains ownership;
// the contents are valid until the next Render call.
func (p *Plane) Image() *image.RGBA { return p.img }

// Resize grows or shrinks the buffer. A no-op at the current size.
func (p *Plane) Resize(w, h int) {
	b := p.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	p.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Render evaluates eval over every pixel of region, coloring by phase
// and magnitude. super is the per-axis sub-sample count (1, 2 or 4);
// sub-samples that fail evaluation are skipped and the survivors
// averaged, with the sentinel painted when none survive.
func (p *Plane) Render(region image.Rectangle, f plane.Frame, eval Source, o paint.Options, super int) Stats {
	region = region.Intersect(p.img.Bounds())
	if super != 2 && super != 4 {
		super = 1
	}

	var st Stats
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			var rSum, gSum, bSum, valid int
			for sy := 0; sy < super; sy++ {
				for sx := 0; sx < super; sx++ {
					px := float64(x) + subOffset(sx, super)
					py := float64(y) + subOffset(sy, super)
					w, err := eval(f.Complex(px, py))
					if err != nil {
						st.Errors++
						continue
					}
					c := paint.Encode(cmplx.Abs(w), cfunc.Phase(w), o)
					rSum += int(c.R)
					gSum += int(c.G)
					bSum += int(c.B)
					valid++
				}
			}
			var c color.RGBA
			if valid == 0 {
				c = paint.Sentinel
			} else {
				c = color.RGBA{
					R: uint8(rSum / valid),
					G: uint8(gSum / valid),
					B: uint8(bSum / valid),
					A: 255,
				}
			}
			p.img.SetRGBA(x, y, c)
		}
	}
	return st
}

// RenderDiff paints |exact - approx| per pixel through the heat ramp.
// A failure of either evaluation paints the sentinel.
func (p *Plane) RenderDiff(region image.Rectangle, f plane.Frame, exact, approx Source) Stats {
	region = region.Intersect(p.img.Bounds())

	var st Stats
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			z := f.Complex(float64(x), float64(y))
			a, errA := exact(z)
			b, errB := approx(z)
			if errA != nil || errB != nil {
				st.Errors++
				p.img.SetRGBA(x, y, paint.Sentinel)
				continue
			}
			p.img.SetRGBA(x, y, paint.Heat(cmplx.Abs(a-b)))
		}
	}
	return st
}

// Fill floods region with one color.
func (p *Plane) Fill(region image.Rectangle, c color.RGBA) {
	region = region.Intersect(p.img.Bounds())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			p.img.SetRGBA(x, y, c)
		}
	}
}

// subOffset centers an n-way sub-sample grid on the pixel.
func subOffset(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return (float64(i)+0.5)/float64(n) - 0.5
}
