// Command bilinear shows a Möbius transformation w = (az+b)/(cz+d) as a
// split view: geometric objects in the z-plane on the left, their
// images in the w-plane on the right. Coefficients are nudged from the
// keyboard or set from presets.
package main

import (
	"fmt"
	"image"
	"image/color"
	"math/cmplx"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zplane/app"
	"zplane/cfunc"
	"zplane/hud"
	"zplane/plane"
	"zplane/raster"
)

const (
	screenW = 1200
	screenH = 600
	paneW   = 600

	curveSteps = 160
)

var (
	paneBG    = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF}
	axisGray  = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}
	gridGray  = color.RGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xFF}
	gridVert  = color.RGBA{R: 0x2E, G: 0x8B, B: 0x57, A: 0xFF}
	gridHoriz = color.RGBA{R: 0x41, G: 0x69, B: 0xE1, A: 0xFF}
	circleCol = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	diskCol   = color.RGBA{R: 0x40, G: 0x80, B: 0xE0, A: 0xB0}
	lineCol   = color.RGBA{R: 0xB0, G: 0x50, B: 0xE0, A: 0xFF}
	halfCol   = color.RGBA{R: 0xE0, G: 0xA0, B: 0x30, A: 0xB0}
	customCol = color.RGBA{R: 0x40, G: 0xE0, B: 0x70, A: 0xFF}
)

// objects the demo can push through the map.
type objects struct {
	grid      bool
	circle    bool
	disk      bool
	line      bool
	halfPlane bool
	custom    bool
}

type demo struct {
	view *plane.View
	obj  objects

	// the custom circle's geometry, separate from the unit circle
	customCenter complex128
	customRadius float64

	// geometry rebuilt on each dirty pass; colors run parallel to
	// their slice
	domainSegs    [][2]complex128
	mappedSegs    [][2]complex128
	domainDots    []complex128
	mappedDots    []complex128
	domainSegCols []color.RGBA
	mappedSegCols []color.RGBA
	domainDotCols []color.RGBA
	mappedDotCols []color.RGBA
}

func newDemo() *demo {
	v := plane.NewView(cfunc.Mobius)
	return &demo{
		view:         v,
		obj:          objects{grid: true, circle: true},
		customCenter: 0,
		customRadius: 1,
	}
}

func (d *demo) domainFrame() plane.Frame { return d.view.Frame(paneW/2, screenH/2) }
func (d *demo) rangeFrame() plane.Frame  { return d.view.Frame(paneW+paneW/2, screenH/2) }

func (d *demo) HandleInput(in *app.Input) {
	v := d.view
	v.Zoom(in.WheelY())

	// Object visibility.
	toggles := []struct {
		key ebiten.Key
		on  *bool
	}{
		{ebiten.KeyDigit5, &d.obj.grid},
		{ebiten.KeyDigit6, &d.obj.circle},
		{ebiten.KeyDigit7, &d.obj.disk},
		{ebiten.KeyDigit8, &d.obj.line},
		{ebiten.KeyDigit9, &d.obj.halfPlane},
		{ebiten.KeyX, &d.obj.custom},
	}
	for _, tg := range toggles {
		if in.JustPressed(tg.key) {
			*tg.on = !*tg.on
			v.Touch()
		}
	}

	// Presets and reset.
	if in.JustPressed(ebiten.KeyDigit1) {
		v.ApplyPreset((*cfunc.Params).DiskToHalfPlane)
	}
	if in.JustPressed(ebiten.KeyDigit2) {
		v.ApplyPreset((*cfunc.Params).HalfPlaneToDisk)
	}
	if in.JustPressed(ebiten.KeySpace) {
		v.ApplyPreset((*cfunc.Params).ResetMobius)
	}
	if in.JustPressed(ebiten.KeyBackspace) {
		v.ResetAll()
	}

	// Coefficient nudging: held keys, shift for the fine step.
	fine := in.Shift()
	steps := []struct {
		key ebiten.Key
		c   plane.Coefficient
		re  bool
		up  bool
	}{
		{ebiten.KeyQ, plane.CoeffA, true, true},
		{ebiten.KeyA, plane.CoeffA, true, false},
		{ebiten.KeyW, plane.CoeffB, true, true},
		{ebiten.KeyS, plane.CoeffB, true, false},
		{ebiten.KeyE, plane.CoeffC, true, true},
		{ebiten.KeyD, plane.CoeffC, true, false},
		{ebiten.KeyR, plane.CoeffD, true, true},
		{ebiten.KeyF, plane.CoeffD, true, false},
		{ebiten.KeyT, plane.CoeffA, false, true},
		{ebiten.KeyG, plane.CoeffA, false, false},
		{ebiten.KeyY, plane.CoeffB, false, true},
		{ebiten.KeyH, plane.CoeffB, false, false},
		{ebiten.KeyU, plane.CoeffC, false, true},
		{ebiten.KeyJ, plane.CoeffC, false, false},
		{ebiten.KeyI, plane.CoeffD, false, true},
		{ebiten.KeyK, plane.CoeffD, false, false},
	}
	for _, s := range steps {
		if in.Held(s.key) {
			v.StepMobius(s.c, s.re, s.up, fine)
		}
	}
}

func (d *demo) NeedsRender() bool { return d.view.Dirty() }

func (d *demo) Render(p *raster.Plane) raster.Stats {
	p.Fill(image.Rect(0, 0, screenW, screenH), paneBG)
	d.rebuild()
	d.view.Rendered()
	return raster.Stats{}
}

// rebuild resamples every visible object and its image.
func (d *demo) rebuild() {
	v := d.view
	eval := func(z complex128) (complex128, error) {
		return cfunc.Evaluate(z, cfunc.Mobius, v.Params)
	}

	d.domainSegs = d.domainSegs[:0]
	d.mappedSegs = d.mappedSegs[:0]
	d.domainDots = d.domainDots[:0]
	d.mappedDots = d.mappedDots[:0]
	d.domainSegCols = d.domainSegCols[:0]
	d.mappedSegCols = d.mappedSegCols[:0]
	d.domainDotCols = d.domainDotCols[:0]
	d.mappedDotCols = d.mappedDotCols[:0]

	addCurve := func(pts []complex128, col color.RGBA) {
		for i := 1; i < len(pts); i++ {
			d.domainSegs = append(d.domainSegs, [2]complex128{pts[i-1], pts[i]})
			d.domainSegCols = append(d.domainSegCols, col)
		}
		for _, s := range raster.MapSegments(pts, eval, raster.CurveBound) {
			d.mappedSegs = append(d.mappedSegs, s)
			d.mappedSegCols = append(d.mappedSegCols, col)
		}
	}
	addDots := func(pts []complex128, col color.RGBA) {
		d.domainDots = append(d.domainDots, pts...)
		for range pts {
			d.domainDotCols = append(d.domainDotCols, col)
		}
		mapped := raster.MapPoints(pts, eval, raster.CurveBound)
		d.mappedDots = append(d.mappedDots, mapped...)
		for range mapped {
			d.mappedDotCols = append(d.mappedDotCols, col)
		}
	}

	if d.obj.grid {
		for i := -5; i <= 5; i++ {
			x := float64(i)
			addCurve(raster.Line(complex(x, -5), complex(x, 5), curveSteps), gridVert)
			addCurve(raster.Line(complex(-5, x), complex(5, x), curveSteps), gridHoriz)
		}
	}
	if d.obj.circle {
		addCurve(raster.Circle(0, 1, curveSteps), circleCol)
	}
	if d.obj.custom {
		addCurve(raster.Circle(d.customCenter, d.customRadius, curveSteps), customCol)
	}
	if d.obj.line {
		addCurve(raster.Line(-2, 2, curveSteps), lineCol)
	}
	if d.obj.disk {
		addDots(raster.DiskPoints(0, 1, 24), diskCol)
	}
	if d.obj.halfPlane {
		addDots(raster.HalfPlanePoints(0, 1, 2.5, 40, 20), halfCol)
	}
}

func (d *demo) Overlay(screen *ebiten.Image, c *hud.Canvas) {
	v := d.view
	df, rf := d.domainFrame(), d.rangeFrame()

	// Pane split and axes.
	vector.StrokeLine(screen, paneW, 0, paneW, screenH, 1, axisGray, false)
	drawAxes(screen, df, 0)
	drawAxes(screen, rf, paneW)

	for i, s := range d.domainSegs {
		strokeSeg(screen, df, s, d.domainSegCols[i], 0, paneW)
	}
	for i, s := range d.mappedSegs {
		strokeSeg(screen, rf, s, d.mappedSegCols[i], paneW, screenW)
	}
	for i, z := range d.domainDots {
		dot(screen, df, z, d.domainDotCols[i], 0, paneW)
	}
	for i, z := range d.mappedDots {
		dot(screen, rf, z, d.mappedDotCols[i], paneW, screenW)
	}

	p := v.Params
	c.Header("bilinear map  w = (az+b)/(cz+d)",
		fmt.Sprintf("a=%s  b=%s  c=%s  d=%s", hud.FormatComplex(p.A),
			hud.FormatComplex(p.B), hud.FormatComplex(p.C), hud.FormatComplex(p.D)))
	if cmplx.Abs(p.A*p.D-p.B*p.C) < cfunc.Eps {
		c.Text(4, 30, "degenerate: ad-bc = 0, the map collapses", color.RGBA{R: 0xFF, G: 0x60, B: 0x60, A: 0xFF})
	}
	c.TextCentered(paneW/2, 44, "z-plane", color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF})
	c.TextCentered(paneW+paneW/2, 44, "w-plane", color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF})
	c.Help(
		"q/a w/s e/d r/f: re(a..d)   t/g y/h u/j i/k: im(a..d)   shift: fine",
		"1: disk to half-plane   2: half-plane to disk   space: identity",
		"5-9: grid/circle/disk/line/half-plane   x: custom circle   wheel: zoom   backspace: reset",
	)
}

func drawAxes(screen *ebiten.Image, f plane.Frame, clipX0 float64) {
	x0, y0 := f.Pixel(0)
	vector.StrokeLine(screen, float32(clipX0), float32(y0), float32(clipX0+paneW), float32(y0), 1, gridGray, false)
	vector.StrokeLine(screen, float32(x0), 0, float32(x0), screenH, 1, gridGray, false)
}

func strokeSeg(screen *ebiten.Image, f plane.Frame, s [2]complex128, col color.RGBA, clipX0, clipX1 float64) {
	x1, y1 := f.Pixel(s[0])
	x2, y2 := f.Pixel(s[1])
	if (x1 < clipX0 && x2 < clipX0) || (x1 > clipX1 && x2 > clipX1) {
		return
	}
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, col, true)
}

func dot(screen *ebiten.Image, f plane.Frame, z complex128, col color.RGBA, clipX0, clipX1 float64) {
	x, y := f.Pixel(z)
	if x < clipX0 || x > clipX1 {
		return
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), 1.5, col, true)
}

func main() {
	d := newDemo()
	err := app.Run(app.Config{Title: "bilinear map", Width: screenW, Height: screenH}, d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
