// Command coloring renders the domain coloring of a selectable complex
// function: phase as hue, magnitude as brightness, with optional
// constant-phase and constant-modulus overlays.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"zplane/app"
	"zplane/cfunc"
	"zplane/hud"
	"zplane/paint"
	"zplane/plane"
	"zplane/raster"
)

const (
	screenW = 800
	screenH = 800
)

type demo struct {
	view *plane.View
}

func (d *demo) HandleInput(in *app.Input) {
	v := d.view

	if dx, dy, ok := in.Drag(); ok {
		v.Pan(dx, dy)
	}
	v.Zoom(in.WheelY())

	switch {
	case in.JustPressed(ebiten.KeyArrowRight):
		v.CycleKind(true)
	case in.JustPressed(ebiten.KeyArrowLeft):
		v.CycleKind(false)
	}
	if in.JustPressed(ebiten.KeyP) {
		v.TogglePhaseLines()
	}
	if in.JustPressed(ebiten.KeyM) {
		v.ToggleModulusLines()
	}
	if in.JustPressed(ebiten.KeyC) {
		v.ToggleContrast()
	}
	if in.JustPressed(ebiten.KeyA) {
		v.CycleSupersample()
	}
	if in.JustPressed(ebiten.KeyS) {
		v.CycleScheme(int(paint.NumSchemes))
	}
	if in.JustPressed(ebiten.KeyR) {
		v.Reset()
	}
}

func (d *demo) NeedsRender() bool { return d.view.Dirty() }

func (d *demo) Render(p *raster.Plane) raster.Stats {
	v := d.view
	f := v.Frame(screenW/2, screenH/2)
	o := paint.Options{
		Scheme:       paint.Scheme(v.Style.Scheme),
		PhaseLines:   v.Style.PhaseLines,
		ModulusLines: v.Style.ModulusLines,
		Contrast:     v.Style.Contrast,
		Thickness:    v.Style.Thickness,
		ContrastK:    1,
	}
	st := p.Render(image.Rect(0, 0, screenW, screenH), f, func(z complex128) (complex128, error) {
		return cfunc.Evaluate(z, v.Kind, v.Params)
	}, o, v.Style.Supersample)
	v.Rendered()
	return st
}

func (d *demo) Overlay(screen *ebiten.Image, c *hud.Canvas) {
	v := d.view
	c.Header("domain coloring: f(z) = "+v.Kind.String(),
		fmt.Sprintf("scale %.1f px/unit  center %s  scheme %s  aa %dx",
			v.Scale, hud.FormatComplex(v.Center), paint.Scheme(v.Style.Scheme), v.Style.Supersample))
	c.PhaseLegend(screenW-80, 30)
	c.MagnitudeLegend(screenW-160, 30)
	c.Help(
		"left/right: function   s: scheme   a: anti-aliasing",
		"p: phase lines   m: modulus lines   c: contrast   r: reset",
		"drag: pan   wheel: zoom",
	)
}

func main() {
	fn := flag.Int("fn", int(cfunc.Exp), "initial function index")
	flag.Parse()
	if *fn < 0 || *fn >= cfunc.KindCount {
		*fn = int(cfunc.Exp)
	}

	d := &demo{view: plane.NewView(cfunc.Kind(*fn))}
	err := app.Run(app.Config{Title: "domain coloring", Width: screenW, Height: screenH}, d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
