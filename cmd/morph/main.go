// Command morph animates a point mesh from its source positions to its
// positions under the selected mapping and back, with a cubic ease.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

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

	tweenSpeed = 1.0 / 120 // two seconds each way at 60 tps
)

var (
	paneBG   = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF}
	axisGray = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	meshGray = color.RGBA{R: 0x3A, G: 0x3A, B: 0x3A, A: 0xFF}
)

type demo struct {
	view  *plane.View
	topo  raster.Topology
	graph *raster.Graph
	anim  *plane.Anim
}

func (d *demo) frame() plane.Frame { return d.view.Frame(screenW/2, screenH/2) }

func (d *demo) eval(z complex128) (complex128, error) {
	return cfunc.Evaluate(z, d.view.Kind, d.view.Params)
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
	if in.JustPressed(ebiten.KeyTab) {
		d.topo = d.topo.Next()
		v.Touch()
	}
	if in.JustPressed(ebiten.KeySpace) {
		d.anim.Toggle()
	}
	if in.JustPressed(ebiten.KeyEnter) {
		d.anim.Restart()
	}
	if in.JustPressed(ebiten.KeyDigit1) {
		v.ApplyPreset((*cfunc.Params).DiskToHalfPlane)
	}
	if in.JustPressed(ebiten.KeyDigit2) {
		v.ApplyPreset((*cfunc.Params).HalfPlaneToDisk)
	}
	if in.JustPressed(ebiten.KeyR) {
		v.ResetAll()
		d.anim.Restart()
	}

	d.anim.Tick()
}

func (d *demo) NeedsRender() bool { return d.view.Dirty() }

func (d *demo) Render(p *raster.Plane) raster.Stats {
	p.Fill(image.Rect(0, 0, screenW, screenH), paneBG)
	d.graph = raster.BuildGraph(d.topo, raster.DefaultGraphSpec(), d.eval)
	d.view.Rendered()
	return raster.Stats{}
}

func (d *demo) Overlay(screen *ebiten.Image, c *hud.Canvas) {
	f := d.frame()
	x0, y0 := f.Pixel(0)
	vector.StrokeLine(screen, 0, float32(y0), screenW, float32(y0), 1, axisGray, false)
	vector.StrokeLine(screen, float32(x0), 0, float32(x0), screenH, 1, axisGray, false)

	if d.graph != nil {
		pos := d.graph.TweenScreen(f, f, d.anim.T)
		for i, p := range d.graph.Points {
			for _, j := range p.Neighbors {
				if j < i {
					continue
				}
				vector.StrokeLine(screen, float32(pos[i].X()), float32(pos[i].Y()),
					float32(pos[j].X()), float32(pos[j].Y()), 1, meshGray, true)
			}
		}
		col := markerFor(d.anim.T)
		for i := range pos {
			vector.DrawFilledCircle(screen, float32(pos[i].X()), float32(pos[i].Y()), 2, col, true)
		}
	}

	v := d.view
	state := "paused"
	if d.anim.Running() {
		state = "running"
	}
	c.Header("f(z) = "+v.Kind.String(),
		fmt.Sprintf("mesh %s  t=%.2f  %s", d.topo, d.anim.T, state))
	c.Help(
		"space: pause   enter: restart   left/right: mapping   tab: mesh shape",
		"drag: pan   wheel: zoom   1/2: mobius presets   r: reset",
	)
}

// markerFor blends the point color from the source blue toward the
// image red as the animation progresses.
func markerFor(t float64) color.RGBA {
	e := plane.EaseInOutCubic(t)
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*e) }
	s, m := paint.SourceMarker, paint.ImageMarker
	return color.RGBA{R: mix(s.R, m.R), G: mix(s.G, m.G), B: mix(s.B, m.B), A: 255}
}

func main() {
	d := &demo{
		view: plane.NewView(cfunc.Square),
		anim: plane.NewAnim(tweenSpeed),
	}
	d.anim.Start()
	err := app.Run(app.Config{Title: "conformal morph", Width: screenW, Height: screenH}, d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
