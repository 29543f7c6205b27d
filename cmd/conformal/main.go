// Command conformal draws a point mesh in the z-plane beside its image
// under a selectable mapping, with a mouse probe reporting z and f(z)
// for the point under the cursor.
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
	"zplane/paint"
	"zplane/plane"
	"zplane/raster"
)

const (
	screenW = 1200
	screenH = 600
	paneW   = 600
)

var (
	paneBG   = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF}
	axisGray = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	meshGray = color.RGBA{R: 0x3A, G: 0x3A, B: 0x3A, A: 0xFF}
	probeCol = color.RGBA{R: 0xEE, G: 0xEE, B: 0x40, A: 0xFF}
)

type demo struct {
	view  *plane.View
	topo  raster.Topology
	graph *raster.Graph

	cursorX, cursorY int
}

func (d *demo) srcFrame() plane.Frame { return d.view.Frame(paneW/2, screenH/2) }
func (d *demo) dstFrame() plane.Frame { return d.view.Frame(paneW+paneW/2, screenH/2) }

func (d *demo) eval(z complex128) (complex128, error) {
	return cfunc.Evaluate(z, d.view.Kind, d.view.Params)
}

func (d *demo) HandleInput(in *app.Input) {
	d.cursorX, d.cursorY = in.Cursor()

	v := d.view
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
	if in.JustPressed(ebiten.KeyDigit1) {
		v.ApplyPreset((*cfunc.Params).DiskToHalfPlane)
	}
	if in.JustPressed(ebiten.KeyDigit2) {
		v.ApplyPreset((*cfunc.Params).HalfPlaneToDisk)
	}
	if in.JustPressed(ebiten.KeyR) {
		v.ResetAll()
	}
}

func (d *demo) NeedsRender() bool { return d.view.Dirty() }

// Render rebuilds the mesh; the panes themselves are flat fills, all
// geometry is stroked per frame in Overlay.
func (d *demo) Render(p *raster.Plane) raster.Stats {
	p.Fill(image.Rect(0, 0, screenW, screenH), paneBG)
	d.graph = raster.BuildGraph(d.topo, raster.DefaultGraphSpec(), d.eval)
	d.view.Rendered()
	return raster.Stats{}
}

func (d *demo) Overlay(screen *ebiten.Image, c *hud.Canvas) {
	vector.StrokeLine(screen, paneW, 0, paneW, screenH, 1, axisGray, false)
	drawAxes(screen, d.srcFrame(), 0)
	drawAxes(screen, d.dstFrame(), paneW)

	if d.graph != nil {
		src := d.graph.SourceScreen(d.srcFrame())
		dst := d.graph.ImageScreen(d.dstFrame())

		for i, p := range d.graph.Points {
			for _, j := range p.Neighbors {
				if j < i {
					continue // each edge once
				}
				vector.StrokeLine(screen, float32(src[i].X()), float32(src[i].Y()),
					float32(src[j].X()), float32(src[j].Y()), 1, meshGray, true)
				if inPane(dst[i].X(), paneW, screenW) && inPane(dst[j].X(), paneW, screenW) {
					vector.StrokeLine(screen, float32(dst[i].X()), float32(dst[i].Y()),
						float32(dst[j].X()), float32(dst[j].Y()), 1, meshGray, true)
				}
			}
		}
		for i := range d.graph.Points {
			vector.DrawFilledCircle(screen, float32(src[i].X()), float32(src[i].Y()), 2, paint.SourceMarker, true)
			if inPane(dst[i].X(), paneW, screenW) {
				vector.DrawFilledCircle(screen, float32(dst[i].X()), float32(dst[i].Y()), 2, paint.ImageMarker, true)
			}
		}
	}

	d.probe(screen, c)

	v := d.view
	c.Header("conformal mapping: f(z) = "+v.Kind.String(),
		fmt.Sprintf("mesh %s  scale %.1f px/unit", d.topo, v.Scale))
	c.TextCentered(paneW/2, 44, "z-plane", color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF})
	c.TextCentered(paneW+paneW/2, 44, "w-plane", color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF})
	c.Help(
		"left/right: mapping   tab: mesh shape   1/2: mobius presets",
		"wheel: zoom   r: reset",
	)
}

// probe reports the plane point under the cursor and its image, and
// joins the two markers across the panes.
func (d *demo) probe(screen *ebiten.Image, c *hud.Canvas) {
	x, y := d.cursorX, d.cursorY
	if x >= paneW || x < 0 || y < 0 || y >= screenH {
		return
	}
	z := d.srcFrame().Complex(float64(x), float64(y))
	w, err := d.eval(z)

	vector.DrawFilledCircle(screen, float32(x), float32(y), 3, probeCol, true)
	c.Text(4, screenH-66, "z    = "+hud.FormatComplex(z), probeCol)
	if err != nil {
		c.Text(4, screenH-54, "f(z) = (pole or overflow)", probeCol)
		return
	}
	c.Text(4, screenH-54, "f(z) = "+hud.FormatComplex(w), probeCol)
	if cmplx.Abs(w) < raster.ImageBound {
		wx, wy := d.dstFrame().Pixel(w)
		if inPane(wx, paneW, screenW) {
			vector.DrawFilledCircle(screen, float32(wx), float32(wy), 3, probeCol, true)
			vector.StrokeLine(screen, float32(x), float32(y), float32(wx), float32(wy), 1,
				color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}, true)
		}
	}
}

func drawAxes(screen *ebiten.Image, f plane.Frame, clipX0 float64) {
	x0, y0 := f.Pixel(0)
	vector.StrokeLine(screen, float32(clipX0), float32(y0), float32(clipX0+paneW), float32(y0), 1, axisGray, false)
	if inPane(x0, clipX0, clipX0+paneW) {
		vector.StrokeLine(screen, float32(x0), 0, float32(x0), screenH, 1, axisGray, false)
	}
}

func inPane(x, lo, hi float64) bool { return x >= lo && x <= hi }

func main() {
	d := &demo{view: plane.NewView(cfunc.Square)}
	err := app.Run(app.Config{Title: "conformal mapping", Width: screenW, Height: screenH}, d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
