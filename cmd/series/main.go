// Command series compares a truncated Taylor or Laurent expansion
// against the exact function it approximates. Four view modes: the
// exact function, the truncation, an error heat map, and a split pane
// showing exact and truncation side by side.
package main

import (
	"flag"
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
	screenW = 1200
	screenH = 800
	paneW   = 600
)

var divGray = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}

type viewMode uint8

const (
	modeExact viewMode = iota
	modeApprox
	modeError
	modeSplit

	numModes
)

var modeNames = [numModes]string{
	modeExact:  "exact",
	modeApprox: "truncated",
	modeError:  "error",
	modeSplit:  "split",
}

func (m viewMode) String() string { return modeNames[m%numModes] }

type demo struct {
	view    *plane.View
	mode    viewMode
	dragged bool // suppress the click at the end of a pan
}

func (d *demo) exact(z complex128) (complex128, error) {
	return cfunc.Exact(z, d.view.Kind, d.view.Params)
}

func (d *demo) approx(z complex128) (complex128, error) {
	return cfunc.Evaluate(z, d.view.Kind, d.view.Params)
}

func (d *demo) HandleInput(in *app.Input) {
	v := d.view
	if dx, dy, ok := in.Drag(); ok {
		v.Pan(dx, dy)
		d.dragged = true
	}
	v.Zoom(in.WheelY())

	switch {
	case in.JustPressed(ebiten.KeyArrowRight):
		v.Kind = nextSeries(v.Kind, true)
		v.Touch()
	case in.JustPressed(ebiten.KeyArrowLeft):
		v.Kind = nextSeries(v.Kind, false)
		v.Touch()
	case in.JustPressed(ebiten.KeyArrowUp):
		v.SetTerms(v.Params.Terms + 1)
	case in.JustPressed(ebiten.KeyArrowDown):
		v.SetTerms(v.Params.Terms - 1)
	}

	if in.Clicked() {
		if !d.dragged {
			v.CycleTerms()
		}
		d.dragged = false
	}
	if in.JustPressed(ebiten.KeyV) {
		d.mode = (d.mode + 1) % numModes
		v.Touch()
	}
	if in.JustPressed(ebiten.KeyT) {
		v.SetSeriesMode(cfunc.Taylor)
	}
	if in.JustPressed(ebiten.KeyL) {
		v.SetSeriesMode(cfunc.Laurent)
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
	if in.JustPressed(ebiten.KeyR) {
		v.ResetAll()
		v.Kind = cfunc.SeriesExp
	}
}

func (d *demo) NeedsRender() bool { return d.view.Dirty() }

func (d *demo) Render(p *raster.Plane) raster.Stats {
	v := d.view
	opts := paint.Options{
		Scheme:       paint.Scheme(v.Style.Scheme),
		PhaseLines:   v.Style.PhaseLines,
		ModulusLines: v.Style.ModulusLines,
		Contrast:     v.Style.Contrast,
		Thickness:    v.Style.Thickness,
		ContrastK:    1,
	}
	full := image.Rect(0, 0, screenW, screenH)

	var st raster.Stats
	switch d.mode {
	case modeExact:
		st = p.Render(full, v.Frame(screenW/2, screenH/2), d.exact, opts, v.Style.Supersample)
	case modeApprox:
		st = p.Render(full, v.Frame(screenW/2, screenH/2), d.approx, opts, v.Style.Supersample)
	case modeError:
		st = p.RenderDiff(full, v.Frame(screenW/2, screenH/2), d.exact, d.approx)
	case modeSplit:
		left := image.Rect(0, 0, paneW, screenH)
		right := image.Rect(paneW, 0, screenW, screenH)
		a := p.Render(left, v.Frame(paneW/2, screenH/2), d.exact, opts, v.Style.Supersample)
		b := p.Render(right, v.Frame(paneW+paneW/2, screenH/2), d.approx, opts, v.Style.Supersample)
		st.Errors = a.Errors + b.Errors
	}
	v.Rendered()
	return st
}

func (d *demo) Overlay(screen *ebiten.Image, c *hud.Canvas) {
	v := d.view
	mode := "taylor"
	if v.Params.Mode == cfunc.Laurent {
		mode = "laurent"
	}
	c.Header(v.Kind.String()+" vs exact",
		fmt.Sprintf("view %s  %s n=%d  scale %.1f px/unit", d.mode, mode, v.Params.Terms, v.Scale))

	switch d.mode {
	case modeError:
		c.ErrorLegend(screenW-80, 40)
	case modeSplit:
		vector.StrokeLine(screen, paneW, 0, paneW, screenH, 1, divGray, false)
		c.TextCentered(paneW/2, 32, "exact", color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF})
		c.TextCentered(paneW+paneW/2, 32, "truncated", color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF})
	default:
		c.PhaseLegend(screenW-80, 40)
	}

	c.Help(
		"v: view mode   left/right: series   up/down or click: terms   t/l: taylor/laurent",
		"p/m/c: phase lines, modulus lines, contrast   drag: pan   wheel: zoom   r: reset",
	)
}

// nextSeries cycles within the truncated-series registry entries only.
func nextSeries(k cfunc.Kind, forward bool) cfunc.Kind {
	first, last := cfunc.SeriesExp, cfunc.SeriesReciprocal
	if !k.SeriesKind() {
		return first
	}
	if forward {
		if k == last {
			return first
		}
		return k + 1
	}
	if k == first {
		return last
	}
	return k - 1
}

func main() {
	terms := flag.Int("terms", 5, "initial truncation order (1..20)")
	flag.Parse()

	d := &demo{view: plane.NewView(cfunc.SeriesExp)}
	d.view.SetTerms(*terms)
	err := app.Run(app.Config{Title: "series truncation", Width: screenW, Height: screenH}, d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
