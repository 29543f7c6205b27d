// Package app hosts a demo inside an ebiten window: it polls input once
// per frame, re-runs the demo's sampling pass only when its parameters
// changed, uploads the shared pixel buffer, and stacks the per-frame
// overlay (vector primitives, text, status banners) on top.
package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"zplane/hud"
	"zplane/internal/buildinfo"
	"zplane/raster"
)

// slowPass is the sampling-pass duration beyond which the user is
// advised to lower the anti-aliasing level.
const slowPass = 500 * time.Millisecond

// Demo is one visualizer front-end.
//
// HandleInput mutates the demo's view state from the frame's events.
// NeedsRender reports whether the next present requires a sampling
// pass; Render performs it into the shared buffer and clears the
// demo's dirty state. Overlay issues the per-frame chrome: vector
// primitives onto screen, text onto the canvas above it.
type Demo interface {
	HandleInput(in *Input)
	NeedsRender() bool
	Render(p *raster.Plane) raster.Stats
	Overlay(screen *ebiten.Image, c *hud.Canvas)
}

// Config sizes the window.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Run opens the window and drives the demo until the window closes.
func Run(cfg Config, d Demo) error {
	g := newGame(cfg, d)
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	demo Demo
	w, h int

	plane    *raster.Plane
	base     *ebiten.Image
	uploaded bool

	overlayPix *image.RGBA
	overlayImg *ebiten.Image
	canvas     *hud.Canvas

	statuses raster.Statuses

	in           Input
	prevX, prevY int
	cursorPrimed bool
}

func newGame(cfg Config, d Demo) *game {
	g := &game{
		demo:       d,
		w:          cfg.Width,
		h:          cfg.Height,
		plane:      raster.NewPlane(cfg.Width, cfg.Height),
		overlayPix: image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	g.canvas = hud.NewCanvas(g.overlayPix)
	return g
}

func (g *game) Update() error {
	if !g.cursorPrimed {
		g.prevX, g.prevY = ebiten.CursorPosition()
		g.cursorPrimed = true
	}
	g.in.poll(g.prevX, g.prevY)
	g.prevX, g.prevY = g.in.Cursor()

	g.statuses.Tick()
	g.demo.HandleInput(&g.in)

	if g.demo.NeedsRender() {
		start := time.Now()
		st := g.demo.Render(g.plane)
		if st.Noisy() {
			g.statuses.Push(raster.StatusMath,
				"many samples failed: view likely straddles a pole or branch cut", 180)
		}
		if time.Since(start) > slowPass {
			g.statuses.Push(raster.StatusRender,
				"slow sampling pass: lower the anti-aliasing level", 180)
		}
		g.uploaded = false
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.base == nil {
		g.base = ebiten.NewImage(g.w, g.h)
		g.uploaded = false
	}
	if !g.uploaded {
		g.base.WritePixels(g.plane.Image().Pix)
		g.uploaded = true
	}
	screen.DrawImage(g.base, nil)

	clear(g.overlayPix.Pix)
	g.demo.Overlay(screen, g.canvas)
	g.canvas.Banner(g.statuses.Active())

	if g.overlayImg == nil {
		g.overlayImg = ebiten.NewImage(g.w, g.h)
	}
	g.overlayImg.WritePixels(g.overlayPix.Pix)
	screen.DrawImage(g.overlayImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
