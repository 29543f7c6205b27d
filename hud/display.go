// Package hud draws the text chrome of the demos (labels, legends, key
// help and status banners) directly into the shared pixel buffer with
// tinyfont, through a small Displayer adapter.
package hud

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Canvas adapts an *image.RGBA to the tinygo Displayer contract so
// tinyfont can write into it. Present is a no-op; the app uploads the
// buffer itself.
type Canvas struct {
	img  *image.RGBA
	font tinyfont.Fonter
}

var _ drivers.Displayer = (*Canvas)(nil)

// NewCanvas wraps the buffer.
func NewCanvas(img *image.RGBA) *Canvas {
	return &Canvas{img: img, font: &proggy.TinySZ8pt7b}
}

func (c *Canvas) Size() (x, y int16) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if c.img == nil {
		return
	}
	b := c.img.Bounds()
	ix, iy := int(x), int(y)
	if ix < b.Min.X || ix >= b.Max.X || iy < b.Min.Y || iy >= b.Max.Y {
		return
	}
	c.img.SetRGBA(ix, iy, col)
}

func (c *Canvas) Display() error { return nil }

// FillRect floods a clipped rectangle, used for banner and legend
// backgrounds.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if c.img == nil {
		return
	}
	b := c.img.Bounds()
	x0, y0 := max(x, b.Min.X), max(y, b.Min.Y)
	x1, y1 := min(x+w, b.Max.X), min(y+h, b.Max.Y)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.img.SetRGBA(px, py, col)
		}
	}
}

// Text writes one line with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c, c.font, int16(x), int16(y)+fontOffset, s, col)
}

// TextWidth returns the advance width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(c.font, s)
	return int(w)
}

// TextCentered writes one line centered on cx.
func (c *Canvas) TextCentered(cx, y int, s string, col color.RGBA) {
	c.Text(cx-c.TextWidth(s)/2, y, s, col)
}
