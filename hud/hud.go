package hud

import (
	"fmt"
	"image/color"
	"math"

	"zplane/paint"
	"zplane/raster"
)

const (
	fontOffset = 7
	lineHeight = 12

	legendW = 70
	legendH = 100
)

var (
	fg       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	dim      = color.RGBA{R: 0x9A, G: 0x9A, B: 0x9A, A: 0xFF}
	panelBG  = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
	warnBG   = color.RGBA{R: 0x50, G: 0x20, B: 0x20, A: 0xFF}
	edgeGray = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
)

// Header writes the demo title and a parameter readout at the top-left.
func (c *Canvas) Header(title, readout string) {
	c.Text(4, 2, title, fg)
	if readout != "" {
		c.Text(4, 2+lineHeight, readout, dim)
	}
}

// Help writes key-binding lines upward from the bottom-left corner.
func (c *Canvas) Help(lines ...string) {
	_, h := c.Size()
	y := int(h) - lineHeight*len(lines) - 2
	for _, s := range lines {
		c.Text(4, y, s, dim)
		y += lineHeight
	}
}

// Banner paints the active status messages as a stack of bars along the
// top edge.
func (c *Canvas) Banner(statuses []raster.Status) {
	w, _ := c.Size()
	y := 0
	for _, st := range statuses {
		c.FillRect(0, y, int(w), lineHeight+2, warnBG)
		c.Text(4, y+1, st.Text, fg)
		y += lineHeight + 2
	}
}

// PhaseLegend draws the hue strip for phases from -pi to +pi.
func (c *Canvas) PhaseLegend(x, y int) {
	c.frame(x, y, "phase")
	for i := 0; i < legendH-28; i++ {
		p := math.Pi * (2*float64(i)/float64(legendH-28) - 1)
		col := paint.Encode(2, p, paint.Options{ContrastK: 1})
		for px := 0; px < legendW-16; px++ {
			c.SetPixel(int16(x+8+px), int16(y+14+i), col)
		}
	}
	c.Text(x+4, y+legendH-12, "-pi..+pi", dim)
}

// MagnitudeLegend draws the brightness strip for magnitudes 0..5+.
func (c *Canvas) MagnitudeLegend(x, y int) {
	c.frame(x, y, "|f(z)|")
	for i := 0; i < legendH-28; i++ {
		m := 5 * (1 - float64(i)/float64(legendH-28))
		b := paint.Brightness(m, 1, false)
		v := uint8(b*255 + 0.5)
		col := color.RGBA{R: v, G: v, B: v, A: 0xFF}
		for px := 0; px < legendW-16; px++ {
			c.SetPixel(int16(x+8+px), int16(y+14+i), col)
		}
	}
	c.Text(x+4, y+legendH-12, "5+ .. 0", dim)
}

// ErrorLegend draws the heat strip for approximation errors 0..5+.
func (c *Canvas) ErrorLegend(x, y int) {
	c.frame(x, y, "error")
	for i := 0; i < legendH-28; i++ {
		e := paint.HeatMax * float64(i) / float64(legendH-28)
		col := paint.Heat(e)
		for px := 0; px < legendW-16; px++ {
			c.SetPixel(int16(x+8+px), int16(y+14+i), col)
		}
	}
	c.Text(x+4, y+legendH-12, "0 .. 5+", dim)
}

func (c *Canvas) frame(x, y int, title string) {
	c.FillRect(x, y, legendW, legendH, panelBG)
	c.hline(x, y, legendW)
	c.hline(x, y+legendH-1, legendW)
	c.vline(x, y, legendH)
	c.vline(x+legendW-1, y, legendH)
	c.Text(x+4, y+2, title, fg)
}

func (c *Canvas) hline(x, y, w int) {
	for i := 0; i < w; i++ {
		c.SetPixel(int16(x+i), int16(y), edgeGray)
	}
}

func (c *Canvas) vline(x, y, h int) {
	for i := 0; i < h; i++ {
		c.SetPixel(int16(x), int16(y+i), edgeGray)
	}
}

// FormatComplex renders a complex value the way the coefficient readout
// shows it: "1.0+0.5i".
func FormatComplex(z complex128) string {
	return fmt.Sprintf("%.2f%+.2fi", real(z), imag(z))
}
