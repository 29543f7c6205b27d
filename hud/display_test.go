package hud

import (
	"image"
	"image/color"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

func inked(img *image.RGBA) (minX, maxX, n int) {
	b := img.Bounds()
	minX = b.Max.X
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{}) {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				n++
			}
		}
	}
	return minX, maxX, n
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	c := NewCanvas(img)
	c.SetPixel(-1, 5, red)
	c.SetPixel(5, 25, red)
	c.FillRect(15, 15, 10, 10, red)
	_, maxX, n := inked(img)
	if maxX > 19 {
		t.Fatalf("ink at x=%d outside the buffer", maxX)
	}
	if n != 25 {
		t.Fatalf("clipped fill inked %d pixels, want 25", n)
	}
}

func TestTextWidthGrows(t *testing.T) {
	c := NewCanvas(image.NewRGBA(image.Rect(0, 0, 200, 20)))
	short := c.TextWidth("ab")
	long := c.TextWidth("abcdef")
	if short <= 0 || long <= short {
		t.Fatalf("widths short=%d long=%d", short, long)
	}
}

func TestTextCentered(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 30))
	c := NewCanvas(img)
	const cx = 100
	c.TextCentered(cx, 4, "center", red)
	minX, maxX, n := inked(img)
	if n == 0 {
		t.Fatalf("no pixels inked")
	}
	left, right := cx-minX, maxX-cx
	if left-right > 4 || right-left > 4 {
		t.Fatalf("text spans [%d, %d], not centered on %d", minX, maxX, cx)
	}
}
