// Package paint turns a complex sample (magnitude, phase) into a color:
// phase selects the hue, magnitude a log-compressed brightness, with
// optional constant-phase and constant-modulus line overlays. The same
// encoder serves every demo; palettes are remaps of one hue/brightness
// pair.
package paint

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sentinel is the unmistakable paint for a sample whose evaluation
// failed.
var Sentinel = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Scheme names one palette. Rainbow is the reference scheme; the others
// remap the same hue/brightness pair.
type Scheme int

const (
	Rainbow Scheme = iota
	Thermal
	Grayscale
	BlueWhite
	PurpleGold

	NumSchemes
)

var schemeNames = [NumSchemes]string{
	Rainbow:    "rainbow",
	Thermal:    "thermal",
	Grayscale:  "grayscale",
	BlueWhite:  "blue-white",
	PurpleGold: "purple-gold",
}

func (s Scheme) String() string {
	if s < 0 || s >= NumSchemes {
		return "rainbow"
	}
	return schemeNames[s]
}

// Options mirrors the style flags of a view.
type Options struct {
	Scheme       Scheme
	PhaseLines   bool
	ModulusLines bool
	Contrast     bool
	Thickness    float64
	ContrastK    float64 // brightness strength multiplier, default 1
}

// Hue normalizes a phase in (-pi, pi] to [0, 360) degrees. Phase -pi
// and +pi land on the same hue, so the wheel closes.
func Hue(phase float64) float64 {
	h := math.Mod(phase+math.Pi, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h * 180 / math.Pi
}

// Brightness log-compresses a magnitude into [0, 1]. The contrast boost
// steepens the visual gradient with a fixed exponent.
func Brightness(magnitude, k float64, contrast bool) float64 {
	if k <= 0 {
		k = 1
	}
	b := 0.5 * (1 - 1/(1+math.Log(1+magnitude*k)))
	if contrast {
		b = math.Pow(b, 0.8)
	}
	if b < 0 {
		return 0
	}
	if b > 1 {
		return 1
	}
	return b
}

// Encode colors one valid sample. Error samples never reach here; the
// driver paints Sentinel for those.
func Encode(magnitude, phase float64, o Options) color.RGBA {
	c := shade(o.Scheme, Hue(phase), Brightness(magnitude, o.ContrastK, o.Contrast))
	if o.PhaseLines && onPhaseLine(phase, o.Thickness) {
		c = toward(c, 255)
	}
	if o.ModulusLines && onModulusLine(magnitude, o.Thickness) {
		c = toward(c, 255)
	}
	return c
}

func shade(s Scheme, hue, b float64) color.RGBA {
	switch s {
	case Thermal:
		// Black through red and orange to white.
		t := hue / 360
		r := clamp01(b * (1.5 - t*0.5))
		g := clamp01(b * t)
		bl := clamp01(b * t * t)
		return color.RGBA{R: u8(r), G: u8(g), B: u8(bl), A: 255}
	case Grayscale:
		v := u8(b)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case BlueWhite:
		return color.RGBA{R: u8(b * b), G: u8(b * b), B: u8(b), A: 255}
	case PurpleGold:
		t := hue / 360
		r := clamp01(b * (0.6 + 0.4*t))
		g := clamp01(b * t * 0.85)
		bl := clamp01(b * (1 - t))
		return color.RGBA{R: u8(r), G: u8(g), B: u8(bl), A: 255}
	default:
		cc := colorful.Hsv(hue, 0.9, b)
		r, g, bl := cc.RGB255()
		return color.RGBA{R: r, G: g, B: bl, A: 255}
	}
}

// onPhaseLine reports whether the phase falls in a band around a
// multiple of pi/4.
func onPhaseLine(phase, thickness float64) bool {
	m := math.Mod(phase+math.Pi, math.Pi/4)
	if m < 0 {
		m += math.Pi / 4
	}
	return m < thickness || m > math.Pi/4-thickness
}

// onModulusLine reports whether log(m+1) falls in a band around an
// integer, spacing the level curves geometrically.
func onModulusLine(magnitude, thickness float64) bool {
	m := math.Mod(math.Log(magnitude+1), 1)
	return m < thickness || m > 1-thickness
}

// toward blends each channel halfway to the extreme v.
func toward(c color.RGBA, v uint16) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(c.R) + v) / 2),
		G: uint8((uint16(c.G) + v) / 2),
		B: uint8((uint16(c.B) + v) / 2),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func u8(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
