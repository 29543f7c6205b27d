package paint

import "image/color"

// HeatMax caps the approximation error shown by the heat ramp.
const HeatMax = 5.0

// Heat maps an error magnitude onto a blue-cyan-green-yellow-red ramp,
// capped at HeatMax.
func Heat(err float64) color.RGBA {
	t := err / HeatMax
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	switch {
	case t < 0.25:
		u := t * 4
		return color.RGBA{R: 0, G: u8(u), B: 255, A: 255}
	case t < 0.5:
		u := (t - 0.25) * 4
		return color.RGBA{R: 0, G: 255, B: u8(1 - u), A: 255}
	case t < 0.75:
		u := (t - 0.5) * 4
		return color.RGBA{R: u8(u), G: 255, B: 0, A: 255}
	default:
		u := (t - 0.75) * 4
		return color.RGBA{R: 255, G: u8(1 - u), B: 0, A: 255}
	}
}

// Marker colors for point-graph roles.
var (
	SourceMarker = color.RGBA{R: 0x4A, G: 0x6F, B: 0xFF, A: 255}
	ImageMarker  = color.RGBA{R: 0xFF, G: 0x4A, B: 0x4A, A: 255}
	TweenMarker  = color.RGBA{R: 0x7F, G: 0xFF, B: 0x7F, A: 255}
)
