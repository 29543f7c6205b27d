// Package plane maps between sample (pixel) coordinates and points of
// the complex plane, and owns the mutable view/interaction state the
// demos share.
package plane

// Frame is one coordinate frame: a pixel origin, a scale in pixels per
// unit, and a pan center in the complex plane. Increasing pixel rows map
// to decreasing imaginary parts (raster order is top-down, the plane is
// y-up).
//
// Two frames may share one view (domain and range panes); they then
// share Scale but keep their own origins.
type Frame struct {
	OriginX float64
	OriginY float64
	Scale   float64
	Center  complex128
}

// Complex converts the pixel (x, y) to its plane point.
func (f Frame) Complex(x, y float64) complex128 {
	re := (x-f.OriginX)/f.Scale + real(f.Center)
	im := (f.OriginY-y)/f.Scale + imag(f.Center)
	return complex(re, im)
}

// Pixel is the exact inverse of Complex.
func (f Frame) Pixel(z complex128) (x, y float64) {
	x = (real(z)-real(f.Center))*f.Scale + f.OriginX
	y = f.OriginY - (imag(z)-imag(f.Center))*f.Scale
	return x, y
}
