package plane

import "github.com/go-gl/mathgl/mgl64"

// Anim advances a normalized time parameter once per tick and eases it
// for position interpolation. While running, the owning view is dirty
// every frame.
type Anim struct {
	T     float64
	Speed float64 // t advance per tick
	Pause int     // remaining pause ticks at either end

	PingPong bool
	HoldEnds int // ticks to hold at t=0 and t=1

	forward bool
	running bool
}

// NewAnim returns a stopped animation with the given per-tick speed.
func NewAnim(speed float64) *Anim {
	return &Anim{Speed: speed, PingPong: true, HoldEnds: 30, forward: true}
}

func (a *Anim) Running() bool { return a.running }

func (a *Anim) Start() { a.running = true }

// Toggle flips between running and stopped.
func (a *Anim) Toggle() { a.running = !a.running }

// Restart rewinds to t=0 running forward.
func (a *Anim) Restart() {
	a.T = 0
	a.forward = true
	a.Pause = 0
	a.running = true
}

// Tick advances one frame. With PingPong the parameter bounces between
// 0 and 1 with a short hold at the ends; otherwise it wraps at 1.
func (a *Anim) Tick() {
	if !a.running {
		return
	}
	if a.Pause > 0 {
		a.Pause--
		return
	}
	if a.forward {
		a.T += a.Speed
		if a.T >= 1 {
			a.T = 1
			if a.PingPong {
				a.forward = false
				a.Pause = a.HoldEnds
			} else {
				a.T = 0
			}
		}
		return
	}
	a.T -= a.Speed
	if a.T <= 0 {
		a.T = 0
		a.forward = true
		a.Pause = a.HoldEnds
	}
}

// EaseInOutCubic is the easing curve used for all position
// interpolation: 4t^3 below the midpoint, 1-(-2t+2)^3/2 above.
func EaseInOutCubic(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Lerp interpolates between two screen positions by the eased fraction.
func Lerp(src, dst mgl64.Vec2, t float64) mgl64.Vec2 {
	return src.Add(dst.Sub(src).Mul(t))
}
