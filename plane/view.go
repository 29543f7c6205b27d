package plane

import "zplane/cfunc"

// Default view values restored by Reset.
const (
	DefaultScale = 100.0

	zoomInFactor  = 1.2
	zoomOutFactor = 0.8
	minScale      = 1e-6

	coarseStep = 0.1
	fineStep   = 0.01
)

// Coefficient names one of the four Möbius coefficients for StepMobius.
type Coefficient uint8

const (
	CoeffA Coefficient = iota
	CoeffB
	CoeffC
	CoeffD
)

// Style holds the encoder flags a user can toggle per demo.
type Style struct {
	PhaseLines   bool
	ModulusLines bool
	Contrast     bool
	Thickness    float64
	Supersample  int // 1, 2 or 4 sub-samples per pixel axis
	Scheme       int // paint.Scheme value; kept as int to avoid a cycle
}

// DefaultStyle is the startup state every demo begins with.
func DefaultStyle() Style {
	return Style{
		PhaseLines:   true,
		ModulusLines: true,
		Contrast:     true,
		Thickness:    0.05,
		Supersample:  1,
	}
}

// View is the full mutable parameter set of one demo: pan/zoom, the
// selected mapping and its coefficients, and style flags. All mutation
// goes through methods that mark the view dirty; the sampling driver
// reads it on the next pass and calls Rendered.
type View struct {
	Center complex128
	Scale  float64

	Kind   cfunc.Kind
	Params cfunc.Params
	Style  Style

	dirty bool
}

// NewView returns a view at the defaults, already dirty so the first
// frame renders.
func NewView(kind cfunc.Kind) *View {
	return &View{
		Scale:  DefaultScale,
		Kind:   kind,
		Params: cfunc.DefaultParams(),
		Style:  DefaultStyle(),
		dirty:  true,
	}
}

// Frame derives the coordinate frame for a pane whose pixel origin is
// (ox, oy).
func (v *View) Frame(ox, oy float64) Frame {
	return Frame{OriginX: ox, OriginY: oy, Scale: v.Scale, Center: v.Center}
}

// Dirty reports whether a change since the last render requires a new
// sampling pass.
func (v *View) Dirty() bool { return v.dirty }

// Rendered clears the dirty flag after a completed pass.
func (v *View) Rendered() { v.dirty = false }

// Touch marks the view dirty without changing parameters.
func (v *View) Touch() { v.dirty = true }

// Pan shifts the center by a pixel drag delta. Dragging right moves the
// view content right, so the center moves against the drag.
func (v *View) Pan(dx, dy float64) {
	v.Center += complex(-dx/v.Scale, dy/v.Scale)
	v.dirty = true
}

// Zoom applies wheel notches: positive notches zoom in by 1.2 each,
// negative zoom out by 0.8. Scale never reaches zero. Deltas that
// round to zero notches, as touchpad micro-scrolls do, change nothing
// and trigger no re-sample.
func (v *View) Zoom(notches float64) {
	f := zoomInFactor
	if notches < 0 {
		f = zoomOutFactor
		notches = -notches
	}
	n := int(notches + 0.5)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		v.Scale *= f
	}
	if v.Scale < minScale {
		v.Scale = minScale
	}
	v.dirty = true
}

// CycleKind steps the function selection forward or backward.
func (v *View) CycleKind(forward bool) {
	if forward {
		v.Kind = v.Kind.Next()
	} else {
		v.Kind = v.Kind.Prev()
	}
	v.dirty = true
}

func (v *View) TogglePhaseLines() {
	v.Style.PhaseLines = !v.Style.PhaseLines
	v.dirty = true
}

func (v *View) ToggleModulusLines() {
	v.Style.ModulusLines = !v.Style.ModulusLines
	v.dirty = true
}

func (v *View) ToggleContrast() {
	v.Style.Contrast = !v.Style.Contrast
	v.dirty = true
}

// CycleSupersample steps the anti-aliasing level through 1, 2, 4.
func (v *View) CycleSupersample() {
	switch v.Style.Supersample {
	case 1:
		v.Style.Supersample = 2
	case 2:
		v.Style.Supersample = 4
	default:
		v.Style.Supersample = 1
	}
	v.dirty = true
}

// CycleScheme advances the color scheme through n schemes.
func (v *View) CycleScheme(n int) {
	if n <= 0 {
		return
	}
	v.Style.Scheme = (v.Style.Scheme + 1) % n
	v.dirty = true
}

// StepMobius nudges one coefficient by the coarse step, or the fine
// step when the modifier is held. re selects the real component.
func (v *View) StepMobius(c Coefficient, re, up, fine bool) {
	step := coarseStep
	if fine {
		step = fineStep
	}
	if !up {
		step = -step
	}
	var d complex128
	if re {
		d = complex(step, 0)
	} else {
		d = complex(0, step)
	}
	switch c {
	case CoeffA:
		v.Params.A += d
	case CoeffB:
		v.Params.B += d
	case CoeffC:
		v.Params.C += d
	case CoeffD:
		v.Params.D += d
	}
	v.dirty = true
}

// SetTerms clamps and stores the series truncation order.
func (v *View) SetTerms(n int) {
	if n < 1 {
		n = 1
	}
	if n > cfunc.MaxTerms {
		n = cfunc.MaxTerms
	}
	v.Params.Terms = n
	v.dirty = true
}

// CycleTerms advances the truncation order, wrapping MaxTerms back to 1.
func (v *View) CycleTerms() {
	v.SetTerms(v.Params.Terms%cfunc.MaxTerms + 1)
}

// SetSeriesMode selects Taylor or Laurent truncation.
func (v *View) SetSeriesMode(m cfunc.SeriesMode) {
	v.Params.Mode = m
	v.dirty = true
}

// ApplyPreset runs a preset mutator against the Möbius coefficients.
func (v *View) ApplyPreset(preset func(*cfunc.Params)) {
	preset(&v.Params)
	v.dirty = true
}

// Reset restores center, scale and style to the startup defaults. The
// selected function and coefficients are left alone; ResetAll clears
// those too.
func (v *View) Reset() {
	v.Center = 0
	v.Scale = DefaultScale
	v.Style = DefaultStyle()
	v.dirty = true
}

// ResetAll is Reset plus identity Möbius coefficients and the default
// truncation.
func (v *View) ResetAll() {
	v.Reset()
	v.Params = cfunc.DefaultParams()
}
