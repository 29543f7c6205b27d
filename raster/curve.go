package raster

import (
	"math"
	"math/cmplx"
)

// CurveBound clips mapped curve samples; a segment with an endpoint
// beyond it is dropped rather than drawn across the pane.
const CurveBound = 10.0

// Line samples the segment from a to b at n+1 evenly spaced points.
func Line(a, b complex128, n int) []complex128 {
	if n < 1 {
		n = 1
	}
	out := make([]complex128, n+1)
	for i := 0; i <= n; i++ {
		t := complex(float64(i)/float64(n), 0)
		out[i] = a + t*(b-a)
	}
	return out
}

// Circle samples the circle of radius r about center at n points,
// closed (the first point is appended again at the end).
func Circle(center complex128, r float64, n int) []complex128 {
	if n < 3 {
		n = 3
	}
	out := make([]complex128, n+1)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		out[i] = center + cmplx.Rect(r, th)
	}
	out[n] = out[0]
	return out
}

// DiskPoints fills the disk of radius r about center with a grid of
// interior points, res points per axis.
func DiskPoints(center complex128, r float64, res int) []complex128 {
	if res < 2 {
		res = 2
	}
	var out []complex128
	for i := -res; i <= res; i++ {
		for j := -res; j <= res; j++ {
			p := complex(float64(i)*r/float64(res), float64(j)*r/float64(res))
			if cmplx.Abs(p) <= r {
				out = append(out, center+p)
			}
		}
	}
	return out
}

// HalfPlanePoints fills the strip above the line through base with
// direction dir (unit-normalized internally), depth rows of cols
// points each.
func HalfPlanePoints(base, dir complex128, extent float64, cols, rows int) []complex128 {
	if cols < 2 {
		cols = 2
	}
	if rows < 1 {
		rows = 1
	}
	d := dir / complex(cmplx.Abs(dir), 0)
	normal := d * 1i
	var out []complex128
	for i := 0; i <= cols; i++ {
		t := extent * (2*float64(i)/float64(cols) - 1)
		foot := base + complex(t, 0)*d
		for j := 1; j <= rows; j++ {
			h := extent * float64(j) / float64(rows)
			out = append(out, foot+complex(h, 0)*normal)
		}
	}
	return out
}

// MapSegments maps consecutive sample pairs of a polyline through
// eval, keeping only segments whose endpoints both evaluate cleanly
// and stay inside the clip box |Re|,|Im| < bound.
func MapSegments(pts []complex128, eval Source, bound float64) [][2]complex128 {
	var out [][2]complex128
	var prev complex128
	havePrev := false
	for _, z := range pts {
		w, err := eval(z)
		if err != nil || !inBox(w, bound) {
			havePrev = false
			continue
		}
		if havePrev {
			out = append(out, [2]complex128{prev, w})
		}
		prev = w
		havePrev = true
	}
	return out
}

// MapPoints maps a point cloud through eval, dropping failures and
// out-of-box images.
func MapPoints(pts []complex128, eval Source, bound float64) []complex128 {
	var out []complex128
	for _, z := range pts {
		w, err := eval(z)
		if err != nil || !inBox(w, bound) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func inBox(z complex128, bound float64) bool {
	return math.Abs(real(z)) < bound && math.Abs(imag(z)) < bound
}
