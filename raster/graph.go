package raster

import (
	"math"
	"math/cmplx"

	"github.com/go-gl/mathgl/mgl64"

	"zplane/plane"
)

// ImageBound filters out graph points whose mapped image blew up near a
// pole; such points would otherwise drag their mesh edges across the
// whole pane.
const ImageBound = 100.0

// Topology selects the point-set shape of a conformal graph.
type Topology uint8

const (
	RectGrid Topology = iota
	Circles
	Spokes
	Polar

	NumTopologies
)

var topologyNames = [NumTopologies]string{
	RectGrid: "grid",
	Circles:  "circles",
	Spokes:   "spokes",
	Polar:    "polar",
}

func (t Topology) String() string {
	if t >= NumTopologies {
		return "grid"
	}
	return topologyNames[t]
}

// Next cycles through the topologies.
func (t Topology) Next() Topology { return (t + 1) % NumTopologies }

// GraphPoint is one node of the mesh: its source point, its mapped
// image, and the indices of its connected neighbors (at most 8,
// symmetric: if A lists B, B lists A).
type GraphPoint struct {
	Source    complex128
	Image     complex128
	Neighbors []int
}

// Graph is the finite mesh one conformal demo draws. It is rebuilt from
// scratch whenever the mapping or topology changes; indices are stable
// in between.
type Graph struct {
	Topology Topology
	Points   []GraphPoint
}

// GraphSpec sizes the generated topologies.
type GraphSpec struct {
	// RectGrid: points at (i*Spacing, j*Spacing), |i|,|j| <= HalfExtent/Spacing.
	HalfExtent float64
	Spacing    float64

	// Circles/Polar: Rings rings of Sectors points, radius step RingStep.
	Rings    int
	Sectors  int
	RingStep float64

	// Spokes: SpokeCount spokes of SpokePoints points, radius step RingStep.
	SpokeCount  int
	SpokePoints int
}

// DefaultGraphSpec is the mesh density the demos start with.
func DefaultGraphSpec() GraphSpec {
	return GraphSpec{
		HalfExtent:  2.5,
		Spacing:     0.5,
		Rings:       6,
		Sectors:     24,
		RingStep:    0.4,
		SpokeCount:  12,
		SpokePoints: 8,
	}
}

// BuildGraph generates the source points of the topology, applies eval
// to each, drops points that error or whose image exceeds ImageBound,
// and rewires the surviving mesh. Dropped points take their edges with
// them, so symmetry is preserved.
func BuildGraph(t Topology, spec GraphSpec, eval Source) *Graph {
	sources, edges := generate(t, spec)

	keep := make([]int, len(sources)) // old index -> new index or -1
	g := &Graph{Topology: t}
	for i, z := range sources {
		keep[i] = -1
		w, err := eval(z)
		if err != nil || cmplx.Abs(w) > ImageBound {
			continue
		}
		keep[i] = len(g.Points)
		g.Points = append(g.Points, GraphPoint{Source: z, Image: w})
	}

	for _, e := range edges {
		a, b := keep[e[0]], keep[e[1]]
		if a < 0 || b < 0 {
			continue
		}
		g.Points[a].Neighbors = append(g.Points[a].Neighbors, b)
		g.Points[b].Neighbors = append(g.Points[b].Neighbors, a)
	}
	return g
}

// SourceScreen projects every source point through f.
func (g *Graph) SourceScreen(f plane.Frame) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(g.Points))
	for i, p := range g.Points {
		x, y := f.Pixel(p.Source)
		out[i] = mgl64.Vec2{x, y}
	}
	return out
}

// ImageScreen projects every mapped image through f.
func (g *Graph) ImageScreen(f plane.Frame) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(g.Points))
	for i, p := range g.Points {
		x, y := f.Pixel(p.Image)
		out[i] = mgl64.Vec2{x, y}
	}
	return out
}

// TweenScreen eases every point from its source position toward its
// image position by t.
func (g *Graph) TweenScreen(src, dst plane.Frame, t float64) []mgl64.Vec2 {
	e := plane.EaseInOutCubic(t)
	out := make([]mgl64.Vec2, len(g.Points))
	for i, p := range g.Points {
		sx, sy := src.Pixel(p.Source)
		dx, dy := dst.Pixel(p.Image)
		out[i] = plane.Lerp(mgl64.Vec2{sx, sy}, mgl64.Vec2{dx, dy}, e)
	}
	return out
}

func generate(t Topology, spec GraphSpec) ([]complex128, [][2]int) {
	switch t {
	case Circles:
		return genCircles(spec, false)
	case Polar:
		return genCircles(spec, true)
	case Spokes:
		return genSpokes(spec)
	default:
		return genRect(spec)
	}
}

func genRect(spec GraphSpec) ([]complex128, [][2]int) {
	n := int(spec.HalfExtent/spec.Spacing + 0.5)
	side := 2*n + 1
	pts := make([]complex128, 0, side*side)
	var edges [][2]int

	idx := func(i, j int) int { return (i+n)*side + (j + n) }
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			pts = append(pts, complex(float64(i)*spec.Spacing, float64(j)*spec.Spacing))
			if i < n {
				edges = append(edges, [2]int{idx(i, j), idx(i+1, j)})
			}
			if j < n {
				edges = append(edges, [2]int{idx(i, j), idx(i, j+1)})
			}
		}
	}
	return pts, edges
}

// genCircles lays out concentric rings. Plain circles link around each
// ring and inward to the same sector of the inner ring; the polar
// variant adds a center node joined to the innermost ring.
func genCircles(spec GraphSpec, polar bool) ([]complex128, [][2]int) {
	var pts []complex128
	var edges [][2]int

	center := -1
	centerStride := 1
	if polar {
		center = 0
		pts = append(pts, 0)
		// Cap the hub degree at 8 spokes no matter how many sectors.
		if spec.Sectors > 8 {
			centerStride = (spec.Sectors + 7) / 8
		}
	}

	idx := func(ring, sector int) int {
		base := 0
		if polar {
			base = 1
		}
		return base + (ring-1)*spec.Sectors + sector
	}

	for ring := 1; ring <= spec.Rings; ring++ {
		r := float64(ring) * spec.RingStep
		for s := 0; s < spec.Sectors; s++ {
			th := 2 * math.Pi * float64(s) / float64(spec.Sectors)
			pts = append(pts, cmplx.Rect(r, th))
			edges = append(edges, [2]int{idx(ring, s), idx(ring, (s+1)%spec.Sectors)})
			if ring > 1 {
				edges = append(edges, [2]int{idx(ring, s), idx(ring-1, s)})
			} else if polar && s%centerStride == 0 {
				edges = append(edges, [2]int{idx(1, s), center})
			}
		}
	}
	return pts, edges
}

func genSpokes(spec GraphSpec) ([]complex128, [][2]int) {
	var pts []complex128
	var edges [][2]int

	idx := func(spoke, j int) int { return spoke*spec.SpokePoints + j }
	for spoke := 0; spoke < spec.SpokeCount; spoke++ {
		th := 2 * math.Pi * float64(spoke) / float64(spec.SpokeCount)
		for j := 0; j < spec.SpokePoints; j++ {
			r := float64(j+1) * spec.RingStep
			pts = append(pts, cmplx.Rect(r, th))
			if j > 0 {
				edges = append(edges, [2]int{idx(spoke, j), idx(spoke, j-1)})
			}
			edges = append(edges, [2]int{idx(spoke, j), idx((spoke+1)%spec.SpokeCount, j)})
		}
	}
	return pts, edges
}
