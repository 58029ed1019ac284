package fixtures

import (
	"math"

	"github.com/arborix-go/delaunay/geom"
)

func mustPoints(coords [][2]float64) []geom.Point {
	out := make([]geom.Point, len(coords))
	for i, c := range coords {
		p, err := geom.NewPoint(c[0], c[1], uint32(i))
		if err != nil {
			panic("fixtures: hardcoded coordinate is non-finite: " + err.Error())
		}
		out[i] = p
	}
	return out
}

// S1 is two points: the degenerate base case that yields one edge and
// no triangles.
func S1() []geom.Point { return mustPoints([][2]float64{{0, 0}, {1, 0}}) }

// S2 is a single right triangle.
func S2() []geom.Point { return mustPoints([][2]float64{{0, 0}, {1, 0}, {0, 1}}) }

// S3 is four points, three collinear on the x-axis plus one off it, the
// smallest case that exercises the n==4 recursive split against a
// collinear sub-triangulation.
func S3() []geom.Point { return mustPoints([][2]float64{{0, 0}, {1, 0}, {2, 0}, {1, 1}}) }

// S4 is the unit square: its four corners are exactly cocircular, the
// canonical example of the diagonal-ambiguity tie-break.
func S4() []geom.Point { return mustPoints([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}) }

// S5 is five points of a regular pentagon inscribed in a unit circle
// centered at the origin, ids assigned in ascending lexicographic
// (x, y) order so id 0 names the same vertex the sorted divide-and-conquer
// pass visits first.
func S5() []geom.Point {
	pts := make([]xy, 5)
	for k := 0; k < 5; k++ {
		theta := math.Pi/2 + float64(k)*2*math.Pi/5
		pts[k] = xy{x: math.Cos(theta), y: math.Sin(theta)}
	}
	// Sort ascending by (x, y) with a manual insertion sort: this
	// fixture is constant-size, not worth pulling in sort.Slice for.
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && less(pts[j], pts[j-1]); j-- {
			pts[j-1], pts[j] = pts[j], pts[j-1]
		}
	}
	coords := make([][2]float64, len(pts))
	for i, p := range pts {
		coords[i] = [2]float64{p.x, p.y}
	}
	return mustPoints(coords)
}

type xy = struct{ x, y float64 }

func less(a, b xy) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}

// S6 is 32 points generated by a fixed linear congruential generator
// seeded with a constant, standing in for "32 uniformly random points,
// seed fixed": deterministic across runs and platforms without pulling
// in math/rand's seeding semantics, which changed between Go versions.
func S6() []geom.Point {
	const (
		a     = uint64(6364136223846793005)
		c     = uint64(1442695040888963407)
		scale = 1.0 / (1 << 32)
	)
	state := uint64(20260801)
	next := func() float64 {
		state = state*a + c
		return float64(state>>32) * scale
	}

	coords := make([][2]float64, 32)
	for i := range coords {
		coords[i] = [2]float64{next() * 100, next() * 100}
	}
	return mustPoints(coords)
}
