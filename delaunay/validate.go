package delaunay

import (
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/project"
	"github.com/arborix-go/delaunay/quadedge"
)

// Validate walks a finished Subdivision and checks the three
// geometry-level invariants every emitted triangulation must satisfy:
//
//  1. Every triangle is non-degenerate: its vertices are not collinear.
//     Triangles come back from project.Triangles as id-sorted triples,
//     so each one is put back into CCW order before the next check.
//  2. For every triangle and every other known point, that point does
//     not lie strictly inside the triangle's circumcircle (the Delaunay
//     property).
//  3. Every triangle's vertices were registered in the store (so the
//     triangle set can't silently reference a point the caller never
//     supplied).
//
// Validate is a debug/test oracle, not part of the hot path: it is
// O(F*N) where F is the number of triangles and N the number of points,
// because invariant 2 checks every triangle against every point.
func Validate(sub *Subdivision, allPoints []geom.Point) error {
	s := sub.Store
	triangles := project.Triangles(s, sub.LE)

	for _, tri := range triangles {
		a, b, c := tri[0], tri[1], tri[2]
		pa := pointByID(s, a)
		pb := pointByID(s, b)
		pc := pointByID(s, c)

		switch geom.Orient(pa, pb, pc) {
		case geom.Left:
		case geom.Right:
			pb, pc = pc, pb
		default:
			return &ErrGeometryInconsistency{Detail: "triangle has collinear vertices"}
		}

		for _, d := range allPoints {
			if d.ID == a || d.ID == b || d.ID == c {
				continue
			}
			if geom.InCircle(pa, pb, pc, d) {
				return &ErrGeometryInconsistency{Detail: "a point lies inside a triangle's circumcircle"}
			}
		}
	}
	return nil
}

func pointByID(s *quadedge.Store, id uint32) geom.Point {
	p, ok := s.Point(id)
	if !ok {
		panic("delaunay: Validate found a triangle vertex with no registered coordinates")
	}
	return p
}
