package project

import (
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/quadedge"
)

// Triangulation is the module's egress type: the input points, the
// undirected edge set, and the triangle set of a completed Delaunay
// triangulation. Edges are sorted pairs (u <= v); triangles are sorted
// triples (u < v < w); both lists are themselves sorted, so the Edges and
// Triangles of two Triangulations over the same point set (however it was
// partitioned or permuted before reaching Triangulate or the parallel
// coordinator) are directly comparable for equality. Points keeps the
// order the caller of Build passed in.
type Triangulation struct {
	Points    []geom.Point
	Edges     [][2]uint32
	Triangles [][3]uint32
}

// Build walks s from start and assembles the full egress Triangulation.
// points is recorded verbatim as Triangulation.Points; it is not
// re-derived from the store, since the caller (Triangulate or
// Coordinator.Run) already knows the exact input set, in its original
// order.
func Build(s *quadedge.Store, start quadedge.EdgeID, points []geom.Point) Triangulation {
	return Triangulation{
		Points:    points,
		Edges:     Edges(s, start),
		Triangles: Triangles(s, start),
	}
}

// EulerCheck validates the planar Euler-formula invariant every bounded
// triangulation of a point set in general position must satisfy:
// edges - points - triangles == -1.
func EulerCheck(t Triangulation) error {
	if len(t.Edges)-len(t.Points)-len(t.Triangles) != -1 {
		return &ErrEulerCheckFailed{Points: len(t.Points), Edges: len(t.Edges), Triangles: len(t.Triangles)}
	}
	return nil
}
