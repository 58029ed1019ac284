package delaunay

import "github.com/arborix-go/delaunay/quadedge"

// Subdivision is a completed or in-progress triangulation: the
// quad-edge store that owns every edge record, plus the pair of outer
// hull edges that make up its public surface. LE is the CCW-most edge
// out of the leftmost vertex of the convex hull; RE is the CW-most edge
// out of the rightmost vertex.
type Subdivision struct {
	Store  *quadedge.Store
	LE, RE quadedge.EdgeID
}
