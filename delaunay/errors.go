package delaunay

import "fmt"

// ErrTooFewPoints is returned by Triangulate when fewer than two points
// are supplied.
var ErrTooFewPoints = fmt.Errorf("delaunay: need at least 2 points")

// ErrDuplicatePoint is returned by Triangulate when two input points
// share identical (X, Y) coordinates.
type ErrDuplicatePoint struct {
	A, B uint32 // the colliding point ids
}

func (e *ErrDuplicatePoint) Error() string {
	return fmt.Sprintf("delaunay: points %d and %d share coordinates", e.A, e.B)
}

// ErrGeometryInconsistency indicates a predicate returned a result that
// contradicts a runtime invariant check — e.g. InCircle disagreeing with
// Orient on a triangle already known to be CCW. It is fatal and always
// indicates a predicate robustness bug, never a data problem.
type ErrGeometryInconsistency struct {
	Detail string
}

func (e *ErrGeometryInconsistency) Error() string {
	return fmt.Sprintf("delaunay: geometry inconsistency: %s", e.Detail)
}
