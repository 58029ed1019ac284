package project

import "fmt"

// ErrEulerCheckFailed reports that a projected Triangulation failed the
// planar Euler-formula sanity check: edges - points - triangles must
// equal -1 for a triangulated point set's bounded faces.
type ErrEulerCheckFailed struct {
	Points, Edges, Triangles int
}

func (e *ErrEulerCheckFailed) Error() string {
	return fmt.Sprintf("project: euler check failed: edges=%d points=%d triangles=%d, want edges-points-triangles=-1",
		e.Edges, e.Points, e.Triangles)
}
