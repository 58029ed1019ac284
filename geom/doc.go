// Package geom is the geometry kernel: the Point type and the two
// predicates — Orient and InCircle — that every other package in this
// module builds on.
//
// Both predicates are pure: no package-level mutable state, no hidden
// dependence on call order. Robustness matters more than raw speed here,
// because a single inconsistent classification between a recursive
// divide-and-conquer call and its sibling produces a triangulation that
// fails the Delaunay property on only some inputs — the worst kind of
// bug to chase. Orient and InCircle therefore compute the float64
// determinant with a conservative error bound and, when the result falls
// inside that bound, fall back to exact big.Rat arithmetic (see
// adaptive.go). Orient reports an exact tie as Collinear; InCircle on a
// collinear triple is decided by Point.ID rather than by re-running the
// float comparison.
package geom
