package project

import (
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/quadedge"
)

// canonicalID is the visited-set key for an undirected edge:
// min(id(e), id(Sym(e))), so each undirected primal edge is visited
// exactly once regardless of which of its two directions the walk
// first reaches it from.
func canonicalID(e quadedge.EdgeID) quadedge.EdgeID {
	sym := e.Sym()
	if sym < e {
		return sym
	}
	return e
}

// visitPrimalEdges walks every primal directed edge reachable from start
// exactly once (by canonical id) and calls visit with one representative
// direction of each. It explores via Onext (same-origin ring) and Sym
// (cross to the other endpoint), which together reach every edge of a
// connected planar subdivision.
func visitPrimalEdges(s *quadedge.Store, start quadedge.EdgeID, visit func(e quadedge.EdgeID)) {
	seen := make(map[quadedge.EdgeID]bool)
	queue := []quadedge.EdgeID{start}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		canon := canonicalID(e)
		if seen[canon] {
			continue
		}
		seen[canon] = true
		visit(canon)

		queue = append(queue, s.Onext(e), e.Sym(), s.Onext(e.Sym()))
	}
}

// Edges returns the undirected edge set reachable from start: pairs
// (org, dest) with org < dest, sorted.
func Edges(s *quadedge.Store, start quadedge.EdgeID) [][2]uint32 {
	var out [][2]uint32
	visitPrimalEdges(s, start, func(e quadedge.EdgeID) {
		org, ok1 := s.Org(e)
		dest, ok2 := s.Dest(e)
		if !ok1 || !ok2 {
			return
		}
		if org > dest {
			org, dest = dest, org
		}
		out = append(out, [2]uint32{org, dest})
	})
	sortPairs(out)
	return out
}

// Triangles returns the bounded-face triangle set reachable from start:
// sorted triples (u < v < w), deduplicated, with the unbounded outer
// face excluded by a single orientation test — a face walked via Lnext
// three times that does not come back CCW is the unbounded face
// wrapping the hull the "wrong way".
func Triangles(s *quadedge.Store, start quadedge.EdgeID) [][3]uint32 {
	seen := make(map[[3]uint32]bool)
	var out [][3]uint32

	visitPrimalEdges(s, start, func(e quadedge.EdgeID) {
		for _, candidate := range [2]quadedge.EdgeID{e, e.Sym()} {
			tri, ok := faceTriangle(s, candidate)
			if !ok || seen[tri] {
				continue
			}
			seen[tri] = true
			out = append(out, tri)
		}
	})
	sortTriples(out)
	return out
}

// faceTriangle checks whether walking Lnext three times from e closes
// into a triangle and, if so, whether it is CCW (a real bounded face, not
// the unbounded outer face wrapping the hull clockwise).
func faceTriangle(s *quadedge.Store, e quadedge.EdgeID) ([3]uint32, bool) {
	e2 := s.Lnext(e)
	e3 := s.Lnext(e2)
	if s.Lnext(e3) != e {
		return [3]uint32{}, false
	}

	o1, ok1 := s.Org(e)
	o2, ok2 := s.Org(e2)
	o3, ok3 := s.Org(e3)
	if !ok1 || !ok2 || !ok3 {
		return [3]uint32{}, false
	}

	p1, okp1 := s.Point(o1)
	p2, okp2 := s.Point(o2)
	p3, okp3 := s.Point(o3)
	if !okp1 || !okp2 || !okp3 {
		return [3]uint32{}, false
	}
	if geom.Orient(p1, p2, p3) != geom.Left {
		return [3]uint32{}, false
	}
	return sortedTriple(o1, o2, o3), true
}

func sortedTriple(a, b, c uint32) [3]uint32 {
	t := [3]uint32{a, b, c}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && t[j-1] > t[j]; j-- {
			t[j-1], t[j] = t[j], t[j-1]
		}
	}
	return t
}

func sortPairs(p [][2]uint32) {
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && less2(p[j], p[j-1]); j-- {
			p[j-1], p[j] = p[j], p[j-1]
		}
	}
}

func less2(a, b [2]uint32) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

func sortTriples(t [][3]uint32) {
	for i := 1; i < len(t); i++ {
		for j := i; j > 0 && less3(t[j], t[j-1]); j-- {
			t[j-1], t[j] = t[j], t[j-1]
		}
	}
}

func less3(a, b [3]uint32) bool {
	for k := 0; k < 3; k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}
