package delaunay

import (
	"fmt"
	"sort"

	"github.com/arborix-go/delaunay/dlnyerr"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/quadedge"
)

// Triangulate computes the Delaunay triangulation of pts by the
// Guibas-Stolfi divide-and-conquer algorithm. Points are sorted
// lexicographically by (X, then Y) once, here, at the top level; every
// recursive call below operates on a contiguous sub-slice of that single
// sorted sequence, so the merge step always sees two halves that were
// split at the same boundary the sort produced.
//
// Triangulate owns a fresh quadedge.Store for the result; callers that
// need to merge independently built subdivisions (the parallel package's
// tree reduction) use Merge directly instead.
func Triangulate(pts []geom.Point) (*Subdivision, error) {
	const op = "delaunay.Triangulate"
	if len(pts) < 2 {
		return nil, dlnyerr.Wrap(dlnyerr.InputError, op, ErrTooFewPoints)
	}

	sorted := make([]geom.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return geom.Less(sorted[i], sorted[j]) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].X == sorted[i].X && sorted[i-1].Y == sorted[i].Y {
			return nil, dlnyerr.Wrap(dlnyerr.InputError, op,
				&ErrDuplicatePoint{A: sorted[i-1].ID, B: sorted[i].ID})
		}
	}

	store := quadedge.NewStore()
	for _, p := range sorted {
		store.RegisterPoint(p)
	}

	le, re, err := triangulateSorted(store, sorted)
	if err != nil {
		return nil, dlnyerr.Wrap(dlnyerr.GeometryInconsistency, op, err)
	}
	return &Subdivision{Store: store, LE: le, RE: re}, nil
}

// triangulateSorted is the recursive divide-and-conquer body. pts must
// already be sorted lexicographically; it returns the (le, re) outer
// hull pair for the sub-triangulation it builds.
func triangulateSorted(s *quadedge.Store, pts []geom.Point) (quadedge.EdgeID, quadedge.EdgeID, error) {
	switch n := len(pts); {
	case n == 2:
		return baseCaseTwo(s, pts)
	case n == 3:
		return baseCaseThree(s, pts)
	default:
		mid := (n + 1) / 2
		ldo, ldi, err := triangulateSorted(s, pts[:mid])
		if err != nil {
			return 0, 0, err
		}
		rdi, rdo, err := triangulateSorted(s, pts[mid:])
		if err != nil {
			return 0, 0, err
		}
		return merge(s, ldo, ldi, rdi, rdo)
	}
}

func baseCaseTwo(s *quadedge.Store, pts []geom.Point) (quadedge.EdgeID, quadedge.EdgeID, error) {
	a, err := s.MakeEdge()
	if err != nil {
		return 0, 0, err
	}
	s.SetOrg(a, pts[0].ID)
	s.SetDest(a, pts[1].ID)
	return a, a.Sym(), nil
}

func baseCaseThree(s *quadedge.Store, pts []geom.Point) (quadedge.EdgeID, quadedge.EdgeID, error) {
	p1, p2, p3 := pts[0], pts[1], pts[2]

	a, err := s.MakeEdge()
	if err != nil {
		return 0, 0, err
	}
	s.SetOrg(a, p1.ID)
	s.SetDest(a, p2.ID)

	b, err := s.MakeEdge()
	if err != nil {
		return 0, 0, err
	}
	s.SetOrg(b, p2.ID)
	s.SetDest(b, p3.ID)

	s.Splice(a.Sym(), b)

	switch geom.Orient(p1, p2, p3) {
	case geom.Left:
		if _, err := s.Connect(b, a); err != nil {
			return 0, 0, err
		}
		return a, b.Sym(), nil
	case geom.Right:
		c, err := s.Connect(b, a)
		if err != nil {
			return 0, 0, err
		}
		return c.Sym(), c, nil
	default: // Collinear: polyline subdivision, no closing edge
		return a, b.Sym(), nil
	}
}

// orgPt and destPt resolve an edge endpoint to its registered
// coordinates, panicking if the vertex was never registered — a
// store/registration bug, not a data problem, so it is never expected to
// fire on valid input reached through Triangulate or Merge.
func orgPt(s *quadedge.Store, e quadedge.EdgeID) geom.Point {
	p, ok := s.OrgPoint(e)
	if !ok {
		panic(fmt.Sprintf("delaunay: edge %d origin has no registered coordinates", e))
	}
	return p
}

func destPt(s *quadedge.Store, e quadedge.EdgeID) geom.Point {
	p, ok := s.DestPoint(e)
	if !ok {
		panic(fmt.Sprintf("delaunay: edge %d destination has no registered coordinates", e))
	}
	return p
}
