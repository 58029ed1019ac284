package delaunay

import (
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/quadedge"
)

// Merge zips two Delaunay sub-triangulations that share an empty
// vertical strip into one: ldo/ldi are the left subdivision's outer hull
// pair, rdi/rdo the right's. It is the same step Triangulate's n>=4 case
// uses internally, exported so the parallel package's tree reduction can
// drive it directly across subdivisions that were built on (and later
// deserialized into) different stores, so long as both halves already
// share a single store.
func Merge(s *quadedge.Store, ldo, ldi, rdi, rdo quadedge.EdgeID) (quadedge.EdgeID, quadedge.EdgeID, error) {
	return merge(s, ldo, ldi, rdi, rdo)
}

func merge(s *quadedge.Store, ldo, ldi, rdi, rdo quadedge.EdgeID) (quadedge.EdgeID, quadedge.EdgeID, error) {
	// Phase 1: find the lower common tangent between the two hulls.
	for {
		// Org(rdi) left of ldi: step ldi along the left hull.
		if geom.Orient(orgPt(s, rdi), orgPt(s, ldi), destPt(s, ldi)) == geom.Left {
			ldi = s.Lnext(ldi)
			continue
		}
		// Org(ldi) right of rdi: step rdi along the right hull (Rprev).
		if geom.Orient(orgPt(s, ldi), destPt(s, rdi), orgPt(s, rdi)) == geom.Left {
			rdi = s.Onext(rdi.Sym())
			continue
		}
		break
	}

	basel, err := s.Connect(rdi.Sym(), ldi)
	if err != nil {
		return 0, 0, err
	}

	// The leftmost/rightmost hull handles may have been consumed into
	// the tangent itself; if so, the merged hull's outer edge is basel.
	if ldiOrg, _ := s.Org(ldi); sameOrg(s, ldo, ldiOrg) {
		ldo = basel.Sym()
	}
	if rdiOrg, _ := s.Org(rdi); sameOrg(s, rdo, rdiOrg) {
		rdo = basel
	}

	// Phase 2: zip upward, one cross edge at a time.
	for {
		lcand := s.Onext(basel.Sym())
		leftValid := validCandidate(s, lcand, basel)
		if leftValid {
			for s.Onext(lcand) != lcand && geom.InCircle(destPt(s, basel), orgPt(s, basel), destPt(s, lcand), destPt(s, s.Onext(lcand))) {
				t := s.Onext(lcand)
				s.DeleteEdge(lcand)
				lcand = t
			}
		}

		rcand := s.Oprev(basel)
		rightValid := validCandidate(s, rcand, basel)
		if rightValid {
			for s.Oprev(rcand) != rcand && geom.InCircle(destPt(s, basel), orgPt(s, basel), destPt(s, rcand), destPt(s, s.Oprev(rcand))) {
				t := s.Oprev(rcand)
				s.DeleteEdge(rcand)
				rcand = t
			}
		}

		if !leftValid && !rightValid {
			break
		}

		var chooseRight bool
		switch {
		case !leftValid:
			chooseRight = true
		case !rightValid:
			chooseRight = false
		default:
			chooseRight = geom.InCircle(destPt(s, lcand), destPt(s, basel), orgPt(s, basel), destPt(s, rcand))
		}

		var next quadedge.EdgeID
		if chooseRight {
			next, err = s.Connect(rcand, basel.Sym())
		} else {
			next, err = s.Connect(basel.Sym(), lcand.Sym())
		}
		if err != nil {
			return 0, 0, err
		}
		basel = next
	}

	return ldo, rdo, nil
}

// validCandidate reports whether cand's destination lies strictly above
// basel (to the right of basel's direction, since basel runs from the
// right half to the left half) — the same test used for both the left and the right
// candidate, since the geometry is symmetric in cand, not in direction.
func validCandidate(s *quadedge.Store, cand, basel quadedge.EdgeID) bool {
	return geom.Orient(destPt(s, cand), destPt(s, basel), orgPt(s, basel)) == geom.Left
}

func sameOrg(s *quadedge.Store, e quadedge.EdgeID, id uint32) bool {
	org, ok := s.Org(e)
	return ok && org == id
}
