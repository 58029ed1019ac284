package quadedge

// Debug gates the O(n) ring-consistency self-check CheckInvariants runs.
// It is a var, not a const, so a test or an embedding application can
// flip it on without a rebuild; production code leaves it false on the
// hot path, since the check is cheap per call but not free across a
// whole triangulation.
var Debug = false

// CheckInvariants walks every live edge reachable from start and checks
// invariants 1-2 of the quad-edge store contract:
//
//  1. The Onext ring around every vertex is a cyclic permutation that
//     returns to its starting edge.
//  2. Sym(Sym(e)) == e and Rot^4(e) == e for every edge visited.
//
// It returns the first violation found, wrapped as *ErrTopologyViolation,
// or nil if none. Intended for use from Debug-gated call sites and from
// tests, not the hot path — it is linear in the number of live edges.
func (s *Store) CheckInvariants(start EdgeID) error {
	visited := make(map[EdgeID]bool)
	queue := []EdgeID{start}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if visited[e] {
			continue
		}
		visited[e] = true

		if e.Sym().Sym() != e {
			return &ErrTopologyViolation{Op: "CheckInvariants", Detail: "Sym(Sym(e)) != e"}
		}
		if e.Rot().Rot().Rot().Rot() != e {
			return &ErrTopologyViolation{Op: "CheckInvariants", Detail: "Rot^4(e) != e"}
		}

		ring := s.Onext(e)
		steps := 0
		for ring != e {
			steps++
			if steps > len(s.recs) {
				return &ErrTopologyViolation{Op: "CheckInvariants", Detail: "Onext ring does not close"}
			}
			ring = s.Onext(ring)
		}

		for _, next := range []EdgeID{s.Onext(e), e.Rot(), e.Sym()} {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}
	return nil
}
