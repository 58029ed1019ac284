package quadedge

// MakeEdge allocates a fresh, isolated quad-edge: a primal directed edge
// e with Org(e) and Org(Sym(e)) both undefined, Onext(e) = e, and
// Onext(Sym(e)) = Sym(e). The two dual edges' Onext rings are linked to
// each other, matching the textbook construction where an isolated edge
// bounds a single face on both sides.
//
// MakeEdge prefers the lowest free group left by a prior DeleteEdge, so
// that a given sequence of calls always produces the same EdgeIDs —
// tests can assert on edge identity, not just edge shape.
func (s *Store) MakeEdge() (EdgeID, error) {
	var base EdgeID
	if n := len(s.free); n > 0 {
		lo := 0
		for i := 1; i < n; i++ {
			if s.free[i] < s.free[lo] {
				lo = i
			}
		}
		base = s.free[lo]
		s.free[lo] = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		if len(s.recs) > int(invalidEdge)-4 {
			return 0, ErrResourceExhausted // arena would overflow EdgeID's range
		}
		base = EdgeID(len(s.recs))
		s.recs = append(s.recs, make([]edgeRec, 4)...)
	}

	e0, e1, e2, e3 := base, base+1, base+2, base+3
	s.recs[e0] = edgeRec{next: e0, org: noOrg}
	s.recs[e1] = edgeRec{next: e3, org: noOrg}
	s.recs[e2] = edgeRec{next: e2, org: noOrg}
	s.recs[e3] = edgeRec{next: e1, org: noOrg}

	if Debug {
		if err := s.CheckInvariants(e0); err != nil {
			panic(err)
		}
	}
	return e0, nil
}

// Splice is the canonical Guibas-Stolfi primitive: it exchanges the
// Onext rings at Org(a) and Org(b). If a and b share an origin ring,
// Splice separates them into two; if they don't, Splice merges their
// rings into one. Splice is its own inverse: calling it twice with the
// same arguments restores the prior state.
func (s *Store) Splice(a, b EdgeID) {
	alpha := s.Onext(a).Rot()
	beta := s.Onext(b).Rot()

	t1 := s.Onext(b)
	t2 := s.Onext(a)
	t3 := s.Onext(beta)
	t4 := s.Onext(alpha)

	s.recs[a].next = t1
	s.recs[b].next = t2
	s.recs[alpha].next = t3
	s.recs[beta].next = t4

	if Debug {
		if err := s.CheckInvariants(a); err != nil {
			panic(err)
		}
	}
}

// Connect creates a new edge from Dest(a) to Org(b), spliced so that the
// new edge e and a share Dest(a), Sym(e) and b share Org(b), and the
// left face of e is the face a and b already bound together.
//
// Precondition: a and b have a common left face (the caller is about to
// close off or subdivide that face with this edge).
func (s *Store) Connect(a, b EdgeID) (EdgeID, error) {
	e, err := s.MakeEdge()
	if err != nil {
		return 0, err
	}
	destA, _ := s.Dest(a)
	orgB, _ := s.Org(b)
	s.SetOrg(e, destA)
	s.SetDest(e, orgB)

	s.Splice(e, s.Lnext(a))
	s.Splice(e.Sym(), b)

	if Debug {
		if err := s.CheckInvariants(e); err != nil {
			panic(err)
		}
	}
	return e, nil
}

// DeleteEdge detaches e from both its origin rings via two splices, then
// releases its quad-edge group back to the free list. After it returns,
// e and Sym(e) (and their duals) must not be referenced again.
func (s *Store) DeleteEdge(e EdgeID) {
	survivor := s.Oprev(e)
	s.Splice(e, s.Oprev(e))
	sym := e.Sym()
	if survivor == e {
		survivor = s.Oprev(sym)
	}
	s.Splice(sym, s.Oprev(sym))
	s.free = append(s.free, e.group())

	if Debug && survivor != e && survivor != sym {
		if err := s.CheckInvariants(survivor); err != nil {
			panic(err)
		}
	}
}
