package quadedge

import "github.com/arborix-go/delaunay/geom"

// EdgeID identifies one directed edge within a quad-edge group. Quad
// edges are allocated in aligned groups of four: EdgeID>>2 selects the
// group, EdgeID&3 selects which of the four directed edges within it —
// 0 is the primal edge, 1 its dual (Rot), 2 its reverse (Sym), 3 the
// reverse of the dual. Rot and Sym are therefore pure bit arithmetic,
// never a stored field.
type EdgeID uint32

// invalidEdge is returned by navigation over a deleted or never-allocated
// edge.
const invalidEdge EdgeID = ^EdgeID(0)

// noOrg marks an edge whose origin vertex has not been assigned — either
// a freshly made edge, or a dual edge (quad-edges never label the faces
// their rotations represent).
const noOrg uint32 = ^uint32(0)

func (e EdgeID) group() EdgeID { return e &^ 3 }

// Rot rotates e by 90 degrees: the edge to the dual primal edge.
func (e EdgeID) Rot() EdgeID { return e.group() | ((e + 1) & 3) }

// Tor is the inverse rotation, Rot applied three times.
func (e EdgeID) Tor() EdgeID { return e.group() | ((e + 3) & 3) }

// Sym is the same undirected edge with the opposite direction, Rot
// applied twice.
func (e EdgeID) Sym() EdgeID { return e.group() | ((e + 2) & 3) }

// edgeRec is the per-directed-edge state: the Onext successor and the
// origin vertex (or noOrg for dual edges and edges whose origin hasn't
// been assigned yet).
type edgeRec struct {
	next EdgeID
	org  uint32
}

// Store is the owning arena of all edge records for one subdivision. It
// is not safe for concurrent use: every mutation happens on the single
// goroutine that owns the subdivision (see package doc).
type Store struct {
	recs   []edgeRec
	free   []EdgeID // group-aligned EdgeIDs (low 2 bits zero) available for reuse
	points map[uint32]geom.Point
}

// NewStore returns an empty quad-edge store.
func NewStore() *Store {
	return &Store{points: make(map[uint32]geom.Point)}
}

// RegisterPoint makes p's coordinates available to Point lookups
// keyed by p.ID. Ingestion registers every input point before Triangulate
// runs; the parallel package re-registers translated IDs when it absorbs
// a peer's subdivision.
func (s *Store) RegisterPoint(p geom.Point) { s.points[p.ID] = p }

// Point returns the coordinates registered for a vertex id.
func (s *Store) Point(id uint32) (geom.Point, bool) {
	p, ok := s.points[id]
	return p, ok
}

// Onext returns the next directed edge counter-clockwise around Org(e).
func (s *Store) Onext(e EdgeID) EdgeID { return s.recs[e].next }

// Oprev returns the previous directed edge around Org(e): Rot(Onext(Rot(e))).
func (s *Store) Oprev(e EdgeID) EdgeID { return s.Onext(e.Rot()).Rot() }

// Lnext returns the next edge around e's left face: Rot(Onext(Rot^-1(e))).
func (s *Store) Lnext(e EdgeID) EdgeID { return s.Onext(e.Tor()).Rot() }

// Lprev returns the previous edge around e's left face: Sym(Onext(e)).
func (s *Store) Lprev(e EdgeID) EdgeID { return s.Onext(e).Sym() }

// Rnext returns the next edge around e's right face: Sym(Lnext(Sym(e))).
func (s *Store) Rnext(e EdgeID) EdgeID { return s.Lnext(e.Sym()).Sym() }

// Org returns the origin vertex id of e, or (0, false) if unassigned.
func (s *Store) Org(e EdgeID) (uint32, bool) {
	id := s.recs[e].org
	if id == noOrg {
		return 0, false
	}
	return id, true
}

// Dest returns the destination vertex id of e: Org(Sym(e)).
func (s *Store) Dest(e EdgeID) (uint32, bool) { return s.Org(e.Sym()) }

// SetOrg assigns e's origin vertex id explicitly; it does not propagate
// around e's Onext ring, matching the reference quad-edge representation
// where each directed edge record carries its own origin pointer.
func (s *Store) SetOrg(e EdgeID, id uint32) { s.recs[e].org = id }

// SetDest assigns e's destination vertex id: SetOrg(Sym(e), id).
func (s *Store) SetDest(e EdgeID, id uint32) { s.SetOrg(e.Sym(), id) }

// OrgPoint and DestPoint resolve an edge endpoint straight to its
// registered coordinates; every geometric predicate call in delaunay
// goes through these two.
func (s *Store) OrgPoint(e EdgeID) (geom.Point, bool) {
	id, ok := s.Org(e)
	if !ok {
		return geom.Point{}, false
	}
	return s.Point(id)
}

func (s *Store) DestPoint(e EdgeID) (geom.Point, bool) {
	return s.OrgPoint(e.Sym())
}
