// Package quadedge implements the Guibas-Stolfi quad-edge data structure:
// an owning arena of directed edge records, the two primitive mutators
// (MakeEdge, Splice) and the two derived ones (Connect, DeleteEdge), and
// the algebra (Rot, Sym, Onext, Oprev, Lnext, Rnext, Org, Dest) that
// turns those two stored fields into every edge-navigation a planar
// subdivision needs.
//
// A quad-edge groups four directed edges — the edge itself, its dual,
// its reverse, and the reverse of its dual — in one aligned group of
// four. This package never stores Rot or Sym: it computes them by
// toggling the low two bits of an EdgeID, so Rot^4 == id is a structural
// guarantee rather than an invariant that has to be separately checked.
// Only Onext and Org are persisted per directed edge, backed by a
// contiguous arena indexed by EdgeID — not by pointer — so that mutation
// under aliasing is safe, serialization is just a slice walk, and edge
// equality is integer equality. See Store.
//
// Store is not safe for concurrent use: each logical "process" in the
// parallel package owns exactly one Store, and every mutation inside one
// Store happens on a single goroutine.
package quadedge
