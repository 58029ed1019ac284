package wire

// XY is a bare coordinate pair, the wire representation of a geom.Point
// with its identity stripped: the receiving rank recovers global vertex
// ids from local index plus the partition's known base offset, not from
// anything carried on the wire.
type XY struct {
	X, Y float64
}

// symFlag marks the high bit of an encoded EdgeRef to record direction.
// Real edge lists never approach 2^31 entries, so the bit is free.
const symFlag = uint32(1) << 31

// EdgeRef addresses one direction of one entry in a Message's edge list:
// Index selects the (origin, dest) pair, Sym selects whether the
// intended direction is origin->dest (false) or dest->origin (true).
type EdgeRef struct {
	Index uint32
	Sym   bool
}

func (r EdgeRef) pack() uint32 {
	v := r.Index
	if r.Sym {
		v |= symFlag
	}
	return v
}

func unpackEdgeRef(v uint32) EdgeRef {
	return EdgeRef{Index: v &^ symFlag, Sym: v&symFlag != 0}
}

// Message is one reduction round's transmission: a local point set and
// the edges connecting them by local index (origin index < dest index,
// per the egress ordering contract), plus the outer hull pair as
// references into that edge list.
type Message struct {
	Points []XY
	Edges  [][2]uint32
	LE, RE EdgeRef
}
