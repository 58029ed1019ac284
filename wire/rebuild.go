package wire

import (
	"math"
	"sort"

	"github.com/arborix-go/delaunay/dlnyerr"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/quadedge"
)

// ToMessage walks the primal edges reachable from le (the left side of a
// subdivision's outer hull pair; re is its right side) and serializes
// them into a Message: vertices renumbered to contiguous local indices
// 0..n-1 in ascending global-id order, edges as local index pairs with
// origin < dest, and le/re carried as references into that edge list.
func ToMessage(s *quadedge.Store, le, re quadedge.EdgeID) (Message, error) {
	const op = "wire.ToMessage"

	type canonEdge struct {
		id   quadedge.EdgeID // the direction whose Org is the smaller global id
		a, b uint32          // global ids, a < b
	}

	seen := make(map[quadedge.EdgeID]bool)
	globalIDs := make(map[uint32]bool)
	var edges []canonEdge

	queue := []quadedge.EdgeID{le}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		sym := e.Sym()
		canon := e
		if sym < e {
			canon = sym
		}
		if seen[canon] {
			continue
		}
		seen[canon] = true

		org, okO := s.Org(canon)
		dest, okD := s.Dest(canon)
		if okO && okD {
			a, b, forward := org, dest, canon
			if a > b {
				a, b, forward = b, a, canon.Sym()
			}
			edges = append(edges, canonEdge{id: forward, a: a, b: b})
			globalIDs[a] = true
			globalIDs[b] = true
		}
		queue = append(queue, s.Onext(e), sym, s.Onext(sym))
	}

	ids := make([]uint32, 0, len(globalIDs))
	for id := range globalIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	localOf := make(map[uint32]uint32, len(ids))
	points := make([]XY, len(ids))
	for i, id := range ids {
		localOf[id] = uint32(i)
		p, ok := s.Point(id)
		if !ok {
			return Message{}, dlnyerr.Wrap(dlnyerr.GeometryInconsistency, op,
				&ErrEdgeIndexOutOfRange{Index: id, Limit: uint32(len(ids))})
		}
		points[i] = XY{X: p.X, Y: p.Y}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})

	out := make([][2]uint32, len(edges))
	refOf := make(map[quadedge.EdgeID]EdgeRef, len(edges)*2)
	for i, ce := range edges {
		out[i] = [2]uint32{localOf[ce.a], localOf[ce.b]}
		refOf[ce.id] = EdgeRef{Index: uint32(i), Sym: false}
		refOf[ce.id.Sym()] = EdgeRef{Index: uint32(i), Sym: true}
	}

	leRef, ok := refOf[le]
	if !ok {
		return Message{}, dlnyerr.Wrap(dlnyerr.GeometryInconsistency, op, &quadedge.ErrTopologyViolation{
			Op: op, Detail: "le is not reachable from itself",
		})
	}
	reRef, ok := refOf[re]
	if !ok {
		return Message{}, dlnyerr.Wrap(dlnyerr.GeometryInconsistency, op, &quadedge.ErrTopologyViolation{
			Op: op, Detail: "re is not reachable from le",
		})
	}

	return Message{Points: points, Edges: out, LE: leRef, RE: reRef}, nil
}

// Rebuild reconstructs a quad-edge topology from msg into s: it
// registers each local point as global id idBase+localIndex, creates one
// quad-edge per msg edge, and rebuilds each vertex's Onext ring by
// sorting its incident directed edges by polar angle and splicing them
// together in that order, per the wire format's reconstruction contract.
// It returns le/re resolved into s's own addressing.
func Rebuild(s *quadedge.Store, msg Message, idBase uint32) (le, re quadedge.EdgeID, err error) {
	const op = "wire.Rebuild"

	n := len(msg.Points)
	for i, p := range msg.Points {
		gp, perr := geom.NewPoint(p.X, p.Y, idBase+uint32(i))
		if perr != nil {
			return 0, 0, dlnyerr.Wrap(dlnyerr.InputError, op, perr)
		}
		s.RegisterPoint(gp)
	}

	edgeIDs := make([]quadedge.EdgeID, len(msg.Edges))
	incident := make([][]quadedge.EdgeID, n)

	for i, e := range msg.Edges {
		if int(e[0]) >= n || int(e[1]) >= n {
			return 0, 0, dlnyerr.Wrap(dlnyerr.InputError, op, &ErrEdgeIndexOutOfRange{Index: e[1], Limit: uint32(n)})
		}
		id, merr := s.MakeEdge()
		if merr != nil {
			return 0, 0, dlnyerr.Wrap(dlnyerr.TransportError, op, merr)
		}
		s.SetOrg(id, idBase+e[0])
		s.SetDest(id, idBase+e[1])
		edgeIDs[i] = id
		incident[e[0]] = append(incident[e[0]], id)
		incident[e[1]] = append(incident[e[1]], id.Sym())
	}

	for _, dirs := range incident {
		if len(dirs) < 2 {
			continue
		}
		sort.Slice(dirs, func(i, j int) bool { return angleOf(s, dirs[i]) < angleOf(s, dirs[j]) })
		for i := 0; i < len(dirs)-1; i++ {
			s.Splice(dirs[i], dirs[i+1])
		}
	}

	le, err = resolveRef(edgeIDs, msg.LE)
	if err != nil {
		return 0, 0, dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}
	re, err = resolveRef(edgeIDs, msg.RE)
	if err != nil {
		return 0, 0, dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}
	return le, re, nil
}

func angleOf(s *quadedge.Store, e quadedge.EdgeID) float64 {
	o, _ := s.OrgPoint(e)
	d, _ := s.DestPoint(e)
	return math.Atan2(d.Y-o.Y, d.X-o.X)
}

func resolveRef(edgeIDs []quadedge.EdgeID, ref EdgeRef) (quadedge.EdgeID, error) {
	if int(ref.Index) >= len(edgeIDs) {
		return 0, &ErrEdgeIndexOutOfRange{Index: ref.Index, Limit: uint32(len(edgeIDs))}
	}
	e := edgeIDs[ref.Index]
	if ref.Sym {
		return e.Sym(), nil
	}
	return e, nil
}
