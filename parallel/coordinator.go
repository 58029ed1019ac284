package parallel

import (
	"bytes"
	"context"
	"encoding/binary"
	"sort"

	"go.uber.org/zap"

	"github.com/arborix-go/delaunay/delaunay"
	"github.com/arborix-go/delaunay/dlnyerr"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/project"
	"github.com/arborix-go/delaunay/quadedge"
	"github.com/arborix-go/delaunay/wire"
)

// Coordinator drives one rank's side of the tree-reduction protocol.
type Coordinator struct {
	opts RunOptions
}

// NewCoordinator returns a Coordinator configured by opts.
func NewCoordinator(opts RunOptions) *Coordinator {
	return &Coordinator{opts: opts}
}

// Run executes rank group.Rank()'s full part of the protocol: a local
// Delaunay build over localPoints, then ⌈log₂ Size()⌉ rounds of send or
// receive-and-merge. Ranks eliminated along the way (every rank except
// the one that survives to round ⌈log₂ Size()⌉) return (nil, nil) once
// their send completes; only the surviving rank returns a Triangulation.
func (c *Coordinator) Run(ctx context.Context, group Group, localPoints []geom.Point) (*project.Triangulation, error) {
	const op = "parallel.Coordinator.Run"
	log := c.opts.logger()

	if len(localPoints) == 0 {
		return nil, dlnyerr.Wrap(dlnyerr.InputError, op, ErrEmptyPartition)
	}

	rank, size := group.Rank(), group.Size()
	base := minID(localPoints)

	sub, err := delaunay.Triangulate(localPoints)
	if err != nil {
		return nil, dlnyerr.Wrap(dlnyerr.GeometryInconsistency, op, err)
	}
	store, le, re := sub.Store, sub.LE, sub.RE

	all := append([]geom.Point(nil), localPoints...)

	rounds := 0
	for (1 << rounds) < size {
		rounds++
	}

	for k := 0; k < rounds; k++ {
		step := 1 << (k + 1)
		half := 1 << k

		roundCtx, cancel := c.withRoundTimeout(ctx)

		switch {
		case rank%step == half:
			log.Debug("sending subdivision", zap.Int("rank", rank), zap.Int("round", k), zap.Int("to", rank-half))
			err := c.send(roundCtx, group, rank-half, store, le, re, base)
			cancel()
			if err != nil {
				return nil, dlnyerr.Wrap(dlnyerr.TransportError, op, err)
			}
			return nil, nil

		case rank%step == 0:
			sender := rank + half
			if sender >= size {
				cancel()
				continue
			}
			log.Debug("receiving subdivision", zap.Int("rank", rank), zap.Int("round", k), zap.Int("from", sender))
			newLE, newRE, senderBase, msg, err := c.recv(roundCtx, group, sender, store)
			cancel()
			if err != nil {
				return nil, dlnyerr.Wrap(dlnyerr.TransportError, op, err)
			}

			mergedLE, mergedRE, err := delaunay.Merge(store, le, re, newLE, newRE)
			if err != nil {
				return nil, dlnyerr.Wrap(dlnyerr.GeometryInconsistency, op, err)
			}
			le, re = mergedLE, mergedRE
			all = append(all, pointsFromMessage(msg, senderBase)...)

		default:
			cancel()
			return nil, nil // already eliminated in an earlier round
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	result := project.Build(store, le, all)
	return &result, nil
}

func (c *Coordinator) withRoundTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.RoundTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opts.RoundTimeout)
}

// send serializes the local subdivision and transmits it with a base
// offset header: the wire format itself carries only local indices, so
// the translation map entry — the sender's own global id base — travels
// as a small envelope around it.
func (c *Coordinator) send(ctx context.Context, group Group, dst int, s *quadedge.Store, le, re quadedge.EdgeID, base uint32) error {
	msg, err := wire.ToMessage(s, le, re)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, base); err != nil {
		return err
	}
	if err := wire.Encode(&buf, msg); err != nil {
		return err
	}
	return group.Send(ctx, dst, buf.Bytes())
}

func (c *Coordinator) recv(ctx context.Context, group Group, src int, s *quadedge.Store) (le, re quadedge.EdgeID, base uint32, msg wire.Message, err error) {
	payload, err := group.Recv(ctx, src)
	if err != nil {
		return 0, 0, 0, wire.Message{}, err
	}

	r := bytes.NewReader(payload)
	if err := binary.Read(r, binary.LittleEndian, &base); err != nil {
		return 0, 0, 0, wire.Message{}, err
	}
	msg, err = wire.Decode(r)
	if err != nil {
		return 0, 0, 0, wire.Message{}, err
	}
	le, re, err = wire.Rebuild(s, msg, base)
	if err != nil {
		return 0, 0, 0, wire.Message{}, err
	}
	return le, re, base, msg, nil
}

func minID(points []geom.Point) uint32 {
	m := points[0].ID
	for _, p := range points[1:] {
		if p.ID < m {
			m = p.ID
		}
	}
	return m
}

func pointsFromMessage(msg wire.Message, base uint32) []geom.Point {
	out := make([]geom.Point, len(msg.Points))
	for i, xy := range msg.Points {
		p, err := geom.NewPoint(xy.X, xy.Y, base+uint32(i))
		if err != nil {
			// Coordinates just round-tripped through Rebuild successfully,
			// so they are finite; this cannot happen.
			panic("parallel: wire message carried a non-finite coordinate past Rebuild")
		}
		out[i] = p
	}
	return out
}
