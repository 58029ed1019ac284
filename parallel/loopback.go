package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arborix-go/delaunay/dlnyerr"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/project"
)

// loopbackHub owns the channels an in-process group of ranks exchanges
// messages over: one buffered channel per (src, dst) pair actually used,
// created lazily since a binary tree reduction only ever uses O(P) of
// the O(P^2) possible pairs.
type loopbackHub struct {
	mu    sync.Mutex
	chans map[[2]int]chan []byte
	size  int
}

func newLoopbackHub(size int) *loopbackHub {
	return &loopbackHub{chans: make(map[[2]int]chan []byte), size: size}
}

func (h *loopbackHub) channel(src, dst int) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := [2]int{src, dst}
	ch, ok := h.chans[key]
	if !ok {
		ch = make(chan []byte, 1)
		h.chans[key] = ch
	}
	return ch
}

// LoopbackGroup is an in-process Group: ranks are goroutines in the
// same process connected by channels, standing in for the processes a
// real MPI-like deployment would run separately. It is meant for tests
// and worked examples, not as a model for a real multi-process
// transport.
type LoopbackGroup struct {
	rank int
	hub  *loopbackHub
}

// NewLoopbackGroup returns one Group handle per rank 0..size-1, all
// sharing one in-process hub.
func NewLoopbackGroup(size int) []Group {
	hub := newLoopbackHub(size)
	groups := make([]Group, size)
	for r := 0; r < size; r++ {
		groups[r] = &LoopbackGroup{rank: r, hub: hub}
	}
	return groups
}

func (g *LoopbackGroup) Rank() int { return g.rank }
func (g *LoopbackGroup) Size() int { return g.hub.size }

func (g *LoopbackGroup) Send(ctx context.Context, dst int, payload []byte) error {
	if dst < 0 || dst >= g.hub.size {
		return ErrRankOutOfRange
	}
	select {
	case g.hub.channel(g.rank, dst) <- payload:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *LoopbackGroup) Recv(ctx context.Context, src int) ([]byte, error) {
	if src < 0 || src >= g.hub.size {
		return nil, ErrRankOutOfRange
	}
	select {
	case payload := <-g.hub.channel(src, g.rank):
		return payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RunLoopback partitions points across p in-process ranks and runs the
// full tree-reduction protocol over a LoopbackGroup, using an
// errgroup.Group so a failure on any rank cancels the others instead of
// leaving them blocked on a Recv that will never arrive.
func RunLoopback(ctx context.Context, opts RunOptions, points []geom.Point, p int) (*project.Triangulation, error) {
	const op = "parallel.RunLoopback"

	parts := PartitionByX(points, p)
	groups := NewLoopbackGroup(p)
	results := make([]*project.Triangulation, p)

	g, gctx := errgroup.WithContext(ctx)
	for r := 0; r < p; r++ {
		r := r
		g.Go(func() error {
			coord := NewCoordinator(opts)
			res, err := coord.Run(gctx, groups[r], parts[r])
			if err != nil {
				return err
			}
			results[r] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dlnyerr.Wrap(dlnyerr.TransportError, op, err)
	}
	if results[0] == nil {
		return nil, dlnyerr.Wrap(dlnyerr.TransportError, op, ErrNoResult)
	}
	return results[0], nil
}
