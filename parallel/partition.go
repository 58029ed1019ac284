package parallel

import (
	"sort"

	"github.com/arborix-go/delaunay/geom"
)

// PartitionByX sorts points lexicographically and splits them into p
// contiguous ranges, rank r owning [r*n/p, (r+1)*n/p) of the sorted
// sequence — the ingest-and-partition half of the tree-reduction
// protocol, factored out so Coordinator.Run can be driven either from a
// single process calling it once, or from p already-partitioned ranks
// skipping it entirely. It does not mutate points.
func PartitionByX(points []geom.Point, p int) [][]geom.Point {
	sorted := make([]geom.Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return geom.Less(sorted[i], sorted[j]) })

	n := len(sorted)
	parts := make([][]geom.Point, p)
	for r := 0; r < p; r++ {
		lo := r * n / p
		hi := (r + 1) * n / p
		parts[r] = sorted[lo:hi]
	}
	return parts
}
