package parallel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/parallel"
)

func mustPoint(t *testing.T, x, y float64, id uint32) geom.Point {
	t.Helper()
	p, err := geom.NewPoint(x, y, id)
	require.NoError(t, err)
	return p
}

func TestPartitionByX_ContiguousAndCoversAllPoints(t *testing.T) {
	pts := make([]geom.Point, 10)
	for i := range pts {
		pts[i] = mustPoint(t, float64(9-i), 0, uint32(i)) // deliberately reverse-ordered input
	}

	parts := parallel.PartitionByX(pts, 3)
	require.Len(t, parts, 3)

	var total int
	for _, part := range parts {
		total += len(part)
		for i := 1; i < len(part); i++ {
			assert.True(t, geom.Less(part[i-1], part[i]) || part[i-1] == part[i])
		}
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, []int{3, 3, 4}, []int{len(parts[0]), len(parts[1]), len(parts[2])})
}

func TestPartitionByX_DoesNotMutateInput(t *testing.T) {
	pts := []geom.Point{mustPoint(t, 5, 0, 0), mustPoint(t, 1, 0, 1)}
	original := append([]geom.Point(nil), pts...)

	parallel.PartitionByX(pts, 2)
	assert.Equal(t, original, pts)
}
