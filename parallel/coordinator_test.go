package parallel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborix-go/delaunay/parallel"
)

func TestCoordinatorRun_SingleRankReturnsWholeTriangulation(t *testing.T) {
	pts := scatteredPoints(t)
	groups := parallel.NewLoopbackGroup(1)
	coord := parallel.NewCoordinator(parallel.DefaultRunOptions())

	got, err := coord.Run(context.Background(), groups[0], pts)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Points, len(pts))
}

func TestCoordinatorRun_RejectsEmptyPartition(t *testing.T) {
	groups := parallel.NewLoopbackGroup(1)
	coord := parallel.NewCoordinator(parallel.DefaultRunOptions())

	_, err := coord.Run(context.Background(), groups[0], nil)
	require.Error(t, err)
}
