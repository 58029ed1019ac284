package parallel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborix-go/delaunay/delaunay"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/parallel"
	"github.com/arborix-go/delaunay/project"
)

func scatteredPoints(t *testing.T) []geom.Point {
	t.Helper()
	// A handful of points in general position, not collinear, large
	// enough to actually exercise more than one merge round.
	coords := [][2]float64{
		{0, 0}, {4, 0}, {8, 1}, {2, 3}, {6, 5},
		{1, 6}, {9, 6}, {3, 8}, {7, 9}, {5, 4},
	}
	pts := make([]geom.Point, len(coords))
	for i, c := range coords {
		p, err := geom.NewPoint(c[0], c[1], uint32(i))
		require.NoError(t, err)
		pts[i] = p
	}
	return pts
}

func sequentialTriangulation(t *testing.T, pts []geom.Point) project.Triangulation {
	t.Helper()
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	return project.Build(sub.Store, sub.LE, pts)
}

func TestRunLoopback_MatchesSequentialResult(t *testing.T) {
	pts := scatteredPoints(t)
	want := sequentialTriangulation(t, pts)

	for _, p := range []int{1, 2, 4} {
		p := p
		t.Run("", func(t *testing.T) {
			got, err := parallel.RunLoopback(context.Background(), parallel.DefaultRunOptions(), pts, p)
			require.NoError(t, err)
			assert.Equal(t, want.Edges, got.Edges)
			assert.Equal(t, want.Triangles, got.Triangles)
			assert.NoError(t, project.EulerCheck(*got))
		})
	}
}

func TestRunLoopback_TwoPointsPerRankStillWorks(t *testing.T) {
	pts := []geom.Point{}
	for i := 0; i < 8; i++ {
		p, err := geom.NewPoint(float64(i), float64(i%3), uint32(i))
		require.NoError(t, err)
		pts = append(pts, p)
	}

	// 4 ranks over 8 points: each rank's local base case is n=2, the
	// smallest valid partition, exercising every merge round down to
	// the smallest possible subdivisions.
	got, err := parallel.RunLoopback(context.Background(), parallel.DefaultRunOptions(), pts, 4)
	require.NoError(t, err)
	assert.NoError(t, project.EulerCheck(*got))
}
