package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborix-go/delaunay/delaunay"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/project"
)

func pt(t *testing.T, x, y float64, id uint32) geom.Point {
	t.Helper()
	p, err := geom.NewPoint(x, y, id)
	require.NoError(t, err)
	return p
}

func unitSquare(t *testing.T) []geom.Point {
	t.Helper()
	return []geom.Point{
		pt(t, 0, 0, 0),
		pt(t, 1, 0, 1),
		pt(t, 0, 1, 2),
		pt(t, 1, 1, 3),
	}
}

func TestTriangles_UnitSquareHasTwoTriangles(t *testing.T) {
	pts := unitSquare(t)
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	tris := project.Triangles(sub.Store, sub.LE)
	assert.Len(t, tris, 2)
	for _, tri := range tris {
		assert.True(t, tri[0] < tri[1] && tri[1] < tri[2], "triangle %v must be a sorted triple", tri)
	}
}

func TestEdges_UnitSquareHasFiveEdges(t *testing.T) {
	pts := unitSquare(t)
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	edges := project.Edges(sub.Store, sub.LE)
	assert.Len(t, edges, 5) // 4 hull edges + 1 diagonal
	for _, e := range edges {
		assert.Less(t, e[0], e[1])
	}
}

func TestEdges_AreSortedAndDeduplicated(t *testing.T) {
	pts := unitSquare(t)
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	edges := project.Edges(sub.Store, sub.LE)
	seen := make(map[[2]uint32]bool)
	for i, e := range edges {
		assert.False(t, seen[e], "edge %v duplicated", e)
		seen[e] = true
		if i > 0 {
			prev := edges[i-1]
			lessOrEqual := prev[0] < e[0] || (prev[0] == e[0] && prev[1] <= e[1])
			assert.True(t, lessOrEqual, "edges not sorted at index %d", i)
		}
	}
}

func TestBuild_SatisfiesEulerCheck(t *testing.T) {
	pts := unitSquare(t)
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	tri := project.Build(sub.Store, sub.LE, pts)
	assert.Equal(t, pts, tri.Points)
	assert.NoError(t, project.EulerCheck(tri))
}

func TestEulerCheck_RejectsInconsistentCounts(t *testing.T) {
	bad := project.Triangulation{
		Points:    make([]geom.Point, 4),
		Edges:     make([][2]uint32, 4),
		Triangles: make([][3]uint32, 2),
	}
	err := project.EulerCheck(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "euler check failed")
}

func TestTriangles_CollinearTripleProjectsNoTriangles(t *testing.T) {
	pts := []geom.Point{
		pt(t, 0, 0, 0),
		pt(t, 1, 0, 1),
		pt(t, 2, 0, 2),
	}
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	assert.Empty(t, project.Triangles(sub.Store, sub.LE))
	assert.Len(t, project.Edges(sub.Store, sub.LE), 2)
}
