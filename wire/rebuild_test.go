package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborix-go/delaunay/delaunay"
	"github.com/arborix-go/delaunay/geom"
	"github.com/arborix-go/delaunay/project"
	"github.com/arborix-go/delaunay/quadedge"
	"github.com/arborix-go/delaunay/wire"
)

func pt(t *testing.T, x, y float64, id uint32) geom.Point {
	t.Helper()
	p, err := geom.NewPoint(x, y, id)
	require.NoError(t, err)
	return p
}

func TestToMessageThenRebuild_PreservesProjection(t *testing.T) {
	pts := []geom.Point{
		pt(t, 0, 0, 0),
		pt(t, 1, 0, 1),
		pt(t, 0, 1, 2),
		pt(t, 1, 1, 3),
	}
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	wantEdges := project.Edges(sub.Store, sub.LE)
	wantTriangles := project.Triangles(sub.Store, sub.LE)

	msg, err := wire.ToMessage(sub.Store, sub.LE, sub.RE)
	require.NoError(t, err)
	assert.Len(t, msg.Points, 4)
	assert.Len(t, msg.Edges, len(wantEdges))

	dst := quadedge.NewStore()
	le, re, err := wire.Rebuild(dst, msg, 0)
	require.NoError(t, err)
	assert.NotEqual(t, le, re) // sanity: hull pair resolved to distinct edges

	gotEdges := project.Edges(dst, le)
	gotTriangles := project.Triangles(dst, le)
	assert.Equal(t, wantEdges, gotEdges)
	assert.Equal(t, wantTriangles, gotTriangles)
}

func TestToMessageThenRebuild_RenumbersWithIDBase(t *testing.T) {
	pts := []geom.Point{pt(t, 5, 5, 0), pt(t, 6, 5, 1)}
	sub, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	msg, err := wire.ToMessage(sub.Store, sub.LE, sub.RE)
	require.NoError(t, err)

	dst := quadedge.NewStore()
	const base = uint32(100)
	le, _, err := wire.Rebuild(dst, msg, base)
	require.NoError(t, err)

	org, ok := dst.Org(le)
	require.True(t, ok)
	assert.GreaterOrEqual(t, org, base)
}
