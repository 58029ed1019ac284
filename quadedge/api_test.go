package quadedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeEdge_Isolated(t *testing.T) {
	s := NewStore()
	e, err := s.MakeEdge()
	require.NoError(t, err)

	assert.Equal(t, e, s.Onext(e))
	assert.Equal(t, e.Sym(), s.Onext(e.Sym()))
	_, ok := s.Org(e)
	assert.False(t, ok)

	assert.Equal(t, e, e.Rot().Rot().Rot().Rot())
	assert.Equal(t, e, e.Sym().Sym())
}

func TestMakeEdge_ReusesFreedSlot(t *testing.T) {
	s := NewStore()
	a, _ := s.MakeEdge()
	s.DeleteEdge(a)
	b, err := s.MakeEdge()
	require.NoError(t, err)
	assert.Equal(t, a.group(), b.group(), "expected the freed quad-edge group to be reused")
}

func TestSplice_IsInvolutive(t *testing.T) {
	s := NewStore()
	a, _ := s.MakeEdge()
	b, _ := s.MakeEdge()

	before := snapshotOnext(s, a, b)
	s.Splice(a, b)
	s.Splice(a, b)
	after := snapshotOnext(s, a, b)
	assert.Equal(t, before, after)
}

func snapshotOnext(s *Store, edges ...EdgeID) []EdgeID {
	out := make([]EdgeID, len(edges))
	for i, e := range edges {
		out[i] = s.Onext(e)
	}
	return out
}

func TestSplice_MergesDistinctRings(t *testing.T) {
	s := NewStore()
	a, _ := s.MakeEdge()
	b, _ := s.MakeEdge()

	s.Splice(a, b)
	// a and b now share an origin ring of size 2.
	assert.Equal(t, b, s.Onext(a))
	assert.Equal(t, a, s.Onext(b))
}

func TestConnect_BuildsTriangle(t *testing.T) {
	s := NewStore()
	a, _ := s.MakeEdge()
	s.SetOrg(a, 0)
	s.SetDest(a, 1)

	b, _ := s.MakeEdge()
	s.SetOrg(b, 1)
	s.SetDest(b, 2)
	s.Splice(a.Sym(), b)

	c, err := s.Connect(b, a)
	require.NoError(t, err)

	destB, _ := s.Dest(b)
	orgA, _ := s.Org(a)
	orgC, _ := s.Org(c)
	destC, _ := s.Dest(c)
	assert.Equal(t, destB, orgC)
	assert.Equal(t, orgA, destC)

	require.NoError(t, s.CheckInvariants(a))
}

func TestDeleteEdge_DetachesFromRings(t *testing.T) {
	s := NewStore()
	a, _ := s.MakeEdge()
	b, _ := s.MakeEdge()
	s.Splice(a, b)
	require.Equal(t, b, s.Onext(a))

	s.DeleteEdge(b)
	assert.Equal(t, a, s.Onext(a), "expected a's ring to heal to just itself after b's deletion")
}

func TestLnextOprevRnext_Algebra(t *testing.T) {
	s := NewStore()
	a, _ := s.MakeEdge()
	b, _ := s.MakeEdge()
	s.Splice(a.Sym(), b)
	c, err := s.Connect(b, a)
	require.NoError(t, err)

	// Lnext(a) should be b (around the shared left face).
	assert.Equal(t, b, s.Lnext(a))
	// Oprev is Rot(Onext(Rot(e))), the inverse of Onext.
	assert.Equal(t, c, s.Onext(s.Oprev(c)))
	// Around a's right face (the outside of the triangle) the next edge is c.
	assert.Equal(t, c, s.Rnext(a))

	require.NoError(t, s.CheckInvariants(a))
}
