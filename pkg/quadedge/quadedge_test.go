package quadedge

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// polygon links consecutive edges into a closed ring and returns them in
// order. The left face of every edge is the inside of a CCW polygon.
func polygon(m *Mesh, pts ...geom.Vertex) []Edge {
	edges := make([]Edge, len(pts))
	for i := range pts {
		edges[i] = m.MakeEdge(pts[i], pts[(i+1)%len(pts)])
		if i > 0 {
			m.Splice(edges[i-1].Sym(), edges[i])
		}
	}
	m.Splice(edges[len(edges)-1].Sym(), edges[0])
	return edges
}

func faceSize(m *Mesh, e Edge) int {
	n := 1
	for f := m.LNext(e); f != e; f = m.LNext(f) {
		n++
	}
	return n
}

func TestRotationAlgebra(t *testing.T) {
	m := NewMesh()
	e := m.MakeEdge(geom.V(0, 0), geom.V(1, 0))

	for _, x := range []Edge{e, e.Rot(), e.Sym(), e.InvRot()} {
		assert.Equal(t, x, x.Sym().Sym())
		assert.Equal(t, x, x.Rot().Rot().Rot().Rot())
		assert.Equal(t, x.Sym(), x.Rot().Rot())
		assert.Equal(t, x, x.Rot().InvRot())
		assert.True(t, x.SameGroup(e))
	}
	assert.True(t, e.IsPrimal())
	assert.False(t, e.Rot().IsPrimal())
	assert.Equal(t, 2, e.Sym().Rotation())
}

func TestMakeEdge(t *testing.T) {
	m := NewMesh()
	a, b := geom.V(0, 0), geom.V(3, 4)
	e := m.MakeEdge(a, b)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, a, m.Org(e))
	assert.Equal(t, b, m.Dest(e))
	assert.Equal(t, b, m.Org(e.Sym()))

	// an isolated edge is alone in both origin rings and its dual is a loop
	assert.Equal(t, e, m.ONext(e))
	assert.Equal(t, e.Sym(), m.ONext(e.Sym()))
	assert.Equal(t, e.InvRot(), m.ONext(e.Rot()))
	assert.Equal(t, e.Sym(), m.LNext(e))
	assert.Equal(t, e, m.OPrev(e))
}

func TestSpliceIsInvolution(t *testing.T) {
	m := NewMesh()
	a := m.MakeEdge(geom.V(0, 0), geom.V(1, 0))
	b := m.MakeEdge(geom.V(0, 0), geom.V(0, 1))

	m.Splice(a, b)
	assert.Equal(t, b, m.ONext(a))
	assert.Equal(t, a, m.ONext(b))

	m.Splice(a, b)
	assert.Equal(t, a, m.ONext(a))
	assert.Equal(t, b, m.ONext(b))
}

func TestTriangleRing(t *testing.T) {
	m := NewMesh()
	a, b, c := geom.V(0, 0), geom.V(4, 0), geom.V(0, 4)
	edges := polygon(m, a, b, c)

	assert.Equal(t, 3, m.Len())
	for i, e := range edges {
		assert.Equal(t, edges[(i+1)%3], m.LNext(e))
		assert.Equal(t, edges[(i+2)%3], m.LPrev(e))
		assert.Equal(t, e, m.ONext(m.OPrev(e)))
		assert.Equal(t, e, m.DNext(m.DPrev(e)))
		assert.Equal(t, e, m.RNext(m.RPrev(e)))
	}
	assert.Equal(t, 3, faceSize(m, edges[0].Sym()))
}

func TestConnectSwapDelete(t *testing.T) {
	m := NewMesh()
	a, b, c, d := geom.V(0, 0), geom.V(4, 0), geom.V(5, 5), geom.V(0, 4)
	sq := polygon(m, a, b, c, d)
	require.Equal(t, 4, faceSize(m, sq[0]))

	diag := m.Connect(sq[1], sq[0])
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, c, m.Org(diag))
	assert.Equal(t, a, m.Dest(diag))
	assert.Equal(t, 3, faceSize(m, sq[0]))
	assert.Equal(t, 3, faceSize(m, sq[2]))
	assert.Equal(t, diag, m.LNext(sq[1]))
	assert.Equal(t, sq[0], m.LNext(diag))
	assert.Equal(t, diag.Sym(), m.LNext(sq[3]))

	m.Swap(diag)
	assert.Equal(t, 5, m.Len())
	org, dest := m.Segment(diag)
	assert.ElementsMatch(t, []geom.Vertex{b, d}, []geom.Vertex{org, dest})
	assert.Equal(t, 3, faceSize(m, diag))
	assert.Equal(t, 3, faceSize(m, diag.Sym()))
	assert.Equal(t, 3, faceSize(m, sq[0]))
	assert.Equal(t, 3, faceSize(m, sq[1]))

	m.Delete(diag)
	assert.Equal(t, 4, m.Len())
	assert.False(t, m.IsLive(diag))
	assert.False(t, m.IsLive(diag.Sym()))
	assert.Equal(t, 4, faceSize(m, sq[0]))
	assert.Equal(t, sq[1], m.LNext(sq[0]))
}

func TestDeadHandle(t *testing.T) {
	m := NewMesh()
	e := m.MakeEdge(geom.V(0, 0), geom.V(1, 1))
	m.Delete(e)
	assert.Equal(t, 0, m.Len())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrDeadEdge))
	}()

	// the slot is reused, the stale handle must still be rejected
	f := m.MakeEdge(geom.V(2, 2), geom.V(3, 3))
	assert.True(t, m.IsLive(f))
	assert.False(t, m.IsLive(e))
	assert.NotEqual(t, e, f)
	assert.Len(t, m.Edges(), 1)

	m.ONext(e)
	t.Fatal("navigation through a dead handle did not panic")
}

func TestNilHandle(t *testing.T) {
	m := NewMesh()
	assert.True(t, Nil.IsNil())
	assert.False(t, m.IsLive(Nil))
	assert.Panics(t, func() { m.Org(Nil) })
	assert.Equal(t, "e<nil>", Nil.String())
}

func TestPrimary(t *testing.T) {
	m := NewMesh()
	e := m.MakeEdge(geom.V(5, 0), geom.V(1, 9))
	assert.Equal(t, e.Sym(), m.Primary(e))
	assert.Equal(t, e.Sym(), m.Primary(e.Sym()))
	assert.Equal(t, e.Rot(), m.Primary(e.Rot()))
	assert.Contains(t, m.Describe(e), "->")
}
