// Package quadedge implements the quad-edge structure of Guibas and Stolfi,
// "Primitives for the Manipulation of General Subdivisions and the
// Computation of Voronoi Diagrams", ACM TOG 4(2), 1985.
//
// Every undirected edge is a group of four directed edges: the primal edge,
// its dual rotation, the reversed primal edge (Sym) and the reversed dual.
// The four live together in one slot of a Mesh arena and are addressed by an
// Edge handle, so the cyclic edge graph never holds pointers. Each slot has a
// generation counter; a handle to a deleted group no longer matches it and
// any use of it panics with ErrDeadEdge.
package quadedge

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

var ErrDeadEdge = errors.New("quadedge: edge is not live")

// Edge is a handle to one directed edge of a quad-edge group. The low two
// bits of ref select the rotation, the rest the arena slot.
type Edge struct {
	ref uint32
	gen uint32
}

// Nil is the zero handle. It is never live.
var Nil Edge

func (e Edge) IsNil() bool {
	return e.gen == 0
}

// Rot is the dual edge directed from the right face to the left face.
func (e Edge) Rot() Edge {
	return Edge{ref: e.ref&^3 | (e.ref+1)&3, gen: e.gen}
}

func (e Edge) InvRot() Edge {
	return Edge{ref: e.ref&^3 | (e.ref+3)&3, gen: e.gen}
}

func (e Edge) Sym() Edge {
	return Edge{ref: e.ref ^ 2, gen: e.gen}
}

// Rotation returns 0..3; 0 and 2 are primal edges, 1 and 3 dual ones.
func (e Edge) Rotation() int {
	return int(e.ref & 3)
}

func (e Edge) IsPrimal() bool {
	return e.ref&1 == 0
}

// SameGroup reports whether both handles belong to the same quad-edge.
func (e Edge) SameGroup(o Edge) bool {
	return e.ref>>2 == o.ref>>2 && e.gen == o.gen
}

func (e Edge) String() string {
	if e.IsNil() {
		return "e<nil>"
	}
	return fmt.Sprintf("e%d.%d#%d", e.ref>>2, e.ref&3, e.gen)
}

type slot struct {
	next [4]Edge
	org  [4]geom.Vertex
	gen  uint32
	live bool
}

// Mesh is the arena owning every quad-edge group. The zero value is ready to
// use.
type Mesh struct {
	slots []slot
	free  []uint32
	live  int
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Len returns the number of live quad-edge groups.
func (m *Mesh) Len() int {
	return m.live
}

func (m *Mesh) IsLive(e Edge) bool {
	i := int(e.ref >> 2)
	if e.IsNil() || i >= len(m.slots) {
		return false
	}
	s := &m.slots[i]
	return s.live && s.gen == e.gen
}

func (m *Mesh) slot(e Edge) *slot {
	if !m.IsLive(e) {
		panic(errors.Wrapf(ErrDeadEdge, "handle %v", e))
	}
	return &m.slots[e.ref>>2]
}

// MakeEdge creates an isolated edge from org to dest. Its dual forms a loop
// around the single face it touches.
func (m *Mesh) MakeEdge(org, dest geom.Vertex) Edge {
	var i uint32
	if n := len(m.free); n > 0 {
		i = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		m.slots = append(m.slots, slot{})
		i = uint32(len(m.slots) - 1)
	}
	s := &m.slots[i]
	if s.gen == 0 {
		s.gen = 1
	}
	s.live = true

	base := i << 2
	g := s.gen
	s.next[0] = Edge{ref: base, gen: g}
	s.next[1] = Edge{ref: base | 3, gen: g}
	s.next[2] = Edge{ref: base | 2, gen: g}
	s.next[3] = Edge{ref: base | 1, gen: g}
	s.org = [4]geom.Vertex{org, {}, dest, {}}

	m.live++
	return Edge{ref: base, gen: g}
}

// ONext is the next edge counter-clockwise around the origin of e.
func (m *Mesh) ONext(e Edge) Edge {
	return m.slot(e).next[e.ref&3]
}

func (m *Mesh) setONext(e, n Edge) {
	m.slot(e).next[e.ref&3] = n
}

// OPrev is the next edge clockwise around the origin of e.
func (m *Mesh) OPrev(e Edge) Edge {
	return m.ONext(e.Rot()).Rot()
}

// LNext is the next edge counter-clockwise around the left face of e.
func (m *Mesh) LNext(e Edge) Edge {
	return m.ONext(e.InvRot()).Rot()
}

func (m *Mesh) LPrev(e Edge) Edge {
	return m.ONext(e).Sym()
}

// DNext is the next edge counter-clockwise around the destination of e.
func (m *Mesh) DNext(e Edge) Edge {
	return m.ONext(e.Sym()).Sym()
}

func (m *Mesh) DPrev(e Edge) Edge {
	return m.ONext(e.InvRot()).InvRot()
}

// RNext is the next edge counter-clockwise around the right face of e.
func (m *Mesh) RNext(e Edge) Edge {
	return m.ONext(e.Rot()).InvRot()
}

func (m *Mesh) RPrev(e Edge) Edge {
	return m.ONext(e.Sym())
}

func (m *Mesh) Org(e Edge) geom.Vertex {
	return m.slot(e).org[e.ref&3]
}

func (m *Mesh) Dest(e Edge) geom.Vertex {
	return m.Org(e.Sym())
}

func (m *Mesh) SetOrg(e Edge, v geom.Vertex) {
	m.slot(e).org[e.ref&3] = v
}

func (m *Mesh) SetDest(e Edge, v geom.Vertex) {
	m.SetOrg(e.Sym(), v)
}

func (m *Mesh) SetEndPoints(e Edge, org, dest geom.Vertex) {
	m.SetOrg(e, org)
	m.SetDest(e, dest)
}

// Segment returns the end points of e.
func (m *Mesh) Segment(e Edge) (org, dest geom.Vertex) {
	return m.Org(e), m.Dest(e)
}

// Primary returns the orientation of e whose origin sorts first, so both
// directions of an undirected edge map to the same handle.
func (m *Mesh) Primary(e Edge) Edge {
	if !e.IsPrimal() {
		return e
	}
	if m.Dest(e).Less(m.Org(e)) {
		return e.Sym()
	}
	return e
}

// Splice exchanges the origin rings of a and b, and at the same time the
// left-face rings of their duals. When the rings are distinct they are
// merged, when they are the same ring it is split in two. Splice is its own
// inverse.
func (m *Mesh) Splice(a, b Edge) {
	alpha := m.ONext(a).Rot()
	beta := m.ONext(b).Rot()

	aNext, bNext := m.ONext(a), m.ONext(b)
	alphaNext, betaNext := m.ONext(alpha), m.ONext(beta)

	m.setONext(a, bNext)
	m.setONext(b, aNext)
	m.setONext(alpha, betaNext)
	m.setONext(beta, alphaNext)
}

// Connect adds an edge from the destination of a to the origin of b so that
// all three share a left face.
func (m *Mesh) Connect(a, b Edge) Edge {
	e := m.MakeEdge(m.Dest(a), m.Org(b))
	m.Splice(e, m.LNext(a))
	m.Splice(e.Sym(), b)
	return e
}

// Swap turns e, the diagonal of the quadrilateral formed by its two adjacent
// triangles, into the other diagonal. The handle stays valid.
func (m *Mesh) Swap(e Edge) {
	a := m.OPrev(e)
	b := m.OPrev(e.Sym())
	m.Splice(e, a)
	m.Splice(e.Sym(), b)
	m.Splice(e, m.LNext(a))
	m.Splice(e.Sym(), m.LNext(b))
	m.SetEndPoints(e, m.Dest(a), m.Dest(b))
}

// Delete detaches e from the rest of the mesh and releases its group. Every
// handle into the group is dead afterwards.
func (m *Mesh) Delete(e Edge) {
	m.Splice(e, m.OPrev(e))
	m.Splice(e.Sym(), m.OPrev(e.Sym()))

	i := e.ref >> 2
	s := &m.slots[i]
	s.live = false
	s.gen++
	s.next = [4]Edge{}
	s.org = [4]geom.Vertex{}
	m.free = append(m.free, i)
	m.live--
}

// Edges returns the rotation-0 handle of every live group, in arena order.
func (m *Mesh) Edges() []Edge {
	out := make([]Edge, 0, m.live)
	for i := range m.slots {
		s := &m.slots[i]
		if s.live {
			out = append(out, Edge{ref: uint32(i) << 2, gen: s.gen})
		}
	}
	return out
}

// Describe formats e with its end points, for diagnostics.
func (m *Mesh) Describe(e Edge) string {
	if !m.IsLive(e) {
		return e.String() + " (dead)"
	}
	if !e.IsPrimal() {
		return e.String() + " (dual)"
	}
	return fmt.Sprintf("%v %v -> %v", e, m.Org(e), m.Dest(e))
}
