package delaunay

import (
	"sort"

	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
)

// edgeStack keeps the graph walks iterative however large the mesh is.
type edgeStack []quadedge.Edge

func (s *edgeStack) push(e quadedge.Edge) {
	*s = append(*s, e)
}

func (s *edgeStack) pop() quadedge.Edge {
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e
}

func (s *edgeStack) empty() bool {
	return len(*s) == 0
}

// PrimaryEdges returns every undirected edge once, in its primary
// orientation. Edges touching the frame are left out unless includeFrame is
// set.
func (s *Subdivision) PrimaryEdges(includeFrame bool) []quadedge.Edge {
	m := s.mesh
	var edges []quadedge.Edge
	visited := make(map[quadedge.Edge]struct{}, 2*m.Len())
	stack := edgeStack{s.frameEdge}

	for !stack.empty() {
		e := stack.pop()
		if _, ok := visited[e]; ok {
			continue
		}
		if p := m.Primary(e); includeFrame || !s.IsFrameEdge(p) {
			edges = append(edges, p)
		}
		stack.push(m.ONext(e))
		stack.push(m.ONext(e.Sym()))
		visited[e] = struct{}{}
		visited[e.Sym()] = struct{}{}
	}
	return edges
}

// ForEachTriangle calls fn once for every triangle that does not touch the
// frame, with its corners in counter-clockwise order.
func (s *Subdivision) ForEachTriangle(fn func(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64)) {
	s.forEachFace(func(a, b, c geom.Vertex) {
		fn(a.X, a.Y, a.Z, b.X, b.Y, b.Z, c.X, c.Y, c.Z)
	})
}

func (s *Subdivision) forEachFace(fn func(a, b, c geom.Vertex)) {
	m := s.mesh
	visited := make(map[quadedge.Edge]struct{}, 2*m.Len())
	stack := edgeStack{s.frameEdge}

	for !stack.empty() {
		e := stack.pop()
		if _, ok := visited[e]; ok {
			continue
		}

		var corners [3]geom.Vertex
		n := 0
		frame := false
		for f := e; ; {
			org := m.Org(f)
			if n < len(corners) {
				corners[n] = org
			}
			if s.IsFrameVertex(org) {
				frame = true
			}
			if _, ok := visited[f.Sym()]; !ok {
				stack.push(f.Sym())
			}
			visited[f] = struct{}{}
			n++
			if f = m.LNext(f); f == e {
				break
			}
		}

		if n == 3 && !frame {
			fn(corners[0], corners[1], corners[2])
		}
	}
}

// Triangles collects the client-visible triangles.
func (s *Subdivision) Triangles() []geom.Triangle {
	var out []geom.Triangle
	s.forEachFace(func(a, b, c geom.Vertex) {
		out = append(out, geom.Triangle{A: a, B: b, C: c})
	})
	return out
}

// TriangleCount is the number of triangles ForEachTriangle reports.
func (s *Subdivision) TriangleCount() int {
	n := 0
	s.forEachFace(func(_, _, _ geom.Vertex) { n++ })
	return n
}

// Vertices returns the inserted vertices sorted by X, then Y.
func (s *Subdivision) Vertices() []geom.Vertex {
	seen := make(map[r2.Point]struct{})
	var out []geom.Vertex
	add := func(v geom.Vertex) {
		if s.IsFrameVertex(v) {
			return
		}
		if _, ok := seen[v.XY()]; ok {
			return
		}
		seen[v.XY()] = struct{}{}
		out = append(out, v)
	}
	for _, e := range s.PrimaryEdges(true) {
		org, dest := s.mesh.Segment(e)
		add(org)
		add(dest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ForEachVoronoiCell calls fn for every inserted vertex with the
// circumcenters of the triangles around it, counter-clockwise. Cells of
// vertices on the hull reach out towards the frame; clip them to the area of
// interest before use.
func (s *Subdivision) ForEachVoronoiCell(fn func(site geom.Vertex, cell []r2.Point)) {
	m := s.mesh
	done := make(map[r2.Point]struct{})
	visited := make(map[quadedge.Edge]struct{}, 2*m.Len())
	stack := edgeStack{s.frameEdge}

	for !stack.empty() {
		e := stack.pop()
		if _, ok := visited[e]; ok {
			continue
		}
		visited[e] = struct{}{}
		stack.push(e.Sym())
		stack.push(m.ONext(e))

		site := m.Org(e)
		if s.IsFrameVertex(site) {
			continue
		}
		if _, ok := done[site.XY()]; ok {
			continue
		}
		done[site.XY()] = struct{}{}

		if cell, ok := s.voronoiCell(e); ok {
			fn(site, cell)
		}
	}
}

// voronoiCell walks the origin ring of e. The face left of each spoke is the
// triangle between it and the next spoke.
func (s *Subdivision) voronoiCell(e quadedge.Edge) ([]r2.Point, bool) {
	m := s.mesh
	var cell []r2.Point
	for f := e; ; {
		next := m.ONext(f)
		if m.LNext(m.LNext(m.LNext(f))) != f {
			return nil, false
		}
		cell = append(cell, geom.Circumcenter(m.Org(f).XY(), m.Dest(f).XY(), m.Dest(next).XY()))
		if f = next; f == e {
			break
		}
	}
	return cell, true
}
