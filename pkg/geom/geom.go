// Package geom holds the small value types shared by the triangulation
// packages: vertices, triangles and a few planar helpers.
package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Vertex is a point supplied by the caller. Only X and Y take part in the
// triangulation; Z is carried through to the output untouched.
type Vertex struct {
	X float64
	Y float64
	Z float64
}

func V(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

func VZ(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

func (v Vertex) XY() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// Equal2D compares the planar coordinates exactly.
func (v Vertex) Equal2D(o Vertex) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vertex) Distance(o Vertex) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g %g %g)", v.X, v.Y, v.Z)
}

// Less orders vertices by X, then Y.
func (v Vertex) Less(o Vertex) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}

type Triangle struct {
	A, B, C Vertex
}

// SignedArea is positive for counter-clockwise triangles.
func (t Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.C.X-t.A.X)) / 2
}

func (t Triangle) Vertices() [3]Vertex {
	return [3]Vertex{t.A, t.B, t.C}
}

// Has reports whether v is one of the corners.
func (t Triangle) Has(v Vertex) bool {
	return t.A.Equal2D(v) || t.B.Equal2D(v) || t.C.Equal2D(v)
}

func (t Triangle) Circumcenter() r2.Point {
	return Circumcenter(t.A.XY(), t.B.XY(), t.C.XY())
}

// Circumcenter of the triangle abc. Collinear input yields non-finite
// coordinates.
func Circumcenter(a, b, c r2.Point) r2.Point {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	return r2.Point{
		X: a.X + (cy*b2-by*c2)/d,
		Y: a.Y + (bx*c2-cx*b2)/d,
	}
}

// SegmentDistance returns the distance from p to the closed segment ab.
func SegmentDistance(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Norm()
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t <= 0:
		return p.Sub(a).Norm()
	case t >= 1:
		return p.Sub(b).Norm()
	}
	return p.Sub(a.Add(ab.Mul(t))).Norm()
}

// Bounds returns the smallest rectangle holding all vertices. An empty
// slice gives r2.EmptyRect().
func Bounds(vs []Vertex) r2.Rect {
	r := r2.EmptyRect()
	for _, v := range vs {
		r = r.AddPoint(v.XY())
	}
	return r
}

// IsFinite reports whether every bound of r is a finite number.
func IsFinite(r r2.Rect) bool {
	for _, f := range []float64{r.X.Lo, r.X.Hi, r.Y.Lo, r.Y.Hi} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
