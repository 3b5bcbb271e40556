package delaunay

import (
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
)

var ErrInvalidMesh = errors.New("delaunay: invalid mesh")

// Validate checks the ring structure of every edge, the orientation of every
// reported triangle, and that no vertex lies inside a triangle's
// circumcircle by more than the resolution. It is quadratic in the number of
// vertices and meant for tests and debugging.
func (s *Subdivision) Validate() error {
	m := s.mesh
	for _, e := range m.Edges() {
		for _, f := range [...]quadedge.Edge{e, e.Sym(), e.Rot(), e.InvRot()} {
			if m.ONext(m.OPrev(f)) != f {
				return errors.Wrapf(ErrInvalidMesh, "onext/oprev mismatch at %v", f)
			}
			if f.Rot().Rot().Rot().Rot() != f || f.Sym().Sym() != f {
				return errors.Wrapf(ErrInvalidMesh, "rotation algebra broken at %v", f)
			}
		}
	}

	vertices := s.Vertices()
	var err error
	s.forEachFace(func(a, b, c geom.Vertex) {
		if err != nil {
			return
		}
		t := geom.Triangle{A: a, B: b, C: c}
		if t.SignedArea() <= 0 {
			err = errors.Wrapf(ErrInvalidMesh, "triangle %v %v %v is not counter-clockwise", a, b, c)
			return
		}
		center := t.Circumcenter()
		radius := center.Sub(a.XY()).Norm()
		for _, v := range vertices {
			if t.Has(v) {
				continue
			}
			if s.pred.InCircle(a.XY(), b.XY(), c.XY(), v.XY()) &&
				center.Sub(v.XY()).Norm() < radius-s.resolution {
				err = errors.Wrapf(ErrInvalidMesh, "vertex %v inside circumcircle of %v %v %v", v, a, b, c)
				return
			}
		}
	})
	return err
}
