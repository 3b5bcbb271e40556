package delaunay

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
)

var ErrLocateFailed = errors.New("delaunay: point location did not converge")

// LocateError is returned when the location walk runs longer than there are
// edges, which only happens on a mesh that is not Delaunay. Retrying would
// walk the same loop again.
type LocateError struct {
	X, Y       float64
	Iterations int
	// Org and Dest are the end points of the last edge visited.
	Org, Dest geom.Vertex
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("%v: point (%g %g) after %d steps, last edge LINESTRING (%g %g, %g %g)",
		ErrLocateFailed, e.X, e.Y, e.Iterations, e.Org.X, e.Org.Y, e.Dest.X, e.Dest.Y)
}

func (e *LocateError) Unwrap() error {
	return ErrLocateFailed
}

// Locate finds an edge e such that (x, y) is an end point of e, lies on e,
// or lies inside the triangle to the left of e. It walks from the edge found
// by the previous call, so queries near each other are cheap.
//
// The mesh must be Delaunay for the walk to be guaranteed to terminate; the
// walk gives up with a *LocateError after as many steps as there are edges.
func (s *Subdivision) Locate(x, y float64) (quadedge.Edge, error) {
	if !geom.IsFinite(r2.RectFromPoints(r2.Point{X: x, Y: y})) || !s.insideFrame(r2.Point{X: x, Y: y}) {
		return quadedge.Nil, errors.Wrapf(ErrOutsideFrame, "point (%g %g)", x, y)
	}

	m := s.mesh
	v := geom.V(x, y)
	e := s.startingEdge
	maxIter := m.Len()

	for iter := 1; ; iter++ {
		if iter > maxIter {
			org, dest := m.Segment(e)
			err := &LocateError{X: x, Y: y, Iterations: maxIter, Org: org, Dest: dest}
			s.log.Error("[d] locate failed", zap.Error(err))
			return quadedge.Nil, err
		}

		org, dest := m.Segment(e)
		switch {
		case v.Equal2D(org) || v.Equal2D(dest):
		case s.rightOf(v, e):
			e = e.Sym()
			continue
		case !s.rightOf(v, m.ONext(e)):
			e = m.ONext(e)
			continue
		case !s.rightOf(v, m.DPrev(e)):
			e = m.DPrev(e)
			continue
		}
		break
	}

	s.startingEdge = e
	return e, nil
}
