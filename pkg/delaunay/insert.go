package delaunay

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-delaunay/internal/dbg"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
)

// InsertVertex adds v and restores the Delaunay property around it.
//
// A vertex equal to an existing one is ignored. A vertex closer than the
// resolution to the located edge is treated as lying on it when it also
// falls inside the circumcircle of the triangle beyond: the edge is removed
// first so no zero-area triangle is created.
func (s *Subdivision) InsertVertex(v geom.Vertex) error {
	e, err := s.Locate(v.X, v.Y)
	if err != nil {
		return err
	}
	m := s.mesh

	if s.isCorner(e, v) {
		s.stats.Duplicates++
		s.log.Debug("[d] duplicate vertex ignored", zap.Stringer("vertex", v))
		return nil
	}

	if s.edgeUnder(e, v) {
		if s.log.Enabled(zapcore.DebugLevel) {
			s.log.Debug("[d] vertex on edge", zap.Stringer("vertex", v),
				zap.String("edge", dbg.Name(e)), zap.String("segment", m.Describe(e)))
		}
		e = m.OPrev(e)
		s.deleteEdge(m.ONext(e))
		s.faces--
		s.stats.OnEdge++
	}

	// Connect v to every corner of the face containing it.
	base := m.MakeEdge(m.Org(e), v)
	m.Splice(base, e)
	start := base
	for {
		base = m.Connect(e, base.Sym())
		s.faces++
		e = m.OPrev(base)
		if m.LNext(e) == start {
			break
		}
	}

	// Flip suspect edges until every triangle around v is Delaunay.
	swaps := 0
	for {
		t := m.OPrev(e)
		if s.rightOf(m.Dest(t), e) &&
			s.pred.InCircle(m.Org(e).XY(), m.Dest(t).XY(), m.Dest(e).XY(), v.XY()) {
			m.Swap(e)
			swaps++
			e = m.OPrev(e)
		} else if m.ONext(e) == start {
			break
		} else {
			e = m.LPrev(m.ONext(e))
		}
	}

	s.startingEdge = start
	s.stats.Inserted++
	s.stats.Swaps += swaps
	if s.log.Enabled(zapcore.DebugLevel) {
		s.log.Debug("[d] vertex inserted", zap.Stringer("vertex", v),
			zap.String("edge", dbg.Name(start)), zap.Int("swaps", swaps),
			zap.Int("edges", m.Len()), zap.Int("faces", s.faces))
	}
	return nil
}

// InsertVertices inserts vs in order and stops at the first failure.
func (s *Subdivision) InsertVertices(vs []geom.Vertex) error {
	for i, v := range vs {
		if err := s.InsertVertex(v); err != nil {
			return errors.WithMessagef(err, "vertex %d %v", i, v)
		}
	}
	s.log.Info("[d] vertices inserted", zap.Int("count", len(vs)),
		zap.Int("inserted", s.stats.Inserted), zap.Int("duplicates", s.stats.Duplicates),
		zap.Int("swaps", s.stats.Swaps))
	return nil
}

// isCorner reports whether v is exactly one of the corners of the face left
// of e.
func (s *Subdivision) isCorner(e quadedge.Edge, v geom.Vertex) bool {
	m := s.mesh
	f := e
	for i := 0; i < 3; i++ {
		if m.Org(f).Equal2D(v) {
			return true
		}
		f = m.LNext(f)
	}
	return m.Dest(e).Equal2D(v)
}

// edgeUnder reports whether v lies on the located edge e: within the
// resolution of it and inside the circumcircle of the triangle on its other
// side. Frame sides are never returned.
func (s *Subdivision) edgeUnder(e quadedge.Edge, v geom.Vertex) bool {
	m := s.mesh
	if s.isFrameBoundary(e) {
		return false
	}
	org, dest := m.Segment(e)
	if geom.SegmentDistance(v.XY(), org.XY(), dest.XY()) >= s.resolution {
		return false
	}
	far := m.Dest(m.LNext(e.Sym()))
	return s.pred.InCircle(dest.XY(), org.XY(), far.XY(), v.XY())
}
