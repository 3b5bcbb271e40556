// Package delaunay maintains a Delaunay triangulation of points inserted one
// at a time.
//
// The triangulation lives inside a large frame triangle built around the
// working bounding box. Faces touching a frame vertex are scaffolding and
// are never reported to callers.
//
// A Subdivision is not safe for concurrent use.
package delaunay

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/precision"
	"github.com/0x0FACED/go-delaunay/pkg/predicates"
	"github.com/0x0FACED/go-delaunay/pkg/quadedge"
)

// frameFactor is how many times the larger side of the bounding box the
// frame extends past it.
const frameFactor = 10

var (
	ErrInvalidBounds = errors.New("delaunay: invalid bounding box")
	ErrNilModel      = errors.New("delaunay: nil precision model")
	ErrOutsideFrame  = errors.New("delaunay: vertex outside frame")
	ErrFrameEdge     = errors.New("delaunay: frame edge cannot be deleted")
)

// Options tune a Subdivision. The zero value is usable.
type Options struct {
	// Logger receives construction and insertion traces. Nil discards them.
	Logger *logger.ZapLogger
	// Predicates evaluates orientation and in-circle tests. Nil selects
	// predicates.Robust.
	Predicates predicates.Predicates
}

// Stats counts what insertion has done so far.
type Stats struct {
	Inserted   int
	Duplicates int
	OnEdge     int
	Swaps      int
}

type Subdivision struct {
	mesh  *quadedge.Mesh
	model precision.Model
	pred  predicates.Predicates
	log   *logger.ZapLogger

	bounds     r2.Rect
	resolution float64
	frame      [3]geom.Vertex
	frameEdge  quadedge.Edge

	// startingEdge seeds point location. Any live edge is correct, a recent
	// one is faster.
	startingEdge quadedge.Edge

	// faces counts bounded triangular faces, frame-touching ones included.
	faces int
	stats Stats
}

// New builds an empty triangulation whose frame encloses bbox.
func New(bbox r2.Rect, model precision.Model, opts Options) (*Subdivision, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if bbox.IsEmpty() || !geom.IsFinite(bbox) {
		return nil, errors.Wrapf(ErrInvalidBounds, "%v", bbox)
	}
	size := bbox.Size()
	offset := frameFactor * math.Max(size.X, size.Y)
	if !(offset > 0) || math.IsInf(offset, 0) {
		return nil, errors.Wrapf(ErrInvalidBounds, "%v has no extent", bbox)
	}

	s := &Subdivision{
		mesh:       quadedge.NewMesh(),
		model:      model,
		pred:       opts.Predicates,
		log:        opts.Logger,
		bounds:     bbox,
		resolution: model.ResolutionXY(),
	}
	if s.pred == nil {
		s.pred = predicates.Robust{}
	}
	if s.log == nil {
		s.log = logger.Nop()
	}

	snap := func(x, y float64) geom.Vertex {
		return geom.V(model.MakePrecise(x), model.MakePrecise(y))
	}
	center := bbox.Center()
	s.frame = [3]geom.Vertex{
		snap(center.X, bbox.Y.Hi+offset),
		snap(bbox.X.Lo-offset, bbox.Y.Lo-offset),
		snap(bbox.X.Hi+offset, bbox.Y.Lo-offset),
	}
	s.initFrame()

	s.log.Info("[d] subdivision created",
		zap.Any("bbox", []float64{bbox.X.Lo, bbox.Y.Lo, bbox.X.Hi, bbox.Y.Hi}),
		zap.Any("frame", s.frame),
		zap.Float64("resolution", s.resolution))
	return s, nil
}

func (s *Subdivision) initFrame() {
	m := s.mesh
	ea := m.MakeEdge(s.frame[0], s.frame[1])
	eb := m.MakeEdge(s.frame[1], s.frame[2])
	m.Splice(ea.Sym(), eb)
	ec := m.MakeEdge(s.frame[2], s.frame[0])
	m.Splice(eb.Sym(), ec)
	m.Splice(ec.Sym(), ea)

	s.frameEdge = ea
	s.startingEdge = ea
	s.faces = 1
}

// Mesh exposes the underlying quad-edges, e.g. to read the end points of
// edges returned by PrimaryEdges. Mutating it directly voids every guarantee
// of the Subdivision.
func (s *Subdivision) Mesh() *quadedge.Mesh {
	return s.mesh
}

func (s *Subdivision) Segment(e quadedge.Edge) (org, dest geom.Vertex) {
	return s.mesh.Segment(e)
}

func (s *Subdivision) Bounds() r2.Rect {
	return s.bounds
}

func (s *Subdivision) Frame() [3]geom.Vertex {
	return s.frame
}

func (s *Subdivision) Resolution() float64 {
	return s.resolution
}

func (s *Subdivision) Stats() Stats {
	return s.stats
}

// EdgeCount is the number of live quad-edges, frame included.
func (s *Subdivision) EdgeCount() int {
	return s.mesh.Len()
}

// FaceCount is the number of bounded triangular faces, including those that
// touch the frame. Insertion alone keeps it at 2n+1 for n vertices; Delete
// does not update it. Insertion on an edge deliberately takes off one face,
// not two: the two triangles sharing the edge merge into one quadrilateral,
// which the new vertex then splits into four.
func (s *Subdivision) FaceCount() int {
	return s.faces
}

// IsFrameVertex compares coordinates, not identity.
func (s *Subdivision) IsFrameVertex(v geom.Vertex) bool {
	for _, f := range s.frame {
		if f.Equal2D(v) {
			return true
		}
	}
	return false
}

// IsFrameEdge reports whether either end of e is a frame vertex.
func (s *Subdivision) IsFrameEdge(e quadedge.Edge) bool {
	org, dest := s.mesh.Segment(e)
	return s.IsFrameVertex(org) || s.IsFrameVertex(dest)
}

// isFrameBoundary reports whether e is one of the three sides of the frame.
func (s *Subdivision) isFrameBoundary(e quadedge.Edge) bool {
	org, dest := s.mesh.Segment(e)
	return s.IsFrameVertex(org) && s.IsFrameVertex(dest)
}

// insideFrame reports whether p is strictly inside the frame triangle.
func (s *Subdivision) insideFrame(p r2.Point) bool {
	f0, f1, f2 := s.frame[0].XY(), s.frame[1].XY(), s.frame[2].XY()
	return predicates.LeftOf(s.pred, p, f0, f1) &&
		predicates.LeftOf(s.pred, p, f1, f2) &&
		predicates.LeftOf(s.pred, p, f2, f0)
}

func (s *Subdivision) rightOf(v geom.Vertex, e quadedge.Edge) bool {
	org, dest := s.mesh.Segment(e)
	return predicates.RightOf(s.pred, v.XY(), org.XY(), dest.XY())
}

// Delete removes the undirected edge e. Face bookkeeping and the Delaunay
// property are left to the caller.
func (s *Subdivision) Delete(e quadedge.Edge) error {
	if !s.mesh.IsLive(e) {
		return errors.Wrapf(quadedge.ErrDeadEdge, "delete %v", e)
	}
	if !e.IsPrimal() {
		e = e.Rot()
	}
	if s.isFrameBoundary(e) {
		return errors.Wrapf(ErrFrameEdge, "delete %s", s.mesh.Describe(e))
	}
	s.deleteEdge(e)
	return nil
}

// deleteEdge moves the location seed off e before releasing it.
func (s *Subdivision) deleteEdge(e quadedge.Edge) {
	if s.startingEdge.SameGroup(e) {
		next := s.mesh.OPrev(e)
		if next.SameGroup(e) {
			next = s.mesh.OPrev(e.Sym())
		}
		if next.SameGroup(e) {
			next = s.frameEdge
		}
		s.startingEdge = next
	}
	s.mesh.Delete(e)
}
