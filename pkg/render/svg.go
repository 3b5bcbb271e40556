package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
)

const (
	backgroundStyle = "fill:rgb(255,255,255)"
	edgeStyle       = "fill:none;stroke:rgb(70,70,70);stroke-width:1"
	voronoiStyle    = "fill:none;stroke:rgb(255,150,0);stroke-width:1;stroke-opacity:0.8"
	vertexStyle     = "fill:rgb(0,0,255)"
)

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// SVG writes s as an SVG document into w.
func SVG(w io.Writer, s *delaunay.Subdivision, st Style) error {
	if st.Width <= 2*st.Padding || st.Height <= 2*st.Padding {
		return errors.Errorf("render: %dx%d image leaves no room inside %d px padding",
			st.Width, st.Height, st.Padding)
	}
	vp := newViewport(s.Bounds(), st)
	ew := &errWriter{w: w}

	canvas := svg.New(ew)
	canvas.Start(st.Width, st.Height)
	canvas.Title(fmt.Sprintf("%d triangles", s.TriangleCount()))
	canvas.Rect(0, 0, st.Width, st.Height, backgroundStyle)

	if st.Voronoi {
		canvas.Gstyle(voronoiStyle)
		for _, cell := range voronoiCells(s) {
			xs := make([]int, 0, len(cell))
			ys := make([]int, 0, len(cell))
			for _, p := range cell {
				x, y := vp.projectInt(p)
				xs = append(xs, x)
				ys = append(ys, y)
			}
			canvas.Polygon(xs, ys)
		}
		canvas.Gend()
	}

	canvas.Gstyle(edgeStyle)
	for _, e := range s.PrimaryEdges(false) {
		org, dest := s.Segment(e)
		x1, y1 := vp.projectInt(org.XY())
		x2, y2 := vp.projectInt(dest.XY())
		canvas.Line(x1, y1, x2, y2)
	}
	canvas.Gend()

	if r := int(st.VertexRadius + 0.5); r > 0 {
		canvas.Gstyle(vertexStyle)
		for _, v := range s.Vertices() {
			x, y := vp.projectInt(v.XY())
			canvas.Circle(x, y, r)
		}
		canvas.Gend()
	}

	canvas.End()
	return errors.Wrap(ew.err, "render: write svg")
}
