package render

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
)

// Image draws s onto a new context: black background, Voronoi cells in
// orange, edges in cyan and vertices in green.
func Image(s *delaunay.Subdivision, st Style) (*gg.Context, error) {
	if st.Width <= 2*st.Padding || st.Height <= 2*st.Padding {
		return nil, errors.Errorf("render: %dx%d image leaves no room inside %d px padding",
			st.Width, st.Height, st.Padding)
	}
	vp := newViewport(s.Bounds(), st)

	c := gg.NewContext(st.Width, st.Height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(st.Width), float64(st.Height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(st.Height))
	c.Scale(1, -1)
	c.Translate(vp.offset.X, vp.offset.Y)
	c.Scale(vp.scale, vp.scale)
	c.Translate(-vp.min.X, -vp.min.Y)

	if st.Voronoi {
		c.SetLineWidth(1)
		c.SetRGB(1, 0.6, 0)
		for _, cell := range voronoiCells(s) {
			c.MoveTo(cell[0].X, cell[0].Y)
			for _, p := range cell[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
		}
		c.Stroke()
	}

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, e := range s.PrimaryEdges(false) {
		org, dest := s.Segment(e)
		c.DrawLine(org.X, org.Y, dest.X, dest.Y)
	}
	c.Stroke()

	if st.VertexRadius > 0 {
		// dots keep their pixel size whatever the scale
		c.Push()
		c.Identity()
		c.SetRGB(0, 0.8, 0)
		for _, v := range s.Vertices() {
			x, y := vp.project(v.XY())
			c.DrawCircle(x, y, st.VertexRadius)
		}
		c.Fill()
		c.Pop()
	}
	return c, nil
}

// PNG encodes the drawing of s as PNG into w.
func PNG(w io.Writer, s *delaunay.Subdivision, st Style) error {
	c, err := Image(s, st)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "render: encode png")
}
