// Package render draws a triangulation as an echarts page, a PNG raster or an
// SVG document.
package render

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/export"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

type Style struct {
	// Width and Height of the image in pixels.
	Width, Height int
	// Padding around the bounding box in pixels.
	Padding int
	// VertexRadius in pixels. Zero hides the vertices.
	VertexRadius float64
	// Voronoi overlays the Voronoi cells clipped to the bounding box.
	Voronoi bool
}

func DefaultStyle() Style {
	return Style{
		Width:        1000,
		Height:       1000,
		Padding:      20,
		VertexRadius: 3,
	}
}

// viewport maps world coordinates to pixels with y pointing up and the
// bounding box centered.
type viewport struct {
	min    r2.Point
	scale  float64
	offset r2.Point
	height float64
}

func newViewport(bounds r2.Rect, st Style) viewport {
	size := bounds.Size()
	w := float64(st.Width - 2*st.Padding)
	h := float64(st.Height - 2*st.Padding)

	scale := math.Inf(1)
	if size.X > 0 {
		scale = w / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, h/size.Y)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}

	return viewport{
		min:   bounds.Lo(),
		scale: scale,
		offset: r2.Point{
			X: float64(st.Padding) + (w-size.X*scale)/2,
			Y: float64(st.Padding) + (h-size.Y*scale)/2,
		},
		height: float64(st.Height),
	}
}

func (vp viewport) project(p r2.Point) (float64, float64) {
	x := vp.offset.X + (p.X-vp.min.X)*vp.scale
	y := vp.offset.Y + (p.Y-vp.min.Y)*vp.scale
	return x, vp.height - y
}

func (vp viewport) projectInt(p r2.Point) (int, int) {
	x, y := vp.project(p)
	return int(math.Round(x)), int(math.Round(y))
}

// voronoiCells collects the cells clipped to the bounding box.
func voronoiCells(s *delaunay.Subdivision) [][]r2.Point {
	var cells [][]r2.Point
	s.ForEachVoronoiCell(func(_ geom.Vertex, cell []r2.Point) {
		if poly := export.ClipPolygon(cell, s.Bounds()); len(poly) >= 3 {
			cells = append(cells, poly)
		}
	})
	return cells
}
