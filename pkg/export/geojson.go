// Package export materializes a triangulation as GeoJSON feature
// collections.
package export

import (
	"github.com/golang/geo/r2"
	geojson "github.com/paulmach/go.geojson"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Triangles returns one Polygon feature per client-visible triangle. Rings
// are closed and counter-clockwise, and Z values are kept as the third
// coordinate.
func Triangles(s *delaunay.Subdivision) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	s.ForEachTriangle(func(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64) {
		ring := [][]float64{{x1, y1, z1}, {x2, y2, z2}, {x3, y3, z3}, {x1, y1, z1}}
		fc.AddFeature(geojson.NewPolygonFeature([][][]float64{ring}))
	})
	return fc
}

// Edges returns one LineString feature per undirected edge, frame excluded.
func Edges(s *delaunay.Subdivision) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range s.PrimaryEdges(false) {
		org, dest := s.Segment(e)
		f := geojson.NewLineStringFeature([][]float64{coords(org), coords(dest)})
		f.SetProperty("length", org.Distance(dest))
		fc.AddFeature(f)
	}
	return fc
}

// VoronoiCells returns the Voronoi cell of every vertex clipped to clip. Cells
// that vanish after clipping are skipped.
func VoronoiCells(s *delaunay.Subdivision, clip r2.Rect) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	s.ForEachVoronoiCell(func(site geom.Vertex, cell []r2.Point) {
		poly := ClipPolygon(cell, clip)
		if len(poly) < 3 {
			return
		}
		ring := make([][]float64, 0, len(poly)+1)
		for _, p := range poly {
			ring = append(ring, []float64{p.X, p.Y})
		}
		ring = append(ring, ring[0])

		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.SetProperty("site", coords(site))
		fc.AddFeature(f)
	})
	return fc
}

// Vertices returns the inserted vertices as Point features.
func Vertices(s *delaunay.Subdivision) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, v := range s.Vertices() {
		fc.AddFeature(geojson.NewPointFeature(coords(v)))
	}
	return fc
}

func coords(v geom.Vertex) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
