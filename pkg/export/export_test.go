package export

import (
	"encoding/json"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/precision"
)

func rect(x0, y0, x1, y1 float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: x0, Hi: x1}, Y: r1.Interval{Lo: y0, Hi: y1}}
}

func square(t *testing.T) *delaunay.Subdivision {
	t.Helper()
	s, err := delaunay.New(rect(0, 0, 10, 10), precision.Floating{}, delaunay.Options{})
	require.NoError(t, err)
	require.NoError(t, s.InsertVertices([]geom.Vertex{
		geom.VZ(1, 1, 10), geom.VZ(9, 1, 20), geom.VZ(5, 9, 30), geom.VZ(5, 4, 40),
	}))
	return s
}

func TestTriangles(t *testing.T) {
	fc := Triangles(square(t))
	require.Len(t, fc.Features, 3)
	for _, f := range fc.Features {
		require.True(t, f.Geometry.IsPolygon())
		ring := f.Geometry.Polygon[0]
		require.Len(t, ring, 4)
		assert.Equal(t, ring[0], ring[3])
		assert.Len(t, ring[0], 3)
	}

	raw, err := fc.MarshalJSON()
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	assert.Len(t, back.Features, 3)
}

func TestEdges(t *testing.T) {
	fc := Edges(square(t))
	// three hull sides and three spokes
	require.Len(t, fc.Features, 6)
	for _, f := range fc.Features {
		assert.True(t, f.Geometry.IsLineString())
		assert.Greater(t, f.PropertyMustFloat64("length"), 0.0)
	}
}

func TestVertices(t *testing.T) {
	fc := Vertices(square(t))
	require.Len(t, fc.Features, 4)
	assert.Equal(t, []float64{1, 1, 10}, fc.Features[0].Geometry.Point)
}

func TestVoronoiCells(t *testing.T) {
	fc := VoronoiCells(square(t), rect(0, 0, 10, 10))
	require.Len(t, fc.Features, 4)

	for _, f := range fc.Features {
		ring := f.Geometry.Polygon[0]
		assert.Equal(t, ring[0], ring[len(ring)-1])
		for _, c := range ring {
			assert.InDelta(t, 5, c[0], 5+1e-9)
			assert.InDelta(t, 5, c[1], 5+1e-9)
		}
	}

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"site":[5,4,40]`)
}

func TestClipPolygon(t *testing.T) {
	r := rect(0, 0, 10, 10)

	inside := []r2.Point{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 5, Y: 9}}
	assert.Equal(t, inside, ClipPolygon(inside, r))

	outside := []r2.Point{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 25, Y: 30}}
	assert.Empty(t, ClipPolygon(outside, r))

	big := []r2.Point{{X: -5, Y: -5}, {X: 15, Y: -5}, {X: 15, Y: 15}, {X: -5, Y: 15}}
	clipped := ClipPolygon(big, r)
	assert.ElementsMatch(t, []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, clipped)

	half := []r2.Point{{X: 5, Y: 2}, {X: 15, Y: 2}, {X: 15, Y: 8}, {X: 5, Y: 8}}
	assert.ElementsMatch(t, []r2.Point{{X: 5, Y: 2}, {X: 10, Y: 2}, {X: 10, Y: 8}, {X: 5, Y: 8}}, ClipPolygon(half, r))

	assert.Nil(t, ClipPolygon(inside, r2.EmptyRect()))
}
