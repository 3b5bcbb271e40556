package export

import (
	"github.com/golang/geo/r2"
)

// ClipPolygon clips a convex or concave polygon against an axis-aligned
// rectangle (Sutherland–Hodgman). The result is open: the first point is not
// repeated at the end.
func ClipPolygon(poly []r2.Point, r r2.Rect) []r2.Point {
	if r.IsEmpty() {
		return nil
	}
	edges := []struct {
		inside func(p r2.Point) bool
		cross  func(a, b r2.Point) r2.Point
	}{
		{
			func(p r2.Point) bool { return p.X >= r.X.Lo },
			func(a, b r2.Point) r2.Point { return atX(a, b, r.X.Lo) },
		},
		{
			func(p r2.Point) bool { return p.X <= r.X.Hi },
			func(a, b r2.Point) r2.Point { return atX(a, b, r.X.Hi) },
		},
		{
			func(p r2.Point) bool { return p.Y >= r.Y.Lo },
			func(a, b r2.Point) r2.Point { return atY(a, b, r.Y.Lo) },
		},
		{
			func(p r2.Point) bool { return p.Y <= r.Y.Hi },
			func(a, b r2.Point) r2.Point { return atY(a, b, r.Y.Hi) },
		},
	}

	out := poly
	for _, edge := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]r2.Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch curIn, prevIn := edge.inside(cur), edge.inside(prev); {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, edge.cross(prev, cur), cur)
			case prevIn:
				out = append(out, edge.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b r2.Point, x float64) r2.Point {
	t := (x - a.X) / (b.X - a.X)
	return r2.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b r2.Point, y float64) r2.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return r2.Point{X: a.X + t*(b.X-a.X), Y: y}
}
