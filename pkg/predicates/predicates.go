// Package predicates contains the two geometric tests the triangulation
// relies on: which side of a directed line a point is on, and whether a point
// lies inside the circle through three others.
//
// Both are exposed through the Predicates interface so the plain float64
// version can be swapped for the adaptive one without touching the mesh code.
package predicates

import (
	"math/big"

	"github.com/golang/geo/r2"
)

// Orientation is the position of a point relative to a directed line.
type Orientation int

const (
	On Orientation = iota
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "ON"
}

type Predicates interface {
	// Side classifies p against the directed line a->b.
	Side(a, b, p r2.Point) Orientation
	// InCircle reports whether p is strictly inside the circle through the
	// counter-clockwise triangle abc.
	InCircle(a, b, c, p r2.Point) bool
}

// RightOf reports whether p is strictly right of a->b.
func RightOf(pr Predicates, p, a, b r2.Point) bool {
	return pr.Side(a, b, p) == Right
}

// LeftOf reports whether p is strictly left of a->b.
func LeftOf(pr Predicates, p, a, b r2.Point) bool {
	return pr.Side(a, b, p) == Left
}

func sideOf(det float64) Orientation {
	switch {
	case det > 0:
		return Left
	case det < 0:
		return Right
	}
	return On
}

// Inexact evaluates the determinants in plain float64 arithmetic.
type Inexact struct{}

func (Inexact) Side(a, b, p r2.Point) Orientation {
	if p == a || p == b {
		return On
	}
	return sideOf(orient(a, b, p))
}

func (Inexact) InCircle(a, b, c, p r2.Point) bool {
	det, _ := incircle(a, b, c, p)
	return det > 0
}

// Robust evaluates in float64 first and falls back to exact rational
// arithmetic when the result is within the rounding error bound.
type Robust struct{}

const (
	// half an ulp of 1.0
	epsilon = 1.0 / (1 << 53)

	orientErrBound   = (3.0 + 16.0*epsilon) * epsilon
	incircleErrBound = (10.0 + 96.0*epsilon) * epsilon
)

func (Robust) Side(a, b, p r2.Point) Orientation {
	if p == a || p == b {
		return On
	}
	detLeft := (b.X - a.X) * (p.Y - a.Y)
	detRight := (b.Y - a.Y) * (p.X - a.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return sideOf(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return sideOf(det)
		}
		detSum = -detLeft - detRight
	default:
		return sideOf(det)
	}
	bound := orientErrBound * detSum
	if det >= bound || -det >= bound {
		return sideOf(det)
	}
	return exactOrient(a, b, p)
}

func (Robust) InCircle(a, b, c, p r2.Point) bool {
	det, permanent := incircle(a, b, c, p)
	bound := incircleErrBound * permanent
	if det > bound || -det > bound {
		return det > 0
	}
	return exactIncircle(a, b, c, p) > 0
}

func orient(a, b, p r2.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// incircle returns the lifted determinant relative to p together with its
// permanent, which bounds the rounding error.
func incircle(a, b, c, p r2.Point) (det, permanent float64) {
	adx, ady := a.X-p.X, a.Y-p.Y
	bdx, bdy := b.X-p.X, b.Y-p.Y
	cdx, cdy := c.X-p.X, c.Y-p.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	alift := adx*adx + ady*ady

	cdxady, adxcdy := cdx*ady, adx*cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy, bdxady := adx*bdy, bdx*ady
	clift := cdx*cdx + cdy*cdy

	det = alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent = (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift
	return det, permanent
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func rat(f float64) *big.Rat {
	return new(big.Rat).SetFloat64(f)
}

func sub(x, y float64) *big.Rat {
	return new(big.Rat).Sub(rat(x), rat(y))
}

func mul(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}

func exactOrient(a, b, p r2.Point) Orientation {
	det := new(big.Rat).Sub(
		mul(sub(b.X, a.X), sub(p.Y, a.Y)),
		mul(sub(b.Y, a.Y), sub(p.X, a.X)),
	)
	switch det.Sign() {
	case 1:
		return Left
	case -1:
		return Right
	}
	return On
}

func exactIncircle(a, b, c, p r2.Point) int {
	adx, ady := sub(a.X, p.X), sub(a.Y, p.Y)
	bdx, bdy := sub(b.X, p.X), sub(b.Y, p.Y)
	cdx, cdy := sub(c.X, p.X), sub(c.Y, p.Y)

	alift := new(big.Rat).Add(mul(adx, adx), mul(ady, ady))
	blift := new(big.Rat).Add(mul(bdx, bdx), mul(bdy, bdy))
	clift := new(big.Rat).Add(mul(cdx, cdx), mul(cdy, cdy))

	t1 := mul(alift, new(big.Rat).Sub(mul(bdx, cdy), mul(cdx, bdy)))
	t2 := mul(blift, new(big.Rat).Sub(mul(cdx, ady), mul(adx, cdy)))
	t3 := mul(clift, new(big.Rat).Sub(mul(adx, bdy), mul(bdx, ady)))

	det := new(big.Rat).Add(t1, t2)
	det.Add(det, t3)
	return det.Sign()
}
