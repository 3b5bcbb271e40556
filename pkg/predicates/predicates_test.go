package predicates

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func pt(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

var implementations = []Predicates{Inexact{}, Robust{}}

func TestSide(t *testing.T) {
	for _, pr := range implementations {
		t.Run(fmt.Sprintf("%T", pr), func(t *testing.T) {
			a, b := pt(0, 0), pt(10, 0)
			assert.Equal(t, Left, pr.Side(a, b, pt(5, 1)))
			assert.Equal(t, Right, pr.Side(a, b, pt(5, -1)))
			assert.Equal(t, On, pr.Side(a, b, pt(5, 0)))
			assert.Equal(t, On, pr.Side(a, b, pt(20, 0)))
			assert.Equal(t, On, pr.Side(a, b, a))
			assert.Equal(t, On, pr.Side(a, b, b))

			assert.True(t, RightOf(pr, pt(5, -1), a, b))
			assert.True(t, LeftOf(pr, pt(5, 1), a, b))
			assert.False(t, RightOf(pr, pt(5, 0), a, b))
		})
	}
}

func TestInCircle(t *testing.T) {
	for _, pr := range implementations {
		t.Run(fmt.Sprintf("%T", pr), func(t *testing.T) {
			a, b, c := pt(0, 0), pt(1, 0), pt(1, 1)
			assert.True(t, pr.InCircle(a, b, c, pt(0.5, 0.5)))
			assert.False(t, pr.InCircle(a, b, c, pt(2, 2)))
			// the fourth corner of the square is on the circle, not inside
			assert.False(t, pr.InCircle(a, b, c, pt(0, 1)))
			assert.False(t, pr.InCircle(a, b, c, a))
		})
	}
}

// Near-collinear points where float64 rounding alone cannot be trusted. The
// robust answer must always agree with exact arithmetic.
func TestRobustSideAgreesWithExact(t *testing.T) {
	a, b := pt(12, 12), pt(24, 24)
	ulp := math.Nextafter(0.5, 1) - 0.5
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			p := pt(0.5+float64(i)*ulp, 0.5+float64(j)*ulp)
			assert.Equal(t, exactOrient(a, b, p), Robust{}.Side(a, b, p), "p=%v", p)
		}
	}
	assert.Equal(t, On, Robust{}.Side(a, b, pt(0.5, 0.5)))
}

func TestRobustInCircleAgreesWithExact(t *testing.T) {
	a, b, c := pt(0, 0), pt(1, 0), pt(1, 1)
	ulp := math.Nextafter(1, 2) - 1
	for i := -8; i <= 8; i++ {
		for j := -8; j <= 8; j++ {
			p := pt(float64(i)*ulp, 1+float64(j)*ulp)
			want := exactIncircle(a, b, c, p) > 0
			assert.Equal(t, want, Robust{}.InCircle(a, b, c, p), "p=%v", p)
		}
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "LEFT", Left.String())
	assert.Equal(t, "RIGHT", Right.String())
	assert.Equal(t, "ON", On.String())
}
