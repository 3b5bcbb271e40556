// Package precision describes the coordinate grid a triangulation works on.
//
// A Model answers two questions: how far apart two coordinates must be to be
// told apart (ResolutionXY), and where a coordinate lands once snapped to the
// grid (MakePrecise).
package precision

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultTolerance is the resolution of a Floating model with no explicit
// tolerance.
const DefaultTolerance = 1e-9

type Model interface {
	ResolutionXY() float64
	MakePrecise(v float64) float64
}

// Fixed snaps coordinates to a grid of 1/Scale units.
type Fixed struct {
	Scale float64
}

func NewFixed(scale float64) (Fixed, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return Fixed{}, errors.Errorf("precision: invalid scale %v", scale)
	}
	return Fixed{Scale: scale}, nil
}

func (m Fixed) ResolutionXY() float64 {
	return 1 / m.Scale
}

func (m Fixed) MakePrecise(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*m.Scale) / m.Scale
}

// Floating keeps full float64 precision and only uses Tolerance for the
// "near" tests.
type Floating struct {
	Tolerance float64
}

func (m Floating) ResolutionXY() float64 {
	if m.Tolerance > 0 {
		return m.Tolerance
	}
	return DefaultTolerance
}

func (m Floating) MakePrecise(v float64) float64 {
	return v
}
