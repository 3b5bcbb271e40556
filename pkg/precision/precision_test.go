package precision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	m, err := NewFixed(1000)
	require.NoError(t, err)

	assert.Equal(t, 0.001, m.ResolutionXY())
	assert.Equal(t, 1.235, m.MakePrecise(1.23456))
	assert.Equal(t, -105.0, m.MakePrecise(-105.0001))
	assert.True(t, math.IsInf(m.MakePrecise(math.Inf(1)), 1))

	var model Model = m
	assert.Equal(t, 2.5, model.MakePrecise(2.5))
}

func TestNewFixedRejectsBadScale(t *testing.T) {
	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewFixed(scale)
		assert.Error(t, err, "scale %v", scale)
	}
}

func TestFloating(t *testing.T) {
	assert.Equal(t, DefaultTolerance, Floating{}.ResolutionXY())
	assert.Equal(t, 0.5, Floating{Tolerance: 0.5}.ResolutionXY())
	assert.Equal(t, 1.23456789, Floating{}.MakePrecise(1.23456789))
}
