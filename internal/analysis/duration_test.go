package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationCurveTenValues(t *testing.T) {
	v := []float64{30, 10, 20, 40, 50, 60, 70, 80, 90, 100}
	c, ok := NewDurationCurve(v, DurationMarkers)
	require.True(t, ok)

	assert.Equal(t, []float64{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}, c.Values)
	assert.Equal(t, 0.0, c.Duration[0])
	assert.Equal(t, 100.0, c.Duration[9])
	assert.Equal(t, 55.0, c.Mean)

	byP := map[float64]Marker{}
	for _, m := range c.Markers {
		byP[m.Percentile] = m
	}
	assert.Equal(t, 5, byP[50].Index)
	assert.Equal(t, 50.0, byP[50].Value)
	assert.Equal(t, 0, byP[99].Index)
	assert.Equal(t, 100.0, byP[99].Value)
	assert.Equal(t, 9, byP[1].Index)
	assert.Equal(t, 10.0, byP[1].Value)
}

func TestDurationCurveMonotone(t *testing.T) {
	v := []float64{5, -3, 12, 7, math.NaN(), 0, 12, -30}
	c, ok := NewDurationCurve(v, DurationMarkers)
	require.True(t, ok)
	require.Len(t, c.Values, 7)
	for i := 1; i < len(c.Values); i++ {
		assert.LessOrEqual(t, c.Values[i], c.Values[i-1])
		assert.Greater(t, c.Duration[i], c.Duration[i-1])
	}
	assert.True(t, c.HasNegative())
}

func TestDurationCurveEmpty(t *testing.T) {
	_, ok := NewDurationCurve(nil, DurationMarkers)
	assert.False(t, ok)
	_, ok = NewDurationCurve([]float64{math.NaN()}, DurationMarkers)
	assert.False(t, ok)
}

func TestDurationCurveSingleValue(t *testing.T) {
	c, ok := NewDurationCurve([]float64{42}, DurationMarkers)
	require.True(t, ok)
	assert.Equal(t, []float64{0}, c.Duration)
	for _, m := range c.Markers {
		assert.Equal(t, 0, m.Index)
	}
}

func TestDurationIndexClamp(t *testing.T) {
	assert.Equal(t, 9, DurationIndex(0, 10))
	assert.Equal(t, 0, DurationIndex(100, 10))
	assert.Equal(t, 0, DurationIndex(150, 10))
}
