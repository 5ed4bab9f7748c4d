package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	v := []float64{300, 100, 200}
	assert.InDelta(t, 110.0, Quantile(v, 0.05), 1e-9)
	assert.InDelta(t, 290.0, Quantile(v, 0.95), 1e-9)
	assert.Equal(t, 200.0, Quantile(v, 0.5))
	assert.Equal(t, 100.0, Quantile(v, 0))
	assert.Equal(t, 300.0, Quantile(v, 1))
	assert.InDelta(t, 150.0, Percentile(v, 25), 1e-9)
}

func TestQuantileSkipsNaN(t *testing.T) {
	v := []float64{math.NaN(), 1, 3, math.NaN()}
	assert.Equal(t, 2.0, Quantile(v, 0.5))
	assert.True(t, math.IsNaN(Quantile([]float64{math.NaN()}, 0.5)))
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, math.NaN(), 3}))
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestQuantileAndMeanSkipInfinity(t *testing.T) {
	v := []float64{math.Inf(1), 1, 3, math.Inf(-1)}
	assert.Equal(t, 2.0, Quantile(v, 0.5))
	assert.Equal(t, 2.0, Mean(v))
}
