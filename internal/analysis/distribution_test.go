package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDistributionInsufficient(t *testing.T) {
	_, err := AnalyzeDistribution([]float64{1, 2}, DefaultDistributionOptions)
	assert.ErrorIs(t, err, ErrInsufficientSamples)

	_, err = AnalyzeDistribution([]float64{1, 2, math.NaN()}, DefaultDistributionOptions)
	assert.ErrorIs(t, err, ErrInsufficientSamples)
}

func TestAnalyzeDistributionConstant(t *testing.T) {
	d, err := AnalyzeDistribution([]float64{100, 100, 100}, DefaultDistributionOptions)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Std)
	assert.Equal(t, 0.0, d.CV)
	assert.True(t, d.Degenerate())
	assert.Len(t, d.Grid, 300)
}

func TestAnalyzeDistributionZeroMean(t *testing.T) {
	d, err := AnalyzeDistribution([]float64{-1, 0, 1}, DefaultDistributionOptions)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Mean)
	assert.Equal(t, 0.0, d.CV)
	assert.False(t, math.IsNaN(d.CV))
}

func TestAnalyzeDistributionSummary(t *testing.T) {
	v := []float64{10, 20, 30, 40, 50}
	d, err := AnalyzeDistribution(v, DefaultDistributionOptions)
	require.NoError(t, err)

	assert.Equal(t, 5, d.N)
	assert.Equal(t, 30.0, d.Mean)
	assert.Equal(t, 30.0, d.Median)
	assert.InDelta(t, math.Sqrt(200), d.Std, 1e-9)
	assert.InDelta(t, 12.0, d.P5, 1e-9)
	assert.InDelta(t, 48.0, d.P95, 1e-9)
	assert.InDelta(t, math.Sqrt(200)/30*100, d.CV, 1e-9)

	require.Len(t, d.Grid, 300)
	assert.InDelta(t, 2.0, d.Grid[0], 1e-9)
	assert.InDelta(t, 58.0, d.Grid[299], 1e-9)

	// Scott: sample std * n^(-1/5).
	assert.InDelta(t, math.Sqrt(250)*math.Pow(5, -0.2), d.Bandwidth, 1e-9)

	require.Len(t, d.KDE, 300)
	require.Len(t, d.Normal, 300)
	step := d.Grid[1] - d.Grid[0]
	area := 0.0
	for _, k := range d.KDE {
		assert.GreaterOrEqual(t, k, 0.0)
		area += k * step
	}
	// Kernel mass beyond the padded grid is lost.
	assert.InDelta(t, 0.877, area, 0.02)

	// The normal curve peaks at the grid point closest to the mean.
	peak := 0
	for i := range d.Normal {
		if d.Normal[i] > d.Normal[peak] {
			peak = i
		}
	}
	assert.InDelta(t, 30.0, d.Grid[peak], step)
}
