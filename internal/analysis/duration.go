package analysis

import (
	"math"
	"sort"
)

// DurationMarkers are the duration percentiles marked on a price duration curve.
var DurationMarkers = []float64{1, 5, 25, 50, 75, 95, 99}

// Marker is one labelled point on a duration curve.
type Marker struct {
	Percentile float64
	Index      int
	Duration   float64
	Value      float64
}

// DurationCurve is a set of values sorted descending against the share of
// time each value is met or exceeded.
type DurationCurve struct {
	Duration []float64 // percent, evenly spaced over [0, 100]
	Values   []float64 // descending
	Markers  []Marker
	Mean     float64
	Min      float64
	Max      float64
}

// NewDurationCurve pools values, drops NaN and builds the curve. ok is false
// when nothing is left.
//
// Marker indexes use the duration definition, not the value quantile used by
// Quantile: P99 is the value exceeded 99% of the time.
func NewDurationCurve(values []float64, markers []float64) (*DurationCurve, bool) {
	v := finite(values)
	n := len(v)
	if n == 0 {
		return nil, false
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(v)))

	c := &DurationCurve{
		Duration: make([]float64, n),
		Values:   v,
		Mean:     Mean(v),
		Max:      v[0],
		Min:      v[n-1],
	}
	if n == 1 {
		c.Duration[0] = 0
	} else {
		step := 100 / float64(n-1)
		for i := range c.Duration {
			c.Duration[i] = float64(i) * step
		}
		c.Duration[n-1] = 100
	}

	for _, p := range markers {
		idx := DurationIndex(p, n)
		c.Markers = append(c.Markers, Marker{
			Percentile: p,
			Index:      idx,
			Duration:   c.Duration[idx],
			Value:      v[idx],
		})
	}
	return c, true
}

// DurationIndex is floor((100-p)/100*n) clamped to [0, n-1].
func DurationIndex(p float64, n int) int {
	idx := int(math.Floor((100 - p) / 100 * float64(n)))
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// HasNegative reports whether any pooled value is below zero.
func (c *DurationCurve) HasNegative() bool { return c.Min < 0 }
