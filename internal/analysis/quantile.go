package analysis

import (
	"math"
	"sort"
)

// Quantile returns the q-th quantile (q in [0, 1]) of values, ignoring NaN.
// It interpolates linearly between order statistics (the "type 7" definition
// used by numpy and pandas). An input without finite values yields NaN.
func Quantile(values []float64, q float64) float64 {
	v := finite(values)
	if len(v) == 0 {
		return math.NaN()
	}
	sort.Float64s(v)
	return quantileSorted(v, q)
}

// Percentile is Quantile with p in [0, 100].
func Percentile(values []float64, p float64) float64 {
	return Quantile(values, p/100)
}

func quantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Mean is the arithmetic mean of the finite values, NaN when there are none.
func Mean(values []float64) float64 {
	sum := 0.0
	n := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// finite returns a copy of values without NaN or ±Inf.
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
