package analysis

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInsufficientSamples is returned when too few replicate values exist for
// a distribution to mean anything.
var ErrInsufficientSamples = errors.New("insufficient samples")

// MinDistributionSamples is the fewest values AnalyzeDistribution accepts.
const MinDistributionSamples = 3

// DistributionOptions controls the density evaluation grid.
type DistributionOptions struct {
	GridPoints int     // evenly spaced evaluation points
	Padding    float64 // fraction of the value range added on both sides
}

var DefaultDistributionOptions = DistributionOptions{GridPoints: 300, Padding: 0.2}

// DistributionSummary describes one month's replicate values.
type DistributionSummary struct {
	Values []float64 // sorted ascending, NaN removed

	N      int
	Mean   float64
	Median float64
	Std    float64 // population standard deviation
	P5     float64
	P95    float64
	Min    float64
	Max    float64
	CV     float64 // percent; 0 when Mean is 0

	// Grid is where the densities are evaluated. KDE and Normal are nil when
	// every value is identical, since neither density is defined then.
	Grid      []float64
	KDE       []float64
	Normal    []float64
	Bandwidth float64
}

// Degenerate reports whether the densities could not be computed.
func (d *DistributionSummary) Degenerate() bool { return d.KDE == nil }

// AnalyzeDistribution computes summary statistics, a Gaussian kernel density
// estimate (Scott's rule bandwidth) and a normal approximation.
func AnalyzeDistribution(values []float64, opts DistributionOptions) (*DistributionSummary, error) {
	v := finite(values)
	if len(v) < MinDistributionSamples {
		return nil, ErrInsufficientSamples
	}
	if opts.GridPoints < 2 {
		opts.GridPoints = DefaultDistributionOptions.GridPoints
	}
	sort.Float64s(v)

	n := len(v)
	mean, std := stat.PopMeanStdDev(v, nil)
	if v[0] == v[n-1] {
		mean, std = v[0], 0
	}
	d := &DistributionSummary{
		Values: v,
		N:      n,
		Mean:   mean,
		Median: quantileSorted(v, 0.5),
		Std:    std,
		P5:     quantileSorted(v, 0.05),
		P95:    quantileSorted(v, 0.95),
		Min:    v[0],
		Max:    v[n-1],
	}
	if mean != 0 {
		d.CV = std / mean * 100
	}

	span := d.Max - d.Min
	d.Grid = floats.Span(make([]float64, opts.GridPoints), d.Min-opts.Padding*span, d.Max+opts.Padding*span)

	if std == 0 {
		return d, nil
	}

	// Scott's factor n^(-1/5) scales the sample (n-1) standard deviation.
	d.Bandwidth = stat.StdDev(v, nil) * math.Pow(float64(n), -0.2)
	d.KDE = gaussianKDE(v, d.Bandwidth, d.Grid)

	normal := distuv.Normal{Mu: mean, Sigma: std}
	d.Normal = make([]float64, len(d.Grid))
	for i, x := range d.Grid {
		d.Normal[i] = normal.Prob(x)
	}
	return d, nil
}

func gaussianKDE(samples []float64, bandwidth float64, grid []float64) []float64 {
	out := make([]float64, len(grid))
	kernel := distuv.Normal{Mu: 0, Sigma: bandwidth}
	inv := 1 / float64(len(samples))
	for i, x := range grid {
		sum := 0.0
		for _, s := range samples {
			sum += kernel.Prob(x - s)
		}
		out[i] = sum * inv
	}
	return out
}
