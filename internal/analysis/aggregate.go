package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"portfolio-dashboard/internal/data"
)

// ErrNoReplicateData is returned when a table has no replicate-year columns.
// Callers should use a precomputed stats table instead.
var ErrNoReplicateData = errors.New("no replicate year columns")

// Rolling is a centered moving average. Buckets with fewer than MinPeriods
// non-missing values in their window are undefined.
type Rolling struct {
	Window     int
	MinPeriods int
}

// DailyRolling is the 7-day smoothing applied to daily series.
var DailyRolling = Rolling{Window: 7, MinPeriods: 4}

// AggregatedSeries holds per-bucket mean and percentile bands.
// Rows maps each output bucket back to its row in the source table.
type AggregatedSeries struct {
	Rows        []int
	Mean        []float64
	Percentiles map[float64][]float64
}

func (s *AggregatedSeries) Len() int { return len(s.Mean) }

// Band returns the series for percentile p.
func (s *AggregatedSeries) Band(p float64) ([]float64, bool) {
	v, ok := s.Percentiles[p]
	return v, ok
}

// Aggregate reduces replicate-year columns to a mean and the requested
// percentiles per row. With rolling set, every series is smoothed and rows
// whose smoothed mean is undefined are dropped.
func Aggregate(t *data.Table, percentiles []float64, rolling *Rolling) (*AggregatedSeries, error) {
	years, cols := t.Replicates()
	if len(years) == 0 {
		return nil, ErrNoReplicateData
	}

	n := t.Len()
	s := &AggregatedSeries{
		Rows:        make([]int, n),
		Mean:        make([]float64, n),
		Percentiles: make(map[float64][]float64, len(percentiles)),
	}
	for _, p := range percentiles {
		s.Percentiles[p] = make([]float64, n)
	}

	row := make([]float64, 0, len(cols))
	for i := 0; i < n; i++ {
		row = row[:0]
		for _, c := range cols {
			if !math.IsNaN(c[i]) {
				row = append(row, c[i])
			}
		}
		s.Rows[i] = i
		if len(row) == 0 {
			s.Mean[i] = math.NaN()
			for _, p := range percentiles {
				s.Percentiles[p][i] = math.NaN()
			}
			continue
		}
		s.Mean[i] = Mean(row)
		sort.Float64s(row)
		for _, p := range percentiles {
			s.Percentiles[p][i] = quantileSorted(row, p/100)
		}
	}

	if rolling != nil {
		return s.Smooth(*rolling), nil
	}
	return s, nil
}

// FromStats reads a precomputed stats table. The mean column is required;
// percentile columns are included only when present.
func FromStats(t *data.Table, percentiles []float64) (*AggregatedSeries, error) {
	mean, err := t.Floats("mean")
	if err != nil {
		return nil, fmt.Errorf("stats table: %w", err)
	}
	s := &AggregatedSeries{
		Rows:        make([]int, len(mean)),
		Mean:        mean,
		Percentiles: map[float64][]float64{},
	}
	for i := range s.Rows {
		s.Rows[i] = i
	}
	for _, p := range percentiles {
		if v, err := t.Floats(data.PercentileColumn(p)); err == nil {
			s.Percentiles[p] = v
		}
	}
	return s, nil
}

// Smooth applies a centered rolling mean to every series and keeps only the
// buckets where the smoothed mean is defined.
func (s *AggregatedSeries) Smooth(r Rolling) *AggregatedSeries {
	mean := RollingMean(s.Mean, r)
	bands := make(map[float64][]float64, len(s.Percentiles))
	for p, v := range s.Percentiles {
		bands[p] = RollingMean(v, r)
	}

	out := &AggregatedSeries{Percentiles: make(map[float64][]float64, len(bands))}
	for i, m := range mean {
		if math.IsNaN(m) {
			continue
		}
		out.Rows = append(out.Rows, s.Rows[i])
		out.Mean = append(out.Mean, m)
		for p, v := range bands {
			out.Percentiles[p] = append(out.Percentiles[p], v[i])
		}
	}
	return out
}

// RollingMean returns the centered moving average of values. The window for
// index i covers [i-w/2, i-w/2+w-1]. Entries with fewer than MinPeriods
// non-NaN values in range are NaN.
func RollingMean(values []float64, r Rolling) []float64 {
	out := make([]float64, len(values))
	w := r.Window
	if w < 1 {
		w = 1
	}
	minPeriods := r.MinPeriods
	if minPeriods < 1 {
		minPeriods = 1
	}
	for i := range values {
		start := i - w/2
		end := start + w - 1
		if start < 0 {
			start = 0
		}
		if end > len(values)-1 {
			end = len(values) - 1
		}
		sum := 0.0
		count := 0
		for j := start; j <= end; j++ {
			if math.IsNaN(values[j]) {
				continue
			}
			sum += values[j]
			count++
		}
		if count < minPeriods {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(count)
	}
	return out
}

// HourlyProfile is an aggregated series folded into hour-of-day buckets.
type HourlyProfile struct {
	Hours       []int
	Mean        []float64
	Percentiles map[float64][]float64
}

// GroupByHour averages every series across rows sharing an hour of day.
// hours holds one entry per source row (NaN when unknown); the output has one
// bucket per distinct hour, ascending.
func GroupByHour(s *AggregatedSeries, hours []float64) *HourlyProfile {
	type acc struct {
		mean  []float64
		bands map[float64][]float64
	}
	buckets := map[int]*acc{}
	for i, row := range s.Rows {
		if row >= len(hours) || math.IsNaN(hours[row]) {
			continue
		}
		h := int(hours[row])
		a, ok := buckets[h]
		if !ok {
			a = &acc{bands: map[float64][]float64{}}
			buckets[h] = a
		}
		a.mean = append(a.mean, s.Mean[i])
		for p, v := range s.Percentiles {
			a.bands[p] = append(a.bands[p], v[i])
		}
	}

	keys := make([]int, 0, len(buckets))
	for h := range buckets {
		keys = append(keys, h)
	}
	sort.Ints(keys)

	out := &HourlyProfile{Percentiles: make(map[float64][]float64, len(s.Percentiles))}
	for _, h := range keys {
		a := buckets[h]
		out.Hours = append(out.Hours, h)
		out.Mean = append(out.Mean, Mean(a.mean))
		for p := range s.Percentiles {
			out.Percentiles[p] = append(out.Percentiles[p], Mean(a.bands[p]))
		}
	}
	return out
}
