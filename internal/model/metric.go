package model

import (
	"fmt"
	"strings"
)

// Metric is one of the quantities stored per site.
// Values are stable; they appear in filenames and API paths.
type Metric string

const (
	MetricGeneration    Metric = "generation"
	MetricPrice         Metric = "price"
	MetricPriceDayAhead Metric = "price_da"
	MetricRevenue       Metric = "revenue"
)

// Metrics lists every metric in display order.
var Metrics = []Metric{MetricGeneration, MetricPrice, MetricPriceDayAhead, MetricRevenue}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MetricGeneration, MetricPrice, MetricPriceDayAhead, MetricRevenue:
		return m, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// Folder is the metric's directory name under a site folder
// (the metric capitalized: Generation, Price, Price_da, Revenue).
func (m Metric) Folder() string {
	return capitalize(string(m))
}

// Title is used in chart titles, e.g. "Monthly Price Forecast".
func (m Metric) Title() string {
	return capitalize(string(m))
}

// DisplayName is the human label shown in site information lists.
func (m Metric) DisplayName() string {
	switch m {
	case MetricGeneration:
		return "Generation"
	case MetricPrice:
		return "Real-Time Price"
	case MetricPriceDayAhead:
		return "Day-Ahead Price"
	case MetricRevenue:
		return "Revenue"
	}
	return string(m)
}

// Resolution is the temporal bucket size of a dataset.
type Resolution string

const (
	Hourly  Resolution = "hourly"
	Daily   Resolution = "daily"
	Monthly Resolution = "monthly"
)

var Resolutions = []Resolution{Hourly, Daily, Monthly}

func ParseResolution(s string) (Resolution, error) {
	r := Resolution(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case Hourly, Daily, Monthly:
		return r, nil
	}
	return "", fmt.Errorf("unknown resolution %q", s)
}

// FileKind distinguishes raw replicate timeseries from precomputed stats.
type FileKind string

const (
	KindStats      FileKind = "stats"
	KindTimeseries FileKind = "timeseries"
)

// capitalize mirrors str.capitalize: first rune upper, rest lower.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
