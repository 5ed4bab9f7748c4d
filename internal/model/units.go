package model

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Axis describes how a value axis is labeled and how its ticks are printed.
// Scale divides raw values before formatting (1000 for "$1000s").
type Axis struct {
	Label  string  `json:"label"`
	Prefix string  `json:"prefix,omitempty"`
	Scale  float64 `json:"scale"`
}

// ValueAxis returns the y-axis for a metric at a resolution.
// Units:
// - generation: MWh for daily/monthly buckets, MW for hourly
// - price, price_da: $/MWh
// - revenue: $1000s monthly, $ otherwise
func ValueAxis(m Metric, res Resolution) Axis {
	switch m {
	case MetricGeneration:
		if res == Daily || res == Monthly {
			return Axis{Label: "Generation (MWh)", Scale: 1}
		}
		return Axis{Label: "Generation (MW)", Scale: 1}
	case MetricPrice, MetricPriceDayAhead:
		return Axis{Label: "Price ($/MWh)", Prefix: "$", Scale: 1}
	case MetricRevenue:
		if res == Monthly {
			return Axis{Label: "Revenue ($1000s)", Scale: 1000}
		}
		return Axis{Label: "Revenue ($)", Scale: 1}
	}
	return Axis{Label: string(m), Scale: 1}
}

// FormatTick renders v with thousands separators and no decimals.
func (a Axis) FormatTick(v float64) string {
	scale := a.Scale
	if scale == 0 {
		scale = 1
	}
	return a.Prefix + humanize.Commaf(math.Round(v/scale))
}
