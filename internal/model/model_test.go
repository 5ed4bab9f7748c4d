package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanSiteName(t *testing.T) {
	cases := map[string]string{
		"Sunny_Ridge_Solar_LLC": "Sunny Ridge Solar",
		"WIND_FARM_Power":       "Wind Farm",
		"alpha2beta":            "Alpha2Beta",
		"Plain":                 "Plain",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanSiteName(in), in)
	}
}

func TestMetricFolders(t *testing.T) {
	assert.Equal(t, "Generation", MetricGeneration.Folder())
	assert.Equal(t, "Price", MetricPrice.Folder())
	assert.Equal(t, "Price_da", MetricPriceDayAhead.Folder())
	assert.Equal(t, "Revenue", MetricRevenue.Folder())
}

func TestParseMetricAndResolution(t *testing.T) {
	m, err := ParseMetric(" Price ")
	require.NoError(t, err)
	assert.Equal(t, MetricPrice, m)

	_, err = ParseMetric("load")
	assert.Error(t, err)

	r, err := ParseResolution("DAILY")
	require.NoError(t, err)
	assert.Equal(t, Daily, r)
}

func TestValueAxis(t *testing.T) {
	assert.Equal(t, "Generation (MW)", ValueAxis(MetricGeneration, Hourly).Label)
	assert.Equal(t, "Generation (MWh)", ValueAxis(MetricGeneration, Monthly).Label)

	rev := ValueAxis(MetricRevenue, Monthly)
	assert.Equal(t, "Revenue ($1000s)", rev.Label)
	assert.Equal(t, "1,235", rev.FormatTick(1234567))

	price := ValueAxis(MetricPrice, Daily)
	assert.Equal(t, "$1,250", price.FormatTick(1249.6))
	assert.Equal(t, "$-12", price.FormatTick(-12.2))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "Dec", MonthAbbrev(12))
	assert.Equal(t, "", MonthName(13))
}

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, "#4472C4", p.Color(MetricPrice))
	assert.Equal(t, "", p.Color(Metric("other")))
}

func TestMetricDisplayName(t *testing.T) {
	assert.Equal(t, "Real-Time Price", MetricPrice.DisplayName())
	assert.Equal(t, "Day-Ahead Price", MetricPriceDayAhead.DisplayName())
	assert.Equal(t, "Generation", MetricGeneration.DisplayName())
}
