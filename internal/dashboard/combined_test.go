package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

func TestCombinedPanels(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, testSite+"/Generation/sr_generation_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	writeFile(t, root, testSite+"/Revenue/sr_revenue_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	// Counts towards eligibility but has no timeseries to draw.
	writeFile(t, root, testSite+"/Price/sr_price_monthly_stats.csv", "mean\n1\n")
	svc, _ := newTestService(t, root)

	c := svc.Combined(testSite)
	require.Equal(t, StatusOK, c.Status, c.Message)
	assert.Equal(t, "Combined Monthly Forecasts - Sunny Ridge", c.Title)
	require.Len(t, c.Panels, 3)

	gen, price, rev := c.Panels[0], c.Panels[1], c.Panels[2]
	assert.Equal(t, "Monthly Generation (MWh)", gen.Title)
	assert.Equal(t, []string{"P5-P95", "Mean"}, seriesNames(gen))
	assert.Equal(t, StatusNoData, price.Status)
	assert.Equal(t, "Monthly Revenue ($)", rev.Title)
	assert.Len(t, c.XAxis.Ticks, 12)
}

func TestCombinedNeedsTwoMetrics(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, testSite+"/Generation/sr_generation_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	writeFile(t, root, testSite+"/Revenue/sr_revenue_daily_timeseries.csv", "2020\n1\n")
	svc, _ := newTestService(t, root)

	c := svc.Combined(testSite)
	assert.Equal(t, StatusNotMeaningful, c.Status)
	assert.Empty(t, c.Panels)
}

func TestCombinedPanelFailureIsIsolated(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, testSite+"/Generation/sr_generation_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	writeFile(t, root, testSite+"/Revenue/sr_revenue_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	svc := NewService(data.NewResolver(root), panicSource{trigger: "revenue"}, DefaultOptions(), nil)

	c := svc.Combined(testSite)
	require.Equal(t, StatusOK, c.Status)
	require.Len(t, c.Panels, 2)
	assert.Equal(t, StatusOK, c.Panels[0].Status)
	assert.Equal(t, model.MetricRevenue, c.Panels[1].Metric)
	assert.Equal(t, StatusError, c.Panels[1].Status)
}
