package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

func TestNewSelectors(t *testing.T) {
	sel := NewSelectors()
	require.Len(t, sel.Months, 12)
	assert.Equal(t, MonthOption{Value: 1, Label: "January"}, sel.Months[0])
	assert.Equal(t, []Option{{Value: "generation", Label: "Generation"}, {Value: "revenue", Label: "Revenue"}}, sel.DistributionMetrics)
	assert.Contains(t, sel.Notes, NoteHourlyRevenue)
	assert.Contains(t, sel.Notes, NoteDayAhead)
}

func TestOverview(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, testSite+"/Generation/sr_generation_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	writeFile(t, root, testSite+"/Revenue/sr_revenue_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	svc, _ := newTestService(t, root)

	ov, err := svc.Overview(testSite)
	require.NoError(t, err)
	assert.Equal(t, "Sunny Ridge", ov.Site.DisplayName)
	require.Len(t, ov.Monthly, 2)
	assert.Equal(t, StatusOK, ov.Monthly[0].Status)
	assert.Equal(t, StatusOK, ov.Monthly[1].Status)
	require.Len(t, ov.Daily, 2)
	assert.Equal(t, StatusNoData, ov.Daily[0].Status)
	require.Len(t, ov.Hourly, 1)
	assert.Equal(t, model.MetricGeneration, ov.Hourly[0].Metric)
	assert.Equal(t, StatusOK, ov.Combined.Status)
	assert.Equal(t, []string{NoteHourlyRevenue}, ov.Notes)

	_, err = svc.Overview("Nowhere")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestSiteInfo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, testSite+"/Generation/sr_generation_monthly_timeseries.csv", monthlyTimeseries(2020, 2021))
	writeFile(t, root, testSite+"/Price_da/sr_monthly_stats.csv", "mean\n1\n")
	svc, _ := newTestService(t, root)

	info, err := svc.SiteInfo(testSite)
	require.NoError(t, err)
	assert.True(t, info.HasDayAhead)
	assert.False(t, info.CombinedAvailable)
	assert.Equal(t, []model.Metric{model.MetricGeneration}, info.DistributionMetrics)
	assert.Len(t, info.Datasets, 2)
}
