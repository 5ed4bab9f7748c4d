package data

import (
	"os"
	"path/filepath"
	"testing"

	"portfolio-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStatsOnly(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, "SiteA/Price/SiteA_price_monthly_stats.csv", "month,mean\n1,10\n")
	r := NewResolver(root)

	_, err := r.Resolve("SiteA", model.MetricPrice, model.Monthly, model.KindTimeseries)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := r.Resolve("SiteA", model.MetricPrice, model.Monthly, model.KindStats)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveMissingFolderIsNotFound(t *testing.T) {
	r := NewResolver(t.TempDir())
	_, err := r.Resolve("Nowhere", model.MetricGeneration, model.Daily, model.KindStats)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveRuleOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "S/Generation/S_daily_timeseries.csv", "x\n")
	specific := writeFile(t, root, "S/Generation/S_generation_daily_timeseries.csv", "x\n")
	writeFile(t, root, "S/Generation/Sdailytimeseries.csv", "x\n")
	r := NewResolver(root)

	got, err := r.Resolve("S", model.MetricGeneration, model.Daily, model.KindTimeseries)
	require.NoError(t, err)
	assert.Equal(t, specific, got)
}

func TestResolveLeastSpecificAndCompressed(t *testing.T) {
	root := t.TempDir()
	loose := writeFile(t, root, "S/Revenue/revmonthlystats.csv", "x\n")
	compressed := writeFile(t, root, "S/Price/S_price_hourly_timeseries_compressed.csv", "x\n")
	r := NewResolver(root)

	got, err := r.Resolve("S", model.MetricRevenue, model.Monthly, model.KindStats)
	require.NoError(t, err)
	assert.Equal(t, loose, got)

	got, err = r.Resolve("S", model.MetricPrice, model.Hourly, model.KindTimeseries)
	require.NoError(t, err)
	assert.Equal(t, compressed, got)
}

func TestResolveTiesPickFirstSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "S/Price/b_price_daily_stats.csv", "x\n")
	first := writeFile(t, root, "S/Price/a_price_daily_stats.csv", "x\n")
	r := NewResolver(root)

	got, err := r.Resolve("S", model.MetricPrice, model.Daily, model.KindStats)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestResolvePreferred(t *testing.T) {
	root := t.TempDir()
	stats := writeFile(t, root, "S/Generation/S_generation_monthly_stats.csv", "x\n")
	r := NewResolver(root)

	m, err := r.ResolvePreferred("S", model.MetricGeneration, model.Monthly)
	require.NoError(t, err)
	assert.Equal(t, Match{Path: stats, Kind: model.KindStats}, m)

	ts := writeFile(t, root, "S/Generation/S_generation_monthly_timeseries.csv", "x\n")
	m, err = r.ResolvePreferred("S", model.MetricGeneration, model.Monthly)
	require.NoError(t, err)
	assert.Equal(t, Match{Path: ts, Kind: model.KindTimeseries}, m)

	_, err = r.ResolvePreferred("S", model.MetricGeneration, model.Hourly)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveDayAhead(t *testing.T) {
	root := t.TempDir()
	r := NewResolver(root)

	_, err := r.ResolveDayAhead("S", model.Monthly, model.KindTimeseries)
	assert.ErrorIs(t, err, ErrNotFound)

	stats := writeFile(t, root, "S/Price_da/S_price_da_hourly_stats.csv", "x\n")
	m, err := r.ResolveDayAhead("S", model.Hourly, model.KindTimeseries, model.KindStats)
	require.NoError(t, err)
	assert.Equal(t, Match{Path: stats, Kind: model.KindStats}, m)
}

func TestResolveIgnoresDirectoriesAndMetaInDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "S[1]", "Price", "x_price_daily_stats.csv"), 0o755))
	want := writeFile(t, root, "S[1]/Price/y_price_daily_stats.csv", "x\n")
	r := NewResolver(root)

	got, err := r.Resolve("S[1]", model.MetricPrice, model.Daily, model.KindStats)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
