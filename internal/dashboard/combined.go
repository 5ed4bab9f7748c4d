package dashboard

import (
	"fmt"

	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

// CombinedMetrics are the panels of the combined view, top to bottom.
var CombinedMetrics = []model.Metric{model.MetricGeneration, model.MetricPrice, model.MetricRevenue}

var panelTitles = map[model.Metric]string{
	model.MetricGeneration: "Monthly Generation (MWh)",
	model.MetricPrice:      "Monthly Price ($/MWh)",
	model.MetricRevenue:    "Monthly Revenue ($)",
}

// minCombinedPanels is the fewest metrics worth stacking.
const minCombinedPanels = 2

// Combined prepares stacked monthly panels sharing one month axis. Each panel
// is prepared on its own; one failing panel does not fail the others.
func (s *Service) Combined(site string) *Chart {
	return s.prepare(newChart(KindCombined, site, "", 0), s.buildCombined)
}

func (s *Service) buildCombined(c *Chart) error {
	var metrics []model.Metric
	for _, m := range CombinedMetrics {
		if s.catalog.HasMonthlyFiles(c.Site, m) {
			metrics = append(metrics, m)
		}
	}
	if len(metrics) < minCombinedPanels {
		return notMeaningful("Combined view needs monthly data for at least %d metrics", minCombinedPanels)
	}

	c.Title = fmt.Sprintf("Combined Monthly Forecasts - %s", model.CleanSiteName(c.Site))
	c.XAxis = XAxis{Axis: model.Axis{Label: "Month", Scale: 1}}
	for _, m := range metrics {
		p := s.prepare(newChart(KindPanel, c.Site, m, 0), s.buildPanel)
		c.Panels = append(c.Panels, p)
		if p.OK() && c.XAxis.Ticks == nil {
			c.XAxis.Ticks = p.XAxis.Ticks
		}
	}
	return nil
}

func (s *Service) buildPanel(c *Chart) error {
	path, err := s.resolver.Resolve(c.Site, c.Metric, model.Monthly, model.KindTimeseries)
	if err != nil {
		return err
	}
	match := data.Match{Path: path, Kind: model.KindTimeseries}
	t, agg, err := s.series(match, s.opts.Band[:], nil)
	if err != nil {
		return err
	}

	c.Source = &match
	c.Title = panelTitles[c.Metric]
	c.XAxis = XAxis{Axis: model.Axis{Label: "Month", Scale: 1}, Ticks: monthTicks(t, agg.Rows)}
	c.YAxis = model.ValueAxis(c.Metric, model.Monthly)

	x := positions(agg.Len())
	color := s.opts.Palette.Color(c.Metric)
	if c.Metric == model.MetricPrice {
		rt := lineSeries("Real-Time Price", x, agg.Mean, color)
		rt.Marker = "o"
		c.Series = append(c.Series, rt)
		if _, da, ok := s.dayAhead(c.Site, model.Monthly, nil, model.KindTimeseries); ok && s.overlayFits(c, da.Len(), agg.Len()) {
			c.Series = append(c.Series, dayAheadSeries("Day-Ahead Price", x, da.Mean, s.opts.Palette, "s"))
		}
		return nil
	}
	addBand(c, agg, s.opts.Band, fmt.Sprintf("P%g-P%g", s.opts.Band[0], s.opts.Band[1]), x, color)
	mean := lineSeries("Mean", x, agg.Mean, color)
	mean.Marker = "o"
	c.Series = append(c.Series, mean)
	return nil
}
