package dashboard

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"portfolio-dashboard/internal/analysis"
	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

// DistributionMetrics are the metrics with a per-month distribution view.
var DistributionMetrics = []model.Metric{model.MetricGeneration, model.MetricRevenue}

func distributionSupported(m model.Metric) bool {
	for _, d := range DistributionMetrics {
		if d == m {
			return true
		}
	}
	return false
}

// Distribution prepares the spread of one month's value across simulation
// years: a kernel density, a fitted normal and the raw replicate values.
func (s *Service) Distribution(site string, m model.Metric, month int) *Chart {
	return s.prepare(newChart(KindDistribution, site, m, month), s.buildDistribution)
}

func (s *Service) buildDistribution(c *Chart) error {
	if !distributionSupported(c.Metric) {
		return notMeaningful("Distribution analysis is available for generation and revenue only")
	}
	if !model.ValidMonth(c.Month) {
		return fmt.Errorf("month %d: %w", c.Month, data.ErrNotFound)
	}
	path, err := s.resolver.Resolve(c.Site, c.Metric, model.Monthly, model.KindTimeseries)
	if err != nil {
		return err
	}
	t, err := s.load(path)
	if err != nil {
		return err
	}
	values, err := analysis.MonthReplicates(t, c.Month)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("month %d absent from %s: %w", c.Month, path, data.ErrNotFound)
	}
	d, err := analysis.AnalyzeDistribution(values, s.opts.Distribution)
	if err != nil {
		return err
	}

	title := c.Metric.Title()
	axis := model.Axis{Label: "Monthly Generation (MWh)", Scale: 1}
	if c.Metric == model.MetricRevenue {
		axis = model.Axis{Label: "Monthly Revenue ($)", Prefix: "$", Scale: 1}
	}
	c.Source = &data.Match{Path: path, Kind: model.KindTimeseries}
	c.Title = fmt.Sprintf("Monthly %s Distribution - %s - %s", title, model.MonthName(c.Month), model.CleanSiteName(c.Site))
	c.Subtitle = fmt.Sprintf("(Distribution across %d simulation years)", d.N)
	c.XAxis = XAxis{Axis: axis}
	c.YAxis = model.Axis{Label: "Probability Density", Scale: 1}
	c.YRange = &Range{Min: 0}

	color := s.opts.Palette.Color(c.Metric)
	if !d.Degenerate() {
		c.Series = append(c.Series,
			Series{Name: "KDE Distribution", Role: RoleArea, Color: color, X: d.Grid, Y: d.KDE},
			Series{
				Name: fmt.Sprintf("Normal fit (μ=%s, σ=%s)", formatValue(d.Mean), formatValue(d.Std)),
				Role: RoleLine, Color: "black", Dashed: true, X: d.Grid, Y: d.Normal,
			},
		)
	} else {
		c.Notes = append(c.Notes, "All simulation years share the same value")
	}
	c.Series = append(c.Series, Series{
		Name:   fmt.Sprintf("Actual values (n=%d)", d.N),
		Role:   RoleScatter,
		Color:  color,
		Marker: "|",
		X:      d.Values,
		Y:      make([]float64, len(d.Values)),
	})

	c.Lines = []ReferenceLine{
		{Vertical: true, Value: d.Mean, Label: "Mean: " + axis.Prefix + formatValue(d.Mean), Color: "red", Style: "dashed"},
		{Vertical: true, Value: d.Median, Label: "Median: " + axis.Prefix + formatValue(d.Median), Color: "blue", Style: "dashed"},
		{Vertical: true, Value: d.P5, Label: "P5: " + axis.Prefix + formatValue(d.P5), Color: "green", Style: "dotted"},
		{Vertical: true, Value: d.P95, Label: "P95: " + axis.Prefix + formatValue(d.P95), Color: "green", Style: "dotted"},
	}
	c.Stats = []Stat{
		{Label: "Years", Value: fmt.Sprintf("%d", d.N)},
		{Label: "Std Dev", Value: axis.Prefix + formatValue(d.Std)},
		{Label: "CV", Value: fmt.Sprintf("%.1f%%", d.CV)},
		{Label: "Min", Value: axis.Prefix + formatValue(d.Min)},
		{Label: "Max", Value: axis.Prefix + formatValue(d.Max)},
	}
	return nil
}

func formatValue(v float64) string {
	return humanize.Commaf(math.Round(v))
}
