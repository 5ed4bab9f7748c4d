package dashboard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"portfolio-dashboard/internal/analysis"
	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

var markerColors = map[float64]string{
	1: "red", 5: "red", 25: "orange", 50: "blue", 75: "green", 95: "green", 99: "green",
}

// DurationCurve prepares the hourly price duration curve for one month,
// pooling every hour of that month across all simulation years.
func (s *Service) DurationCurve(site string, month int) *Chart {
	return s.prepare(newChart(KindDuration, site, model.MetricPrice, month), s.buildDuration)
}

func (s *Service) buildDuration(c *Chart) error {
	if !model.ValidMonth(c.Month) {
		return fmt.Errorf("month %d: %w", c.Month, data.ErrNotFound)
	}
	path, err := s.durationSource(c.Site)
	if err != nil {
		return err
	}
	t, err := s.load(path)
	if err != nil {
		return err
	}
	values, err := analysis.PoolMonth(t, c.Month)
	if err != nil {
		return err
	}
	curve, ok := analysis.NewDurationCurve(values, s.opts.DurationMarkers)
	if !ok {
		return fmt.Errorf("no prices for month %d: %w", c.Month, data.ErrNotFound)
	}

	c.Source = &data.Match{Path: path, Kind: model.KindTimeseries}
	c.Title = fmt.Sprintf("Price Duration Curve - %s - %s", model.MonthName(c.Month), model.CleanSiteName(c.Site))
	if curve.HasNegative() {
		c.Subtitle = "(includes negative prices)"
	}

	c.XAxis = XAxis{Axis: model.Axis{Label: "Duration (% of time)", Scale: 1}, Min: ptr(0), Max: ptr(100)}
	for d := 0; d <= 100; d += 20 {
		c.XAxis.Ticks = append(c.XAxis.Ticks, Tick{Position: float64(d), Label: strconv.Itoa(d)})
	}
	c.YAxis = model.Axis{Label: "Price ($ per MWh)", Prefix: "$", Scale: 1}
	lower := 0.0
	if curve.Min < 0 {
		lower = curve.Min * 1.1
	}
	c.YRange = &Range{Min: lower, Max: ptr(curve.Max * 1.1)}

	c.Series = []Series{lineSeries("Price", curve.Duration, curve.Values, "red")}
	for _, mk := range curve.Markers {
		color, ok := markerColors[mk.Percentile]
		if !ok {
			color = "gray"
		}
		c.Markers = append(c.Markers, Marker{
			Label: fmt.Sprintf("P%g", mk.Percentile),
			Text:  fmt.Sprintf("$%.1f", mk.Value),
			X:     mk.Duration,
			Y:     mk.Value,
			Color: color,
			Above: mk.Percentile <= 50,
		})
	}

	c.Lines = append(c.Lines, ReferenceLine{Value: curve.Mean, Label: fmt.Sprintf("Mean: $%.2f", curve.Mean), Color: "black", Style: "dashed"})
	if curve.HasNegative() {
		c.Lines = append(c.Lines, ReferenceLine{Value: 0, Color: "gray", Style: "solid"})
	}
	c.Stats = []Stat{
		{Label: "Hours", Value: humanize.Comma(int64(len(curve.Values)))},
		{Label: "Mean", Value: fmt.Sprintf("$%.2f", curve.Mean)},
		{Label: "Min", Value: fmt.Sprintf("$%.2f", curve.Min)},
		{Label: "Max", Value: fmt.Sprintf("$%.2f", curve.Max)},
	}
	return nil
}

// durationSource prefers the site's canonical compressed hourly price file
// and falls back to the resolver.
func (s *Service) durationSource(site string) (string, error) {
	name := site + "_price_hourly_timeseries_compressed.csv"
	p, err := s.resolver.ResolveFile(site, model.MetricPrice, name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, data.ErrNotFound) {
		return "", err
	}
	return s.resolver.Resolve(site, model.MetricPrice, model.Hourly, model.KindTimeseries)
}
