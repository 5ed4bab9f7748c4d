package dashboard

import (
	"fmt"
	"math"
	"strconv"

	"portfolio-dashboard/internal/analysis"
	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

const (
	KindMonthly      = "monthly"
	KindDaily        = "daily"
	KindHourly       = "hourly"
	KindDuration     = "duration"
	KindDistribution = "distribution"
	KindCombined     = "combined"
	KindPanel        = "combined_panel"
)

const (
	NoteDayAhead      = "Chart includes both real-time and day-ahead prices"
	NoteHourlyRevenue = "Revenue hourly profiles are not available as revenue is calculated from generation × price"
)

// dailyTickStep is the spacing of daily axis labels, in kept buckets.
const dailyTickStep = 30

// MonthlyForecast prepares the 12-bucket outlook for one metric. Price charts
// show the real-time mean with the day-ahead mean overlaid; other metrics
// show the mean inside the outer percentile band.
func (s *Service) MonthlyForecast(site string, m model.Metric) *Chart {
	return s.prepare(newChart(KindMonthly, site, m, 0), s.buildMonthly)
}

func (s *Service) buildMonthly(c *Chart) error {
	match, err := s.resolver.ResolvePreferred(c.Site, c.Metric, model.Monthly)
	if err != nil {
		return err
	}
	t, agg, err := s.series(match, s.opts.Band[:], nil)
	if err != nil {
		return err
	}

	c.Source = &match
	c.Title = fmt.Sprintf("Monthly %s Forecast - %s", c.Metric.Title(), model.CleanSiteName(c.Site))
	c.XAxis = XAxis{Axis: model.Axis{Label: "Month", Scale: 1}, Ticks: monthTicks(t, agg.Rows)}
	c.YAxis = model.ValueAxis(c.Metric, model.Monthly)

	x := positions(agg.Len())
	color := s.opts.Palette.Color(c.Metric)
	if c.Metric == model.MetricPrice {
		rt := lineSeries("Real-Time Price", x, agg.Mean, color)
		rt.Marker = "o"
		c.Series = append(c.Series, rt)
		// The overlay kind follows the primary file kind.
		if _, da, ok := s.dayAhead(c.Site, model.Monthly, nil, match.Kind); ok && s.overlayFits(c, da.Len(), agg.Len()) {
			c.Series = append(c.Series, dayAheadSeries("Day-Ahead Price", x, da.Mean, s.opts.Palette, "s"))
		}
		return nil
	}

	addBand(c, agg, s.opts.Band, bandLabel(s.opts.Band, "Confidence Band"), x, color)
	mean := lineSeries("Mean", x, agg.Mean, color)
	mean.Marker = "o"
	c.Series = append(c.Series, mean)
	return nil
}

// DailyForecast prepares the smoothed day-of-year outlook for one metric.
func (s *Service) DailyForecast(site string, m model.Metric) *Chart {
	return s.prepare(newChart(KindDaily, site, m, 0), s.buildDaily)
}

func (s *Service) buildDaily(c *Chart) error {
	match, err := s.resolver.ResolvePreferred(c.Site, c.Metric, model.Daily)
	if err != nil {
		return err
	}
	rolling := s.opts.Rolling
	t, agg, err := s.series(match, s.opts.DailyBand[:], &rolling)
	if err != nil {
		return err
	}

	c.Source = &match
	c.Title = fmt.Sprintf("Daily %s Forecast (7-day Rolling Average) - %s", c.Metric.Title(), model.CleanSiteName(c.Site))
	c.XAxis = XAxis{Axis: model.Axis{Label: "Date", Scale: 1}, Ticks: dayTicks(t, agg.Rows)}
	c.YAxis = model.ValueAxis(c.Metric, model.Daily)

	x := positions(agg.Len())
	color := s.opts.Palette.Color(c.Metric)
	if c.Metric == model.MetricPrice {
		c.Series = append(c.Series, lineSeries("Real-Time Price (7-day avg)", x, agg.Mean, color))
		// Daily day-ahead data is only overlaid from replicate files.
		if _, da, ok := s.dayAhead(c.Site, model.Daily, &rolling, model.KindTimeseries); ok && s.overlayFits(c, da.Len(), agg.Len()) {
			c.Series = append(c.Series, dayAheadSeries("Day-Ahead Price (7-day avg)", x, da.Mean, s.opts.Palette, ""))
		}
		return nil
	}

	addBand(c, agg, s.opts.DailyBand, bandLabel(s.opts.DailyBand, "Confidence Band (7-day avg)"), x, color)
	c.Series = append(c.Series, lineSeries("Mean (7-day avg)", x, agg.Mean, color))
	return nil
}

// HourlyProfile prepares the average hour-of-day shape for one metric.
// Revenue has no hourly profile.
func (s *Service) HourlyProfile(site string, m model.Metric) *Chart {
	return s.prepare(newChart(KindHourly, site, m, 0), s.buildHourly)
}

func (s *Service) buildHourly(c *Chart) error {
	if c.Metric == model.MetricRevenue {
		return notMeaningful(NoteHourlyRevenue)
	}
	match, err := s.resolver.ResolvePreferred(c.Site, c.Metric, model.Hourly)
	if err != nil {
		return err
	}
	prof, err := s.hourly(match, s.opts.Band[:])
	if err != nil {
		return err
	}

	c.Source = &match
	c.Title = fmt.Sprintf("Average Hourly %s Profile - %s", c.Metric.Title(), model.CleanSiteName(c.Site))
	c.XAxis = hourAxis()
	c.YAxis = model.ValueAxis(c.Metric, model.Hourly)

	x := hourPositions(prof.Hours)
	color := s.opts.Palette.Color(c.Metric)
	if c.Metric == model.MetricPrice {
		addProfileBand(c, prof, s.opts.Band, bandLabel(s.opts.Band, "RT Price"), x, color)
		c.Series = append(c.Series, lineSeries("Real-Time Price Mean", x, prof.Mean, color))
		s.overlayHourly(c, len(prof.Hours), x)
		return nil
	}

	addProfileBand(c, prof, s.opts.Band, bandLabel(s.opts.Band, "Confidence Band"), x, color)
	c.Series = append(c.Series, lineSeries("Mean", x, prof.Mean, color))
	return nil
}

// hourly folds a resolved hourly file into hour-of-day buckets. Stats files
// need an explicit hour column.
func (s *Service) hourly(match data.Match, percentiles []float64) (*analysis.HourlyProfile, error) {
	t, agg, err := s.series(match, percentiles, nil)
	if err != nil {
		return nil, err
	}
	src := t.Capabilities().Hour
	if match.Kind == model.KindStats && src.Kind != data.HourFromColumn {
		return nil, fmt.Errorf("%s has no hour column: %w", match.Path, data.ErrNotFound)
	}
	return analysis.GroupByHour(agg, t.Hours(src)), nil
}

func (s *Service) overlayHourly(c *Chart, want int, x []float64) {
	match, err := s.resolver.ResolveDayAhead(c.Site, model.Hourly, model.KindTimeseries, model.KindStats)
	if err != nil {
		s.recorder.ObserveOverlay(OverlayAbsent)
		return
	}
	da, err := s.hourly(match, nil)
	if err != nil {
		s.logger.Debug().Err(err).Str("site", c.Site).Str("path", match.Path).Msg("day-ahead overlay unreadable")
		s.recorder.ObserveOverlay(OverlayFailed)
		return
	}
	if s.overlayFits(c, len(da.Hours), want) {
		c.Series = append(c.Series, dayAheadSeries("Day-Ahead Price Mean", hourPositions(da.Hours), da.Mean, s.opts.Palette, ""))
	}
}

func dayAheadSeries(name string, x, y []float64, p model.Palette, marker string) Series {
	ser := lineSeries(name, x, y, p.Color(model.MetricPriceDayAhead))
	ser.Dashed = true
	ser.Marker = marker
	return ser
}

func addProfileBand(c *Chart, prof *analysis.HourlyProfile, band [2]float64, name string, x []float64, color string) {
	lo, ok1 := prof.Percentiles[band[0]]
	hi, ok2 := prof.Percentiles[band[1]]
	if !ok1 || !ok2 {
		return
	}
	c.Series = append(c.Series, bandSeries(name, x, lo, hi, color))
}

func hourPositions(hours []int) []float64 {
	x := make([]float64, len(hours))
	for i, h := range hours {
		x[i] = float64(h)
	}
	return x
}

func hourAxis() XAxis {
	ax := XAxis{Axis: model.Axis{Label: "Hour of Day", Scale: 1}, Min: ptr(-0.5), Max: ptr(23.5)}
	for h := 0; h < 24; h += 2 {
		ax.Ticks = append(ax.Ticks, Tick{Position: float64(h), Label: strconv.Itoa(h)})
	}
	return ax
}

// monthTicks labels each bucket with a month name taken from the table, or
// by position when the table carries no month information.
func monthTicks(t *data.Table, rows []int) []Tick {
	src := t.Capabilities().MonthLabels
	ticks := make([]Tick, len(rows))
	var names []string
	var months []float64
	switch src.Kind {
	case data.HasLabelColumn:
		names, _ = t.Strings(src.Columns[0])
	case data.DeriveFromIndex:
		months, _ = t.Floats(src.Columns[0])
	}
	for i, row := range rows {
		label := model.MonthNames[i%12]
		switch {
		case names != nil && row < len(names) && names[row] != "":
			label = names[row]
		case months != nil && row < len(months) && !math.IsNaN(months[row]):
			if n := model.MonthName(int(months[row])); n != "" {
				label = n
			}
		}
		ticks[i] = Tick{Position: float64(i), Label: label}
	}
	return ticks
}

// dayTicks labels every dailyTickStep-th kept bucket.
func dayTicks(t *data.Table, rows []int) []Tick {
	src := t.Capabilities().DayLabels
	var labels []string
	var months, days []float64
	switch src.Kind {
	case data.HasLabelColumn:
		labels, _ = t.Strings(src.Columns[0])
	case data.DeriveFromIndex:
		months, _ = t.Floats(src.Columns[0])
		days, _ = t.Floats(src.Columns[1])
	}

	var ticks []Tick
	for i := 0; i < len(rows); i += dailyTickStep {
		row := rows[i]
		label := fmt.Sprintf("Day %d", row+1)
		switch {
		case labels != nil && row < len(labels):
			label = labels[row]
		case months != nil && row < len(months) && row < len(days):
			if abbr := model.MonthAbbrev(int(months[row])); abbr != "" && !math.IsNaN(days[row]) {
				label = fmt.Sprintf("%s %d", abbr, int(days[row]))
			}
		}
		ticks = append(ticks, Tick{Position: float64(i), Label: label})
	}
	return ticks
}
