package dashboard

import (
	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

// Option is one entry of a selector.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Selectors are the fixed choices offered by the dashboard shell.
type Selectors struct {
	Months              []MonthOption `json:"months"`
	Metrics             []Option      `json:"metrics"`
	DistributionMetrics []Option      `json:"distribution_metrics"`
	Resolutions         []Option      `json:"resolutions"`
	Notes               []string      `json:"notes"`
}

func NewSelectors() Selectors {
	sel := Selectors{Notes: []string{NoteDayAhead, NoteHourlyRevenue}}
	for i, name := range model.MonthNames {
		sel.Months = append(sel.Months, MonthOption{Value: i + 1, Label: name})
	}
	for _, m := range []model.Metric{model.MetricGeneration, model.MetricPrice, model.MetricRevenue} {
		sel.Metrics = append(sel.Metrics, Option{Value: string(m), Label: m.Title()})
	}
	for _, m := range DistributionMetrics {
		sel.DistributionMetrics = append(sel.DistributionMetrics, Option{Value: string(m), Label: m.Title()})
	}
	for _, r := range model.Resolutions {
		sel.Resolutions = append(sel.Resolutions, Option{Value: string(r), Label: string(r)})
	}
	return sel
}

// SiteInfo describes one site and the views it supports.
type SiteInfo struct {
	model.Site
	Datasets            []data.Dataset `json:"datasets"`
	HasDayAhead         bool           `json:"has_day_ahead"`
	DistributionMetrics []model.Metric `json:"distribution_metrics"`
	CombinedAvailable   bool           `json:"combined_available"`
}

func (s *Service) SiteInfo(id string) (*SiteInfo, error) {
	site, err := s.catalog.Site(id)
	if err != nil {
		return nil, err
	}
	info := &SiteInfo{
		Site:        site,
		Datasets:    s.catalog.Availability(id),
		HasDayAhead: s.catalog.HasMetric(id, model.MetricPriceDayAhead),
	}
	monthly := 0
	for _, m := range CombinedMetrics {
		if s.catalog.HasMonthlyFiles(id, m) {
			monthly++
		}
	}
	info.CombinedAvailable = monthly >= minCombinedPanels
	for _, m := range DistributionMetrics {
		if s.catalog.HasMetric(id, m) {
			info.DistributionMetrics = append(info.DistributionMetrics, m)
		}
	}
	return info, nil
}

// Overview is the set of charts on a site's forecast tabs.
type Overview struct {
	Site     model.Site `json:"site"`
	Monthly  []*Chart   `json:"monthly"`
	Daily    []*Chart   `json:"daily"`
	Hourly   []*Chart   `json:"hourly"`
	Combined *Chart     `json:"combined"`
	Notes    []string   `json:"notes,omitempty"`
}

// Overview prepares every forecast chart for a site. Charts for absent metric
// folders are left out; every other chart carries its own status.
func (s *Service) Overview(id string) (*Overview, error) {
	site, err := s.catalog.Site(id)
	if err != nil {
		return nil, err
	}
	ov := &Overview{Site: site}
	for _, m := range []model.Metric{model.MetricGeneration, model.MetricRevenue, model.MetricPrice} {
		if !s.catalog.HasMetric(id, m) {
			continue
		}
		ov.Monthly = append(ov.Monthly, s.MonthlyForecast(id, m))
		ov.Daily = append(ov.Daily, s.DailyForecast(id, m))
		if m != model.MetricRevenue {
			ov.Hourly = append(ov.Hourly, s.HourlyProfile(id, m))
		}
	}
	if s.catalog.HasMetric(id, model.MetricRevenue) {
		ov.Notes = append(ov.Notes, NoteHourlyRevenue)
	}
	ov.Combined = s.Combined(id)
	return ov, nil
}
