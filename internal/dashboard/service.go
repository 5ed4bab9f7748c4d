package dashboard

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-dashboard/internal/analysis"
	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

// Recorder receives chart outcomes. *metrics.Registry satisfies it.
type Recorder interface {
	ObserveChart(chart, status string, elapsed time.Duration)
	ObserveOverlay(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveChart(string, string, time.Duration) {}
func (nopRecorder) ObserveOverlay(string)                      {}

// Options carry the presentation and analysis parameters of a Service.
type Options struct {
	Palette         model.Palette
	Band            [2]float64 // outer confidence band, percentiles
	DailyBand       [2]float64
	Rolling         analysis.Rolling
	Distribution    analysis.DistributionOptions
	DurationMarkers []float64
}

func DefaultOptions() Options {
	return Options{
		Palette:         model.DefaultPalette(),
		Band:            [2]float64{5, 95},
		DailyBand:       [2]float64{25, 75},
		Rolling:         analysis.DailyRolling,
		Distribution:    analysis.DefaultDistributionOptions,
		DurationMarkers: analysis.DurationMarkers,
	}
}

// Service prepares charts for one portfolio root. Every chart is prepared
// independently: a failure is reported on that chart's Status and never
// propagates to sibling charts.
type Service struct {
	resolver *data.Resolver
	catalog  *data.Catalog
	tables   data.TableSource
	opts     Options
	recorder Recorder
	logger   zerolog.Logger
}

func NewService(resolver *data.Resolver, tables data.TableSource, opts Options, recorder Recorder) *Service {
	if tables == nil {
		tables = data.FileSource{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		resolver: resolver,
		catalog:  data.NewCatalog(resolver),
		tables:   tables,
		opts:     opts,
		recorder: recorder,
		logger:   log.With().Str("component", "dashboard").Logger(),
	}
}

func (s *Service) Catalog() *data.Catalog { return s.catalog }

func (s *Service) Options() Options { return s.opts }

// advisory marks a selection the analysis does not apply to.
type advisory struct{ msg string }

func (a *advisory) Error() string { return a.msg }

func notMeaningful(format string, args ...any) error {
	return &advisory{msg: fmt.Sprintf(format, args...)}
}

func newChart(kind, site string, m model.Metric, month int) *Chart {
	return &Chart{Kind: kind, Site: site, Metric: m, Month: month}
}

// prepare runs build inside a containment boundary and records the outcome.
func (s *Service) prepare(c *Chart, build func(*Chart) error) *Chart {
	start := time.Now()
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.settle(c, fmt.Errorf("unexpected failure: %v", r))
			}
		}()
		err := s.catalog.CheckSite(c.Site)
		if err == nil {
			err = build(c)
		}
		s.settle(c, err)
	}()
	s.recorder.ObserveChart(c.Kind, string(c.Status), time.Since(start))
	return c
}

func (s *Service) settle(c *Chart, err error) {
	if err == nil {
		c.Status = StatusOK
		return
	}

	var adv *advisory
	switch {
	case errors.As(err, &adv):
		c.Status, c.Message = StatusNotMeaningful, adv.msg
	case errors.Is(err, analysis.ErrNoReplicateData):
		c.Status = StatusNotMeaningful
		c.Message = "No simulation years found in the replicate file"
	case errors.Is(err, analysis.ErrInsufficientSamples):
		c.Status = StatusNotMeaningful
		c.Message = fmt.Sprintf("At least %d simulation years are needed for a distribution", analysis.MinDistributionSamples)
	case errors.Is(err, data.ErrNotFound):
		c.Status, c.Message = StatusNoData, noDataMessage(c)
	default:
		c.Status = StatusError
		c.Message = fmt.Sprintf("Error creating %s chart: %v", c.Kind, err)
	}

	ev := s.logger.Debug()
	if c.Status == StatusError {
		ev = s.logger.Warn()
	}
	ev.Err(err).
		Str("chart", c.Kind).
		Str("site", c.Site).
		Str("metric", string(c.Metric)).
		Str("status", string(c.Status)).
		Msg("chart not prepared")

	c.Series, c.Markers, c.Lines, c.Stats = nil, nil, nil, nil
}

func noDataMessage(c *Chart) string {
	switch c.Kind {
	case KindDuration:
		return "Duration curve data not available for this month"
	case KindDistribution:
		return "Distribution data not available for this selection"
	}
	if c.Metric != "" {
		return fmt.Sprintf("No %s data available", c.Metric.DisplayName())
	}
	return "No data available"
}

// load reads a resolved table. A file that vanished after resolution counts
// as absent.
func (s *Service) load(path string) (*data.Table, error) {
	t, err := s.tables.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, data.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// series loads a match and turns it into mean and band series. Timeseries
// are aggregated across replicate years; stats tables are read as is.
func (s *Service) series(match data.Match, percentiles []float64, rolling *analysis.Rolling) (*data.Table, *analysis.AggregatedSeries, error) {
	t, err := s.load(match.Path)
	if err != nil {
		return nil, nil, err
	}
	if match.Kind == model.KindTimeseries {
		agg, err := analysis.Aggregate(t, percentiles, rolling)
		if err != nil {
			return nil, nil, err
		}
		return t, agg, nil
	}
	agg, err := analysis.FromStats(t, percentiles)
	if err != nil {
		return nil, nil, err
	}
	if rolling != nil {
		agg = agg.Smooth(*rolling)
	}
	return t, agg, nil
}

// dayAhead loads the day-ahead overlay. Any failure leaves the primary chart
// untouched, so the result is only ok or not.
func (s *Service) dayAhead(site string, res model.Resolution, rolling *analysis.Rolling, kinds ...model.FileKind) (*data.Table, *analysis.AggregatedSeries, bool) {
	match, err := s.resolver.ResolveDayAhead(site, res, kinds...)
	if err != nil {
		s.recorder.ObserveOverlay(OverlayAbsent)
		return nil, nil, false
	}
	t, agg, err := s.series(match, nil, rolling)
	if err != nil {
		s.logger.Debug().Err(err).Str("site", site).Str("path", match.Path).Msg("day-ahead overlay unreadable")
		s.recorder.ObserveOverlay(OverlayFailed)
		return nil, nil, false
	}
	return t, agg, true
}

// overlayFits enforces that an overlay shares the primary series' bucket count.
func (s *Service) overlayFits(c *Chart, got, want int) bool {
	if got != want {
		s.logger.Debug().Str("site", c.Site).Str("chart", c.Kind).
			Int("primary", want).Int("overlay", got).Msg("day-ahead overlay length mismatch")
		s.recorder.ObserveOverlay(OverlaySkipped)
		return false
	}
	s.recorder.ObserveOverlay(OverlayAdded)
	c.Notes = append(c.Notes, NoteDayAhead)
	return true
}

// Overlay outcomes reported to the Recorder.
const (
	OverlayAdded   = "added"
	OverlaySkipped = "skipped"
	OverlayAbsent  = "absent"
	OverlayFailed  = "failed"
)

func bandLabel(band [2]float64, suffix string) string {
	return fmt.Sprintf("P%g-P%g %s", band[0], band[1], suffix)
}

// addBand appends the band series when both bounds were computed.
func addBand(c *Chart, agg *analysis.AggregatedSeries, band [2]float64, name string, x []float64, color string) {
	lo, ok1 := agg.Band(band[0])
	hi, ok2 := agg.Band(band[1])
	if !ok1 || !ok2 {
		return
	}
	c.Series = append(c.Series, bandSeries(name, x, lo, hi, color))
}
