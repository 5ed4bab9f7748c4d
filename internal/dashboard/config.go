package dashboard

import (
	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/data"
)

// OptionsFromConfig maps a validated config onto service options.
func OptionsFromConfig(c *config.Config) Options {
	opts := DefaultOptions()
	opts.Palette = c.Palette
	opts.Band = [2]float64{c.Percentiles.Band[0], c.Percentiles.Band[1]}
	opts.DailyBand = [2]float64{c.Percentiles.DailyBand[0], c.Percentiles.DailyBand[1]}
	opts.Rolling = c.RollingWindow()
	opts.Distribution = c.DistributionOptions()
	opts.DurationMarkers = c.Duration.Markers
	return opts
}

// NewServiceFromConfig builds a service over cfg.PortfolioRoot, caching
// tables when cache.ttl is set.
func NewServiceFromConfig(c *config.Config, recorder Recorder) (*Service, error) {
	ttl, err := c.CacheTTL()
	if err != nil {
		return nil, err
	}
	return NewService(data.NewResolver(c.PortfolioRoot), data.NewTableSource(ttl), OptionsFromConfig(c), recorder), nil
}
