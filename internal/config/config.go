package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"portfolio-dashboard/internal/analysis"
	"portfolio-dashboard/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	PortfolioRoot string             `yaml:"portfolio_root"`
	Percentiles   PercentileConfig   `yaml:"percentiles"`
	Rolling       RollingConfig      `yaml:"rolling"`
	Distribution  DistributionConfig `yaml:"distribution"`
	Duration      DurationConfig     `yaml:"duration"`
	Palette       model.Palette      `yaml:"palette"`
	Cache         CacheConfig        `yaml:"cache"`
	Server        ServerConfig       `yaml:"server"`
	LogLevel      string             `yaml:"log_level"`
	LogFormat     string             `yaml:"log_format"` // "json" or "console"
}

type PercentileConfig struct {
	// Band is the [low, high] percentile pair for monthly and hourly charts.
	Band []float64 `yaml:"band"`
	// DailyBand is the pair used for the smoothed daily charts.
	DailyBand []float64 `yaml:"daily_band"`
}

type RollingConfig struct {
	Window     int `yaml:"window"`
	MinPeriods int `yaml:"min_periods"`
}

type DistributionConfig struct {
	GridPoints int     `yaml:"grid_points"`
	Padding    float64 `yaml:"padding"`
}

type DurationConfig struct {
	Markers []float64 `yaml:"markers"`
}

type CacheConfig struct {
	// TTL is a Go duration string; empty or "0" disables table caching.
	TTL string `yaml:"ttl"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

const DefaultPortfolioRoot = "Renewable Portfolio LLC"

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		PortfolioRoot: DefaultPortfolioRoot,
		Percentiles: PercentileConfig{
			Band:      []float64{5, 95},
			DailyBand: []float64{25, 75},
		},
		Rolling: RollingConfig{
			Window:     analysis.DailyRolling.Window,
			MinPeriods: analysis.DailyRolling.MinPeriods,
		},
		Distribution: DistributionConfig{
			GridPoints: analysis.DefaultDistributionOptions.GridPoints,
			Padding:    analysis.DefaultDistributionOptions.Padding,
		},
		Duration:  DurationConfig{Markers: append([]float64(nil), analysis.DurationMarkers...)},
		Palette:   model.DefaultPalette(),
		Server:    ServerConfig{Port: "8080", AllowedOrigins: []string{"*"}},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads path (defaults when path is empty), applies environment
// overrides, fills unset fields with defaults and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config, but does not apply defaults or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// ApplyDefaults fills zero-valued fields from Default.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.PortfolioRoot == "" {
		c.PortfolioRoot = d.PortfolioRoot
	}
	if len(c.Percentiles.Band) == 0 {
		c.Percentiles.Band = d.Percentiles.Band
	}
	if len(c.Percentiles.DailyBand) == 0 {
		c.Percentiles.DailyBand = d.Percentiles.DailyBand
	}
	if c.Rolling.Window == 0 {
		c.Rolling.Window = d.Rolling.Window
	}
	if c.Rolling.MinPeriods == 0 {
		c.Rolling.MinPeriods = d.Rolling.MinPeriods
	}
	if c.Distribution.GridPoints == 0 {
		c.Distribution.GridPoints = d.Distribution.GridPoints
	}
	if c.Distribution.Padding == 0 {
		c.Distribution.Padding = d.Distribution.Padding
	}
	if len(c.Duration.Markers) == 0 {
		c.Duration.Markers = d.Duration.Markers
	}
	c.Palette = MergePalette(d.Palette, c.Palette)
	if c.Server.Port == "" {
		c.Server.Port = d.Server.Port
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = d.Server.AllowedOrigins
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.PortfolioRoot == "" {
		return errors.New("portfolio_root is required")
	}
	if err := validateBand("percentiles.band", c.Percentiles.Band); err != nil {
		return err
	}
	if err := validateBand("percentiles.daily_band", c.Percentiles.DailyBand); err != nil {
		return err
	}
	if c.Rolling.Window < 1 {
		return errors.New("rolling.window must be >= 1")
	}
	if c.Rolling.MinPeriods < 1 || c.Rolling.MinPeriods > c.Rolling.Window {
		return errors.New("rolling.min_periods must be in [1, window]")
	}
	if c.Distribution.GridPoints < 2 {
		return errors.New("distribution.grid_points must be >= 2")
	}
	if c.Distribution.Padding < 0 {
		return errors.New("distribution.padding must be >= 0")
	}
	for _, p := range c.Duration.Markers {
		if p < 0 || p > 100 {
			return fmt.Errorf("duration.markers: %v outside [0, 100]", p)
		}
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console, got %q", c.LogFormat)
	}
	return nil
}

// CacheTTL parses cache.ttl; empty means disabled.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, fmt.Errorf("cache.ttl invalid: %w", err)
	}
	if d < 0 {
		return 0, errors.New("cache.ttl must be >= 0")
	}
	return d, nil
}

// RollingWindow returns the smoothing window as an analysis value.
func (c *Config) RollingWindow() analysis.Rolling {
	return analysis.Rolling{Window: c.Rolling.Window, MinPeriods: c.Rolling.MinPeriods}
}

func (c *Config) DistributionOptions() analysis.DistributionOptions {
	return analysis.DistributionOptions{GridPoints: c.Distribution.GridPoints, Padding: c.Distribution.Padding}
}

func validateBand(name string, band []float64) error {
	if len(band) != 2 {
		return fmt.Errorf("%s must have exactly two percentiles", name)
	}
	sorted := append([]float64(nil), band...)
	sort.Float64s(sorted)
	if sorted[0] != band[0] || band[0] == band[1] {
		return fmt.Errorf("%s must be ascending, got %v", name, band)
	}
	if band[0] < 0 || band[1] > 100 {
		return fmt.Errorf("%s must lie within [0, 100]", name)
	}
	return nil
}

// MergePalette overlays non-empty colors from override onto base.
func MergePalette(base, override model.Palette) model.Palette {
	out := base
	if override.Generation != "" {
		out.Generation = override.Generation
	}
	if override.Price != "" {
		out.Price = override.Price
	}
	if override.PriceDayAhead != "" {
		out.PriceDayAhead = override.PriceDayAhead
	}
	if override.Revenue != "" {
		out.Revenue = override.Revenue
	}
	return out
}
