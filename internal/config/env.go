package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Environment variables that override file values.
const (
	EnvPortfolioRoot = "PORTFOLIO_ROOT"
	EnvPort          = "API_PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvCacheTTL      = "CACHE_TTL"
	EnvOrigins       = "ALLOWED_ORIGINS" // comma-separated
)

var envBindings = map[string]string{
	"portfolio_root":         EnvPortfolioRoot,
	"server.port":            EnvPort,
	"server.allowed_origins": EnvOrigins,
	"log_level":              EnvLogLevel,
	"log_format":             EnvLogFormat,
	"cache.ttl":              EnvCacheTTL,
}

// ApplyEnv overlays set environment variables onto c.
func (c *Config) ApplyEnv() {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if s := v.GetString("portfolio_root"); s != "" {
		c.PortfolioRoot = s
	}
	if s := v.GetString("server.port"); s != "" {
		c.Server.Port = s
	}
	if s := v.GetString("server.allowed_origins"); s != "" {
		var origins []string
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	if s := v.GetString("log_level"); s != "" {
		c.LogLevel = s
	}
	if s := v.GetString("log_format"); s != "" {
		c.LogFormat = s
	}
	if s := v.GetString("cache.ttl"); s != "" {
		c.Cache.TTL = s
	}
}
