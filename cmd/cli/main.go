package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/dashboard"
	"portfolio-dashboard/internal/logging"
)

var (
	cfgFile  string
	rootDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "cli",
	Short:         "Inspect portfolio forecasts and export chart data",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML config (optional)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Portfolio root folder (overrides config and PORTFOLIO_ROOT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(sitesCmd, metricsCmd, chartCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves config from file, environment and flags, then sets up
// logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if rootDir != "" {
		cfg.PortfolioRoot = rootDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newService() (*dashboard.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return dashboard.NewServiceFromConfig(cfg, nil)
}
