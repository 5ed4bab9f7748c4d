package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-dashboard/internal/model"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List sites in the portfolio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		sites, err := svc.Catalog().Sites()
		if err != nil {
			return err
		}
		fmt.Printf("%-32s %-28s %s\n", "site", "name", "metrics")
		for _, s := range sites {
			fmt.Printf("%-32s %-28s %s\n", s.ID, s.DisplayName, joinMetrics(s.Metrics))
		}
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics <site>",
	Short: "List the datasets available for a site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		info, err := svc.SiteInfo(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", info.DisplayName, info.ID)
		fmt.Printf("%-10s %-8s %-11s %s\n", "metric", "res", "kind", "file")
		for _, d := range info.Datasets {
			fmt.Printf("%-10s %-8s %-11s %s\n", d.Metric, d.Resolution, d.Kind, d.Path)
		}
		fmt.Printf("day-ahead overlay: %t, combined view: %t\n", info.HasDayAhead, info.CombinedAvailable)
		return nil
	},
}

func joinMetrics(ms []model.Metric) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}
