package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"portfolio-dashboard/internal/dashboard"
	"portfolio-dashboard/internal/model"
)

var (
	chartOut  string
	chartJSON bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Prepare a chart and print or export it",
}

func init() {
	chartCmd.PersistentFlags().StringVar(&chartOut, "out", "", "Write the chart series to this CSV file")
	chartCmd.PersistentFlags().BoolVar(&chartJSON, "json", false, "Print the full chart as JSON")

	chartCmd.AddCommand(
		metricChartCmd("monthly", "Monthly forecast with confidence band", (*dashboard.Service).MonthlyForecast),
		metricChartCmd("daily", "Daily forecast, 7-day rolling average", (*dashboard.Service).DailyForecast),
		metricChartCmd("hourly", "Average hour-of-day profile", (*dashboard.Service).HourlyProfile),
		durationCmd,
		distributionCmd,
		combinedCmd,
	)
}

func metricChartCmd(name, short string, build func(*dashboard.Service, string, model.Metric) *dashboard.Chart) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <site> <metric>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseMetric(args[1])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			return emit(build(svc, args[0], m))
		},
	}
}

var durationCmd = &cobra.Command{
	Use:   "duration <site> <month>",
	Short: "Hourly price duration curve for one month",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := parseMonth(args[1])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		return emit(svc.DurationCurve(args[0], month))
	},
}

var distributionCmd = &cobra.Command{
	Use:   "distribution <site> <metric> <month>",
	Short: "Distribution of one month across simulation years",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := model.ParseMetric(args[1])
		if err != nil {
			return err
		}
		month, err := parseMonth(args[2])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		return emit(svc.Distribution(args[0], m, month))
	},
}

var combinedCmd = &cobra.Command{
	Use:   "combined <site>",
	Short: "Stacked monthly panels for generation, price and revenue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return emit(svc.Combined(args[0]))
	},
}

func parseMonth(s string) (int, error) {
	month, err := strconv.Atoi(s)
	if err != nil || !model.ValidMonth(month) {
		return 0, fmt.Errorf("month must be 1-12, got %q", s)
	}
	return month, nil
}

func emit(c *dashboard.Chart) error {
	if chartOut != "" {
		if err := dashboard.WriteChartCSV(chartOut, c); err != nil {
			return err
		}
		fmt.Printf("Wrote %s chart to %s\n", c.Kind, chartOut)
	}
	if chartJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	printSummary(c, "")
	return nil
}

func printSummary(c *dashboard.Chart, indent string) {
	fmt.Printf("%s[%s] %s\n", indent, c.Status, c.Title)
	if c.Subtitle != "" {
		fmt.Printf("%s  %s\n", indent, c.Subtitle)
	}
	if c.Message != "" {
		fmt.Printf("%s  %s\n", indent, c.Message)
	}
	for _, s := range c.Series {
		fmt.Printf("%s  %-40s %-7s %d points\n", indent, s.Name, s.Role, len(s.X))
	}
	for _, st := range c.Stats {
		fmt.Printf("%s  %-10s %s\n", indent, st.Label, st.Value)
	}
	for _, n := range c.Notes {
		fmt.Printf("%s  note: %s\n", indent, n)
	}
	for _, p := range c.Panels {
		printSummary(p, indent+"  ")
	}
}
