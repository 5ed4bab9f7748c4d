package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"portfolio-dashboard/internal/data"
)

var catalogOut string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Save or show portfolio catalog snapshots",
}

var catalogSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Walk the portfolio and write a JSON snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		snap, err := svc.Catalog().TakeSnapshot(time.Now())
		if err != nil {
			return err
		}
		if err := data.SaveSnapshot(snap, catalogOut); err != nil {
			return err
		}
		fmt.Printf("Saved %d sites to %s\n", len(snap.Sites), catalogOut)
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a saved snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := data.LoadSnapshot(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("root=%s updated_at=%s\n", snap.Root, snap.UpdatedAt)
		for _, s := range snap.Sites {
			fmt.Printf("%-32s %-28s %d datasets\n", s.ID, s.DisplayName, len(s.Datasets))
		}
		return nil
	},
}

func init() {
	catalogSaveCmd.Flags().StringVar(&catalogOut, "out", "catalog.json", "Output JSON path")
	catalogCmd.AddCommand(catalogSaveCmd, catalogShowCmd)
}
