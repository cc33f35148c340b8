// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kfe/report"
	"github.com/katalvlaran/kfe/store"
)

func newRunsCmd(a *app) *cobra.Command {
	runs := &cobra.Command{
		Use:   "runs",
		Short: "Inspect archived optimization runs",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.CloseIfSupported(s) }()

			items, err := s.ListRuns(ctx, limit)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(a.out, "no runs")
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tORIGINAL\tOPTIMIZED\tGAIN")
			for _, r := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					r.ID, humanize.Time(r.CreatedAt),
					r.Summary.Original, r.Summary.Optimized, score(r.Summary.Gain))
			}

			return tw.Flush()
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list (0 for all)")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Print one archived run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.CloseIfSupported(s) }()

			run, ok, err := s.GetRun(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("run %s not found in %s store", args[0], a.cfg.Store.Kind)
			}

			return report.WriteJSON(a.out, run)
		},
	}

	runs.AddCommand(list, show)

	return runs
}
