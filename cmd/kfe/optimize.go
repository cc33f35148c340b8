// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kfe/config"
	"github.com/katalvlaran/kfe/internal/logger"
	"github.com/katalvlaran/kfe/optimize"
	"github.com/katalvlaran/kfe/pipeline"
	"github.com/katalvlaran/kfe/report"
	"github.com/katalvlaran/kfe/store"
)

// progressEvery is the candidate count between progress log lines.
const progressEvery = 500

type optimizeFlags struct {
	json, csv, xlsx string
	save            bool
}

func newOptimizeCmd(a *app) *cobra.Command {
	var f optimizeFlags

	cmd := &cobra.Command{
		Use:   "optimize IMAGE...",
		Short: "Search (delta, selec) for the highest total Shannon efficiency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, _, err := a.session(ctx, args)
			if err != nil {
				return err
			}

			settings := a.cfg.Settings(sess.Params())
			seen := 0
			opt := optimize.New(
				optimize.WithLogger(a.log),
				optimize.WithObserver(func(optimize.Candidate) {
					seen++
					if seen%progressEvery == 0 {
						a.log.Info(component, "search progress", logger.Fields{
							"done":    seen,
							"planned": settings.Planned(),
						})
					}
				}),
			)

			started := time.Now()
			res, err := opt.Optimize(ctx, sess, settings)
			if err != nil {
				return err
			}
			a.log.Debug(component, "search took", logger.Fields{"elapsed": time.Since(started).String()})

			live, _ := sess.Result()

			f.save = a.shouldSave(cmd.Flags().Changed("save"), f.save)

			return a.reportOptimize(cmd, live, res, f)
		},
	}

	a.bindInputs(cmd.Flags())
	fs := cmd.Flags()
	def := config.Default().Optimize
	fs.IntVar(&a.search.DeltaMin, "delta-min", def.DeltaMin, "smallest delta candidate")
	fs.IntVar(&a.search.DeltaMax, "delta-max", def.DeltaMax, "largest delta candidate")
	fs.IntVar(&a.search.DeltaStep, "delta-step", def.DeltaStep, "delta candidate step")
	fs.BoolVar(&a.search.IncludeZeroDelta, "zero-delta", def.IncludeZeroDelta, "also try delta 0")
	fs.Float64Var(&a.search.SelecMin, "selec-min", def.SelecMin, "smallest selec candidate")
	fs.Float64Var(&a.search.SelecMax, "selec-max", def.SelecMax, "largest selec candidate")
	fs.Float64Var(&a.search.SelecStep, "selec-step", def.SelecStep, "selec candidate step")
	fs.Float64Var(&a.search.Tolerance, "tolerance", def.Tolerance, "minimum score improvement to accept a candidate")
	fs.StringVar(&f.json, "json", "", "write the summary as JSON")
	fs.StringVar(&f.csv, "csv", "", "write the per-class comparison as CSV")
	fs.StringVar(&f.xlsx, "xlsx", "", "write an XLSX workbook with a summary sheet")
	fs.BoolVar(&f.save, "save", true, "archive the run in the configured store (default false for the memory store)")

	return cmd
}

// shouldSave resolves --save against the store kind: a memory archive dies
// with the process, so it is only written when asked for explicitly.
func (a *app) shouldSave(explicit, save bool) bool {
	if a.cfg.Store.Kind != "memory" {
		return save
	}
	if !explicit {
		return false
	}
	if save {
		a.log.Warning(component, "memory store is not persisted; the run is lost on exit", nil)
	}

	return save
}

// applySearchFlags copies explicitly set search flags into o.
func (a *app) applySearchFlags(fs *pflag.FlagSet, o *config.Optimize) {
	if fs.Changed("delta-min") {
		o.DeltaMin = a.search.DeltaMin
	}
	if fs.Changed("delta-max") {
		o.DeltaMax = a.search.DeltaMax
	}
	if fs.Changed("delta-step") {
		o.DeltaStep = a.search.DeltaStep
	}
	if fs.Changed("zero-delta") {
		o.IncludeZeroDelta = a.search.IncludeZeroDelta
	}
	if fs.Changed("selec-min") {
		o.SelecMin = a.search.SelecMin
	}
	if fs.Changed("selec-max") {
		o.SelecMax = a.search.SelecMax
	}
	if fs.Changed("selec-step") {
		o.SelecStep = a.search.SelecStep
	}
	if fs.Changed("tolerance") {
		o.Tolerance = a.search.Tolerance
	}
}

func score(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%.4f", *v)
}

// reportOptimize prints the comparison, writes the requested files and
// archives the run. live is the committed pipeline result.
func (a *app) reportOptimize(cmd *cobra.Command, live pipeline.Result, res optimize.Result, f optimizeFlags) error {
	sum := report.Summarize(res)
	st := res.Stats

	fmt.Fprintf(a.out, "original  %s score %s\n", sum.Original, score(sum.OriginalScore))
	fmt.Fprintf(a.out, "optimized %s score %s\n", sum.Optimized, score(sum.OptimizedScore))
	switch {
	case sum.Gain != nil:
		fmt.Fprintf(a.out, "gain %+.4f\n", *sum.Gain)
	case math.IsInf(res.Gain, 1):
		fmt.Fprintln(a.out, "gain: a reliable radius appeared")
	}
	fmt.Fprintf(a.out, "candidates %s planned, %s evaluated, %s skipped, %s failed, %s accepted\n",
		humanize.Comma(int64(st.Planned)), humanize.Comma(int64(st.Evaluated)),
		humanize.Comma(int64(st.Skipped)), humanize.Comma(int64(st.Failed)),
		humanize.Comma(int64(st.Accepted)))

	if err := a.writeFile(f.json, func(w io.Writer) error { return report.WriteJSON(w, sum) }); err != nil {
		return err
	}
	if err := a.writeFile(f.csv, func(w io.Writer) error { return report.WriteSummaryCSV(w, sum.Classes) }); err != nil {
		return err
	}
	if err := a.writeFile(f.xlsx, func(w io.Writer) error {
		return report.WriteWorkbook(w, live, &res)
	}); err != nil {
		return err
	}

	if !f.save {
		return nil
	}

	ctx := cmd.Context()
	s, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.CloseIfSupported(s) }()

	run := store.NewRun(sum, time.Now())
	if err = s.SaveRun(ctx, run); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved run %s (%s)\n", run.ID, a.cfg.Store.Kind)

	return nil
}
