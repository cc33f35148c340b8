// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kfe/kfe"
	"github.com/katalvlaran/kfe/matrix"
	"github.com/katalvlaran/kfe/pipeline"
	"github.com/katalvlaran/kfe/render"
	"github.com/katalvlaran/kfe/report"
)

type recomputeFlags struct {
	csv, json, xlsx string
	pngDir          string
	preview         int
	criterion       string
}

func newRecomputeCmd(a *app) *cobra.Command {
	var f recomputeFlags

	cmd := &cobra.Command{
		Use:   "recompute IMAGE...",
		Short: "Run the pipeline once and report every class radius",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := parseCriteria(f.criterion)
			if err != nil {
				return err
			}
			sess, res, err := a.session(cmd.Context(), args)
			if err != nil {
				return err
			}
			if f.preview > 0 {
				if err = a.preview(sess.Training(), res, f.preview); err != nil {
					return err
				}
			}

			return a.reportRecompute(res, criteria, f)
		},
	}

	a.bindInputs(cmd.Flags())
	fs := cmd.Flags()
	fs.StringVar(&f.csv, "csv", "", "write radius rows as CSV")
	fs.StringVar(&f.json, "json", "", "write radius rows as JSON")
	fs.StringVar(&f.xlsx, "xlsx", "", "write an XLSX workbook")
	fs.StringVar(&f.pngDir, "png-dir", "", "write binary and reference images per class")
	fs.IntVar(&f.preview, "preview", 0, "print the first N rows of every matrix")
	fs.StringVar(&f.criterion, "criterion", "", "report only one optimal radius: shannon|e|kullback|k (default both)")

	return cmd
}

// parseCriteria returns both criteria for an empty name.
func parseCriteria(name string) ([]kfe.Criterion, error) {
	if name == "" {
		return []kfe.Criterion{kfe.ShannonCriterion, kfe.KullbackCriterion}, nil
	}
	c, err := kfe.ParseCriterion(name)
	if err != nil {
		return nil, err
	}

	return []kfe.Criterion{c}, nil
}

func (a *app) reportRecompute(res pipeline.Result, criteria []kfe.Criterion, f recomputeFlags) error {
	fmt.Fprintf(a.out, "%s\n", res.Params)
	for k, list := range res.Metrics {
		line := fmt.Sprintf("class %d: max radius %d", k, res.MaxRadius[k])
		for _, c := range criteria {
			if r, v, ok := kfe.BestAt(list, c); ok {
				line += fmt.Sprintf(", %s %.4f @ r=%d", c, v, r)
			} else {
				line += fmt.Sprintf(", %s -", c)
			}
		}
		fmt.Fprintln(a.out, line)
	}

	rows := report.Rows(res.Metrics)
	if err := a.writeFile(f.csv, func(w io.Writer) error { return report.WriteCSV(w, res.Metrics) }); err != nil {
		return err
	}
	if err := a.writeFile(f.json, func(w io.Writer) error { return report.WriteJSON(w, rows) }); err != nil {
		return err
	}
	if err := a.writeFile(f.xlsx, func(w io.Writer) error { return report.WriteWorkbook(w, res, nil) }); err != nil {
		return err
	}

	return a.writeImages(res, f.pngDir)
}

// preview prints the training, binary and reference matrices of every class.
func (a *app) preview(Y *matrix.Cube[float64], res pipeline.Result, limit int) error {
	for k := 0; k < res.Classes(); k++ {
		training, err := render.FormatTraining(Y, k, limit)
		if err != nil {
			return err
		}
		binary, err := render.FormatBinary(res.Binary, res.Lower, res.Upper, res.Average, k, limit)
		if err != nil {
			return err
		}
		ref, err := render.FormatReference(res.Reference, k, limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "== class %d training\n%s\n== class %d binary\n%s\n== class %d reference\n%s\n",
			k, training, k, binary, k, ref)
	}

	return nil
}

func (a *app) writeImages(res pipeline.Result, dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for k := 0; k < res.Classes(); k++ {
		bin, err := render.Binary(res.Binary, k)
		if err != nil {
			return err
		}
		if err = a.writeFile(filepath.Join(dir, fmt.Sprintf("binary_%d.png", k)), func(w io.Writer) error {
			return render.WritePNG(w, bin)
		}); err != nil {
			return err
		}

		ref, err := render.Reference(res.Reference, k, res.Binary.Cols(), res.Binary.Rows())
		if err != nil {
			return err
		}
		if err = a.writeFile(filepath.Join(dir, fmt.Sprintf("reference_%d.png", k)), func(w io.Writer) error {
			return render.WritePNG(w, ref)
		}); err != nil {
			return err
		}
	}

	return nil
}
