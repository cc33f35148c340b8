// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/kfe/optimize"
	"github.com/katalvlaran/kfe/pipeline"
)

const (
	headerFill    = "1E88E5"
	highlightFill = "C5E1A5"
	summarySheet  = "Summary"
	numberFormat  = "0.000"
)

// ClassSheet names the sheet of class k.
func ClassSheet(k int) string { return fmt.Sprintf("Class %d", k) }

var workbookHeader = []any{"r", "D1", "alpha", "beta", "D2", "KFE E (Shannon)", "KFE K (Kullback)", "Zone", "Optimal r"}

type styles struct {
	header, number, highlight int
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		s   styles
		err error
	)
	num := numberFormat
	if s.header, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.number, err = f.NewStyle(&excelize.Style{CustomNumFmt: &num}); err != nil {
		return s, err
	}
	s.highlight, err = f.NewStyle(&excelize.Style{
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{highlightFill}},
		CustomNumFmt: &num,
	})

	return s, err
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row) // col, row ≥ 1
	return name
}

func writeClassSheet(f *excelize.File, st styles, sheet string, rows []Row) error {
	if err := f.SetSheetRow(sheet, "A1", &workbookHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", cell(len(workbookHeader), 1), st.header); err != nil {
		return err
	}

	for i, r := range rows {
		line := i + 2
		values := []any{r.Radius, r.D1, r.Alpha, r.Beta, r.D2, r.Shannon, r.Kullback, zone(r.Reliable), r.Optimal}
		if err := f.SetSheetRow(sheet, cell(1, line), &values); err != nil {
			return err
		}
		style := st.number
		if r.Reliable {
			style = st.highlight
		}
		if err := f.SetCellStyle(sheet, cell(2, line), cell(7, line), style); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "I", 16)
}

func writeSummarySheet(f *excelize.File, st styles, res *optimize.Result) error {
	s := Summarize(*res)
	header := []any{"class", "parameter", "before", "after"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "D1", st.header); err != nil {
		return err
	}

	line := 2
	for _, c := range s.Classes {
		for _, entry := range comparison(c) {
			values := []any{c.Class, entry[0], entry[1], entry[2]}
			if err := f.SetSheetRow(summarySheet, cell(1, line), &values); err != nil {
				return err
			}
			line++
		}
	}
	gain := "-"
	if s.Gain != nil {
		gain = fmt.Sprintf("%.4f", *s.Gain)
	}
	footer := []any{"total", "gain", "", gain}
	if err := f.SetSheetRow(summarySheet, cell(1, line), &footer); err != nil {
		return err
	}

	return f.SetColWidth(summarySheet, "A", "D", 18)
}

// WriteWorkbook writes an XLSX workbook with one radius sheet per class of
// res and, when opt is not nil, a Summary sheet comparing the parameters.
func WriteWorkbook(w io.Writer, res pipeline.Result, opt *optimize.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("WriteWorkbook: %w: %w", ErrWorkbook, err)
	}

	classes := max(res.Classes(), 1)
	for k := 0; k < classes; k++ {
		name := ClassSheet(k)
		if k == 0 {
			err = f.SetSheetName("Sheet1", name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			return fmt.Errorf("WriteWorkbook: %w: %w", ErrWorkbook, err)
		}
		var list []Row
		if k < res.Classes() {
			list = ClassRows(k, res.Metrics[k])
		}
		if err = writeClassSheet(f, st, name, list); err != nil {
			return fmt.Errorf("WriteWorkbook: %s: %w: %w", name, ErrWorkbook, err)
		}
	}

	if opt != nil {
		if _, err = f.NewSheet(summarySheet); err != nil {
			return fmt.Errorf("WriteWorkbook: %w: %w", ErrWorkbook, err)
		}
		if err = writeSummarySheet(f, st, opt); err != nil {
			return fmt.Errorf("WriteWorkbook: %s: %w: %w", summarySheet, ErrWorkbook, err)
		}
	}
	f.SetActiveSheet(0)

	if err = f.Write(w); err != nil {
		return fmt.Errorf("WriteWorkbook: %w: %w", ErrWorkbook, err)
	}

	return nil
}
