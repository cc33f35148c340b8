// Package report lays out classifier results as tables: the per-radius
// table of one run (CSV, JSON, one workbook sheet per class) and the
// before/after comparison of an optimization (CSV, JSON, workbook summary
// sheet).
//
// In the radius table a reliable row is marked "working" and the radius
// holding the best reliable Shannon (Kullback) value carries "KFE E"
// ("KFE K").
package report
