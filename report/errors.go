// SPDX-License-Identifier: MIT

package report

import "errors"

// ErrWorkbook wraps failures of the spreadsheet writer.
var ErrWorkbook = errors.New("report: workbook")
