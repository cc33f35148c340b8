// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/kfe/matrix"
)

// Truncation markers.
const (
	colsMore = "   ..."
	rowsMore = "..."
)

func checkPreview(op string, classes, class, limit int) error {
	if class < 0 || class >= classes {
		return fmt.Errorf("%s(class=%d): %w", op, class, ErrClassRange)
	}
	if limit < 1 {
		return fmt.Errorf("%s(limit=%d): %w", op, limit, ErrBadSize)
	}

	return nil
}

// FormatTraining renders up to limit×limit intensities of one class, rounded,
// four characters per value. Truncated rows end with "   ..." and a final
// "..." line marks truncated features.
func FormatTraining(Y *matrix.Cube[float64], class, limit int) (string, error) {
	if Y == nil {
		return "", fmt.Errorf("FormatTraining: %w", ErrNilInput)
	}
	if err := checkPreview("FormatTraining", Y.Classes(), class, limit); err != nil {
		return "", err
	}

	rows, cols := min(limit, Y.Rows()), min(limit, Y.Cols())
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		fiber, _ := Y.Fiber(class, i)
		for _, v := range fiber[:cols] {
			fmt.Fprintf(&sb, "%4d", int(math.Round(v)))
		}
		if cols < Y.Cols() {
			sb.WriteString(colsMore)
		}
		sb.WriteByte('\n')
	}
	if rows < Y.Rows() {
		sb.WriteString(rowsMore + "\n")
	}

	return sb.String(), nil
}

// FormatBinary renders up to limit×limit bits of one class, each feature row
// followed by its band bounds and average: "| NDK=.. VDK=.. AVG=0.00".
func FormatBinary(X *matrix.Cube[uint8], lower, upper, avg *matrix.Dense, class, limit int) (string, error) {
	if X == nil || lower == nil || upper == nil || avg == nil {
		return "", fmt.Errorf("FormatBinary: %w", ErrNilInput)
	}
	if err := checkPreview("FormatBinary", X.Classes(), class, limit); err != nil {
		return "", err
	}

	rows, cols := min(limit, X.Rows()), min(limit, X.Cols())
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		fiber, _ := X.Fiber(class, i)
		for _, b := range fiber[:cols] {
			fmt.Fprintf(&sb, "%d ", b)
		}
		if cols < X.Cols() {
			sb.WriteString("... ")
		}
		lo, err := lower.At(class, i)
		if err != nil {
			return "", fmt.Errorf("FormatBinary: %w", err)
		}
		hi, _ := upper.At(class, i)
		av, _ := avg.At(class, i)
		fmt.Fprintf(&sb, " | NDK=%d VDK=%d AVG=%.2f\n", int(math.Round(lo)), int(math.Round(hi)), av)
	}
	if rows < X.Rows() {
		sb.WriteString(rowsMore + "\n")
	}

	return sb.String(), nil
}

// FormatReference renders up to limit bits of one reference vector, one per
// line.
func FormatReference(ref *matrix.Grid[uint8], class, limit int) (string, error) {
	if ref == nil {
		return "", fmt.Errorf("FormatReference: %w", ErrNilInput)
	}
	if err := checkPreview("FormatReference", ref.Rows(), class, limit); err != nil {
		return "", err
	}

	bits, _ := ref.Row(class)
	n := min(limit, len(bits))
	var sb strings.Builder
	for _, b := range bits[:n] {
		fmt.Fprintf(&sb, "%d\n", b)
	}
	if n < len(bits) {
		sb.WriteString(rowsMore + "\n")
	}

	return sb.String(), nil
}
