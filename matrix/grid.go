// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-shape numeric containers used by the
// classifier pipeline. Grid is a concrete, row-major two-axis container
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major r×c matrix of Scalar values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Grid[T Scalar] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// Dense is the real-valued grid used for bounds and averages.
type Dense = Grid[float64]

// NewGrid creates an r×c Grid initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewGrid[T Scalar](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDense creates an r×c real-valued grid initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	return NewGrid[float64](rows, cols)
}

// GridFrom copies a rectangular [][]T into a new Grid.
// Returns ErrBadShape on empty or ragged input.
// Complexity: O(r*c).
func GridFrom[T Scalar](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("GridFrom: %w", ErrBadShape)
	}
	g, err := NewGrid[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != g.c {
			return nil, fmt.Errorf("GridFrom: row %d has %d columns, want %d: %w", i, len(row), g.c, ErrBadShape)
		}
		copy(g.data[i*g.c:(i+1)*g.c], row)
	}

	return g, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (g *Grid[T]) Rows() int {
	return g.r
}

// Cols returns the number of columns in the grid.
// Complexity: O(1).
func (g *Grid[T]) Cols() int {
	return g.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns the backing slice of row i. The slice aliases the grid:
// writes through it are visible to the grid. Use Clone for isolation.
// Complexity: O(1).
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf("Row", i, 0, ErrOutOfRange)
	}

	return g.data[i*g.c : (i+1)*g.c : (i+1)*g.c], nil
}

// Clone returns a deep copy of the grid.
// Complexity: O(r*c) time and memory for copy.
func (g *Grid[T]) Clone() *Grid[T] {
	if g == nil {
		return nil
	}
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{r: g.r, c: g.c, data: cp}
}

// Equal reports whether o has the same shape and identical elements.
// Two nil grids are equal.
// Complexity: O(r*c).
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.r != o.r || g.c != o.c {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ToSlices copies the grid into a fresh [][]T.
// Complexity: O(r*c).
func (g *Grid[T]) ToSlices() [][]T {
	out := make([][]T, g.r)
	for i := 0; i < g.r; i++ {
		out[i] = make([]T, g.c)
		copy(out[i], g.data[i*g.c:(i+1)*g.c])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < g.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < g.c; j++ {
			fmt.Fprintf(&sb, "%v", g.data[i*g.c+j])
			if j < g.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
