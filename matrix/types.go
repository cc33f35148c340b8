// SPDX-License-Identifier: MIT

// Package matrix: element constraint and small shape helpers shared by Grid
// and Cube. Containers live in grid.go / cube.go, errors in errors.go.
package matrix

// Scalar is the element constraint of every container in this package.
// uint8 carries binary {0,1} data, int carries counts/distances and float64
// carries intensities, bounds and averages.
type Scalar interface {
	~uint8 | ~int | ~float64
}

// Shape is the (classes, rows, cols) extent of a Cube.
// For the classifier pipeline rows are features and cols are realizations.
type Shape struct {
	Classes int // first axis (k)
	Rows    int // second axis (i)
	Cols    int // third axis (j)
}

// Len returns the number of elements described by the shape.
// Complexity: O(1).
func (s Shape) Len() int {
	return s.Classes * s.Rows * s.Cols
}

// valid reports whether every extent is strictly positive.
func (s Shape) valid() bool {
	return s.Classes > 0 && s.Rows > 0 && s.Cols > 0
}
