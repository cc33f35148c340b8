// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// cubeErrorf wraps an underlying error with Cube method context.
func cubeErrorf(method string, k, i, j int, err error) error {
	return fmt.Errorf("Cube.%s(%d,%d,%d): %w", method, k, i, j, err)
}

// Cube is a three-axis container indexed (class, row, col), stored row-major
// in a flat slice: the last axis is contiguous. In the classifier pipeline a
// row is a feature and a col is a realization, so Fiber(k, i) is the run of
// realizations of feature i in class k without copying.
type Cube[T Scalar] struct {
	k, r, c int // classes, rows, cols
	data    []T // length == k*r*c
}

// NewCube allocates a zeroed classes×rows×cols cube.
// Returns ErrBadShape if any extent is non-positive.
// Complexity: O(k*r*c) time and memory.
func NewCube[T Scalar](classes, rows, cols int) (*Cube[T], error) {
	s := Shape{Classes: classes, Rows: rows, Cols: cols}
	if !s.valid() {
		return nil, fmt.Errorf("NewCube(%d,%d,%d): %w", classes, rows, cols, ErrBadShape)
	}

	return &Cube[T]{k: classes, r: rows, c: cols, data: make([]T, s.Len())}, nil
}

// CubeFrom copies a rectangular [][][]T (class → row → col) into a new Cube.
// Returns ErrBadShape on empty or ragged input.
// Complexity: O(k*r*c).
func CubeFrom[T Scalar](values [][][]T) (*Cube[T], error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, fmt.Errorf("CubeFrom: %w", ErrBadShape)
	}
	c, err := NewCube[T](len(values), len(values[0]), len(values[0][0]))
	if err != nil {
		return nil, err
	}
	var k, i int
	for k = 0; k < c.k; k++ {
		if len(values[k]) != c.r {
			return nil, fmt.Errorf("CubeFrom: class %d has %d rows, want %d: %w", k, len(values[k]), c.r, ErrBadShape)
		}
		for i = 0; i < c.r; i++ {
			if len(values[k][i]) != c.c {
				return nil, fmt.Errorf("CubeFrom: class %d row %d has %d cols, want %d: %w", k, i, len(values[k][i]), c.c, ErrBadShape)
			}
			copy(c.data[c.offset(k, i):], values[k][i])
		}
	}

	return c, nil
}

// Stack builds a cube whose class slabs are copies of the given grids.
// All grids must share one shape.
// Complexity: O(k*r*c).
func Stack[T Scalar](slabs ...*Grid[T]) (*Cube[T], error) {
	if len(slabs) == 0 {
		return nil, fmt.Errorf("Stack: %w", ErrBadShape)
	}
	for idx, g := range slabs {
		if g == nil {
			return nil, fmt.Errorf("Stack: slab %d: %w", idx, ErrNilMatrix)
		}
	}
	first := slabs[0]
	c, err := NewCube[T](len(slabs), first.r, first.c)
	if err != nil {
		return nil, err
	}
	for k, g := range slabs {
		if g.r != first.r || g.c != first.c {
			return nil, fmt.Errorf("Stack: slab %d is %dx%d, want %dx%d: %w", k, g.r, g.c, first.r, first.c, ErrDimensionMismatch)
		}
		copy(c.data[c.offset(k, 0):], g.data)
	}

	return c, nil
}

// offset returns the flat index of (k, i, 0). No bounds checks.
func (c *Cube[T]) offset(k, i int) int {
	return (k*c.r + i) * c.c
}

// Classes returns the extent of the first axis.
func (c *Cube[T]) Classes() int { return c.k }

// Rows returns the extent of the second axis.
func (c *Cube[T]) Rows() int { return c.r }

// Cols returns the extent of the third axis.
func (c *Cube[T]) Cols() int { return c.c }

// Shape returns all three extents.
func (c *Cube[T]) Shape() Shape {
	return Shape{Classes: c.k, Rows: c.r, Cols: c.c}
}

// indexOf computes the flat index for (k, i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (c *Cube[T]) indexOf(method string, k, i, j int) (int, error) {
	if k < 0 || k >= c.k || i < 0 || i >= c.r || j < 0 || j >= c.c {
		return 0, cubeErrorf(method, k, i, j, ErrOutOfRange)
	}

	return c.offset(k, i) + j, nil
}

// At retrieves the element at (k, i, j).
// Complexity: O(1).
func (c *Cube[T]) At(k, i, j int) (T, error) {
	idx, err := c.indexOf("At", k, i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return c.data[idx], nil
}

// Set assigns value v at (k, i, j).
// Complexity: O(1).
func (c *Cube[T]) Set(k, i, j int, v T) error {
	idx, err := c.indexOf("Set", k, i, j)
	if err != nil {
		return err
	}
	c.data[idx] = v

	return nil
}

// Fiber returns the backing slice of (k, i, ·). The slice aliases the cube.
// Complexity: O(1).
func (c *Cube[T]) Fiber(k, i int) ([]T, error) {
	if k < 0 || k >= c.k || i < 0 || i >= c.r {
		return nil, cubeErrorf("Fiber", k, i, 0, ErrOutOfRange)
	}
	off := c.offset(k, i)

	return c.data[off : off+c.c : off+c.c], nil
}

// Column copies (k, ·, j) into a fresh slice of length Rows().
// For the pipeline this is the binary code of realization j in class k.
// Complexity: O(r).
func (c *Cube[T]) Column(k, j int) ([]T, error) {
	if k < 0 || k >= c.k || j < 0 || j >= c.c {
		return nil, cubeErrorf("Column", k, 0, j, ErrOutOfRange)
	}
	out := make([]T, c.r)
	for i := 0; i < c.r; i++ {
		out[i] = c.data[c.offset(k, i)+j]
	}

	return out, nil
}

// Slab copies class k into a new rows×cols Grid.
// Complexity: O(r*c).
func (c *Cube[T]) Slab(k int) (*Grid[T], error) {
	if k < 0 || k >= c.k {
		return nil, cubeErrorf("Slab", k, 0, 0, ErrOutOfRange)
	}
	g := &Grid[T]{r: c.r, c: c.c, data: make([]T, c.r*c.c)}
	copy(g.data, c.data[c.offset(k, 0):c.offset(k+1, 0)])

	return g, nil
}

// Clone returns a deep copy of the cube.
// Complexity: O(k*r*c).
func (c *Cube[T]) Clone() *Cube[T] {
	if c == nil {
		return nil
	}
	cp := make([]T, len(c.data))
	copy(cp, c.data)

	return &Cube[T]{k: c.k, r: c.r, c: c.c, data: cp}
}

// Equal reports whether o has the same shape and identical elements.
// Two nil cubes are equal.
// Complexity: O(k*r*c).
func (c *Cube[T]) Equal(o *Cube[T]) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.k != o.k || c.r != o.r || c.c != o.c {
		return false
	}
	for idx := range c.data {
		if c.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}
