// Package matrix provides the fixed-shape numeric containers shared by every
// stage of the classifier pipeline.
//
// The matrix package provides:
//
//   - Grid[T]: a row-major two-axis container (Dense = Grid[float64]) used for
//     tolerance bounds, averages, reference vectors and distance tables.
//   - Cube[T]: a row-major three-axis container indexed (class, feature,
//     realization) used for training intensities, binary codes and code
//     distances.
//   - Validators and reductions (FiberMeans) used before and during the
//     stage computations.
//
// All public accessors return sentinel errors (errors.go) instead of
// panicking; Fiber and Row hand out aliasing views for the hot loops.
//
// See the examples in this package for usage patterns.
package matrix
