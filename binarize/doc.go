// Package binarize converts a real-valued training matrix into a binary one
// using a per-class, per-feature tolerance band centered on the feature mean.
//
// For every class k and feature i:
//
//	mean      = avg_j Y[k,i,j]
//	Lower[k,i] = mean − delta      (NDK)
//	Upper[k,i] = mean + delta      (VDK)
//	X[k,i,j]   = 1  iff  Lower[k,i] ≤ Y[k,i,j] ≤ Upper[k,i]
//
// Binarize is a pure function: it never mutates Y and returns freshly
// allocated bounds and binary cube on every call.
//
// Complexity:
//
//   - Time:   O(m·N·n)
//   - Memory: O(m·N·n) for X plus O(m·N) for the bounds
package binarize
