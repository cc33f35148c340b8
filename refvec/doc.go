// Package refvec reduces each class of a binary training cube to a single
// reference (centroid) vector.
//
// For every class k and feature i:
//
//	Average[k,i]   = avg_j X[k,i,j]
//	Reference[k,i] = 1  iff  Average[k,i] > selec
//
// The comparison is strict: a feature whose average equals the selection
// level is excluded from the reference vector.
package refvec
