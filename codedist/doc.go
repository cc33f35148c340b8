// Package codedist computes Hamming (code) distances between class reference
// vectors and the binary realizations of every class.
//
// The code-distance cube SK is m×m×n:
//
//	SK[k,c,j] = Σ_i 1{ xm[k,i] ≠ X[c,i,j] }
//
// i.e. the distance between the reference vector of class k and realization j
// of class c. The diagonal slabs SK[k,k,·] measure a class against its own
// realizations; off-diagonal slabs measure it against foreign ones.
//
// Complexity:
//
//   - Time:   O(m²·N·n)
//   - Memory: O(m²·n)
package codedist
