// Package kfe scores classifier radii with the two functional-efficiency
// criteria (KFE): a Shannon-style normalized information measure and a
// Kullback-style divergence measure.
//
// Shannon is a pure function of one RadiusMetric:
//
//	term(x, d) = 0 if d ≤ 0 or x/d ≤ 0, else r·log2(r) with r = min(x/d, 1)
//	E = 1 + ½·[term(α, α+D2) + term(D2, α+D2) + term(D1, D1+β) + term(β, D1+β)]
//
// so E ≤ 1, and the degenerate all-zero record scores exactly 1.
//
// Kullback is a forward fold over one class's radius-ordered list. The
// accumulator (Carry) remembers the last finite score; a radius whose error
// count S = K2 + K3 is zero, or whose formula is not finite, repeats it
// (0 when nothing has been seen yet):
//
//	K = log2((2n + 0.01 − S) / S) · (n − S) / n
//
// where n is the record's SampleSize. Every class starts with a fresh Carry.
//
// Score and ScoreAll attach both values to copies of the records; Best picks
// the largest reliable, finite value of a chosen Criterion.
package kfe
