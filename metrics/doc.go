// Package metrics computes the per-radius accuracy characteristics of a
// reference-vector classifier from its code-distance cube.
//
// For class k, every integer radius r in 1..maxRadius (maxRadius being the
// Hamming distance from k's reference vector to the nearest foreign one)
// yields a RadiusMetric:
//
//	K1 = #{ j : SK[k,k,j] ≤ r }          own realizations inside the ball
//	K2 = n − K1                          own realizations outside
//	K3 = Σ_{c≠k} #{ j : SK[k,c,j] ≤ r }  foreign realizations inside
//	K4 = n·(m−1) − K3                    foreign realizations outside
//
//	D1 = K1/n   Alpha = K2/n   Beta = K3/(n·(m−1))   D2 = K4/(n·(m−1))
//
// A radius is reliable when both D1 and D2 reach ReliabilityThreshold.
// With two classes the foreign sample size equals n.
//
// RadiusMetric is a value type: lists can be copied and snapshotted without
// aliasing, and scores are attached via WithScores, which returns a copy.
package metrics
