// Package pipeline chains the classifier training stages into one pure
// recomputation and keeps the live training state of an interactive session.
//
// Recompute runs, in strict order:
//
//	binarize.Binarize   Y, delta      → X, NDK, VDK
//	refvec.Build        X, selec      → AVG, xm
//	codedist.Compute    X, xm         → SK
//	metrics.Compute     SK, xm        → per-class RadiusMetric lists
//	kfe.ScoreAll        lists         → Shannon and Kullback attached
//
// Parameters travel as arguments; nothing is shared between calls, so
// Recompute is safe for concurrent use.
//
// Session owns the mutable side: the loaded training matrix, the live
// Params and the last good Result. Evaluate is a dry run that never touches
// live state. Apply commits only when the run succeeds, so a failed Apply
// leaves params and result exactly as they were.
package pipeline
