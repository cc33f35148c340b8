// Package kfe is the root of a binary pattern classifier trainer built
// around the information criterion of functional efficiency (KFE).
//
// What is in the box?
//
//	A pipeline that turns per-class grayscale training matrices into binary
//	codes and scores how well Hamming balls around reference vectors separate
//	the classes:
//		• matrix:    generic Grid and Cube containers + validators
//		• binarize:  tolerance-band binarization (delta around feature means)
//		• refvec:    reference vectors by thresholded column averages (selec)
//		• codedist:  realization-to-reference Hamming distances
//		• metrics:   per-radius accuracy (D1, alpha, beta, D2) and reliability
//		• kfe:       Shannon and Kullback efficiency scores
//		• pipeline:  one-shot Recompute and a thread-safe Session
//		• optimize:  grid search over (delta, selec) that never regresses
//
// Around the core:
//
//	ingest (images → training cube), render (PNG and text previews),
//	report (CSV, JSON, XLSX), store (memory or SQLite run archive),
//	config (YAML) and the kfe command in cmd/kfe.
//
// Quick start:
//
//	sess := pipeline.NewSession()
//	_ = sess.Load(Y) // m×N×n intensities in [0,255]
//	res, err := optimize.New().Optimize(ctx, sess, optimize.DefaultSettings(sess.Params()))
//
// See examples/ for a runnable scenario.
package kfe
