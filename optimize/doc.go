// Package optimize searches the (delta, selec) grid for the parameter pair
// that maximizes the aggregate Shannon efficiency of a training session.
//
// Score of a run: per class take the best reliable, finite Shannon value;
// sum the classes that have one. A run where no class qualifies scores −Inf.
//
// Search (Optimizer.Optimize):
//
//  1. Fewer than two loaded classes → ErrInsufficientInput, nothing touched.
//  2. Apply the live pair: the original snapshot and score.
//  3. Walk deltas ascending, and within each delta selec ascending. The pair
//     equal to the current best is skipped. Every other pair is a dry run
//     (Session.Evaluate); failures are counted and skipped. A candidate
//     replaces the best only when score > best + Tolerance, so ties keep the
//     earlier pair.
//  4. Apply the best pair. If that fails, Apply the original pair again and
//     report ErrFinalApply (plus ErrRollback if the restore fails too).
//
// Only step 2 and step 4 commit, so on every exit path the live parameters
// are either the original or the optimized pair. The context is checked
// before every candidate.
package optimize
