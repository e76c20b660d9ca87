// Package plan defines the immutable output model of test construction.
//
// A build produces a Test for each method: a single Unit when expansion
// yields zero or one argument sets, or a Group of Units when it yields
// two or more. Units carry everything a runner needs and nothing it may
// change: bound arguments, run state, the reason a unit cannot run, and
// the optional panic expectation.
//
// RUN STATE:
//
// Every Unit's run state is fixed at construction time. Validation may
// turn a unit NotRunnable before it is published; after that no unit
// transitions back to Runnable and no unit runs before its state is
// assigned. NotRunnable is not an error: a single bad method reports in
// isolation instead of aborting discovery of every other method.
//
// DETERMINISM:
//
// Snapshot serializes a Test to stable JSON for golden-file comparison.
// Argument values are rendered through their display form so snapshots
// stay byte-identical across runs and platforms.
package plan
