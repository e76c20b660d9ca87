// Package build turns declared fixture metadata into executable test
// plans.
//
// The pipeline runs once per candidate method, leaf-first:
//
// 1. Classify: IsTestMethod decides from annotations alone whether a
// method is a test. No data expansion happens here, so non-tests are
// rejected before any reflection-heavy source resolution.
//
// 2. Expand: inline case annotations contribute one argument set each,
// in declaration order; case-source annotations then contribute the
// elements of their resolved members, converted per the argument
// binding rules. Inline sets always precede source-derived sets.
//
// 3. Validate: each argument set (or the no-argument case) becomes a
// plan.Unit. Signature mismatches never raise; the unit is returned
// NotRunnable with a stable reason string for reporting.
//
// 4. Assemble: zero or one argument sets produce a single Unit; two or
// more produce a plan.Group in expansion order.
//
// SOFT FAILURE:
//
// A case-source reference that is missing, ambiguous, or not enumerable
// contributes zero argument sets, silently. Downstream callers may
// depend on silently-fewer cases, so this is load-bearing behavior, not
// an oversight. Genuinely unexpected failures (a source member panics
// when read) propagate to the caller.
//
// DETERMINISM:
//
// All ordering derives from annotation declaration order and source
// enumeration order. No global state is consulted; building the same
// declared method twice yields units identical except for generated
// IDs.
package build
