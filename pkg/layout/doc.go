// Package layout composes the constellation pipeline: cluster detection,
// global cap placement, overlap refinement, per-cluster force-directed
// layout, and projection onto the world sphere.
//
// Compute is a pure function of its inputs plus the configured random
// seed: no state survives between invocations and concurrent calls on
// different inputs are safe. Refinement that cannot eliminate every cap
// overlap within its budget is reported through Stats rather than as an
// error; the only error paths are invalid configuration, cancellation,
// and internal invariant violations.
package layout
