// Package cluster groups relationship-graph nodes into connected
// components and positions each component on the unit sphere.
//
// The three stages mirror the layout pipeline: Detect finds the maximal
// connected components, Position assigns each one a Fibonacci-sphere
// center and a cap radius proportional to its member share, and Refine
// iteratively pushes overlapping caps apart along great circles.
//
// Refinement is best-effort: it may exhaust its iteration budget with
// overlaps remaining, in which case RefineResult.Success is false and the
// remaining overlap count is reported rather than hidden.
package cluster
