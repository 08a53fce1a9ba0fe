// Package sphere provides the spherical geometry primitives used by the
// constellation layout pipeline: tangent-plane bases, exponential and
// logarithmic maps between a flat tangent plane and the sphere surface,
// great-circle distances, spherical-cap area conversions, and golden-ratio
// point distributions.
//
// All functions are stateless and operate on unit vectors unless noted.
// Numeric degeneracies (zero-length displacements, antipodal points,
// floating-point overshoot at the acos boundaries) are handled with epsilon
// guards and fixed tie-breaks rather than errors; see the individual
// function documentation.
package sphere
