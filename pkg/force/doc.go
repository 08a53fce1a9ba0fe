// Package force lays out a single cluster's members in a flat 2D disk
// using the Fruchterman-Reingold force-directed algorithm with simulated
// annealing. The disk is the cluster's tangent-plane footprint; the layout
// orchestrator lifts the resulting planar positions onto the sphere via
// the exponential map.
//
// Randomness is confined to the seeded initial placement, so layouts are
// reproducible for a fixed seed.
package force
