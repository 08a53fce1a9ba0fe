package cluster

import (
	"slices"

	"github.com/spherelab/constellation/pkg/sphere"
)

// Cluster is a maximal connected component of the relationship graph,
// positioned as one spatial unit on the sphere. Center and Radius are
// populated by Position and adjusted by Refine; after refinement the
// cluster is frozen.
type Cluster struct {
	ID      int
	Members []string
	Center  sphere.Vec3
	Radius  float64 // angular radius of the cluster's cap, radians
	Size    int
}

// SortBySizeDesc orders clusters largest-first, breaking ties by ID so the
// order is deterministic. Positioning big clusters first gives them the
// best-spaced Fibonacci slots, akin to bin-packing by size.
func SortBySizeDesc(clusters []Cluster) {
	slices.SortFunc(clusters, func(a, b Cluster) int {
		if a.Size != b.Size {
			return b.Size - a.Size
		}
		return a.ID - b.ID
	})
}
