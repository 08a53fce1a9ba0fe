package cluster

import (
	"math"

	"github.com/spherelab/constellation/pkg/sphere"
)

// PositionOptions controls cluster center placement and cap sizing.
type PositionOptions struct {
	// Coverage is the fraction of total sphere area the clusters may
	// occupy together.
	Coverage float64

	// MinRadius clamps each cluster's angular radius from below, radians.
	MinRadius float64
}

// Position places cluster centers on the unit sphere using a Fibonacci
// distribution and assigns each cluster an angular radius derived from its
// share of the total node count.
//
// A cluster's cap area is coverage * (size / totalNodes) * 4*pi, converted
// to an angular radius and clamped to MinRadius. The radius is therefore
// monotonically non-decreasing in member count. Clusters should be sorted
// largest-first before calling so the biggest groups claim the first,
// best-spaced slots; the first Fibonacci point faces the camera.
func Position(clusters []Cluster, totalNodes int, opts PositionOptions) []Cluster {
	if len(clusters) == 0 {
		return clusters
	}

	centers := sphere.FibonacciSphere(len(clusters))
	for i := range clusters {
		clusters[i].Center = centers[i]
		clusters[i].Radius = capRadius(clusters[i].Size, totalNodes, opts)
	}
	return clusters
}

func capRadius(size, totalNodes int, opts PositionOptions) float64 {
	if totalNodes <= 0 {
		return opts.MinRadius
	}
	area := opts.Coverage * (float64(size) / float64(totalNodes)) * 4 * math.Pi
	return math.Max(sphere.AreaToRadius(area), opts.MinRadius)
}
