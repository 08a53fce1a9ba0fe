package cluster

import (
	"math"

	"github.com/spherelab/constellation/pkg/sphere"
)

// RefineOptions controls the iterative overlap-elimination pass.
type RefineOptions struct {
	// Iterations bounds the number of refinement rounds.
	Iterations int

	// Margin is the required angular separation beyond the sum of two
	// cluster radii, radians.
	Margin float64

	// Damping scales the accumulated displacement applied per round.
	Damping float64
}

// RefineResult reports the outcome of a refinement run. Success is false
// when cap overlaps remain after the iteration budget; that is a
// degraded-quality result for the caller to judge, not an error.
type RefineResult struct {
	Clusters          []Cluster
	Success           bool
	Iterations        int
	RemainingOverlaps int
	TotalDisplacement float64
}

// convergenceEps stops refinement when the summed per-round displacement is
// effectively zero.
const convergenceEps = 1e-6

// Refine iteratively displaces cluster centers until no two spherical caps
// overlap (including the configured margin) or the iteration budget is
// exhausted. Each round accumulates a repulsive force per cluster,
// proportional to the pairwise overlap and directed along the great circle
// away from the other center, then moves each center by Damping times its
// force and projects it back onto the unit sphere.
//
// The input slice is not modified; refined copies are returned.
func Refine(clusters []Cluster, opts RefineOptions) RefineResult {
	refined := make([]Cluster, len(clusters))
	copy(refined, clusters)

	result := RefineResult{Clusters: refined}
	if len(refined) < 2 {
		result.Success = true
		return result
	}

	for iter := 0; iter < opts.Iterations; iter++ {
		forces := make([]sphere.Vec3, len(refined))
		overlapping := false

		for i := 0; i < len(refined); i++ {
			for j := i + 1; j < len(refined); j++ {
				dist := sphere.GeodesicDistance(refined[i].Center, refined[j].Center)
				required := refined[i].Radius + refined[j].Radius + opts.Margin
				if dist >= required {
					continue
				}
				overlapping = true

				overlap := required - dist
				dir := awayDirection(refined[i].Center, refined[j].Center)
				forces[i] = forces[i].Add(dir.Scale(overlap / 2))
				forces[j] = forces[j].Sub(dir.Scale(overlap / 2))
			}
		}

		if !overlapping {
			result.Success = true
			result.Iterations = iter
			return result
		}

		total := 0.0
		for i := range refined {
			step := forces[i].Scale(opts.Damping)
			total += step.Norm()
			refined[i].Center = refined[i].Center.Add(step).Normalize()
		}
		result.Iterations = iter + 1
		result.TotalDisplacement = total

		if total < convergenceEps {
			break
		}
	}

	result.RemainingOverlaps = countOverlaps(refined, opts.Margin)
	result.Success = result.RemainingOverlaps == 0
	return result
}

// awayDirection returns the unit tangent at a pointing along the great
// circle away from b. When the two centers coincide there is no defined
// direction, so a fixed tangent-basis direction is used as a tie-break.
func awayDirection(a, b sphere.Vec3) sphere.Vec3 {
	dot := a.Dot(b)
	// Negated tangent component of b at a: the great-circle direction that
	// increases the distance between the two centers.
	tangential := a.Scale(dot).Sub(b).Normalize()
	if tangential.Norm() < 0.5 {
		// a and b (anti)parallel: any tangent direction works.
		return sphere.TangentBasis(a).E1
	}
	return tangential
}

// HasOverlaps reports whether any pair of clusters violates the separation
// requirement for the given margin.
func HasOverlaps(clusters []Cluster, margin float64) bool {
	return countOverlaps(clusters, margin) > 0
}

// MinimumMarginNeeded returns the smallest angular slack across all cluster
// pairs: the largest margin for which HasOverlaps still reports false.
// A negative value means some pair of caps already overlaps. Returns +Inf
// for fewer than two clusters.
func MinimumMarginNeeded(clusters []Cluster) float64 {
	minSlack := math.Inf(1)
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			dist := sphere.GeodesicDistance(clusters[i].Center, clusters[j].Center)
			slack := dist - clusters[i].Radius - clusters[j].Radius
			minSlack = math.Min(minSlack, slack)
		}
	}
	return minSlack
}

func countOverlaps(clusters []Cluster, margin float64) int {
	count := 0
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			dist := sphere.GeodesicDistance(clusters[i].Center, clusters[j].Center)
			if dist < clusters[i].Radius+clusters[j].Radius+margin {
				count++
			}
		}
	}
	return count
}
