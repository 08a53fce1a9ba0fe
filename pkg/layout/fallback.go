package layout

import (
	"slices"

	"github.com/spherelab/constellation/pkg/sphere"
)

// fillGaps assigns a deterministic position to every ID in allNodes that is
// missing from positions. The relationship graph may be a strict subset of
// the caller's node universe; nodes outside it still need somewhere to
// live. Missing nodes are sorted and given their own Fibonacci-sphere
// slots, scaled to the world radius. Returns the number of filled nodes.
func fillGaps(positions map[string]sphere.Vec3, allNodes []string, radius float64) int {
	var missing []string
	for _, id := range allNodes {
		if _, ok := positions[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return 0
	}

	slices.Sort(missing)
	missing = slices.Compact(missing)

	slots := sphere.FibonacciSphere(len(missing))
	for i, id := range missing {
		positions[id] = sphere.ScaleToRadius(slots[i], radius)
	}
	return len(missing)
}
