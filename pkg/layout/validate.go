package layout

import (
	"math"

	"github.com/spherelab/constellation/pkg/errors"
	"github.com/spherelab/constellation/pkg/sphere"
)

// radiusTolerance is the allowed relative deviation of a position's
// magnitude from the configured sphere radius.
const radiusTolerance = 1e-6

// validate asserts the output invariants: no NaN or infinite coordinates,
// and every position lies on the sphere surface. A violation indicates a
// pipeline bug, reported as an internal error.
func validate(positions map[string]sphere.Vec3, radius float64) error {
	for id, p := range positions {
		if !p.IsFinite() {
			return errors.New(errors.ErrCodeInternal, "node %s has non-finite position %v", id, p)
		}
		if math.Abs(p.Norm()-radius) > radius*radiusTolerance {
			return errors.New(errors.ErrCodeInternal,
				"node %s at distance %g from origin, want %g", id, p.Norm(), radius)
		}
	}
	return nil
}
