package force

import (
	"math"
	"math/rand"
	"slices"

	"github.com/spherelab/constellation/pkg/graph"
	"github.com/spherelab/constellation/pkg/sphere"
)

// Options configures the Fruchterman-Reingold simulation.
type Options struct {
	// Iterations is the number of simulation steps.
	Iterations int

	// Repulsion scales the pairwise node repulsion.
	Repulsion float64

	// Attraction scales the per-edge attraction.
	Attraction float64

	// InitialTemperature is the annealing start value as a fraction of the
	// disk radius. It cools linearly to zero over the iteration budget.
	InitialTemperature float64

	// Seed makes the initial placement reproducible. Two runs with the
	// same seed and inputs produce identical layouts.
	Seed uint64
}

// distEps floors pairwise distances so coincident nodes cannot produce a
// division by zero.
const distEps = 1e-6

// Layout places the given nodes inside a disk of the given radius using
// force-directed simulation: every node pair repels with magnitude
// repulsion*k^2/d, every edge attracts with magnitude attraction*d^2/k,
// and per-step displacement is capped by a linearly cooling temperature.
// Node positions are clamped to the disk after every step.
//
// The result is a heuristic arrangement, not an optimum; the only
// guarantee is that the iteration budget is exhausted. An empty id list
// yields an empty map and a single node is pinned to the disk center.
func Layout(ids []string, edges []graph.Edge, radius float64, opts Options) map[string]sphere.Planar {
	positions := make(map[string]sphere.Planar, len(ids))
	if len(ids) == 0 {
		return positions
	}
	if len(ids) == 1 {
		positions[ids[0]] = sphere.Planar{}
		return positions
	}

	ids = slices.Clone(ids)
	slices.Sort(ids) // iteration order must not depend on caller ordering

	rng := rand.New(rand.NewSource(int64(opts.Seed ^ 0xdeadbeef)))
	for _, id := range ids {
		positions[id] = randomInDisk(rng, radius*0.8)
	}

	// Ideal pairwise distance for the available disk area.
	k := radius * math.Sqrt(math.Pi/float64(len(ids)))

	for iter := 0; iter < opts.Iterations; iter++ {
		forces := make(map[string]sphere.Planar, len(ids))

		// Repulsion between every pair.
		for i, a := range ids {
			for _, b := range ids[i+1:] {
				dx := positions[a].X - positions[b].X
				dy := positions[a].Y - positions[b].Y
				d := math.Max(math.Hypot(dx, dy), distEps)

				f := opts.Repulsion * k * k / d
				fx, fy := dx/d*f, dy/d*f
				forces[a] = sphere.Planar{X: forces[a].X + fx, Y: forces[a].Y + fy}
				forces[b] = sphere.Planar{X: forces[b].X - fx, Y: forces[b].Y - fy}
			}
		}

		// Attraction along edges.
		for _, e := range edges {
			pa, okA := positions[e.Source]
			pb, okB := positions[e.Target]
			if !okA || !okB || e.Source == e.Target {
				continue
			}
			dx := pa.X - pb.X
			dy := pa.Y - pb.Y
			d := math.Hypot(dx, dy)
			if d < distEps {
				continue
			}

			weight := e.Weight
			if weight == 0 {
				weight = graph.DefaultEdgeWeight
			}
			f := opts.Attraction * weight * d * d / k
			fx, fy := dx/d*f, dy/d*f
			forces[e.Source] = sphere.Planar{X: forces[e.Source].X - fx, Y: forces[e.Source].Y - fy}
			forces[e.Target] = sphere.Planar{X: forces[e.Target].X + fx, Y: forces[e.Target].Y + fy}
		}

		// Linear cooling from the initial temperature to zero.
		temp := opts.InitialTemperature * radius * (1 - float64(iter)/float64(opts.Iterations))
		for _, id := range ids {
			positions[id] = step(positions[id], forces[id], temp, radius)
		}
	}

	return positions
}

// step moves a node by its net force capped at the current temperature,
// then clamps the result to the disk boundary.
func step(p, f sphere.Planar, temp, radius float64) sphere.Planar {
	mag := f.Norm()
	if mag > distEps && temp > 0 {
		scale := math.Min(mag, temp) / mag
		p = sphere.Planar{X: p.X + f.X*scale, Y: p.Y + f.Y*scale}
	}

	if r := p.Norm(); r > radius {
		p = sphere.Planar{X: p.X * radius / r, Y: p.Y * radius / r}
	}
	return p
}

// randomInDisk samples a point uniformly from a disk of the given radius.
func randomInDisk(rng *rand.Rand, radius float64) sphere.Planar {
	r := radius * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	return sphere.Planar{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
