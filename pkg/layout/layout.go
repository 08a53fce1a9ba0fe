package layout

import (
	"context"
	"time"

	"github.com/spherelab/constellation/pkg/cluster"
	"github.com/spherelab/constellation/pkg/force"
	"github.com/spherelab/constellation/pkg/graph"
	"github.com/spherelab/constellation/pkg/sphere"
)

// Result is the output of a layout run: one world-space position per node
// plus run statistics.
type Result struct {
	// Positions maps node ID to a point on the sphere surface. Every
	// position has magnitude Config.SphereRadius.
	Positions map[string]sphere.Vec3

	// Clusters are the positioned, refined clusters the layout was built
	// from, for diagnostics and inspection. Frozen after the run.
	Clusters []cluster.Cluster

	Stats Stats
}

// Stats summarizes a layout run.
type Stats struct {
	Clusters          int           `json:"clusters" bson:"clusters"`
	Nodes             int           `json:"nodes" bson:"nodes"`
	Edges             int           `json:"edges" bson:"edges"`
	DroppedEdges      int           `json:"dropped_edges,omitempty" bson:"dropped_edges,omitempty"`
	Fallback          int           `json:"fallback,omitempty" bson:"fallback,omitempty"`
	Duration          time.Duration `json:"duration" bson:"duration"`
	RefinementSuccess bool          `json:"refinement_success" bson:"refinement_success"`
	RemainingOverlaps int           `json:"remaining_overlaps,omitempty" bson:"remaining_overlaps,omitempty"`
}

// Compute runs the full constellation pipeline: detect connected
// components, size and place them on the unit sphere, refine away cap
// overlaps, lay out each cluster's members force-directed in its tangent
// plane, project them onto the sphere, and scale to world radius. Nodes
// listed in allNodes but absent from the graph receive deterministic
// fallback positions so every input node is always covered.
//
// The context is checked between clusters so large runs can be cancelled;
// the computation itself is pure and retains no state between calls.
func Compute(ctx context.Context, g graph.Graph, allNodes []string, cfg Config) (Result, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	logger := cfg.Logger

	adj, dropped := graph.BuildAdjacency(g)
	if dropped > 0 {
		logger.Warn("dropped phantom edges", "count", dropped)
	}

	clusters := cluster.Detect(adj)
	cluster.SortBySizeDesc(clusters)
	logger.Debug("detected clusters", "count", len(clusters))

	clusters = cluster.Position(clusters, g.NodeCount(), cluster.PositionOptions{
		Coverage:  cfg.CoverageFactor,
		MinRadius: cfg.MinRadius,
	})

	refinement := cluster.Refine(clusters, cluster.RefineOptions{
		Iterations: cfg.RefinementIterations,
		Margin:     cfg.RefinementMargin,
		Damping:    cfg.RefinementDamping,
	})
	clusters = refinement.Clusters
	if !refinement.Success {
		logger.Warn("cluster refinement exhausted its budget",
			"iterations", refinement.Iterations,
			"remaining_overlaps", refinement.RemainingOverlaps)
	}

	positions := make(map[string]sphere.Vec3, g.NodeCount())
	for i := range clusters {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		placeCluster(positions, g, clusters[i], cfg)
	}

	fallback := fillGaps(positions, allNodes, cfg.SphereRadius)
	if fallback > 0 {
		logger.Debug("gap-filled nodes outside the graph", "count", fallback)
	}

	result := Result{
		Positions: positions,
		Clusters:  clusters,
		Stats: Stats{
			Clusters:          len(clusters),
			Nodes:             g.NodeCount(),
			Edges:             g.EdgeCount(),
			DroppedEdges:      dropped,
			Fallback:          fallback,
			Duration:          time.Since(start),
			RefinementSuccess: refinement.Success,
			RemainingOverlaps: refinement.RemainingOverlaps,
		},
	}

	if err := validate(result.Positions, cfg.SphereRadius); err != nil {
		return Result{}, err
	}
	return result, nil
}

// placeCluster lays out one cluster's members in its tangent plane and
// projects them onto the world sphere.
func placeCluster(out map[string]sphere.Vec3, g graph.Graph, c cluster.Cluster, cfg Config) {
	planar := force.Layout(c.Members, graph.SubgraphEdges(g, c.Members), c.Radius, force.Options{
		Iterations:         cfg.ForceIterations,
		Repulsion:          cfg.RepulsionStrength,
		Attraction:         cfg.AttractionStrength,
		InitialTemperature: cfg.InitialTemperature,
		// Offset by the cluster ID so sibling clusters do not start from
		// identical planar arrangements.
		Seed: cfg.Seed + uint64(c.ID),
	})

	basis := sphere.TangentBasis(c.Center)
	for id, p := range planar {
		unit := sphere.ExpMap(c.Center, p, basis)
		out[id] = sphere.ScaleToRadius(unit, cfg.SphereRadius)
	}
}
