package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spherelab/constellation/pkg/cache"
	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/graph"
	"github.com/spherelab/constellation/pkg/layout"
	"github.com/spherelab/constellation/pkg/observability"
)

// Runner encapsulates layout execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute computes the layout for a graph with caching. Nodes listed in
// allNodes but missing from the graph still receive fallback positions.
func (r *Runner) Execute(ctx context.Context, g graph.Graph, allNodes []string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	graphData, err := graph.MarshalGraph(g)
	if err != nil {
		return nil, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	result.GraphHash = cache.Hash(graphData)

	start := time.Now()
	doc, hit, err := r.layoutWithCacheInfo(ctx, g, allNodes, result.GraphHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Document = doc
	result.Stats.LayoutTime = time.Since(start)
	result.CacheInfo.LayoutHit = hit

	opts.Logger.Info("computed layout",
		"nodes", len(doc.Positions),
		"clusters", len(doc.Clusters),
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// layoutWithCacheInfo computes or loads a layout and reports whether it
// came from cache.
func (r *Runner) layoutWithCacheInfo(ctx context.Context, g graph.Graph, allNodes []string, graphHash string, opts Options) (export.Document, bool, error) {
	cacheKey := r.Keyer.LayoutKey(graphHash, opts.layoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			doc, err := export.UnmarshalDocument(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return doc, true, nil
			}
			// Corrupt entry, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	observability.Layout().OnLayoutStart(ctx, g.NodeCount(), g.EdgeCount())
	start := time.Now()
	res, err := layout.Compute(ctx, g, allNodes, opts.Layout)
	observability.Layout().OnLayoutComplete(ctx, len(res.Clusters), time.Since(start), err)
	if err != nil {
		return export.Document{}, false, err
	}
	if !res.Stats.RefinementSuccess {
		observability.Layout().OnRefinementDegraded(ctx, res.Stats.RemainingOverlaps)
		opts.Logger.Warn("refinement left overlapping clusters",
			"remaining", res.Stats.RemainingOverlaps)
	}

	doc := export.FromResult(res, opts.Layout.SphereRadius)

	if data, err := export.MarshalDocument(doc); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return doc, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
