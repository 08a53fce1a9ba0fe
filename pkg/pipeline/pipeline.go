// Package pipeline provides the cached layout pipeline shared by the CLI
// and the server.
//
// By centralizing the compute-and-cache logic, both entry points behave
// identically: same cache keys, same defaults, same stats.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, g, g.NodeIDs(), pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := result.Document
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spherelab/constellation/pkg/cache"
	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/layout"
)

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout parameters. Zero values take the layout package defaults.
	Layout layout.Config `json:"layout"`

	// Refresh bypasses the cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults applies layout defaults and validates the options.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.Layout.ApplyDefaults()
	o.Layout.Logger = o.Logger
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// layoutKeyOpts maps the layout configuration onto cache key options so
// any parameter change invalidates cached layouts.
func (o *Options) layoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		SphereRadius:      o.Layout.SphereRadius,
		CoverageFactor:    o.Layout.CoverageFactor,
		MinRadius:         o.Layout.MinRadius,
		ForceIterations:   o.Layout.ForceIterations,
		RefineIterations:  o.Layout.RefinementIterations,
		RefinementMargin:  o.Layout.RefinementMargin,
		RefinementDamping: o.Layout.RefinementDamping,
		Seed:              o.Layout.Seed,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the computed layout ready for serialization.
	Document export.Document

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the layout came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
}
