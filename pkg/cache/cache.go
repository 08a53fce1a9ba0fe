// Package cache provides pluggable caching for graphs and computed layouts.
//
// Two backends ship with the engine: a file-based cache for CLI usage and a
// Redis cache for server deployments. A NullCache disables caching entirely.
//
// Keys are generated through the Keyer interface so that multi-tenant
// deployments can namespace entries (see ScopedKeyer).
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type.
const (
	// TTLGraph is how long parsed graphs stay cached.
	TTLGraph = 24 * time.Hour

	// TTLLayout is how long computed layouts stay cached. Layouts are
	// deterministic for a given graph and configuration, so they can
	// live longer than the graphs they came from.
	TTLLayout = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// Errors are reserved for backend failures, not misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts captures the configuration knobs that affect layout output.
// Two layouts with the same graph but different options must never share a
// cache entry.
type LayoutKeyOpts struct {
	SphereRadius      float64
	CoverageFactor    float64
	MinRadius         float64
	ForceIterations   int
	RefineIterations  int
	RefinementMargin  float64
	RefinementDamping float64
	Seed              uint64
}

// Keyer generates cache keys for the different entry types.
type Keyer interface {
	// GraphKey generates a key for a stored graph identified by source name.
	GraphKey(source string) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a stored graph.
func (k *DefaultKeyer) GraphKey(source string) string {
	return "graph:" + Hash([]byte(source))
}

// LayoutKey generates a key for a computed layout. The options are hashed
// into the key so that configuration changes invalidate cached layouts.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}
