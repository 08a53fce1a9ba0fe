package pipeline

import (
	"context"
	"testing"

	"github.com/spherelab/constellation/pkg/cache"
	"github.com/spherelab/constellation/pkg/graph"
	"github.com/spherelab/constellation/pkg/layout"
)

func testGraph() graph.Graph {
	return graph.New(
		[]graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]graph.Edge{{Source: "a", Target: "b"}},
	)
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Layout.SphereRadius != layout.DefaultSphereRadius {
		t.Errorf("SphereRadius = %g", opts.Layout.SphereRadius)
	}
	if opts.Logger == nil {
		t.Error("Logger not defaulted")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}
}

func TestValidateAndSetDefaultsInvalid(t *testing.T) {
	opts := Options{}
	opts.Layout.CoverageFactor = 2.0
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for coverage factor > 1")
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	g := testGraph()
	result, err := r.Execute(context.Background(), g, g.NodeIDs(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(result.Document.Positions) != 3 {
		t.Errorf("positions = %d, want 3", len(result.Document.Positions))
	}
	if result.GraphHash == "" {
		t.Error("GraphHash not set")
	}
	if result.CacheInfo.LayoutHit {
		t.Error("unexpected cache hit with NullCache")
	}
	if result.Stats.NodeCount != 3 || result.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	g := testGraph()
	ctx := context.Background()

	first, err := r.Execute(ctx, g, g.NodeIDs(), Options{})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(ctx, g, g.NodeIDs(), Options{})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit")
	}
	if len(second.Document.Positions) != len(first.Document.Positions) {
		t.Error("cached document differs from computed one")
	}
	for id, p := range first.Document.Positions {
		if second.Document.Positions[id] != p {
			t.Errorf("node %s moved between cached runs", id)
		}
	}
}

func TestRunnerExecuteRefresh(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	g := testGraph()
	ctx := context.Background()

	if _, err := r.Execute(ctx, g, g.NodeIDs(), Options{}); err != nil {
		t.Fatal(err)
	}

	refreshed, err := r.Execute(ctx, g, g.NodeIDs(), Options{Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.LayoutHit {
		t.Error("Refresh should bypass the cache")
	}
}

func TestRunnerExecuteConfigChangesKey(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	g := testGraph()
	ctx := context.Background()

	if _, err := r.Execute(ctx, g, g.NodeIDs(), Options{}); err != nil {
		t.Fatal(err)
	}

	// A different seed must not reuse the cached layout.
	opts := Options{}
	opts.Layout.Seed = 7
	result, err := r.Execute(ctx, g, g.NodeIDs(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.LayoutHit {
		t.Error("changed config should produce a cache miss")
	}
}
