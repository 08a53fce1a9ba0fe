package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spherelab/constellation/pkg/cluster"
	"github.com/spherelab/constellation/pkg/layout"
	"github.com/spherelab/constellation/pkg/sphere"
)

func testDocument() Document {
	result := layout.Result{
		Positions: map[string]sphere.Vec3{
			"a": {X: 0, Y: 0, Z: 10},
			"b": {X: 10, Y: 0, Z: 0},
		},
		Clusters: []cluster.Cluster{
			{ID: 0, Members: []string{"a", "b"}, Center: sphere.Vec3{Z: 1}, Radius: 0.5, Size: 2},
		},
		Stats: layout.Stats{Clusters: 1, Nodes: 2, RefinementSuccess: true},
	}
	return FromResult(result, 10)
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := testDocument()

	var buf bytes.Buffer
	if err := WriteDocument(&buf, doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	got, err := ReadDocument(&buf)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}

	if got.SphereRadius != 10 {
		t.Errorf("SphereRadius = %g, want 10", got.SphereRadius)
	}
	if len(got.Positions) != 2 {
		t.Errorf("positions = %d, want 2", len(got.Positions))
	}
	if got.Positions["a"] != doc.Positions["a"] {
		t.Errorf("position a = %v, want %v", got.Positions["a"], doc.Positions["a"])
	}
	if len(got.Clusters) != 1 || got.Clusters[0].Size != 2 {
		t.Errorf("clusters = %+v", got.Clusters)
	}
	if !got.Stats.RefinementSuccess {
		t.Error("RefinementSuccess lost in round trip")
	}
}

func TestDocumentFileRoundTrip(t *testing.T) {
	doc := testDocument()
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := WriteDocumentFile(path, doc); err != nil {
		t.Fatalf("WriteDocumentFile: %v", err)
	}
	got, err := ReadDocumentFile(path)
	if err != nil {
		t.Fatalf("ReadDocumentFile: %v", err)
	}
	if len(got.Positions) != len(doc.Positions) {
		t.Errorf("positions = %d, want %d", len(got.Positions), len(doc.Positions))
	}
}

func TestUnmarshalDocumentInvalid(t *testing.T) {
	if _, err := UnmarshalDocument([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestFromResultTimestamps(t *testing.T) {
	doc := FromResult(layout.Result{}, 10)
	if doc.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}
