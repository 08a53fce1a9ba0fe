package export

import (
	"strings"
	"testing"

	"github.com/spherelab/constellation/pkg/cluster"
	"github.com/spherelab/constellation/pkg/graph"
)

func testGraph() (graph.Graph, []cluster.Cluster) {
	g := graph.New(
		[]graph.Node{
			{ID: "a", Title: "Alpha"},
			{ID: "b", Title: "Beta"},
			{ID: "c", Title: "Gamma"},
		},
		[]graph.Edge{{Source: "a", Target: "b"}},
	)
	clusters := []cluster.Cluster{
		{ID: 0, Members: []string{"a", "b"}, Size: 2},
		{ID: 1, Members: []string{"c"}, Size: 1},
	}
	return g, clusters
}

func TestToDOT(t *testing.T) {
	g, clusters := testGraph()
	dot := ToDOT(g, clusters, DOTOptions{})

	if !strings.HasPrefix(dot, "graph constellation {") {
		t.Errorf("unexpected DOT header: %q", dot[:40])
	}
	for _, id := range []string{`"a"`, `"b"`, `"c"`} {
		if !strings.Contains(dot, id) {
			t.Errorf("DOT missing node %s", id)
		}
	}
	if !strings.Contains(dot, `"a" -- "b";`) {
		t.Error("DOT missing edge a -- b")
	}

	// Nodes in the same cluster share a color, different clusters differ.
	colorOf := func(id string) string {
		for _, line := range strings.Split(dot, "\n") {
			if strings.Contains(line, `"`+id+`" [`) {
				i := strings.Index(line, "fillcolor=")
				return line[i:]
			}
		}
		t.Fatalf("no node line for %s", id)
		return ""
	}
	if colorOf("a") != colorOf("b") {
		t.Error("nodes a and b in same cluster should share a color")
	}
	if colorOf("a") == colorOf("c") {
		t.Error("nodes in different clusters should differ in color")
	}
}

func TestToDOTLabels(t *testing.T) {
	g, clusters := testGraph()

	plain := ToDOT(g, clusters, DOTOptions{})
	if strings.Contains(plain, "Alpha") {
		t.Error("titles should not appear without Labels")
	}

	labeled := ToDOT(g, clusters, DOTOptions{Labels: true})
	if !strings.Contains(labeled, "Alpha") {
		t.Error("titles should appear with Labels")
	}
}

func TestToDOTUnclusteredNode(t *testing.T) {
	g := graph.New([]graph.Node{{ID: "orphan"}}, nil)
	dot := ToDOT(g, nil, DOTOptions{})

	if !strings.Contains(dot, "lightgrey") {
		t.Error("unclustered node should fall back to grey")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?><svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(svg))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if strings.Contains(out, "100pt") {
		t.Error("point-based width should be replaced")
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	svg := []byte(`<svg><g/></svg>`)
	if got := string(normalizeViewBox(svg)); got != string(svg) {
		t.Errorf("SVG without viewBox should pass through, got %s", got)
	}
}
