package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spherelab/constellation/pkg/cluster"
	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/sphere"
)

func testClusterDoc() export.Document {
	return export.Document{
		SphereRadius: 10,
		Clusters: []cluster.Cluster{
			{ID: 0, Members: []string{"a"}, Center: sphere.Vec3{Z: 1}, Radius: 0.3, Size: 1},
			{ID: 1, Members: []string{"b", "c", "d"}, Center: sphere.Vec3{X: 1}, Radius: 0.8, Size: 3},
		},
	}
}

func TestNewClusterListModelSortsBySize(t *testing.T) {
	m := NewClusterListModel(testClusterDoc())

	if len(m.Clusters) != 2 {
		t.Fatalf("clusters = %d, want 2", len(m.Clusters))
	}
	if m.Clusters[0].Size != 3 {
		t.Errorf("largest cluster should be first, got size %d", m.Clusters[0].Size)
	}
}

func TestClusterListModelNavigation(t *testing.T) {
	m := NewClusterListModel(testClusterDoc())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ClusterListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	// Down at the end stays put
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ClusterListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(ClusterListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}
}

func TestClusterListModelExpand(t *testing.T) {
	m := NewClusterListModel(testClusterDoc())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ClusterListModel)
	if !m.Expanded {
		t.Error("enter should expand the selected cluster")
	}

	view := m.View()
	for _, id := range m.Clusters[0].Members {
		if !strings.Contains(view, id) {
			t.Errorf("expanded view missing member %s", id)
		}
	}
}

func TestClusterListModelQuit(t *testing.T) {
	m := NewClusterListModel(testClusterDoc())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestClusterListModelEmpty(t *testing.T) {
	m := NewClusterListModel(export.Document{})
	if view := m.View(); !strings.Contains(view, "no clusters") {
		t.Error("empty view should mention there are no clusters")
	}
}

func TestTruncateMembers(t *testing.T) {
	short := truncateMembers([]string{"a", "b"}, 4)
	if short != "a, b" {
		t.Errorf("short list = %q", short)
	}

	long := truncateMembers([]string{"a", "b", "c", "d", "e", "f"}, 4)
	if !strings.Contains(long, "+2") {
		t.Errorf("long list should elide: %q", long)
	}
}
