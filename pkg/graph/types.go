package graph

import "slices"

// DefaultEdgeWeight is assigned to edges that omit an explicit weight.
const DefaultEdgeWeight = 1.0

// Node is a single entity in the relationship graph. Nodes are immutable
// once read from the external source.
type Node struct {
	ID         string `json:"id" bson:"id"`
	Title      string `json:"title,omitempty" bson:"title,omitempty"`
	Standalone bool   `json:"standalone,omitempty" bson:"standalone,omitempty"`
}

// DisplayTitle returns the title if set, otherwise the ID.
func (n Node) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// Edge is a weighted relationship between two nodes. Edges are recorded
// directionally but the layout pipeline treats them as undirected.
type Edge struct {
	Source string  `json:"source" bson:"source"`
	Target string  `json:"target" bson:"target"`
	Weight float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// Metadata carries summary counts supplied alongside the graph.
type Metadata struct {
	TotalNodes      int `json:"total_nodes" bson:"total_nodes"`
	TotalEdges      int `json:"total_edges" bson:"total_edges"`
	StandaloneNodes int `json:"standalone_nodes" bson:"standalone_nodes"`
}

// Graph is the canonical serialization format for relationship graphs.
// It is a read-only input to the layout pipeline, supplied wholesale by an
// external collaborator. Nodes are kept sorted by ID for deterministic
// output.
type Graph struct {
	Nodes []Node   `json:"nodes" bson:"nodes"`
	Edges []Edge   `json:"edges" bson:"edges"`
	Meta  Metadata `json:"metadata" bson:"metadata"`
}

// New builds a Graph from nodes and edges, sorting nodes by ID, applying
// the default weight to unweighted edges, and recomputing metadata counts.
func New(nodes []Node, edges []Edge) Graph {
	ns := slices.Clone(nodes)
	slices.SortFunc(ns, func(a, b Node) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	es := slices.Clone(edges)
	for i := range es {
		if es[i].Weight == 0 {
			es[i].Weight = DefaultEdgeWeight
		}
	}

	standalone := 0
	for _, n := range ns {
		if n.Standalone {
			standalone++
		}
	}

	return Graph{
		Nodes: ns,
		Edges: es,
		Meta: Metadata{
			TotalNodes:      len(ns),
			TotalEdges:      len(es),
			StandaloneNodes: standalone,
		},
	}
}

// NodeIDs returns the IDs of all nodes in sorted order.
func (g Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	slices.Sort(ids)
	return ids
}

// NodeCount returns the number of nodes.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// HasNode reports whether a node with the given ID exists.
func (g Graph) HasNode(id string) bool {
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}
