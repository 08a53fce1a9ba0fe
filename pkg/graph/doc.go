// Package graph defines the relationship-graph data model consumed by the
// constellation layout pipeline, its JSON serialization, and the undirected
// adjacency index built from it.
//
// The graph is a read-only input: nodes and edges are supplied wholesale by
// an external collaborator and never mutated by the pipeline. Edges may be
// recorded directionally but are treated as undirected for clustering.
// Edges referencing unknown node IDs ("phantom" edges) are filtered out
// when the adjacency index is built.
package graph
