package cluster

import (
	"slices"

	"github.com/spherelab/constellation/pkg/graph"
)

// Detect finds the connected components of the undirected adjacency index.
// Every node belongs to exactly one returned cluster; isolated nodes form
// singleton clusters. Traversal starts from nodes in sorted ID order, so
// the result is deterministic for a given graph. Runs in O(V + E).
func Detect(adj graph.Adjacency) []Cluster {
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	visited := make(map[string]bool, len(ids))
	var clusters []Cluster

	for _, start := range ids {
		if visited[start] {
			continue
		}

		members := traverse(adj, start, visited)
		slices.Sort(members)
		clusters = append(clusters, Cluster{
			ID:      len(clusters),
			Members: members,
			Size:    len(members),
		})
	}
	return clusters
}

// traverse collects the component reachable from start with an iterative
// depth-first search, marking every visited node.
func traverse(adj graph.Adjacency, start string, visited map[string]bool) []string {
	stack := []string{start}
	visited[start] = true
	var members []string

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, id)

		for _, neighbor := range adj[id] {
			if !visited[neighbor] {
				visited[neighbor] = true
				stack = append(stack, neighbor)
			}
		}
	}
	return members
}
