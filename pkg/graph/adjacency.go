package graph

// Adjacency maps a node ID to its undirected neighbors. Edges recorded in
// either direction contribute to both endpoints' neighbor lists.
type Adjacency map[string][]string

// BuildAdjacency constructs the undirected adjacency index for g.
//
// Edges that reference a node absent from the graph are phantom references
// from the external source; they are dropped here rather than propagated
// into clustering, and the number of dropped edges is returned for
// reporting. Every node appears as a key, including isolated nodes.
func BuildAdjacency(g Graph) (Adjacency, int) {
	known := make(map[string]struct{}, len(g.Nodes))
	adj := make(Adjacency, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n.ID] = struct{}{}
		adj[n.ID] = nil
	}

	dropped := 0
	for _, e := range g.Edges {
		if _, ok := known[e.Source]; !ok {
			dropped++
			continue
		}
		if _, ok := known[e.Target]; !ok {
			dropped++
			continue
		}
		if e.Source == e.Target {
			continue // self-loops carry no clustering information
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	return adj, dropped
}

// SubgraphEdges returns the edges of g whose endpoints are both contained
// in the given member set. Used to extract a cluster's induced subgraph for
// local layout.
func SubgraphEdges(g Graph, members []string) []Edge {
	set := make(map[string]struct{}, len(members))
	for _, id := range members {
		set[id] = struct{}{}
	}

	var edges []Edge
	for _, e := range g.Edges {
		if _, ok := set[e.Source]; !ok {
			continue
		}
		if _, ok := set[e.Target]; !ok {
			continue
		}
		edges = append(edges, e)
	}
	return edges
}
