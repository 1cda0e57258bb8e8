// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views (topology copies with altered properties).

package core

// UnweightedView returns a copy of g with the weighted flag off and every
// edge weight set to 0. Edge IDs and labels are preserved.
// Complexity: O(V + E).
func UnweightedView(g *Graph) *Graph {
	out := g.Clone()
	out.weighted = false
	for _, e := range out.edges {
		e.Weight = 0
	}

	return out
}

// InducedSubgraph returns a copy of g restricted to the vertices in keep and
// the edges whose endpoints are both kept.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := g.Clone()
	for id := range out.vertices {
		if keep[id] {
			continue
		}
		_ = out.RemoveVertex(id)
	}

	return out
}
