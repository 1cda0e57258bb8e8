// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries nextEdgeID so edges added to the clone never collide with copied IDs.
// Concurrency:
//   - Read locks on the source only.

package core

// CloneEmpty returns a new Graph with identical flags and vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	clone.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Label: v.Label}
		clone.adjacency[id] = make(map[string]*Edge)
	}

	return clone
}

// Clone returns a deep copy of the Graph: flags, vertices, labels, edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		link(clone, &ne)
	}

	return clone
}
