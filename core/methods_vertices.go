// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle, labels and degree queries.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Vertex catalog under muVert; adjacency bootstrap under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]*Edge)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// SetLabel attaches a display label to an existing vertex.
func (g *Graph) SetLabel(id, label string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Label = label

	return nil
}

// Label returns the display label of id, falling back to id itself.
func (g *Graph) Label(id string) string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if v, ok := g.vertices[id]; ok && v.Label != "" {
		return v.Label
	}

	return id
}

// HasVertex reports whether the vertex exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(E) in the worst case (incident edge scan).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			unlink(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints at id.
//
// Undirected: incident edges, a self-loop counting twice.
// Directed:   in-degree + out-degree.
//
// Complexity: O(deg) undirected, O(V) directed (in-degree scan).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := g.adjacency[id]
	deg := len(out)
	if _, loop := out[id]; loop {
		deg++
	}
	if !g.directed {
		return deg, nil
	}
	for from, m := range g.adjacency {
		if from == id {
			continue
		}
		if _, ok := m[id]; ok {
			deg++
		}
	}

	return deg, nil
}

// Strength returns the sum of weights of the edges counted by Degree.
func (g *Graph) Strength(id string) (float64, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var s float64
	for to, e := range g.adjacency[id] {
		s += e.Weight
		if to == id {
			s += e.Weight
		}
	}
	if g.directed {
		for from, m := range g.adjacency {
			if from == id {
				continue
			}
			if e, ok := m[id]; ok {
				s += e.Weight
			}
		}
	}

	return s, nil
}
