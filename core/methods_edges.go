// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries.
// Determinism:
//   - Edges() returns copies sorted by (From, To).
//   - Edge IDs are monotonic ("e" + decimal) per graph lineage.
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under read lock.

package core

import (
	"math"
	"sort"
	"strconv"
)

const edgeIDPrefix = 'e'

// AddEdge creates an edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight (finite; zero unless weighted), loops.
//  2. Ensure both endpoints exist.
//  3. Reject a parallel edge (either orientation when undirected).
//  4. Store and link adjacency; mirror when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adjacency[from][to]; ok {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10)),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges[e.ID] = e
	link(g, e)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if absent. Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	unlink(g, e)
	delete(g.edges, eid)

	return nil
}

// RemoveEdgeBetween deletes the edge joining from→to (either orientation
// when undirected).
func (g *Graph) RemoveEdgeBetween(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	unlink(g, e)
	delete(g.edges, e.ID)

	return nil
}

// HasEdge reports whether an edge from→to exists. O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns a copy of the edge joining from→to.
func (g *Graph) Edge(from, to string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Weight returns the weight of the edge joining from→to.
func (g *Graph) Weight(from, to string) (float64, error) {
	e, err := g.Edge(from, to)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes every edge for which keep returns false.
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !keep(*e) {
			unlink(g, e)
			delete(g.edges, eid)
		}
	}
}

// link registers e in the adjacency map. Caller holds muEdgeAdj.
func link(g *Graph, e *Edge) {
	if g.adjacency[e.From] == nil {
		g.adjacency[e.From] = make(map[string]*Edge)
	}
	g.adjacency[e.From][e.To] = e
	if !e.Directed && e.From != e.To {
		if g.adjacency[e.To] == nil {
			g.adjacency[e.To] = make(map[string]*Edge)
		}
		g.adjacency[e.To][e.From] = e
	}
}

// unlink removes e (and its mirror) from the adjacency map. Caller holds muEdgeAdj.
func unlink(g *Graph, e *Edge) {
	delete(g.adjacency[e.From], e.To)
	if !e.Directed {
		delete(g.adjacency[e.To], e.From)
	}
}
