// SPDX-License-Identifier: MIT

package threshold

import (
	"math"
	"sort"

	"github.com/katalvlaran/coactive/core"
)

// ApplyCost keeps the floor(cost · N(N−1)/2) strongest edges of g, N being
// the vertex count.
//
// Implementation:
//   - Stage 1: keep = floor(cost · N(N−1)/2); weights sorted descending.
//   - Stage 2: keep == 0 removes every edge; keep >= |E| keeps every edge.
//   - Stage 3: otherwise t = sorted[keep−1] and edges with weight < t are
//     removed. Ties at t survive, so the result may hold more than keep edges.
//
// Complexity: O(V + E log E).
func ApplyCost(g *core.Graph, cost float64, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if math.IsNaN(cost) || cost < 0 || cost > 1 {
		return nil, ErrBadCost
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	keep := int(math.Floor(cost * float64(n*(n-1)/2)))
	out := g.Clone()
	edges := out.Edges()

	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = e.Weight
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))

	cut := keep - 1
	if o.legacyOffset {
		cut = keep + 1
	}
	switch {
	case !o.legacyOffset && keep == 0:
		out.FilterEdges(func(core.Edge) bool { return false })
	case cut >= len(weights):
		// nothing to remove
	default:
		t := weights[cut]
		out.FilterEdges(func(e core.Edge) bool { return e.Weight >= t })
	}

	return out, nil
}

// RemoveBelow removes every edge with weight < minWeight, then every vertex
// whose degree in the pruned graph is below 2. The vertex pass runs once;
// vertices left under-connected by it are not revisited.
//
// Complexity: O(V + E).
func RemoveBelow(g *core.Graph, minWeight float64) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if math.IsNaN(minWeight) || math.IsInf(minWeight, 0) {
		return nil, ErrBadWeight
	}
	out := g.Clone()
	out.FilterEdges(func(e core.Edge) bool { return e.Weight >= minWeight })

	var drop []string
	for _, id := range out.Vertices() {
		if d, _ := out.Degree(id); d < 2 {
			drop = append(drop, id)
		}
	}
	for _, id := range drop {
		_ = out.RemoveVertex(id)
	}

	return out, nil
}

// RemoveEdgeless returns a copy of g without degree-0 vertices.
func RemoveEdgeless(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	keep := make(map[string]bool, g.VertexCount())
	for _, id := range g.Vertices() {
		if d, _ := g.Degree(id); d > 0 {
			keep[id] = true
		}
	}

	return core.InducedSubgraph(g, keep), nil
}

// Binarize returns a weighted graph over the same vertices with weight 1 on
// every edge whose weight is > 0; other edges are dropped. Edges of an
// unweighted graph all count as present.
func Binarize(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := []core.GraphOption{core.WithDirected(g.Directed()), core.WithWeighted()}
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	out := core.NewGraph(opts...)
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
		_ = out.SetLabel(id, g.Label(id))
	}
	for _, e := range g.Edges() {
		if g.Weighted() && e.Weight <= 0 {
			continue
		}
		if _, err := out.AddEdge(e.From, e.To, 1); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// StripWeights returns an unweighted copy of g (topology only).
func StripWeights(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return core.UnweightedView(g), nil
}
