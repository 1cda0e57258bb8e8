// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/coactive/bfs"
	"github.com/katalvlaran/coactive/core"
	"github.com/katalvlaran/coactive/dijkstra"
	"github.com/katalvlaran/coactive/errkind"
)

// shortestPaths is the single-source view Brandes and path length need.
type shortestPaths struct {
	order []string
	dist  map[string]float64
	sigma map[string]float64
	preds map[string][]string
}

// sourceFunc runs a single-source shortest-path search.
type sourceFunc func(g *core.Graph, src string) (*shortestPaths, error)

func hopPaths(g *core.Graph, src string) (*shortestPaths, error) {
	res, err := bfs.BFS(g, src)
	if err != nil {
		return nil, err
	}
	dist := make(map[string]float64, len(res.Depth))
	for id, d := range res.Depth {
		dist[id] = float64(d)
	}

	return &shortestPaths{order: res.Order, dist: dist, sigma: res.Sigma, preds: res.Preds}, nil
}

func weightedPaths(g *core.Graph, src string) (*shortestPaths, error) {
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
	if err != nil {
		return nil, err
	}
	dist := make(map[string]float64, len(res.Order))
	for _, id := range res.Order {
		dist[id] = res.Dist[id]
	}

	return &shortestPaths{order: res.Order, dist: dist, sigma: res.Sigma, preds: res.Preds}, nil
}

// RunBasic computes the unweighted metrics of g and its top-N rankings.
//
// Errors:
//   - ErrGraphNil, ErrDirectedGraph, ErrBadTopN.
//   - errkind.ErrDisconnectedGraph when g is not connected or has fewer
//     than two vertices.
//
// Complexity: O(V·E) for betweenness and path length, O(V·d²) clustering.
func RunBasic(g *core.Graph, topN int) (*Report, error) {
	if err := validate(g, topN); err != nil {
		return nil, err
	}
	degrees := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		degrees[id] = float64(neighborCount(g, id))
	}

	return run(g, topN, false, degrees, clustering(g, nil), hopPaths)
}

// RunWeighted computes the weighted metrics of g and its top-N rankings.
// Errors as RunBasic, plus ErrUnweightedGraph.
func RunWeighted(g *core.Graph, topN int) (*Report, error) {
	if err := validate(g, topN); err != nil {
		return nil, err
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	degrees := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		s, err := g.Strength(id)
		if err != nil {
			return nil, err
		}
		degrees[id] = s
	}

	return run(g, topN, true, degrees, clustering(g, maxWeightFunc(g)), weightedPaths)
}

func validate(g *core.Graph, topN int) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	if topN < 0 {
		return ErrBadTopN
	}

	return nil
}

// run fills the path-dependent metrics and assembles the Report.
func run(g *core.Graph, topN int, weighted bool, degrees, clust map[string]float64, paths sourceFunc) (*Report, error) {
	vertices := g.Vertices()
	n := len(vertices)
	if n < 2 {
		return nil, fmt.Errorf("metrics: %d vertices: %w", n, errkind.ErrDisconnectedGraph)
	}

	between := make(map[string]float64, n)
	for _, id := range vertices {
		between[id] = 0
	}
	var total float64
	for _, src := range vertices {
		sp, err := paths(g, src)
		if err != nil {
			return nil, err
		}
		if len(sp.order) != n {
			return nil, fmt.Errorf("metrics: %d of %d vertices reachable from %q: %w",
				len(sp.order), n, src, errkind.ErrDisconnectedGraph)
		}
		for _, id := range sp.order {
			total += sp.dist[id]
		}
		accumulate(between, src, sp)
	}
	if n > 2 {
		scale := 1 / float64((n-1)*(n-2))
		for id := range between {
			between[id] *= scale
		}
	}

	centrality := make(map[string]float64, n)
	for _, id := range vertices {
		centrality[id] = float64(neighborCount(g, id)) / float64(n-1)
	}

	return &Report{
		Weighted:            weighted,
		Degrees:             degrees,
		Clustering:          clust,
		DegreeCentrality:    centrality,
		Betweenness:         between,
		AveragePathLength:   total / float64(n*(n-1)),
		TopDegrees:          TopK(degrees, topN),
		TopClustering:       TopK(clust, topN),
		TopDegreeCentrality: TopK(centrality, topN),
		TopBetweenness:      TopK(between, topN),
	}, nil
}

// accumulate adds the dependencies of src to between (Brandes back-propagation
// in reverse settle order).
func accumulate(between map[string]float64, src string, sp *shortestPaths) {
	delta := make(map[string]float64, len(sp.order))
	for k := len(sp.order) - 1; k >= 0; k-- {
		w := sp.order[k]
		coeff := (1 + delta[w]) / sp.sigma[w]
		for _, v := range sp.preds[w] {
			delta[v] += sp.sigma[v] * coeff
		}
		if w != src {
			between[w] += delta[w]
		}
	}
}

func neighborCount(g *core.Graph, id string) int {
	ids, _ := g.NeighborIDs(id)
	n := 0
	for _, nb := range ids {
		if nb != id {
			n++
		}
	}

	return n
}

// maxWeightFunc returns the normalized cube-root triangle weight of the
// Onnela clustering coefficient.
func maxWeightFunc(g *core.Graph) func(a, b, c float64) float64 {
	maxW := 0.0
	for _, e := range g.Edges() {
		maxW = math.Max(maxW, e.Weight)
	}

	return func(a, b, c float64) float64 {
		if maxW == 0 {
			return 0
		}
		return math.Cbrt((a / maxW) * (b / maxW) * (c / maxW))
	}
}

// clustering returns the local clustering coefficient of every vertex.
// With tri == nil each triangle counts 1; otherwise tri weighs it.
func clustering(g *core.Graph, tri func(a, b, c float64) float64) map[string]float64 {
	out := make(map[string]float64, g.VertexCount())
	for _, u := range g.Vertices() {
		edges, _ := g.Neighbors(u)
		nbrs := make([]string, 0, len(edges))
		wu := make(map[string]float64, len(edges))
		for _, e := range edges {
			v := e.Other(u)
			if v == u {
				continue
			}
			nbrs = append(nbrs, v)
			wu[v] = e.Weight
		}
		d := len(nbrs)
		if d < 2 {
			out[u] = 0
			continue
		}
		var sum float64
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				e, err := g.Edge(nbrs[i], nbrs[j])
				if err != nil {
					continue
				}
				if tri == nil {
					sum++
				} else {
					sum += tri(wu[nbrs[i]], wu[nbrs[j]], e.Weight)
				}
			}
		}
		out[u] = sum / float64(d*(d-1)/2)
	}

	return out
}

// TopK returns the k entries of values with the largest values, descending,
// ties broken by ascending key. k is clamped to len(values).
func TopK(values map[string]float64, k int) []Ranked {
	all := make([]Ranked, 0, len(values))
	for id, v := range values {
		all = append(all, Ranked{Node: id, Value: v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Value != all[j].Value {
			return all[i].Value > all[j].Value
		}
		return all[i].Node < all[j].Node
	})
	if k > len(all) {
		k = len(all)
	}
	if k < 0 {
		k = 0
	}

	return all[:k]
}
