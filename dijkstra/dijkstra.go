// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs with float64 weights used as distances.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative weights before any work.
//   - Equal-distance relaxations are counted into Sigma and Preds so callers
//     can run path-counting algorithms (betweenness) on top of the result.
//   - Heap ties are broken by vertex ID, so Order is deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/coactive/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph g.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph) and weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	V := len(vertices)
	r := &runner{
		g:       g,
		options: cfg,
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
		res: &Result{
			Dist:  make(map[string]float64, V),
			Prev:  make(map[string]string, V),
			Sigma: make(map[string]float64, V),
			Preds: make(map[string][]string, V),
			Order: make([]string, 0, V),
		},
	}
	for _, v := range vertices {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = ""
	}
	r.res.Dist[cfg.Source] = 0
	r.res.Sigma[cfg.Source] = 1
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	visited map[string]bool
	pq      nodePQ
	res     *Result
}

// process repeatedly settles the closest unvisited vertex and relaxes its
// edges until the heap is empty or the frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances through u. A strictly shorter path resets the
// neighbor's path count; an equally short one adds to it.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	du := r.res.Dist[u]
	for _, e := range neighbors {
		v := e.Other(u)
		if e.Weight >= r.options.InfEdgeThreshold || r.visited[v] {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		switch dv := r.res.Dist[v]; {
		case nd < dv:
			r.res.Dist[v] = nd
			r.res.Prev[v] = u
			r.res.Sigma[v] = r.res.Sigma[u]
			r.res.Preds[v] = append(r.res.Preds[v][:0], u)
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		case nd == dv:
			r.res.Sigma[v] += r.res.Sigma[u]
			r.res.Preds[v] = append(r.res.Preds[v], u)
		}
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo reconstructs one shortest path from the source to dest via Prev.
func (res *Result) PathTo(dest string) ([]string, error) {
	d, ok := res.Dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; res.Prev[cur] != ""; cur = res.Prev[cur] {
		path = append(path, res.Prev[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
