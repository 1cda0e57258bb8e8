// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/coactive/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from startID, or over the whole
// graph with WithFullTraversal (startID is then ignored). Neighbors are
// explored in sorted order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound.
//   - ctx.Err() if the context is done.
//   - any error returned by OnVisit, wrapped.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:  make([]string, 0, len(vertices)),
		Depth:  make(map[string]int, len(vertices)),
		Parent: make(map[string]string, len(vertices)),
		Root:   make(map[string]string, len(vertices)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, w.traverse(startID, startID, 0)
	}
	for _, v := range vertices {
		if _, seen := res.Root[v]; seen {
			continue
		}
		if err := w.traverse(v, v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits id at depth within the tree rooted at root.
func (w *dfsWalker) traverse(id, root string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Root[id] = root
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if nid == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			continue
		}
		if _, seen := w.res.Root[nid]; seen {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, root, depth+1); err != nil {
			return err
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}

// Components returns the connected components of an undirected graph.
// Each component is sorted by vertex ID; components are ordered by their
// smallest ID. Isolated vertices form singleton components.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	res, err := DFS(g, "", append(opts, WithFullTraversal())...)
	if err != nil {
		return nil, err
	}

	return Partition(res.Root), nil
}

// Partition groups vertices by their community (or component) key: each
// group is sorted, and groups are ordered by their smallest member.
func Partition[K comparable](assign map[string]K) [][]string {
	byKey := make(map[K][]string)
	for id, k := range assign {
		byKey[k] = append(byKey[k], id)
	}
	out := make([][]string, 0, len(byKey))
	for _, members := range byKey {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
