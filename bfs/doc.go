// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, shortest-path counts and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - BFSResult carries:
//   - Order: visit sequence (non-decreasing Depth)
//   - Depth: hop distance from the start
//   - Parent: first predecessor (BFS tree)
//   - Sigma: number of distinct shortest paths from the start
//   - Preds: every predecessor on some shortest path
//   - Edge weights are ignored: every edge is one hop.
//   - Directed graphs follow edges From→To only.
//
// Determinism
//
//	core.NeighborIDs is sorted, so Order, Parent and Preds are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (Preds may hold one entry per edge)
package bfs
