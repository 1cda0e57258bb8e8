// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search on core.Graph and the
// connectivity helpers built on it.
//
//   - DFS(g, startID, opts...): single tree, or a forest via WithFullTraversal.
//   - Components(g): connected components of an undirected graph.
//   - Partition(assign): groups a vertex -> community map into member lists.
//
// Traversal order is deterministic: roots and neighbors are taken in sorted
// ID order. Cancellation is honored through WithContext.
//
// Complexity: O(V + E) time and O(V) memory for DFS and Components;
// Partition is O(V log V).
package dfs
