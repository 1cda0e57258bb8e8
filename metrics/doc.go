// SPDX-License-Identifier: MIT

// Package metrics computes node-level network statistics of an undirected
// region graph and ranks the strongest nodes.
//
// Two variants share one explicit Report record:
//
//   - RunBasic ignores weights: degree is the neighbor count, paths are hop
//     counts (bfs), clustering is the triangle fraction.
//   - RunWeighted uses weights: degree is strength, paths use weights as
//     distances (dijkstra), clustering is the Onnela geometric mean of
//     max-normalized triangle weights.
//
// Degree centrality is d/(n−1) in both variants. Betweenness follows
// Brandes' accumulation and is normalized by (n−1)(n−2) over ordered
// source/target pairs.
//
// Path-dependent metrics need a connected graph; a disconnected one is
// reported as errkind.ErrDisconnectedGraph, never approximated.
//
// Rankings list the top K nodes by value, descending, ties broken by
// ascending vertex ID.
package metrics
