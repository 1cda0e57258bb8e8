// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory graph that every analysis
// stage consumes and produces.
//
// A Graph G = (V,E) holds regions as vertices (string IDs, optional display
// label) and co-activation relationships as edges with a float64 weight
// (co-activation count, Jaccard value, z-score or influence).
//
// Behavior is selected at construction:
//
//   - WithDirected(true)  directed edges (influence digraphs); default undirected.
//   - WithWeighted()      non-zero weights allowed; otherwise AddEdge(w≠0) → ErrBadWeight.
//   - WithLoops()         self-loops allowed; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Parallel edges are never allowed: a second AddEdge between the same
// endpoints returns ErrMultiEdgeNotAllowed. Undirected edges are mirrored in
// the adjacency map, so HasEdge/Edge/Weight answer symmetrically.
//
// Determinism:
//
//	Vertices()    – sorted by ID ascending.
//	Edges()       – sorted by (From, To) ascending.
//	Neighbors()   – sorted by the opposite endpoint ID.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert → muEdgeAdj.
//
// Analysis stages treat a Graph as a value: they Clone the input and mutate
// only the clone, so a graph handed to a thresholding or metrics call is never
// changed behind the caller's back.
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero or non-finite weight rejected by policy
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge
package core
