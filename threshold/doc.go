// SPDX-License-Identifier: MIT

// Package threshold prunes weighted region graphs.
//
// Every function is a pure transform: the input graph is cloned and the
// clone is edited, so callers never observe aliasing between the graphs
// they pass in and the graphs they get back.
//
//   - ApplyCost keeps the strongest fraction of all possible edges.
//   - RemoveBelow drops weak edges, then weakly attached vertices.
//   - RemoveEdgeless drops isolated vertices.
//   - Binarize and StripWeights turn a weighted graph into a topological one.
package threshold
