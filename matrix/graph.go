// SPDX-License-Identifier: MIT
// Graph adapters: Dense → core.Graph (every non-zero off-diagonal cell is an
// edge) and core.Graph → Dense (weights in a caller-chosen vertex order).

package matrix

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/coactive/core"
)

// symmetryEps tolerates rounding noise when an undirected graph is read
// from a matrix produced by floating-point averaging.
const symmetryEps = 1e-12

// VertexID returns the canonical vertex ID of region i among n regions:
// the decimal index zero-padded to the width of n-1, so that lexical order
// equals numeric order.
func VertexID(i, n int) string {
	width := len(strconv.Itoa(n - 1))
	if n <= 1 {
		width = 1
	}

	return fmt.Sprintf("%0*d", width, i)
}

// ToGraph converts a square matrix into a weighted core.Graph.
//
// Implementation:
//   - Stage 1: Validate shape, labels (nil or one per row) and symmetry
//     when undirected.
//   - Stage 2: Add every region as a vertex (VertexID, label attached).
//   - Stage 3: Undirected reads the strict upper triangle; directed reads
//     every off-diagonal cell. Zero cells are skipped, the diagonal is ignored.
//
// Complexity: O(n²).
func ToGraph(m *Dense, labels []string, directed bool) (*core.Graph, error) {
	if m == nil {
		return nil, matrixErrorf("ToGraph", ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, matrixErrorf("ToGraph", ErrNonSquare)
	}
	n := m.r
	if labels != nil && len(labels) != n {
		return nil, matrixErrorf("ToGraph", ErrDimensionMismatch)
	}
	if !directed && !m.IsSymmetric(symmetryEps) {
		return nil, matrixErrorf("ToGraph", ErrAsymmetry)
	}

	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = VertexID(i, n)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, err
		}
		if labels != nil {
			if err := g.SetLabel(ids[i], labels[i]); err != nil {
				return nil, err
			}
		}
	}

	var i, j int
	for i = 0; i < n; i++ {
		start := 0
		if !directed {
			start = i + 1
		}
		for j = start; j < n; j++ {
			w := m.data[i*n+j]
			if i == j || w == 0 {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return nil, matrixErrorf("ToGraph", err)
			}
		}
	}

	return g, nil
}

// FromGraph returns the weighted adjacency matrix of g in the given vertex
// order (nil order means g.Vertices()). Unweighted edges count as 1;
// undirected edges fill both cells.
//
// Errors:
//   - ErrGraphNil, ErrUnknownVertex.
//
// Complexity: O(V² + E).
func FromGraph(g *core.Graph, order []string) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGraph", ErrGraphNil)
	}
	if order == nil {
		order = g.Vertices()
	}
	index := make(map[string]int, len(order))
	for i, id := range order {
		if !g.HasVertex(id) {
			return nil, matrixErrorf("FromGraph", fmt.Errorf("%q: %w", id, ErrUnknownVertex))
		}
		index[id] = i
	}

	n := len(order)
	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for _, e := range g.Edges() {
		i, okFrom := index[e.From]
		j, okTo := index[e.To]
		if !okFrom || !okTo {
			continue // endpoint outside the requested order
		}
		w := e.Weight
		if !g.Weighted() {
			w = 1
		}
		m.data[i*n+j] = w
		if !e.Directed {
			m.data[j*n+i] = w
		}
	}

	return m, nil
}
