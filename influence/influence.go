// SPDX-License-Identifier: MIT

// Package influence estimates the directional dependence between regions
// from a co-activation count matrix.
//
// I[i][j] = C[i][j]/C[i][i] − C[i][j]/C[j][j]
//
// The first term is P(j active | i active), the second P(i active | j active).
// A positive I[i][j] means row region i drives column region j: when i is
// active, j follows more reliably than the reverse. I is antisymmetric with
// a zero diagonal.
package influence

import (
	"fmt"

	"github.com/katalvlaran/coactive/core"
	"github.com/katalvlaran/coactive/errkind"
	"github.com/katalvlaran/coactive/matrix"
)

// BuildMatrix returns the influence matrix of C.
//
// Each pair is computed once for i < j and mirrored with the opposite sign,
// so I[i][j] == −I[j][i] holds exactly.
//
// Errors:
//   - errkind.ErrInvalidInputShape for a nil or non-square C.
//   - *errkind.PairError{Kind: ErrDegenerateStatistics, I: i, J: i} when
//     region i has no independent activations.
//
// Complexity: O(N²).
func BuildMatrix(C *matrix.Dense) (*matrix.Dense, error) {
	if C == nil || !C.IsSquare() {
		return nil, fmt.Errorf("influence: matrix must be square: %w", errkind.ErrInvalidInputShape)
	}
	rows := C.ToRows()
	n := len(rows)
	for i := 0; i < n; i++ {
		if rows[i][i] == 0 {
			return nil, errkind.Pair(errkind.ErrDegenerateStatistics, i, i, "region has no activations")
		}
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rows[i][j]/rows[i][i] - rows[i][j]/rows[j][j]
			if err := out.Set(i, j, v); err != nil {
				return nil, err
			}
			if err := out.Set(j, i, -v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// BuildPositiveMatrix returns BuildMatrix(C) with every entry <= 0 set to 0.
func BuildPositiveMatrix(C *matrix.Dense) (*matrix.Dense, error) {
	inf, err := BuildMatrix(C)
	if err != nil {
		return nil, err
	}
	rows := inf.ToRows()
	for i := range rows {
		for j, v := range rows[i] {
			if v <= 0 {
				rows[i][j] = 0
			}
		}
	}

	return matrix.FromRows(rows)
}

// BuildDigraph returns a directed weighted graph with an edge i→j of weight
// I[i][j] for every strictly positive entry. Every region is a vertex;
// labels may be nil.
func BuildDigraph(C *matrix.Dense, labels []string) (*core.Graph, error) {
	pos, err := BuildPositiveMatrix(C)
	if err != nil {
		return nil, err
	}

	return matrix.ToGraph(pos, labels, true)
}
