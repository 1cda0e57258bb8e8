// SPDX-License-Identifier: MIT
// Statistical transforms over co-activation matrices.

package matrix

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/coactive/errkind"
)

// ZTransform standardizes a symmetric matrix: every cell becomes
// (x − μ)/σ where μ and σ are the mean and population standard deviation
// of the strict lower triangle. The diagonal is set to 0.
//
// Errors:
//   - ErrNilMatrix for nil input, ErrNonSquare for non-square input.
//   - errkind.ErrDegenerateStatistics when there are fewer than two
//     off-diagonal cells or σ == 0.
//
// Complexity: O(n²).
func ZTransform(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("ZTransform", ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, matrixErrorf("ZTransform", ErrNonSquare)
	}
	n := m.r
	lower := make([]float64, 0, n*(n-1)/2)
	var i, j int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			lower = append(lower, m.data[i*n+j])
		}
	}
	if len(lower) < 2 {
		return nil, matrixErrorf("ZTransform", errkind.ErrDegenerateStatistics)
	}
	mean, std := stat.PopMeanStdDev(lower, nil)
	if std == 0 {
		return nil, matrixErrorf("ZTransform", errkind.ErrDegenerateStatistics)
	}

	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			out.data[i*n+j] = (m.data[i*n+j] - mean) / std
		}
	}

	return out, nil
}

// Mean returns the element-wise mean of equally shaped matrices.
// Cells are summed in slice order, so symmetric inputs give a symmetric mean.
//
// Errors:
//   - ErrBadShape for an empty slice.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: O(k·r·c).
func Mean(ms []*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("Mean", ErrBadShape)
	}
	for _, m := range ms {
		if m == nil {
			return nil, matrixErrorf("Mean", ErrNilMatrix)
		}
	}
	r, c := ms[0].r, ms[0].c
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for _, m := range ms {
		if m.r != r || m.c != c {
			return nil, matrixErrorf("Mean", ErrDimensionMismatch)
		}
		for k, v := range m.data {
			out.data[k] += v
		}
	}
	k := float64(len(ms))
	for idx := range out.data {
		out.data[idx] /= k
	}

	return out, nil
}
