// SPDX-License-Identifier: MIT

// Package matrix provides the square numeric tables of the analysis
// pipeline and their conversion to and from region graphs.
//
// What:
//
//   - Dense: row-major float64 matrix with bounds-checked At/Set.
//   - ToGraph / FromGraph: every non-zero off-diagonal cell becomes an edge;
//     a graph becomes a matrix in a caller-chosen vertex order.
//   - ZTransform: standardize a symmetric matrix by the mean and population
//     standard deviation of its strict lower triangle.
//   - Mean: element-wise mean of equally shaped matrices.
//
// Determinism:
//
//   - Fixed i→j traversal everywhere; graphs are built in row order.
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//     ErrAsymmetry, ErrNaNInf, ErrGraphNil, ErrUnknownVertex.
package matrix
