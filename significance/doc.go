// SPDX-License-Identifier: MIT

// Package significance prunes co-activation counts that fail a binomial
// likelihood-ratio test of dependence between two regions.
//
// For a pair (i, j) with n_i = C[i][i], n_j = C[j][j], k = C[i][j] and a
// universe of N keycodes:
//
//	L0 = Binom(k; n_j, p)  · Binom(n_i−k; N−n_j, p)    p  = n_i/N
//	L1 = Binom(k; n_j, p1) · Binom(n_i−k; N−n_j, p0)   p1 = k/n_j, p0 = (n_i−k)/(N−n_j)
//	stat = −2 · log10(L0 / L1)
//
// The statistic is the G-test of the 2×2 contingency table of the pair, so
// it is symmetric in (i, j); it is computed once per unordered pair and the
// decision is mirrored.
//
// Decisions:
//
//   - DecisionLiteral (default): zero the entry when stat > alpha.
//   - DecisionChiSquare: convert G = stat·ln 10 to a χ²(1) p-value and zero
//     the entry when p > alpha.
//
// Numeric policy:
//
//   - A binomial factor with zero trials is exactly 1.
//   - p ∈ {0, 1} uses the exact point-mass pmf.
//   - N <= 0, or L0 = L1 = 0, is errkind.ErrDegenerateStatistics.
//   - Inconsistent counts are errkind.ErrInvalidInputShape.
//
// The diagonal is never modified.
package significance
