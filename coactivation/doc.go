// SPDX-License-Identifier: MIT

// Package coactivation builds region×region matrices from keycode sets.
//
//   - BuildCoactivation: C[i][j] = |S_i ∩ S_j|, diagonal = |S_i|.
//   - BuildJaccard:      J[i][j] = |S_i ∩ S_j| / |S_i ∪ S_j|, 0 when the
//     union is empty (so an empty region has J[i][i] = 0).
//
// Both are exact integer set arithmetic over the upper triangle; the lower
// triangle is a mirror, so the result is symmetric bit-for-bit. Rows may be
// computed concurrently (WithParallelism) without changing the result.
//
// Complexity: O(N² · average set size) time, O(N²) memory.
package coactivation
