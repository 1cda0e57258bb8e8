// SPDX-License-Identifier: MIT

package significance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/coactive/errkind"
)

// Statistic returns −2·log10(L0/L1) for one pair of regions.
//
// ni and nj are the independent activation counts, k the co-activation
// count and total the universe size N.
//
// Errors:
//   - errkind.ErrDegenerateStatistics if total <= 0 or both likelihoods are 0.
//   - errkind.ErrInvalidInputShape if the counts are inconsistent
//     (negative, k > min(ni, nj), or ni, nj > total).
//
// Complexity: O(1).
func Statistic(ni, nj, k, total int) (float64, error) {
	if total <= 0 {
		return 0, fmt.Errorf("significance: total %d: %w", total, errkind.ErrDegenerateStatistics)
	}
	if ni < 0 || nj < 0 || k < 0 || k > ni || k > nj || ni > total || nj > total {
		return 0, fmt.Errorf("significance: counts ni=%d nj=%d k=%d N=%d: %w",
			ni, nj, k, total, errkind.ErrInvalidInputShape)
	}

	rest := total - nj // trials of the second factor
	miss := ni - k     // activations of i without j
	if miss > rest {
		return 0, fmt.Errorf("significance: ni-k=%d exceeds N-nj=%d: %w",
			miss, rest, errkind.ErrInvalidInputShape)
	}

	p := float64(ni) / float64(total)
	logNull := logBinom(k, nj, p) + logBinom(miss, rest, p)

	var p1, p0 float64
	if nj > 0 {
		p1 = float64(k) / float64(nj)
	}
	if rest > 0 {
		p0 = float64(miss) / float64(rest)
	}
	logAlt := logBinom(k, nj, p1) + logBinom(miss, rest, p0)

	if math.IsInf(logNull, -1) && math.IsInf(logAlt, -1) {
		return 0, fmt.Errorf("significance: both likelihoods vanish: %w", errkind.ErrDegenerateStatistics)
	}

	return -2 * (logNull - logAlt) / math.Ln10, nil
}

// logBinom is the natural log of the binomial pmf Binom(x; n, p).
// Zero trials and the point masses p = 0, p = 1 are handled exactly.
func logBinom(x, n int, p float64) float64 {
	switch {
	case n == 0:
		if x == 0 {
			return 0
		}
		return math.Inf(-1)
	case p <= 0:
		if x == 0 {
			return 0
		}
		return math.Inf(-1)
	case p >= 1:
		if x == n {
			return 0
		}
		return math.Inf(-1)
	}

	return distuv.Binomial{N: float64(n), P: p}.LogProb(float64(x))
}

// pValue converts a statistic to the χ²(1) upper-tail probability of the
// natural-log G statistic.
func pValue(stat float64) float64 {
	g := stat * math.Ln10
	if g <= 0 {
		return 1
	}

	return distuv.ChiSquared{K: 1}.Survival(g)
}

// reject reports whether the pair must be zeroed under decision d.
func reject(d Decision, stat, alpha float64) bool {
	if d == DecisionChiSquare {
		return pValue(stat) > alpha
	}

	return stat > alpha
}
