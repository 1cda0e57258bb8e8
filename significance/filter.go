// SPDX-License-Identifier: MIT

package significance

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coactive/errkind"
	"github.com/katalvlaran/coactive/matrix"
)

// Filter returns a copy of the co-activation matrix C where every
// off-diagonal pair failing the decision rule is set to 0.
//
// Implementation:
//   - Stage 1: Validate options, alpha and the shape of C (square, exactly
//     symmetric, non-negative integral counts).
//   - Stage 2: For each row i, test every j > i with Statistic; rows run in
//     an errgroup bounded by WithParallelism.
//   - Stage 3: Zero both (i, j) and (j, i) on rejection.
//
// Errors carry the failing pair as *errkind.PairError.
//
// Complexity: O(N²) statistic evaluations.
func Filter(C *matrix.Dense, total int, alpha float64, opts ...Option) (*matrix.Dense, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		return nil, ErrBadParallelism
	}
	if math.IsNaN(alpha) {
		return nil, ErrBadAlpha
	}
	counts, err := validate(C)
	if err != nil {
		return nil, err
	}

	out := C.Clone()
	n := len(counts)
	eg, ctx := errgroup.WithContext(o.ctx)
	eg.SetLimit(o.parallelism)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < n; j++ {
				stat, err := Statistic(counts[i][i], counts[j][j], counts[i][j], total)
				if err != nil {
					return pairError(err, i, j)
				}
				if !reject(o.decision, stat, alpha) {
					continue
				}
				if err := out.Set(i, j, 0); err != nil {
					return err
				}
				if err := out.Set(j, i, 0); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// validate checks the shape of C and returns its integer counts.
func validate(C *matrix.Dense) ([][]int, error) {
	if C == nil || !C.IsSquare() {
		return nil, fmt.Errorf("significance: matrix must be square: %w", errkind.ErrInvalidInputShape)
	}
	rows := C.ToRows()
	counts := make([][]int, len(rows))
	for i, row := range rows {
		counts[i] = make([]int, len(row))
		for j, v := range row {
			if v < 0 || v != math.Trunc(v) {
				return nil, errkind.Pair(errkind.ErrInvalidInputShape, i, j, "count %g is not a non-negative integer", v)
			}
			if v != rows[j][i] {
				return nil, errkind.Pair(errkind.ErrInvalidInputShape, i, j, "matrix is not symmetric")
			}
			counts[i][j] = int(v)
		}
	}

	return counts, nil
}

// pairError attaches indices to a statistic failure.
func pairError(err error, i, j int) error {
	for _, kind := range []error{errkind.ErrDegenerateStatistics, errkind.ErrInvalidInputShape} {
		if errors.Is(err, kind) {
			return errkind.Pair(kind, i, j, "%v", err)
		}
	}

	return err
}
