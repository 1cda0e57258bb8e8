// SPDX-License-Identifier: MIT

package coactivation

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coactive/keycode"
	"github.com/katalvlaran/coactive/matrix"
)

// cellFunc computes the value of the unordered pair (a, b).
type cellFunc func(a, b keycode.Set) float64

// BuildCoactivation returns the co-activation count matrix of sets.
// N = 0 yields a 0×0 matrix.
func BuildCoactivation(sets []keycode.Set, opts ...Option) (*matrix.Dense, error) {
	return build(sets, func(a, b keycode.Set) float64 {
		return float64(a.IntersectionSize(b))
	}, opts)
}

// BuildJaccard returns the Jaccard similarity matrix of sets.
func BuildJaccard(sets []keycode.Set, opts ...Option) (*matrix.Dense, error) {
	return build(sets, jaccard, opts)
}

func jaccard(a, b keycode.Set) float64 {
	inter := a.IntersectionSize(b)
	union := a.Len() + b.Len() - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// build fills the upper triangle row by row through an errgroup and mirrors
// every cell. Workers own disjoint rows of the upper triangle and their
// mirrored column cells, so no two goroutines write the same cell.
func build(sets []keycode.Set, cell cellFunc, opts []Option) (*matrix.Dense, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		return nil, ErrBadParallelism
	}

	n := len(sets)
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	eg, ctx := errgroup.WithContext(o.ctx)
	eg.SetLimit(o.parallelism)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j := i; j < n; j++ {
				v := cell(sets[i], sets[j])
				if err := out.Set(i, j, v); err != nil {
					return err
				}
				if err := out.Set(j, i, v); err != nil {
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
