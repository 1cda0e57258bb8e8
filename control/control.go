// SPDX-License-Identifier: MIT

// Package control builds empirical null ("control") networks by repeatedly
// subsampling the keycode universe and averaging the Jaccard matrices of the
// subsamples.
//
// All randomness flows through explicit seeded sources. Iteration i draws
// from a stream derived from (seed, i), so the averaged matrix is identical
// whatever the parallelism.
package control

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coactive/coactivation"
	"github.com/katalvlaran/coactive/core"
	"github.com/katalvlaran/coactive/keycode"
	"github.com/katalvlaran/coactive/matrix"
)

var (
	// ErrBadStudies indicates a negative subsample size.
	ErrBadStudies = errors.New("control: number of studies must be >= 0")

	// ErrBadIterations indicates fewer than one iteration.
	ErrBadIterations = errors.New("control: iterations must be >= 1")

	// ErrBadParallelism indicates a non-positive worker count.
	ErrBadParallelism = errors.New("control: parallelism must be >= 1")
)

// Option configures AverageJaccard and AverageGraph.
type Option func(*options)

type options struct {
	seed        int64
	parallelism int
}

// WithSeed sets the base seed (0 selects a fixed default).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithParallelism sets the number of iterations run concurrently.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// SelectRandom draws nStudies distinct keycodes from the universe of sets
// and restricts every region to that sample. A sample larger than the
// universe selects the whole universe. A nil rng uses the default seed.
//
// Complexity: O(U + Σ|s|).
func SelectRandom(sets []keycode.Set, nStudies int, rng *rand.Rand) ([]keycode.Set, error) {
	if nStudies < 0 {
		return nil, ErrBadStudies
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	universe := keycode.Universe(sets)
	shuffleStrings(universe, rng)
	if nStudies < len(universe) {
		universe = universe[:nStudies]
	}

	return keycode.DomainFilter(sets, universe), nil
}

// AverageJaccard returns the element-wise mean of the Jaccard matrices of
// `iterations` independent subsamples of nStudies keycodes.
func AverageJaccard(ctx context.Context, sets []keycode.Set, nStudies, iterations int, opts ...Option) (*matrix.Dense, error) {
	o := options{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case nStudies < 0:
		return nil, ErrBadStudies
	case iterations < 1:
		return nil, ErrBadIterations
	case o.parallelism < 1:
		return nil, ErrBadParallelism
	}

	results := make([]*matrix.Dense, iterations)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i := 0; i < iterations; i++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sample, err := SelectRandom(sets, nStudies, iterationRNG(o.seed, i))
			if err != nil {
				return err
			}
			j, err := coactivation.BuildJaccard(sample)
			if err != nil {
				return fmt.Errorf("control: iteration %d: %w", i, err)
			}
			results[i] = j

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return matrix.Mean(results)
}

// AverageGraph converts AverageJaccard into an undirected weighted graph
// (an edge for every non-zero mean similarity). labels may be nil.
func AverageGraph(ctx context.Context, sets []keycode.Set, labels []string, nStudies, iterations int, opts ...Option) (*core.Graph, error) {
	mean, err := AverageJaccard(ctx, sets, nStudies, iterations, opts...)
	if err != nil {
		return nil, err
	}

	return matrix.ToGraph(mean, labels, false)
}
