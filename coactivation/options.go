// SPDX-License-Identifier: MIT

package coactivation

import (
	"context"
	"errors"
)

// ErrBadParallelism indicates a non-positive worker count.
var ErrBadParallelism = errors.New("coactivation: parallelism must be >= 1")

// Option configures a build.
type Option func(*options)

type options struct {
	ctx         context.Context
	parallelism int
}

func defaultOptions() options {
	return options{ctx: context.Background(), parallelism: 1}
}

// WithParallelism sets the number of rows computed concurrently.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithContext makes the build cancellable between rows.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
