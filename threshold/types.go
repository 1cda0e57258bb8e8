// SPDX-License-Identifier: MIT

package threshold

import "errors"

var (
	// ErrGraphNil indicates a nil input graph.
	ErrGraphNil = errors.New("threshold: graph is nil")

	// ErrBadCost indicates a cost outside [0, 1] or NaN.
	ErrBadCost = errors.New("threshold: cost must be within [0, 1]")

	// ErrBadWeight indicates a NaN or infinite weight bound.
	ErrBadWeight = errors.New("threshold: weight bound must be finite")
)

// Option configures ApplyCost.
type Option func(*options)

type options struct {
	legacyOffset bool
}

// WithLegacyOffset selects the historical cut position sorted[keep+1]
// (clamped to "keep all") instead of sorted[keep-1]. Use it only to compare
// against reference outputs produced with that boundary.
func WithLegacyOffset() Option {
	return func(o *options) { o.legacyOffset = true }
}
