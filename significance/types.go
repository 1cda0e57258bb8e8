// SPDX-License-Identifier: MIT

package significance

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrBadAlpha indicates a NaN decision threshold.
	ErrBadAlpha = errors.New("significance: alpha is NaN")

	// ErrBadParallelism indicates a non-positive worker count.
	ErrBadParallelism = errors.New("significance: parallelism must be >= 1")

	// ErrUnknownDecision indicates an unrecognized decision rule name.
	ErrUnknownDecision = errors.New("significance: unknown decision rule")
)

// Decision selects how the statistic is compared against alpha.
type Decision int

const (
	// DecisionLiteral zeroes a pair when stat > alpha.
	DecisionLiteral Decision = iota

	// DecisionChiSquare zeroes a pair when its χ²(1) p-value > alpha.
	DecisionChiSquare
)

// String returns the configuration name of d.
func (d Decision) String() string {
	switch d {
	case DecisionLiteral:
		return "literal"
	case DecisionChiSquare:
		return "chisquare"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// ParseDecision maps a configuration name to a Decision ("" means literal).
func ParseDecision(name string) (Decision, error) {
	switch name {
	case "", "literal":
		return DecisionLiteral, nil
	case "chisquare":
		return DecisionChiSquare, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDecision, name)
	}
}

// Option configures Filter.
type Option func(*options)

type options struct {
	ctx         context.Context
	decision    Decision
	parallelism int
}

func defaultOptions() options {
	return options{ctx: context.Background(), decision: DecisionLiteral, parallelism: 1}
}

// WithDecision selects the decision rule.
func WithDecision(d Decision) Option {
	return func(o *options) { o.decision = d }
}

// WithParallelism sets the number of rows tested concurrently.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithContext makes Filter cancellable between rows.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
