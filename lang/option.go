package lang

import "github.com/ardnew/xform/log"

// DefaultMaxDepth is the default maximum nesting depth of an expression.
const DefaultMaxDepth = 256

type options struct {
	maxDepth int
	logger   log.Logger
}

// Option configures compilation.
type Option func(*options)

// WithMaxDepth sets the maximum nesting depth of parentheses, unary
// operators, exponents, and call arguments. Values below 1 restore
// [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		o.maxDepth = depth
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts ...Option) options {
	o := options{maxDepth: DefaultMaxDepth}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
