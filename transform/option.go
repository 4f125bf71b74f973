package transform

import (
	"github.com/ardnew/xform/lang"
	"github.com/ardnew/xform/log"
)

type options struct {
	logger log.Logger
	cache  *lang.Cache
	funcs  Functions
}

// Option configures validation, preview, and apply.
type Option func(*options)

// WithLogger sets the logger receiving per-object trace records and contract
// violations.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCache compiles expressions through c.
func WithCache(c *lang.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithFunctions makes fns callable from expressions in addition to the
// built-ins. The built-ins take precedence on name conflicts.
func WithFunctions(fns Functions) Option {
	return func(o *options) { o.funcs = o.funcs.Merge(fns) }
}

func makeOptions(opts ...Option) options {
	o := options{logger: log.Default()}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.cache == nil {
		o.cache = lang.NewCache(lang.WithLogger(o.logger))
	}

	return o
}
