package transform

import (
	"log/slog"

	"github.com/ardnew/xform/scene"
)

// Check evaluates every field expression against [TestEnv] and returns the
// failures in validation order.
func Check(exprs Expressions, objects []scene.Object, opts ...Option) []Failure {
	o := makeOptions(opts...)

	return check(exprs, objects, o)
}

func check(exprs Expressions, objects []scene.Object, o options) []Failure {
	env := TestEnv(objects, o.funcs)
	env.Cache = o.cache
	env.Logger = o.logger

	var failures []Failure

	for _, f := range Fields() {
		src := exprs.Get(f)

		if _, err := env.Evaluate(src); err != nil {
			failures = append(failures, Failure{Field: f, Source: src, Err: err})
		}
	}

	return failures
}

// Validate reports whether every field expression evaluates against
// [TestEnv]. On failure it returns [ErrInvalidExpressions] wrapping a
// [*ValidationError] that names each failing field.
func Validate(exprs Expressions, objects []scene.Object, opts ...Option) error {
	return validate(exprs, objects, makeOptions(opts...))
}

func validate(exprs Expressions, objects []scene.Object, o options) error {
	failures := check(exprs, objects, o)
	if len(failures) == 0 {
		return nil
	}

	ve := &ValidationError{Failures: failures}

	o.logger.Debug("validation failed", slog.Any("fields", ve))

	return ErrInvalidExpressions.Wrap(ve)
}

// Preview evaluates every field expression against [TestEnv], as a dry run
// before Apply. It fails with [ErrInvalidExpressions] if any field is
// invalid.
func Preview(exprs Expressions, objects []scene.Object, opts ...Option) (Result, error) {
	o := makeOptions(opts...)

	if err := validate(exprs, objects, o); err != nil {
		return Result{}, err
	}

	env := TestEnv(objects, o.funcs)
	env.Cache = o.cache

	var r Result

	for _, f := range Fields() {
		v, err := env.Evaluate(exprs.Get(f))
		if err != nil {
			return Result{}, ErrContract.Wrap(err).With(slog.String("field", f.String()))
		}

		r.set(f, v)
	}

	return r, nil
}
