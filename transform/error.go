package transform

import (
	"log/slog"
	"strings"
)

// Error represents a transform error with structured logging support.
type Error struct {
	base  *Error
	msg   string
	err   error
	attrs []slog.Attr
}

func newError(msg string) *Error {
	e := &Error{msg: msg}
	e.base = e

	return e
}

var (
	// ErrInvalidExpressions reports that one or more axis expressions failed
	// validation. It wraps a [*ValidationError].
	ErrInvalidExpressions = newError("invalid expressions")

	// ErrContract reports an evaluation failure while applying expressions
	// that had passed validation. No object is modified when it occurs.
	ErrContract = newError("evaluation failed after validation")
)

func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e derives from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.base == e.base
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{base: e.base, msg: e.msg, err: err, attrs: e.attrs}
}

// With adds attributes to the error for structured logging.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{base: e.base, msg: e.msg, err: e.err, attrs: newAttrs}
}

// Failure is one axis expression that did not evaluate.
type Failure struct {
	Field  Field
	Source string
	Err    error
}

// ValidationError lists the axes whose expressions failed validation.
type ValidationError struct {
	Failures []Failure
}

// Labels returns the failing fields in validation order, e.g. "Position.X".
func (v *ValidationError) Labels() []string {
	labels := make([]string, len(v.Failures))
	for i, f := range v.Failures {
		labels[i] = f.Field.String()
	}

	return labels
}

// Error returns the aggregated message, e.g.
//
//	Failed to compile expression in Position.X, Scale.Y
func (v *ValidationError) Error() string {
	return "Failed to compile expression in " + strings.Join(v.Labels(), ", ")
}

func (v *ValidationError) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(v.Failures))
	for i, f := range v.Failures {
		attrs[i] = slog.Group(f.Field.String(),
			slog.String("source", f.Source),
			slog.Any("error", f.Err),
		)
	}

	return slog.GroupValue(attrs...)
}
