package lang

//go:generate go tool stringer --linecomment --type ErrorKind --output error_string.go

import (
	"log/slog"
	"strconv"
	"strings"
)

// ErrorKind classifies an [*Error].
type ErrorKind int

const (
	KindNone            ErrorKind = iota // none
	KindLex                              // lex
	KindParse                            // parse
	KindMaxDepth                         // max-depth
	KindUnknownVariable                  // unknown-variable
	KindUnknownFunction                  // unknown-function
	KindArityMismatch                    // arity-mismatch
	KindTypeMismatch                     // type-mismatch
)

// Predefined errors (sentinel values).
var (
	ErrLex              = newError(KindLex, "unrecognized character")
	ErrParse            = newError(KindParse, "malformed expression")
	ErrMaxDepthExceeded = newError(KindMaxDepth, "maximum nesting depth exceeded")
	ErrUnknownVariable  = newError(KindUnknownVariable, "unknown variable")
	ErrUnknownFunction  = newError(KindUnknownFunction, "unknown function")
	ErrArityMismatch    = newError(KindArityMismatch, "wrong number of arguments")
	ErrTypeMismatch     = newError(KindTypeMismatch, "binding is not a scalar")
)

// noPos marks an error without a source position.
const noPos = -1

// Error represents an expression failure with an optional source position
// and structured logging attributes. It implements both error and
// slog.LogValuer interfaces.
type Error struct {
	kind  ErrorKind
	msg   string
	pos   int
	want  string      // expected construct, for parse errors
	got   string      // construct actually found
	err   error       // wrapped cause
	attrs []slog.Attr // structured logging attributes
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg, pos: noPos}
}

// Error implements the error interface.
//
//	"<msg> at offset <pos>: expected <want>, found <got>: <err>"
//
// with each part omitted when unset.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if e.pos != noPos {
		sb.WriteString(" at offset ")
		sb.WriteString(strconv.Itoa(e.pos))
	}

	if e.want != "" {
		sb.WriteString(": expected ")
		sb.WriteString(e.want)

		if e.got != "" {
			sb.WriteString(", found ")
			sb.WriteString(e.got)
		}
	}

	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an [*Error] of the same kind, so that every
// error derived from a sentinel matches it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.kind != KindNone && t.kind == e.kind
}

// Kind returns the classification of e.
func (e *Error) Kind() ErrorKind { return e.kind }

// Position returns the byte offset in the source at which e occurred, and
// false if e carries no position.
func (e *Error) Position() (int, bool) { return e.pos, e.pos != noPos }

// Expected returns the construct the parser expected where e occurred.
func (e *Error) Expected() string { return e.want }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)
	attrs = append(attrs,
		slog.String("error", e.msg),
		slog.String("kind", e.kind.String()),
	)

	if e.pos != noPos {
		attrs = append(attrs, slog.Int("offset", e.pos))
	}

	if e.want != "" {
		attrs = append(attrs, slog.String("expected", e.want))
	}

	if e.got != "" {
		attrs = append(attrs, slog.String("found", e.got))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// At returns a copy of e positioned at byte offset pos.
func (e *Error) At(pos int) *Error {
	c := *e
	c.pos = pos

	return &c
}

// Expect returns a copy of e describing what was expected and what was
// found instead.
func (e *Error) Expect(want, got string) *Error {
	c := *e
	c.want, c.got = want, got

	return &c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	c.attrs = append(c.attrs, e.attrs...)
	c.attrs = append(c.attrs, attrs...)

	return &c
}

// Attrs returns the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr { return e.attrs }
