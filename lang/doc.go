// Package lang implements the arithmetic expression language used to compute
// per-axis transform values.
//
// An expression is a single formula such as
//
//	this * 2 + index
//	space_between(0.5, index)
//	-2^2 + max(this, 1)
//
// evaluated against an [Env]: a table of named [Value] bindings, a registry
// of caller-supplied [Function] descriptors, and a typed context handed to
// every function implementation.
//
// # Grammar
//
// Informal EBNF, lowest precedence first:
//
//	Expr    → Term (('+' | '-') Term)*
//	Term    → Unary (('*' | '/' | '%') Unary)*
//	Unary   → '-' Unary | Power
//	Power   → Primary ('^' Unary)?
//	Primary → Number | Ident | Ident '(' [Expr (',' Expr)*] ')' | '(' Expr ')'
//
// Consequently '^' binds tighter than unary minus and is right-associative:
// -2^2 is -4, 2^3^2 is 512, and 2^-1 is 0.5.
//
// Division follows IEEE 754 semantics; dividing by zero yields ±Inf or NaN
// and is never an error. '%' is the remainder with the sign of the dividend.
//
// # Values
//
// Only [Scalar] bindings may be referenced from an expression. [Sequence]
// and [Attribute] bindings exist for function implementations; referencing
// one by name fails with [ErrTypeMismatch].
//
// # Errors
//
// Every failure is an [*Error] that matches one of the sentinels
// [ErrLex], [ErrParse], [ErrMaxDepthExceeded], [ErrUnknownVariable],
// [ErrUnknownFunction], [ErrArityMismatch], or [ErrTypeMismatch] under
// [errors.Is], and logs as a structured group through [log/slog].
package lang
