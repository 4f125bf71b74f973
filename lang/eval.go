package lang

import (
	"log/slog"
	"math"
)

// Evaluate walks node against env, returning its numeric value.
//
// Variable references fail with [ErrUnknownVariable] when unbound and
// [ErrTypeMismatch] when the binding is not a scalar. Calls evaluate their
// arguments first, then fail with [ErrUnknownFunction] or
// [ErrArityMismatch] before invoking the implementation.
func Evaluate[C any](node Node, env Env[C]) (float64, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Value, nil

	case *VariableRef:
		v, ok := env.Vars[n.Name]
		if !ok {
			return 0, ErrUnknownVariable.At(n.Offset).
				With(slog.String("name", n.Name))
		}

		f, ok := v.Float()
		if !ok {
			return 0, ErrTypeMismatch.At(n.Offset).With(
				slog.String("name", n.Name),
				slog.String("kind", v.Kind().String()),
			)
		}

		return f, nil

	case *UnaryOp:
		x, err := Evaluate(n.Operand, env)
		if err != nil {
			return 0, err
		}

		return -x, nil

	case *BinaryOp:
		l, err := Evaluate(n.Left, env)
		if err != nil {
			return 0, err
		}

		r, err := Evaluate(n.Right, env)
		if err != nil {
			return 0, err
		}

		return apply(n.Op, l, r), nil

	case *Call:
		return call(n, env)

	default:
		return 0, ErrParse.Expect("expression node", "nil")
	}
}

func apply(op Operator, l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpMod:
		return math.Mod(l, r)
	case OpPow:
		return math.Pow(l, r)
	default:
		return math.NaN()
	}
}

func call[C any](n *Call, env Env[C]) (float64, error) {
	args := make([]float64, len(n.Args))

	for i, a := range n.Args {
		v, err := Evaluate(a, env)
		if err != nil {
			return 0, err
		}

		args[i] = v
	}

	fn, ok := env.Funcs[n.Name]
	if !ok || fn.Impl == nil {
		return 0, ErrUnknownFunction.At(n.Offset).
			With(slog.String("name", n.Name))
	}

	if fn.Arity != Variadic && fn.Arity != len(args) {
		return 0, ErrArityMismatch.At(n.Offset).With(
			slog.String("name", n.Name),
			slog.Int("want", fn.Arity),
			slog.Int("got", len(args)),
		)
	}

	return fn.Impl(env.Context, env.Vars, args)
}
