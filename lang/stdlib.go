package lang

import (
	"log/slog"
	"math"
)

// StandardFunctions returns the pure math built-ins:
//
//	sqrt(x) abs(x) floor(x) ceil(x) round(x)
//	sin(x) cos(x) tan(x)          (radians)
//	min(x, ...) max(x, ...)
//	clamp(x, lo, hi) lerp(a, b, t)
//
// The evaluator does not register them implicitly; callers merge them into
// an [Env] as needed.
func StandardFunctions[C any]() Functions[C] {
	return Functions[C]{}.Define(
		unary[C]("sqrt", math.Sqrt),
		unary[C]("abs", math.Abs),
		unary[C]("floor", math.Floor),
		unary[C]("ceil", math.Ceil),
		unary[C]("round", math.Round),
		unary[C]("sin", math.Sin),
		unary[C]("cos", math.Cos),
		unary[C]("tan", math.Tan),
		fold[C]("min", math.Min),
		fold[C]("max", math.Max),
		Function[C]{
			Name:   "clamp",
			Arity:  3,
			Params: []string{"x", "lo", "hi"},
			Impl: func(_ C, _ Variables, a []float64) (float64, error) {
				return math.Max(a[1], math.Min(a[2], a[0])), nil
			},
		},
		Function[C]{
			Name:   "lerp",
			Arity:  3,
			Params: []string{"a", "b", "t"},
			Impl: func(_ C, _ Variables, a []float64) (float64, error) {
				return a[0] + (a[1]-a[0])*a[2], nil
			},
		},
	)
}

func unary[C any](name string, f func(float64) float64) Function[C] {
	return Function[C]{
		Name:   name,
		Arity:  1,
		Params: []string{"x"},
		Impl: func(_ C, _ Variables, a []float64) (float64, error) {
			return f(a[0]), nil
		},
	}
}

// fold reduces one or more arguments with f.
func fold[C any](name string, f func(a, b float64) float64) Function[C] {
	return Function[C]{
		Name:   name,
		Arity:  Variadic,
		Params: []string{"x", "..."},
		Impl: func(_ C, _ Variables, a []float64) (float64, error) {
			if len(a) == 0 {
				return 0, ErrArityMismatch.With(
					slog.String("name", name),
					slog.Int("want", 1),
					slog.Int("got", 0),
				)
			}

			acc := a[0]
			for _, x := range a[1:] {
				acc = f(acc, x)
			}

			return acc, nil
		},
	}
}
