package lang

import (
	"log/slog"

	"github.com/ardnew/xform/log"
)

// Env is the environment of one evaluation: variable bindings, a function
// registry, and the context passed to every function implementation.
//
// Evaluation never modifies an Env, so one value may be reused for any
// number of evaluations.
type Env[C any] struct {
	Vars    Variables
	Funcs   Functions[C]
	Context C

	// Cache, if set, is consulted by Evaluate and TryEvaluate before
	// compiling source text.
	Cache *Cache

	// Logger receives trace-level diagnostics. The zero value discards them.
	Logger log.Logger
}

// Evaluate compiles source and evaluates it against e.
func (e Env[C]) Evaluate(source string) (float64, error) {
	p, err := e.compile(source)
	if err != nil {
		return 0, err
	}

	return e.Run(p)
}

// TryEvaluate is like Evaluate but never fails. On failure it returns 0 and
// false.
func (e Env[C]) TryEvaluate(source string) (float64, bool) {
	v, err := e.Evaluate(source)
	if err != nil {
		e.Logger.Trace("expression rejected",
			slog.String("source", source), slog.Any("error", err))

		return 0, false
	}

	return v, true
}

// Run evaluates a compiled program against e.
func (e Env[C]) Run(p *Program) (float64, error) {
	return Evaluate(p.root, e)
}

func (e Env[C]) compile(source string) (*Program, error) {
	if e.Cache != nil {
		return e.Cache.Compile(source)
	}

	return Compile(source, WithLogger(e.Logger))
}

// MustEvaluate evaluates source against env and panics on failure. It is
// meant for callers that have already validated source against an
// equivalent environment.
func MustEvaluate[C any](source string, env Env[C]) float64 {
	v, err := env.Evaluate(source)
	if err != nil {
		panic(err)
	}

	return v
}
