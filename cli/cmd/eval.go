package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// Eval evaluates a single expression.
type Eval struct {
	Binding `embed:""`

	Expr string `arg:"" help:"Expression to evaluate." name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	env, err := e.env(ctx)
	if err != nil {
		return err
	}

	v, err := env.Evaluate(e.Expr)
	if err != nil {
		return ErrEvaluate.Wrap(err).With(slog.String("expr", e.Expr))
	}

	fmt.Fprintln(outputFrom(ctx), formatFloat(v))

	return nil
}
