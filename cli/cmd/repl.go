package cmd

import (
	"context"

	"github.com/ardnew/xform/cli/cmd/repl"
	"github.com/ardnew/xform/log"
)

// Repl starts an interactive expression shell.
type Repl struct {
	Binding `embed:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	env, err := r.env(ctx)
	if err != nil {
		return err
	}

	return repl.Run(ctx, env, kongVar(ctx, CacheIdentifier), log.Default())
}
