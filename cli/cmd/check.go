package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/xform/log"
	"github.com/ardnew/xform/scene"
	"github.com/ardnew/xform/transform"
)

// Check validates the axis expressions without applying them.
type Check struct {
	Expressions `embed:""`

	Scene string `help:"Validate against the objects of a scene file." short:"s" type:"existingfile"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	var objects []scene.Object

	if c.Scene != "" {
		s, err := scene.Open(c.Scene)
		if err != nil {
			return err
		}

		objects = s.Objects
	}

	failures := transform.Check(c.Get(), objects, c.options()...)

	w := outputFrom(ctx)

	for _, f := range failures {
		fmt.Fprintf(w, "%s: %q: %v\n", f.Field, f.Source, f.Err)
	}

	if len(failures) > 0 {
		return transform.ErrInvalidExpressions.Wrap(
			&transform.ValidationError{Failures: failures},
		)
	}

	log.DebugContext(ctx, "expressions valid",
		slog.Int("fields", len(transform.Fields())))

	fmt.Fprintln(w, "ok")

	return nil
}
