package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/xform/log"
	"github.com/ardnew/xform/transform"
)

// Apply transforms the selected objects of a scene and writes the result.
type Apply struct {
	Expressions `embed:""`

	Scene  string `help:"Scene file to transform ('-' for stdin)." required:"" short:"s" type:"path"`
	Where  string `help:"Transform only the objects matching an expr-lang predicate."`
	Output string `default:"-" help:"Output file ('-' for stdout)." short:"o" type:"path"`
}

// Run executes the apply command.
func (a *Apply) Run(ctx context.Context) (err error) {
	s, err := loadScene(a.Scene)
	if err != nil {
		return err
	}

	indices, err := s.Select(a.Where)
	if err != nil {
		return ErrSelect.Wrap(err).With(slog.String("where", a.Where))
	}

	if len(indices) == 0 {
		log.WarnContext(ctx, "no objects selected",
			slog.String("scene", a.Scene),
			slog.String("where", a.Where),
		)
	}

	err = transform.ApplyScene(ctx, s, indices, a.Get(), a.options()...)
	if err != nil {
		return err
	}

	w, done, err := a.output(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := done(); cerr != nil && err == nil {
			err = ErrWriteOutput.Wrap(cerr).With(slog.String("path", a.Output))
		}
	}()

	if err := s.Write(ctx, w); err != nil {
		return err
	}

	log.InfoContext(ctx, "scene transformed",
		slog.String("scene", a.Scene),
		slog.Int("objects", len(indices)),
		slog.String("output", a.Output),
	)

	return nil
}

// output opens the destination of the transformed scene. The returned
// function closes it.
func (a *Apply) output(ctx context.Context) (io.Writer, func() error, error) {
	if a.Output == "" || a.Output == stdioPath {
		return outputFrom(ctx), func() error { return nil }, nil
	}

	f, err := os.Create(a.Output)
	if err != nil {
		return nil, nil, ErrWriteOutput.Wrap(err).With(slog.String("path", a.Output))
	}

	return f, f.Close, nil
}
