package transform

import (
	"context"
	"log/slog"

	"github.com/ardnew/xform/scene"
)

// Compute evaluates the field expressions for every object in batch and
// returns one [Result] per object, without modifying batch.
//
// All field values and object snapshots are captured before evaluation, so
// the result for one object never depends on the order of evaluation.
// Expressions must pass [Validate]; Compute returns [ErrInvalidExpressions]
// otherwise, and [ErrContract] if an evaluation fails anyway.
func Compute(
	ctx context.Context,
	batch []scene.Object,
	exprs Expressions,
	opts ...Option,
) ([]Result, error) {
	o := makeOptions(opts...)

	if err := validate(exprs, batch, o); err != nil {
		return nil, err
	}

	snaps := make([]scene.Object, len(batch))
	for i, obj := range batch {
		snaps[i] = obj.Clone()
	}

	funcs := o.funcs.Merge(Builtins())
	results := make([]Result, len(batch))

	for _, f := range Fields() {
		src := exprs.Get(f)

		prog, err := o.cache.Compile(src)
		if err != nil {
			return nil, o.violation(ctx, f, src, -1, err)
		}

		targets := make([]float64, len(snaps))
		for i, s := range snaps {
			targets[i] = f.Axis.Of(f.Attribute.Of(s))
		}

		for i := range snaps {
			env := newEnv(Context{
				Field:   f,
				This:    targets[i],
				Index:   i,
				Targets: targets,
				Objects: snaps,
			}, funcs)
			env.Logger = o.logger

			v, err := env.Run(prog)
			if err != nil {
				return nil, o.violation(ctx, f, src, i, err)
			}

			o.logger.TraceContext(ctx, "evaluated",
				slog.String("field", f.String()),
				slog.Int("index", i),
				slog.Float64("this", targets[i]),
				slog.Float64("value", v),
			)

			results[i].set(f, v)
		}
	}

	return results, nil
}

// Apply computes the field expressions for every object in batch and then
// writes the results. Rotation is rebuilt from the three computed Euler
// angles with [scene.Euler]. If any evaluation fails, no object is written.
func Apply(
	ctx context.Context,
	batch []*scene.Object,
	exprs Expressions,
	opts ...Option,
) error {
	objs := make([]scene.Object, len(batch))
	for i, p := range batch {
		objs[i] = *p
	}

	results, err := Compute(ctx, objs, exprs, opts...)
	if err != nil {
		return err
	}

	for i, r := range results {
		batch[i].Position = r.Position
		batch[i].Rotation = scene.EulerVec(r.Rotation)
		batch[i].Scale = r.Scale
	}

	return nil
}

// ApplyScene applies exprs to the objects of s at the given indices.
func ApplyScene(
	ctx context.Context,
	s *scene.Scene,
	indices []int,
	exprs Expressions,
	opts ...Option,
) error {
	batch := make([]*scene.Object, len(indices))
	for i, idx := range indices {
		batch[i] = &s.Objects[idx]
	}

	return Apply(ctx, batch, exprs, opts...)
}

func (o options) violation(
	ctx context.Context,
	f Field,
	src string,
	index int,
	err error,
) error {
	attrs := []slog.Attr{
		slog.String("field", f.String()),
		slog.String("source", src),
	}

	if index >= 0 {
		attrs = append(attrs, slog.Int("index", index))
	}

	o.logger.ErrorContext(ctx, "expression failed after validation",
		append(attrs, slog.Any("error", err))...)

	return ErrContract.Wrap(err).With(attrs...)
}

// NewEnv returns the environment Apply would evaluate field f of the object
// at index in batch against, with the real built-ins. An index outside the
// batch binds this to 0.
func NewEnv(batch []scene.Object, f Field, index int, opts ...Option) Env {
	o := makeOptions(opts...)

	targets := make([]float64, len(batch))
	for i, s := range batch {
		targets[i] = f.Axis.Of(f.Attribute.Of(s))
	}

	var this float64
	if index >= 0 && index < len(batch) {
		this = targets[index]
	}

	env := newEnv(Context{
		Field:   f,
		This:    this,
		Index:   index,
		Targets: targets,
		Objects: batch,
	}, o.funcs.Merge(Builtins()))
	env.Cache = o.cache
	env.Logger = o.logger

	return env
}

// Evaluate evaluates a single expression for the object at index in batch
// with the real built-ins, as Apply would.
func Evaluate(batch []scene.Object, f Field, index int, source string, opts ...Option) (float64, error) {
	return NewEnv(batch, f, index, opts...).Evaluate(source)
}
