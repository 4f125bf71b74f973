package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/xform/lang"
	"github.com/ardnew/xform/scene"
)

func boxes(sizes, scales []float64) []scene.Object {
	objs := make([]scene.Object, len(sizes))

	for i := range sizes {
		o := scene.NewObject("box")
		o.Scale = mgl64.Vec3{scales[i], 1, 1}
		o.Bounds = &scene.Bounds{Size: mgl64.Vec3{sizes[i], 1, 1}}
		objs[i] = o
	}

	return objs
}

func xContext(objs []scene.Object) Context {
	return Context{Field: Field{Attribute: Position, Axis: scene.AxisX}, This: -7, Objects: objs}
}

func TestSpaceBetween_SingleObject(t *testing.T) {
	t.Parallel()

	o := scene.NewObject("solo")
	o.Scale = mgl64.Vec3{3, 1, 1}
	o.Bounds = &scene.Bounds{
		Center: mgl64.Vec3{0.5, 0, 0},
		Size:   mgl64.Vec3{2, 1, 1},
	}

	ctx := xContext([]scene.Object{o})

	// (size - center) * scale + spacing
	require.InDelta(t, (2-0.5)*3+1.0, SpaceBetween(ctx, 1, 1), 1e-12)

	// Index past the batch stops at its end.
	require.InDelta(t, (2-0.5)*3+1.0, SpaceBetween(ctx, 1, 5), 1e-12)

	// No predecessors.
	require.Zero(t, SpaceBetween(ctx, 1, 0))
}

func TestSpaceBetween_Accumulates(t *testing.T) {
	t.Parallel()

	ctx := xContext(boxes([]float64{1, 2, 4}, []float64{1, 1, 1}))

	tests := []struct {
		index float64
		want  float64
	}{
		{0, 0},
		{1, 1.5},
		{2, 4.0},
		{3, 8.5},
		{1.5, 4.0}, // every k < index
		{-1, 0},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, SpaceBetween(ctx, 0.5, tt.index), 1e-12, "index %v", tt.index)
	}
}

func TestSpaceBetween_Shim(t *testing.T) {
	t.Parallel()

	// Next object scaled: add half its growth.
	next := xContext(boxes([]float64{1, 2, 4}, []float64{1, 1, 2}))
	require.InDelta(t, 1.5+2.5+(4*2-4)/2.0, SpaceBetween(next, 0.5, 2), 1e-12)

	// Next object unscaled, this one scaled: remove half its own growth.
	own := xContext(boxes([]float64{1, 2, 4}, []float64{1, 2, 1}))
	require.InDelta(t, 1.5+4.5-(2*2-2)/2.0, SpaceBetween(own, 0.5, 2), 1e-12)

	// The first predecessor is never shimmed.
	first := xContext(boxes([]float64{1, 2}, []float64{2, 3}))
	require.InDelta(t, 1*2+0.5, SpaceBetween(first, 0.5, 1), 1e-12)
}

func TestSpaceBetween_MissingBounds(t *testing.T) {
	t.Parallel()

	objs := boxes([]float64{1, 1}, []float64{1, 1})
	objs[1].Bounds = nil

	require.Equal(t, -7.0, SpaceBetween(xContext(objs), 0.5, 1))
}

func TestSpaceBetween_Axis(t *testing.T) {
	t.Parallel()

	objs := boxes([]float64{1, 1}, []float64{1, 1})
	objs[0].Bounds.Size = mgl64.Vec3{1, 3, 1}

	ctx := xContext(objs)
	ctx.Field.Axis = scene.AxisY

	require.InDelta(t, 3.25, SpaceBetween(ctx, 0.25, 1), 1e-12)
}

func TestCenter(t *testing.T) {
	t.Parallel()

	ctx := Context{This: 42, Targets: []float64{0, 1, 5}}

	require.InDelta(t, 8.0, Center(ctx, 10, 0), 1e-12)
	require.InDelta(t, 9.0, Center(ctx, 10, 1), 1e-12)
	require.InDelta(t, 13.0, Center(ctx, 10, 2), 1e-12)
	require.Equal(t, 42.0, Center(ctx, 10, 3))
	require.Equal(t, 42.0, Center(ctx, 10, -1))
	require.Equal(t, 42.0, Center(ctx, 10, math.NaN()))
	require.Equal(t, 42.0, Center(Context{This: 42}, 0, 0))
}

func TestStubs(t *testing.T) {
	t.Parallel()

	env := TestEnv(boxes([]float64{1}, []float64{1}), nil)

	v, err := env.Evaluate("space_between(3, 1) + center(9, 0) + 1")
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = env.Evaluate("center(1)")
	require.Error(t, err)
}

func TestBuiltins_ReboundThis(t *testing.T) {
	t.Parallel()

	a, b := scene.NewObject("a"), scene.NewObject("b")
	a.Position = mgl64.Vec3{3, 0, 0}

	env := NewEnv([]scene.Object{a, b}, Field{Attribute: Position, Axis: scene.AxisX}, 0)
	env.Vars[VarThis] = lang.Scalar(5)

	// Unbounded objects fall back to the bound this, not the snapshot.
	v, err := env.Evaluate("space_between(1, index)")
	require.NoError(t, err)
	require.InDelta(t, 5, v, 1e-12)

	v, err = env.Evaluate("center(0, 9)")
	require.NoError(t, err)
	require.InDelta(t, 5, v, 1e-12)

	// In range, center still reads the pre-transform targets.
	v, err = env.Evaluate("center(0, index)")
	require.NoError(t, err)
	require.InDelta(t, 1.5, v, 1e-12)
}
