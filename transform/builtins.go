package transform

import (
	"math"

	"github.com/ardnew/xform/lang"
)

// epsilon is the smallest positive float32, the scale tolerance used when
// deciding whether an object is scaled.
const epsilon = math.SmallestNonzeroFloat32

// Built-in function names.
const (
	FuncSpaceBetween = "space_between"
	FuncCenter       = "center"
)

// Builtins returns the layout functions space_between and center.
func Builtins() Functions {
	return Functions{
		FuncSpaceBetween: {
			Name:   FuncSpaceBetween,
			Arity:  2,
			Params: []string{"spacing", "index"},
			Impl: func(ctx Context, vars lang.Variables, args []float64) (float64, error) {
				return SpaceBetween(bindThis(ctx, vars), args[0], args[1]), nil
			},
		},
		FuncCenter: {
			Name:   FuncCenter,
			Arity:  2,
			Params: []string{"origin", "index"},
			Impl: func(ctx Context, vars lang.Variables, args []float64) (float64, error) {
				return Center(bindThis(ctx, vars), args[0], args[1]), nil
			},
		},
	}
}

// bindThis returns ctx with This taken from the caller's this binding, which
// a front door may have rebound.
func bindThis(ctx Context, vars lang.Variables) Context {
	if v, ok := vars.Scalar(VarThis); ok {
		ctx.This = v
	}

	return ctx
}

// Stubs returns versions of the built-ins that accept the same arguments and
// always return 0.
func Stubs() Functions {
	zero := func(Context, lang.Variables, []float64) (float64, error) { return 0, nil }

	return Functions{
		FuncSpaceBetween: {Name: FuncSpaceBetween, Arity: 2, Params: []string{"spacing", "index"}, Impl: zero},
		FuncCenter:       {Name: FuncCenter, Arity: 2, Params: []string{"origin", "index"}, Impl: zero},
	}
}

// SpaceBetween returns the offset along ctx's axis at which the object at
// index is placed when the batch is laid out end to end with gap spacing,
// accounting for each predecessor's bounding size and scale.
//
// If any object in the batch has no bounds, the pre-transform value is
// returned unchanged.
func SpaceBetween(ctx Context, spacing, index float64) float64 {
	objs := ctx.Objects

	for _, o := range objs {
		if o.Bounds == nil {
			return ctx.This
		}
	}

	axis := ctx.Field.Axis
	offset := 0.0

	for k := 0; float64(k) < index && k < len(objs); k++ {
		scale := axis.Of(objs[k].Scale)
		size := axis.Of(objs[k].Bounds.Size)

		if k == 0 {
			offset = (size-axis.Of(objs[k].Bounds.Center))*scale + spacing

			continue
		}

		offset += size*scale + spacing

		// Shim toward the next object if it is scaled, otherwise undo this
		// object's own scale growth.
		if k+1 < len(objs) && math.Abs(axis.Of(objs[k+1].Scale)-1) > epsilon {
			nextScale := axis.Of(objs[k+1].Scale)
			nextSize := axis.Of(objs[k+1].Bounds.Size)
			offset += (nextSize*nextScale - nextSize) / 2
		} else if math.Abs(scale-1) > epsilon {
			offset -= (size*scale - size) / 2
		}
	}

	return offset
}

// Center returns origin plus the offset of the object at index from the mean
// of the batch's pre-transform values, re-centering the batch on origin. An
// index outside the batch returns the pre-transform value.
//
// The inspector this function is modelled on registers center with a body
// that always returns 0. Re-centering is this package's own definition; the
// validation stub keeps the 0 result.
func Center(ctx Context, origin, index float64) float64 {
	if math.IsNaN(index) || index < 0 || index >= float64(len(ctx.Targets)) {
		return ctx.This
	}

	i := int(index)

	mean := 0.0
	for _, t := range ctx.Targets {
		mean += t
	}

	mean /= float64(len(ctx.Targets))

	return origin + ctx.Targets[i] - mean
}
