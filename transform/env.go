// Package transform evaluates per-axis expressions over a batch of scene
// objects.
//
// Each of the nine fields (Position, Rotation, Scale × X, Y, Z) has its own
// expression. For the object at batch index i, an expression sees
//
//	this     the field's pre-transform value for object i
//	index    i
//
// and may call the built-ins space_between(spacing, index) and
// center(origin, index), which read the whole batch through the typed
// [Context].
package transform

import (
	"github.com/ardnew/xform/lang"
	"github.com/ardnew/xform/scene"
)

// Names bound in every environment.
const (
	VarThis    = "this"
	VarIndex   = "index"
	VarTargets = "targets" // sequence of pre-transform field values
	VarObjects = "objects" // sequence of object snapshots
	VarField   = "field"   // attribute naming the field, e.g. "Position.X"
)

// Context is the batch state handed to built-in functions. It is built from
// snapshots taken before any object in the batch is written.
type Context struct {
	Field   Field
	This    float64
	Index   int
	Targets []float64      // pre-transform value of Field for each object
	Objects []scene.Object // pre-transform object snapshots
}

// Env is an evaluation environment for one object and field.
type Env = lang.Env[Context]

// Function is a built-in callable from an axis expression.
type Function = lang.Function[Context]

// Functions is a built-in registry.
type Functions = lang.Functions[Context]

// newEnv binds ctx's scalars and batch sequences.
func newEnv(ctx Context, funcs Functions) Env {
	targets := make([]any, len(ctx.Targets))
	for i, t := range ctx.Targets {
		targets[i] = t
	}

	objects := make([]any, len(ctx.Objects))
	for i := range ctx.Objects {
		objects[i] = &ctx.Objects[i]
	}

	return Env{
		Vars: lang.Variables{
			VarThis:    lang.Scalar(ctx.This),
			VarIndex:   lang.Scalar(float64(ctx.Index)),
			VarTargets: lang.Sequence(targets...),
			VarObjects: lang.Sequence(objects...),
			VarField:   lang.Attribute(ctx.Field.String()),
		},
		Funcs:   funcs,
		Context: ctx,
	}
}

// TestEnv returns the environment expressions are validated and previewed
// against: this and index are 0, targets holds a 0 per object, and the
// built-ins are stubs returning 0.
func TestEnv(objects []scene.Object, extra Functions) Env {
	return newEnv(Context{
		Targets: make([]float64, len(objects)),
		Objects: objects,
	}, extra.Merge(Stubs()))
}
