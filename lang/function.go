package lang

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Variadic is the arity of a function accepting any number of arguments.
const Variadic = -1

// Function describes a callable built-in. Impl receives the evaluated
// arguments, the full variable table, and the caller's typed context.
// Implementations must not retain or mutate vars.
type Function[C any] struct {
	Name  string
	Arity int
	Impl  func(ctx C, vars Variables, args []float64) (float64, error)

	// Params optionally names the parameters for display.
	Params []string
}

// ParamNames returns the display names of f's parameters. Unnamed
// parameters are numbered; a variadic function without names reports a
// single "x..." parameter.
func (f Function[C]) ParamNames() []string {
	if len(f.Params) > 0 {
		return f.Params
	}

	if f.Arity == Variadic {
		return []string{"x..."}
	}

	names := make([]string, f.Arity)
	for i := range names {
		names[i] = "arg" + strconv.Itoa(i)
	}

	return names
}

// Signature renders f as a call, e.g. "clamp(x, lo, hi)".
func (f Function[C]) Signature() string {
	return f.Name + "(" + strings.Join(f.ParamNames(), ", ") + ")"
}

// Functions is a registry of functions keyed by name.
type Functions[C any] map[string]Function[C]

// Define returns a registry containing fns in addition to those of fs.
// A later definition replaces an earlier one of the same name. The receiver
// is not modified.
func (fs Functions[C]) Define(fns ...Function[C]) Functions[C] {
	out := make(Functions[C], len(fs)+len(fns))

	maps.Copy(out, fs)

	for _, fn := range fns {
		out[fn.Name] = fn
	}

	return out
}

// Merge returns a registry holding the union of fs and other, preferring
// other on conflicts.
func (fs Functions[C]) Merge(other Functions[C]) Functions[C] {
	out := make(Functions[C], len(fs)+len(other))

	maps.Copy(out, fs)
	maps.Copy(out, other)

	return out
}

// Names returns the sorted function names.
func (fs Functions[C]) Names() []string {
	return slices.Sorted(maps.Keys(fs))
}
