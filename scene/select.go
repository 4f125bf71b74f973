package scene

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/go-gl/mathgl/mgl64"
)

// Filter is a compiled object predicate.
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles a boolean expr-lang predicate evaluated once per
// object with the variables
//
//	name      string
//	index     int                  position in the scene
//	position  {x, y, z float}
//	rotation  {x, y, z float}      Euler degrees
//	scale     {x, y, z float}
//	bounded   bool                 object has bounds
//
// For example:
//
//	bounded && position.y > 0 && name startsWith "crate"
func CompileFilter(predicate string) (*Filter, error) {
	p, err := expr.Compile(predicate, expr.Env(filterEnv(NewObject(""), 0)), expr.AsBool())
	if err != nil {
		return nil, ErrFilter.Wrap(err).With(slog.String("predicate", predicate))
	}

	return &Filter{source: predicate, program: p}, nil
}

// String returns the predicate source.
func (f *Filter) String() string { return f.source }

// Match reports whether o at scene index i satisfies f.
func (f *Filter) Match(o Object, i int) (bool, error) {
	out, err := expr.Run(f.program, filterEnv(o, i))
	if err != nil {
		return false, ErrFilter.Wrap(err).With(
			slog.String("predicate", f.source),
			slog.String("object", o.Name),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns the indices of the objects of s matching predicate, in
// scene order. An empty predicate selects every object.
func (s *Scene) Select(predicate string) ([]int, error) {
	if predicate == "" {
		idx := make([]int, len(s.Objects))
		for i := range idx {
			idx[i] = i
		}

		return idx, nil
	}

	f, err := CompileFilter(predicate)
	if err != nil {
		return nil, err
	}

	var idx []int

	for i, o := range s.Objects {
		ok, err := f.Match(o, i)
		if err != nil {
			return nil, err
		}

		if ok {
			idx = append(idx, i)
		}
	}

	return idx, nil
}

func filterEnv(o Object, i int) map[string]any {
	return map[string]any{
		"name":     o.Name,
		"index":    i,
		"position": components(o.Position),
		"rotation": components(o.EulerAngles()),
		"scale":    components(o.Scale),
		"bounded":  o.Bounds != nil,
	}
}

func components(v mgl64.Vec3) map[string]float64 {
	return map[string]float64{"x": v[0], "y": v[1], "z": v[2]}
}
