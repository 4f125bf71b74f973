package lang

import (
	"slices"
	"testing"
)

func TestFunction_Signature(t *testing.T) {
	t.Parallel()

	std := StandardFunctions[struct{}]()

	tests := []struct {
		fn   Function[struct{}]
		want string
	}{
		{std["clamp"], "clamp(x, lo, hi)"},
		{std["sqrt"], "sqrt(x)"},
		{std["max"], "max(x, ...)"},
		{Function[struct{}]{Name: "f", Arity: 2}, "f(arg0, arg1)"},
		{Function[struct{}]{Name: "g", Arity: Variadic}, "g(x...)"},
		{Function[struct{}]{Name: "now"}, "now()"},
	}

	for _, tt := range tests {
		if got := tt.fn.Signature(); got != tt.want {
			t.Errorf("Signature() = %q, want %q", got, tt.want)
		}
	}
}

func TestFunctions_MergeDefine(t *testing.T) {
	t.Parallel()

	base := Functions[struct{}]{}.Define(
		Function[struct{}]{Name: "a", Arity: 1},
		Function[struct{}]{Name: "b", Arity: 1},
	)

	merged := base.Merge(Functions[struct{}]{
		"b": {Name: "b", Arity: 2},
		"c": {Name: "c", Arity: 3},
	})

	if got, want := merged.Names(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	if merged["b"].Arity != 2 {
		t.Errorf("Merge should prefer the argument, got arity %d", merged["b"].Arity)
	}

	if len(base) != 2 || base["b"].Arity != 1 {
		t.Errorf("Merge modified its receiver: %v", base.Names())
	}

	var none Functions[struct{}]
	if got := none.Merge(base).Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("nil.Merge() = %v", got)
	}
}
