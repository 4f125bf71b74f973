package lang

import (
	"errors"
	"testing"
)

// FuzzCompile checks that arbitrary input either compiles or fails with a
// classified error, and that a compiled program re-parses from its rendered
// form into the same tree.
func FuzzCompile(f *testing.F) {
	for _, seed := range []string{
		"1",
		"this * 2 + index",
		"-2^2",
		"2^3^2",
		"space_between(0.5, index)",
		"f()",
		"((1)",
		"1e",
		".5e-3",
		"a $ b",
		"",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		p, err := Compile(input, WithMaxDepth(64))
		if err != nil {
			if !errors.Is(err, ErrLex) && !errors.Is(err, ErrParse) &&
				!errors.Is(err, ErrMaxDepthExceeded) {
				t.Fatalf("Compile(%q) unclassified error: %v", input, err)
			}

			return
		}

		rendered := p.String()

		again, err := Compile(rendered, WithMaxDepth(1<<16))
		if err != nil {
			t.Fatalf("Compile(%q) of rendered %q failed: %v", input, rendered, err)
		}

		if again.String() != rendered {
			t.Fatalf("render not stable: %q → %q", rendered, again.String())
		}
	})
}

func FuzzEvaluate(f *testing.F) {
	f.Add("this * index - 3 % 2")
	f.Add("max(this, index, 1) / 0")
	f.Add("objects + 1")

	env := testEnv()

	f.Fuzz(func(t *testing.T, input string) {
		_, err := env.Evaluate(input)
		if err == nil {
			return
		}

		var ee *Error
		if !errors.As(err, &ee) {
			t.Fatalf("Evaluate(%q) returned %T, want *Error", input, err)
		}

		if ee.Kind() == KindNone {
			t.Fatalf("Evaluate(%q) error has no kind", input)
		}
	})
}
