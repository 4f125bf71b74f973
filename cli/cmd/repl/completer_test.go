package repl

import (
	"slices"
	"testing"

	"github.com/ardnew/xform/log"
	"github.com/ardnew/xform/transform"
)

func TestWordBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_minus", "a-fo", 4, "fo", 2, 4},
		{"after_caret", "2^ind", 5, "ind", 2, 5},
		{"after_paren", "clamp(fo", 8, "fo", 6, 8},
		{"after_comma", "max(a, fo", 9, "fo", 7, 9},
		{"after_assign", "w=th", 4, "th", 2, 4},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"underscore", "space_be", 8, "space_be", 0, 8},
		{"cursor_past_end", "ab", 10, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func testModel(t *testing.T) model {
	t.Helper()

	env := transform.NewEnv(nil, transform.Field{}, 0,
		transform.WithLogger(log.Make(nil)))

	return newModel(t.Context(), newSession(env, log.Make(nil)),
		NewHistory(""), log.Make(nil))
}

func TestComputeMatches(t *testing.T) {
	t.Parallel()

	m := testModel(t)

	m.input.SetValue("1 + spa")
	m.input.SetCursor(7)

	matches, _, start, end := m.computeMatches()
	if start != 4 || end != 7 {
		t.Errorf("bounds = (%d, %d), want (4, 7)", start, end)
	}

	if len(matches) == 0 || matches[0].Str != transform.FuncSpaceBetween {
		t.Fatalf("best match = %v, want %q", matches, transform.FuncSpaceBetween)
	}

	m.input.SetValue("12")
	m.input.SetCursor(2)

	if matches, _, _, _ := m.computeMatches(); matches != nil {
		t.Errorf("numbers should not complete, got %v", matches)
	}
}

func TestComputeMatches_CtrlMode(t *testing.T) {
	t.Parallel()

	m := testModel(t).switchToMode(modeCtrl)

	m.input.SetValue("fu")
	m.input.SetCursor(2)

	matches, candidates, _, _ := m.computeMatches()
	if !slices.Equal(candidates, ctrlCommands) {
		t.Errorf("candidates = %v, want %v", candidates, ctrlCommands)
	}

	if len(matches) == 0 || matches[0].Str != "funcs" {
		t.Errorf("best match = %v, want funcs", matches)
	}
}

func TestCycle(t *testing.T) {
	t.Parallel()

	m := testModel(t)

	m.input.SetValue("c")
	m.input.SetCursor(1)
	refreshMatches(&m, true)

	if len(m.matches) < 2 {
		t.Fatalf("want several matches for %q, got %v", "c", m.matches)
	}

	first := m.cycle(1)
	if !first.tabActive || first.input.Value() != first.matches[0].Str {
		t.Errorf("first tab: value %q, active %v", first.input.Value(), first.tabActive)
	}

	back := first.cycle(-1)
	if want := first.matches[len(first.matches)-1].Str; back.input.Value() != want {
		t.Errorf("wrap backward: value %q, want %q", back.input.Value(), want)
	}
}
