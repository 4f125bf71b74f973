package repl

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestHistory_Persistence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	for _, e := range []HistoryEntry{
		{"1 + 2", modeEval},
		{"vars", modeCtrl},
		{"w = 3", modeEval},
		{"  ", modeEval},
	} {
		if err := h.Add(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), "E:1 + 2\nC:vars\nE:w = 3\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(reloaded.Entries(), h.Entries()) {
		t.Errorf("reloaded %v, want %v", reloaded.Entries(), h.Entries())
	}
}

func TestHistory_Dedup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, line := range []string{"a", "b", "b", "a"} {
		if err := h.Add(line, modeEval); err != nil {
			t.Fatal(err)
		}
	}

	// The same line in another mode is a distinct entry.
	if err := h.Add("a", modeCtrl); err != nil {
		t.Fatal(err)
	}

	want := []HistoryEntry{{"b", modeEval}, {"a", modeEval}, {"a", modeCtrl}}
	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(string(data), "\n"); got != len(want) {
		t.Errorf("file has %d lines, want %d", got, len(want))
	}
}

func TestHistory_Bounds(t *testing.T) {
	t.Parallel()

	h := NewHistory("")

	if _, err := h.Entry(0); err != ErrOutOfBounds {
		t.Errorf("Entry(0) on empty history: %v", err)
	}

	for i := range maxHistory + 5 {
		if err := h.Add(strings.Repeat("x", i+1), modeEval); err != nil {
			t.Fatal(err)
		}
	}

	if got := h.Len(); got != maxHistory {
		t.Errorf("Len() = %d, want %d", got, maxHistory)
	}

	oldest, err := h.Entry(0)
	if err != nil {
		t.Fatal(err)
	}

	if len(oldest.Line) != 6 {
		t.Errorf("oldest entry has length %d, want 6", len(oldest.Line))
	}
}
