package lang

import (
	"errors"
	"sync"
	"testing"
)

func TestCache_Identity(t *testing.T) {
	t.Parallel()

	c := NewCache()

	p1, err := c.Compile("this * 2")
	if err != nil {
		t.Fatal(err)
	}

	p2, err := c.Compile("this * 2")
	if err != nil {
		t.Fatal(err)
	}

	if p1 != p2 {
		t.Error("same source should return the same program")
	}

	p3, err := c.Compile("this * 3")
	if err != nil {
		t.Fatal(err)
	}

	if p3 == p1 {
		t.Error("different source returned the cached program")
	}

	if hits, misses := c.Stats(); hits != 1 || misses != 2 {
		t.Errorf("Stats() = %d, %d; want 1, 2", hits, misses)
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Reset()

	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	c := NewCache()

	for range 2 {
		if _, err := c.Compile("this +"); !errors.Is(err, ErrParse) {
			t.Fatalf("error = %v, want ErrParse", err)
		}
	}

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCache_Options(t *testing.T) {
	t.Parallel()

	c := NewCache(WithMaxDepth(2))

	if _, err := c.Compile("(((1)))"); !errors.Is(err, ErrMaxDepthExceeded) {
		t.Errorf("error = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestCache_Env(t *testing.T) {
	t.Parallel()

	env := testEnv()
	env.Cache = NewCache()

	for range 3 {
		if v, err := env.Evaluate("this + 1"); err != nil || v != 4 {
			t.Fatalf("Evaluate() = %v, %v", v, err)
		}
	}

	if hits, _ := env.Cache.Stats(); hits != 2 {
		t.Errorf("hits = %d, want 2", hits)
	}
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewCache()

	var wg sync.WaitGroup

	progs := make([]*Program, 16)

	for i := range progs {
		wg.Go(func() {
			p, err := c.Compile("index * 2 + this")
			if err != nil {
				t.Error(err)

				return
			}

			progs[i] = p
		})
	}

	wg.Wait()

	for _, p := range progs[1:] {
		if p != progs[0] {
			t.Fatal("concurrent compiles returned distinct programs")
		}
	}
}
