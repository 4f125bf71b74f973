package lang

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"
)

// Cache memoizes compiled programs by the xxh3 hash of their source. It is
// safe for concurrent use. Failed compilations are not cached.
type Cache struct {
	opts   []Option
	config options
	progs  sync.Map // uint64 → *Program

	hits, misses atomic.Uint64
}

// NewCache returns an empty cache that compiles with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{opts: opts, config: makeOptions(opts...)}
}

// Compile returns the cached program for source, compiling and storing it on
// first use.
func (c *Cache) Compile(source string) (*Program, error) {
	key := xxh3.HashString(source)

	if v, ok := c.progs.Load(key); ok {
		if p := v.(*Program); p.source == source {
			c.hits.Add(1)

			return p, nil
		}

		// Hash collision: compile without caching.
		c.config.logger.Trace("cache collision",
			slog.String("source", source), slog.Uint64("key", key))

		return Compile(source, c.opts...)
	}

	c.misses.Add(1)

	p, err := Compile(source, c.opts...)
	if err != nil {
		return nil, err
	}

	actual, _ := c.progs.LoadOrStore(key, p)

	return actual.(*Program), nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	n := 0

	c.progs.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

// Stats returns the number of cache hits and misses.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset discards all cached programs and counters.
func (c *Cache) Reset() {
	c.progs.Clear()
	c.hits.Store(0)
	c.misses.Store(0)
}
