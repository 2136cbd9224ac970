// Package memoize provides the memoizing wrapper: it caches a target's
// return values keyed by call input, with a bounded cache and strict
// least-recently-used eviction.
//
// Memoization assumes a deterministic target: the same input must produce
// the same result. The wrapper does not verify this, it only enforces that
// inputs are usable as cache keys.
package memoize

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/code19m/errx"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rise-and-shine/wrap"
)

// Config defines configuration options for the memoizing wrapper.
type Config struct {
	// CacheLimit bounds the number of cached entries. Past the limit the
	// least-recently-used entry is evicted; hits and inserts both count
	// as use. Capacity is entry count, not byte size.
	// Default is 1000.
	CacheLimit int `default:"1000" validate:"gte=1"`
}

// New builds a memoizing wrapper from cfg. Each application of the returned
// WrapFunc owns a private cache, so wrapping two functions (or the same
// function twice) yields independent caches.
//
// Cache bookkeeping is guarded by a per-instance mutex; the target itself
// runs outside the lock, so concurrent first calls for the same input may
// each invoke the target once.
func New[I comparable, R any](cfg Config) (wrap.WrapFunc[I, R], error) {
	if err := wrap.PrepareConfig(&cfg); err != nil {
		return nil, err
	}

	return func(next wrap.Func[I, R]) wrap.Func[I, R] {
		c := &cache[I, R]{
			entries: orderedmap.New[I, R](),
			limit:   cfg.CacheLimit,
		}

		return func(ctx context.Context, in I) (R, error) {
			if err := checkKeyable(in); err != nil {
				var zero R
				return zero, err
			}

			if out, ok := c.lookup(in); ok {
				return out, nil
			}

			out, err := next(ctx, in)
			if err != nil {
				// target failures are propagated unmodified, never cached
				return out, err
			}

			c.store(in, out)
			return out, nil
		}
	}, nil
}

// cache is a bounded LRU map owned by a single wrapped callable.
type cache[I comparable, R any] struct {
	mu      sync.Mutex
	entries *orderedmap.OrderedMap[I, R]
	limit   int
}

// lookup returns the cached value for key and refreshes it to the
// most-recently-used position.
func (c *cache[I, R]) lookup(key I) (R, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out, ok := c.entries.Get(key)
	if ok {
		_ = c.entries.MoveToBack(key)
	}
	return out, ok
}

// store inserts the value as most-recently-used and evicts the
// least-recently-used entry once the cache exceeds its limit.
func (c *cache[I, R]) store(key I, value R) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Set(key, value)
	_ = c.entries.MoveToBack(key)

	if c.entries.Len() > c.limit {
		if oldest := c.entries.Oldest(); oldest != nil {
			_, _ = c.entries.Delete(oldest.Key)
		}
	}
}

// checkKeyable fails fast when the input cannot serve as a cache key. This
// only arises when I is instantiated with an interface type whose dynamic
// value is not comparable (a slice, a map, a function).
func checkKeyable(v any) error {
	if v == nil {
		return nil
	}
	if reflect.ValueOf(v).Comparable() {
		return nil
	}
	return errx.New(
		fmt.Sprintf("memoize: input of type %T is not usable as a cache key", v),
		errx.WithCode(wrap.CodeUnhashableInput),
		errx.WithType(errx.T_Validation),
	)
}
