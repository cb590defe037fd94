package cache

import (
	"context"
	"sync"
	"time"

	"blogclient/internal/domain"

	"golang.org/x/sync/singleflight"
)

// entry holds a fetched value and its freshness metadata.
type entry struct {
	value     any
	fetchedAt time.Time
	freshFor  time.Duration
}

func (e *entry) fresh(now time.Time) bool {
	return now.Before(e.fetchedAt.Add(e.freshFor))
}

// QueryCache is a keyed in-memory cache of query results with per-read
// freshness windows. Concurrent reads of one key collapse into a
// single in-flight fetch. Implements domain.QueryCache.
type QueryCache struct {
	mu              sync.RWMutex
	entries         map[string]*entry
	gens            map[string]uint64
	group           singleflight.Group
	defaultFreshFor time.Duration
}

// New creates a query cache whose reads default to the given freshness
// window unless the read's options override it.
func New(defaultFreshFor time.Duration) *QueryCache {
	return &QueryCache{
		entries:         make(map[string]*entry),
		gens:            make(map[string]uint64),
		defaultFreshFor: defaultFreshFor,
	}
}

// Read returns a fresh cached value for key, or fetches one. A failed
// fetch populates nothing, so the next read is a fresh attempt. When
// ctx is done before the fetch settles, the caller gets ctx.Err() and
// the fetch runs to completion in the background, populating the cache
// for later readers.
func (c *QueryCache) Read(ctx context.Context, key string, fetch domain.FetchFunc, opts domain.ReadOptions) (any, error) {
	freshFor := c.defaultFreshFor
	if opts.FreshFor > 0 {
		freshFor = opts.FreshFor
	}

	if v, ok := c.lookup(key); ok {
		return v, nil
	}
	if opts.DisableFetch {
		return nil, domain.ErrFetchDisabled
	}

	// The flight detaches from the caller's context so an unmounting
	// caller discards the result without aborting the fetch.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		gen := c.generation(key)
		v, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, gen, v, freshFor)
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate discards key's entry regardless of freshness. It does not
// refetch; the next Read does. An in-flight fetch for key is forgotten
// so a read issued after the invalidation starts a new one, and the
// generation bump keeps the forgotten flight's late result from
// re-freshening the key with a pre-invalidation value.
func (c *QueryCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.gens[key]++
	c.mu.Unlock()
	c.group.Forget(key)
}

func (c *QueryCache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, found := c.entries[key]
	if !found || !e.fresh(time.Now()) {
		return nil, false
	}
	return e.value, true
}

func (c *QueryCache) generation(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[key]
}

// store records a fetched value unless the key was invalidated after
// the fetch started; a stale flight's result is returned to its
// callers but never cached.
func (c *QueryCache) store(key string, gen uint64, value any, freshFor time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[key] != gen {
		return
	}
	c.entries[key] = &entry{
		value:     value,
		fetchedAt: time.Now(),
		freshFor:  freshFor,
	}
}
