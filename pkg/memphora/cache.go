package memphora

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// contextCache is a small local cache over formatted context strings, so
// that tight loops hitting GetContext with the same query do not hammer
// the search endpoint. Entries expire quickly; the server remains the
// source of truth.
const contextCacheTTL = 60 * time.Second

type contextCache struct {
	cache *ristretto.Cache
}

func newContextCache() (*contextCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &contextCache{cache: cache}, nil
}

func (c *contextCache) get(query string) (string, bool) {
	value, ok := c.cache.Get(query)
	if !ok {
		return "", false
	}

	formatted, ok := value.(string)
	return formatted, ok
}

func (c *contextCache) set(query, formatted string) {
	c.cache.SetWithTTL(query, formatted, int64(len(formatted)), contextCacheTTL)
	// Waiting for the set buffer keeps reads-after-writes predictable.
	c.cache.Wait()
}
