package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.mongodb.org/mongo-driver/bson"
)

// Read-cache policy: at most cacheSize distinct queries are memoized, each
// for cacheTTL. Writes invalidate their collection explicitly, so the TTL
// only bounds staleness across processes, not within one.
const (
	cacheSize = 100
	cacheTTL  = 30 * time.Second
)

type queryCache struct {
	lru *expirable.LRU[string, []Document]
}

func newQueryCache() *queryCache {
	return &queryCache{
		lru: expirable.NewLRU[string, []Document](cacheSize, nil, cacheTTL),
	}
}

func (c *queryCache) get(key string) ([]Document, bool) {
	return c.lru.Get(key)
}

func (c *queryCache) put(key string, docs []Document) {
	c.lru.Add(key, docs)
}

func (c *queryCache) invalidate(collection string) {
	prefix := collection + "|"
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}

// cacheKey builds a deterministic key from the collection name and filter.
// Filter keys are sorted because bson.M iteration order is not stable.
func cacheKey(collection string, filter bson.M) string {
	if len(filter) == 0 {
		return collection + "|"
	}
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(collection)
	b.WriteString("|")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%v;", k, filter[k])
	}
	return b.String()
}
