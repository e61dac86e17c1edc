package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := cacheKey(Users, bson.M{"academyId": "A1", "role": "coach"})
	b := cacheKey(Users, bson.M{"role": "coach", "academyId": "A1"})
	if a != b {
		t.Errorf("cache keys differ for equivalent filters: %q vs %q", a, b)
	}
}

func TestCacheKeyDistinguishesCollections(t *testing.T) {
	a := cacheKey(Users, bson.M{"academyId": "A1"})
	b := cacheKey(PlayerData, bson.M{"academyId": "A1"})
	if a == b {
		t.Error("different collections must not share a cache key")
	}
}

func TestQueryCacheInvalidateByCollection(t *testing.T) {
	c := newQueryCache()
	userKey := cacheKey(Users, bson.M{"academyId": "A1"})
	batchKey := cacheKey(Batches, bson.M{"academyId": "A1"})

	c.put(userKey, []Document{{"id": "u-1"}})
	c.put(batchKey, []Document{{"id": "b-1"}})

	c.invalidate(Users)

	if _, ok := c.get(userKey); ok {
		t.Error("invalidated collection entry still cached")
	}
	if _, ok := c.get(batchKey); !ok {
		t.Error("invalidation must not touch other collections")
	}
}
