package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names. Every academy-scoped document lives in one of these.
const (
	Users       = "ams-users"
	PlayerData  = "ams-player-data"
	Batches     = "ams-batches"
	Sessions    = "ams-sessions"
	Finance     = "ams-finance"
	Attendance  = "ams-attendance"
	Academy     = "ams-academy"
	About       = "ams-about"
	Credentials = "ams-credentials"
	Achievement = "ams-achievement"
)

// Fetcher is the read side of the store. Export and dashboard code depends on
// this rather than on *Store so tests can substitute a stub.
type Fetcher interface {
	Fetch(ctx context.Context, collection string, filter bson.M) ([]Document, error)
}

// Store wraps the Mongo database with the read cache and canonical-id
// normalization. All feature repositories go through it.
type Store struct {
	db    *mongo.Database
	cache *queryCache
	log   *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Store {
	return &Store{
		db:    db,
		cache: newQueryCache(),
		log:   log,
	}
}

// Collection exposes the raw collection handle for write paths. Writers must
// call Invalidate with the same collection name afterwards.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Fetch returns all documents in the named collection matching the filter,
// normalized to carry a canonical id. Results are served from the read cache
// when a fresh entry exists.
func (s *Store) Fetch(ctx context.Context, collection string, filter bson.M) ([]Document, error) {
	key := cacheKey(collection, filter)
	if docs, ok := s.cache.get(key); ok {
		return docs, nil
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []Document{}
	for cur.Next(ctx) {
		var doc Document
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		docs = append(docs, Normalize(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}

	s.cache.put(key, docs)
	return docs, nil
}

// FetchOrEmpty is the tolerant-read variant used by dashboard-style
// aggregation: on any error it logs a warning and returns an empty slice, so
// one failed collection degrades to empty instead of failing the whole view.
func (s *Store) FetchOrEmpty(ctx context.Context, collection string, filter bson.M) []Document {
	docs, err := s.Fetch(ctx, collection, filter)
	if err != nil {
		s.log.Warn("collection fetch failed, degrading to empty",
			zap.String("collection", collection), zap.Error(err))
		return []Document{}
	}
	return docs
}

// FetchOne returns the first document matching the filter, or nil when none
// matches.
func (s *Store) FetchOne(ctx context.Context, collection string, filter bson.M) (Document, error) {
	var doc Document
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find one %s: %w", collection, err)
	}
	return Normalize(doc), nil
}

// Invalidate drops every cached query for the collection. Every write path
// calls this, so readers in the same process never observe the TTL staleness
// window after a write.
func (s *Store) Invalidate(collection string) {
	s.cache.invalidate(collection)
}

// EnsureIndexes creates the indexes the application expects. It is
// best-effort: failures are logged and boot continues, matching the
// schema-less posture of the collections.
func (s *Store) EnsureIndexes(ctx context.Context) {
	type spec struct {
		collection string
		model      mongo.IndexModel
	}
	specs := []spec{
		{Users, mongo.IndexModel{Keys: bson.D{{Key: "academyId", Value: 1}}}},
		{Users, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{PlayerData, mongo.IndexModel{Keys: bson.D{{Key: "academyId", Value: 1}}}},
		{Batches, mongo.IndexModel{Keys: bson.D{{Key: "academyId", Value: 1}}}},
		{Sessions, mongo.IndexModel{Keys: bson.D{{Key: "academyId", Value: 1}, {Key: "date", Value: 1}}}},
		{Finance, mongo.IndexModel{Keys: bson.D{{Key: "academyId", Value: 1}, {Key: "type", Value: 1}}}},
		// One attendance record per (userId, date, type); marking is an upsert
		// on the same key, so this is belt and braces.
		{Attendance, mongo.IndexModel{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "type", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{Attendance, mongo.IndexModel{Keys: bson.D{{Key: "academyId", Value: 1}}}},
	}

	for _, sp := range specs {
		if _, err := s.db.Collection(sp.collection).Indexes().CreateOne(ctx, sp.model); err != nil {
			s.log.Warn("index creation failed",
				zap.String("collection", sp.collection), zap.Error(err))
		}
	}
}
