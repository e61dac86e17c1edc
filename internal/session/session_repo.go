package session

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/store"
)

// SessionRepository defines the data operations on ams-sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	ListByAcademy(ctx context.Context, academyID string) ([]Session, error)
	ListRecurringParents(ctx context.Context) ([]Session, error)
	OccurrenceExists(ctx context.Context, parentID, occurrenceDate string) (bool, error)
	UpdateStatus(ctx context.Context, sessionID, status string) error
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	st *store.Store
}

func NewSessionRepository(st *store.Store) SessionRepository {
	return &sessionRepository{st: st}
}

func (r *sessionRepository) Create(ctx context.Context, s *Session) error {
	if _, err := r.st.Collection(store.Sessions).InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	r.st.Invalidate(store.Sessions)
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, sessionID string) (*Session, error) {
	var s Session
	err := r.st.Collection(store.Sessions).FindOne(ctx, bson.M{"id": sessionID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &s, nil
}

func (r *sessionRepository) ListByAcademy(ctx context.Context, academyID string) ([]Session, error) {
	cur, err := r.st.Collection(store.Sessions).Find(ctx, bson.M{"academyId": academyID})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cur.Close(ctx)

	var sessions []Session
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) ListRecurringParents(ctx context.Context) ([]Session, error) {
	cur, err := r.st.Collection(store.Sessions).Find(ctx, bson.M{
		"isRecurring": true,
		"status":      bson.M{"$ne": StatusCancelled},
	})
	if err != nil {
		return nil, fmt.Errorf("list recurring sessions: %w", err)
	}
	defer cur.Close(ctx)

	var sessions []Session
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode recurring sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) OccurrenceExists(ctx context.Context, parentID, occurrenceDate string) (bool, error) {
	n, err := r.st.Collection(store.Sessions).CountDocuments(ctx, bson.M{
		"parentSessionId": parentID,
		"occurrenceDate":  occurrenceDate,
	})
	if err != nil {
		return false, fmt.Errorf("count occurrences: %w", err)
	}
	return n > 0, nil
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, sessionID, status string) error {
	res, err := r.st.Collection(store.Sessions).UpdateOne(ctx,
		bson.M{"id": sessionID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Sessions)
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	res, err := r.st.Collection(store.Sessions).DeleteOne(ctx, bson.M{"id": sessionID})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Sessions)
	return nil
}
