package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/store"
)

// BatchRepository defines the data operations on ams-batches.
type BatchRepository interface {
	Create(ctx context.Context, b *Batch) error
	GetByID(ctx context.Context, batchID string) (*Batch, error)
	ListByAcademy(ctx context.Context, academyID string) ([]Batch, error)
	ListByCoach(ctx context.Context, academyID, coachID string) ([]Batch, error)
	Update(ctx context.Context, batchID string, set bson.M) error
	Delete(ctx context.Context, batchID string) error
}

type batchRepository struct {
	st *store.Store
}

func NewBatchRepository(st *store.Store) BatchRepository {
	return &batchRepository{st: st}
}

func (r *batchRepository) Create(ctx context.Context, b *Batch) error {
	if _, err := r.st.Collection(store.Batches).InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	r.st.Invalidate(store.Batches)
	return nil
}

func (r *batchRepository) GetByID(ctx context.Context, batchID string) (*Batch, error) {
	var b Batch
	err := r.st.Collection(store.Batches).FindOne(ctx, bson.M{"id": batchID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find batch: %w", err)
	}
	return &b, nil
}

func (r *batchRepository) ListByAcademy(ctx context.Context, academyID string) ([]Batch, error) {
	return r.list(ctx, bson.M{"academyId": academyID})
}

func (r *batchRepository) ListByCoach(ctx context.Context, academyID, coachID string) ([]Batch, error) {
	return r.list(ctx, bson.M{"academyId": academyID, "coachIds": coachID})
}

func (r *batchRepository) list(ctx context.Context, filter bson.M) ([]Batch, error) {
	cur, err := r.st.Collection(store.Batches).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer cur.Close(ctx)

	var batches []Batch
	if err := cur.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("decode batches: %w", err)
	}
	return batches, nil
}

func (r *batchRepository) Update(ctx context.Context, batchID string, set bson.M) error {
	set["updatedAt"] = time.Now()
	res, err := r.st.Collection(store.Batches).UpdateOne(ctx,
		bson.M{"id": batchID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Batches)
	return nil
}

func (r *batchRepository) Delete(ctx context.Context, batchID string) error {
	res, err := r.st.Collection(store.Batches).DeleteOne(ctx, bson.M{"id": batchID})
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Batches)
	return nil
}
