package finance

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/store"
)

// FinanceRepository defines the data operations on ams-finance.
type FinanceRepository interface {
	Create(ctx context.Context, rec *Record) error
	ListActive(ctx context.Context, academyID string) ([]Record, error)
	SoftDelete(ctx context.Context, academyID, transactionID string) error
}

type financeRepository struct {
	st *store.Store
}

func NewFinanceRepository(st *store.Store) FinanceRepository {
	return &financeRepository{st: st}
}

func (r *financeRepository) Create(ctx context.Context, rec *Record) error {
	if _, err := r.st.Collection(store.Finance).InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert finance record: %w", err)
	}
	r.st.Invalidate(store.Finance)
	return nil
}

func (r *financeRepository) ListActive(ctx context.Context, academyID string) ([]Record, error) {
	cur, err := r.st.Collection(store.Finance).Find(ctx, bson.M{
		"academyId": academyID,
		"status":    StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("list finance records: %w", err)
	}
	defer cur.Close(ctx)

	var records []Record
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode finance records: %w", err)
	}
	return records, nil
}

// SoftDelete flips status to deleted; the document is never removed.
func (r *financeRepository) SoftDelete(ctx context.Context, academyID, transactionID string) error {
	res, err := r.st.Collection(store.Finance).UpdateOne(ctx,
		bson.M{"academyId": academyID, "transactionId": transactionID, "status": StatusActive},
		bson.M{"$set": bson.M{"status": StatusDeleted}})
	if err != nil {
		return fmt.Errorf("soft delete finance record: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Finance)
	return nil
}
