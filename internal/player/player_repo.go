package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/store"
)

// PlayerRepository defines the data operations on ams-player-data.
type PlayerRepository interface {
	Create(ctx context.Context, p *PlayerData) error
	GetByID(ctx context.Context, playerID string) (*PlayerData, error)
	ListByAcademy(ctx context.Context, academyID string) ([]PlayerData, error)
	MergeAttributes(ctx context.Context, playerID string, attrs map[string]float64, stamina *float64) error
	AppendPerformance(ctx context.Context, playerID string, entry PerformanceEntry, newAverage float64) error
	Delete(ctx context.Context, playerID string) error
}

type playerRepository struct {
	st *store.Store
}

func NewPlayerRepository(st *store.Store) PlayerRepository {
	return &playerRepository{st: st}
}

func (r *playerRepository) Create(ctx context.Context, p *PlayerData) error {
	if _, err := r.st.Collection(store.PlayerData).InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	r.st.Invalidate(store.PlayerData)
	return nil
}

func (r *playerRepository) GetByID(ctx context.Context, playerID string) (*PlayerData, error) {
	var p PlayerData
	err := r.st.Collection(store.PlayerData).FindOne(ctx, bson.M{"id": playerID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find player: %w", err)
	}
	return &p, nil
}

func (r *playerRepository) ListByAcademy(ctx context.Context, academyID string) ([]PlayerData, error) {
	cur, err := r.st.Collection(store.PlayerData).Find(ctx, bson.M{"academyId": academyID})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer cur.Close(ctx)

	var players []PlayerData
	if err := cur.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	return players, nil
}

// MergeAttributes sets individual attribute keys so the untouched keys of
// either vocabulary survive the update.
func (r *playerRepository) MergeAttributes(ctx context.Context, playerID string, attrs map[string]float64, stamina *float64) error {
	set := bson.M{"lastUpdated": time.Now()}
	for k, v := range attrs {
		set["attributes."+k] = v
	}
	if stamina != nil {
		set["stamina"] = *stamina
	}

	res, err := r.st.Collection(store.PlayerData).UpdateOne(ctx,
		bson.M{"id": playerID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("merge attributes: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.PlayerData)
	return nil
}

func (r *playerRepository) AppendPerformance(ctx context.Context, playerID string, entry PerformanceEntry, newAverage float64) error {
	res, err := r.st.Collection(store.PlayerData).UpdateOne(ctx,
		bson.M{"id": playerID},
		bson.M{
			"$push": bson.M{"performanceHistory": entry},
			"$set": bson.M{
				"averagePerformance": newAverage,
				"lastUpdated":        time.Now(),
			},
		})
	if err != nil {
		return fmt.Errorf("append performance: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.PlayerData)
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, playerID string) error {
	res, err := r.st.Collection(store.PlayerData).DeleteOne(ctx, bson.M{"id": playerID})
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.PlayerData)
	return nil
}
