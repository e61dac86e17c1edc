package academy

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sahilparmar-7/ams/internal/store"
)

// AcademyRepository defines the data operations on the academy profile
// collections (ams-academy, ams-about, ams-achievement).
type AcademyRepository interface {
	GetProfile(ctx context.Context, academyID string) (*Academy, error)
	UpsertProfile(ctx context.Context, academyID string, req UpdateProfileRequest) error
	AppendCollateral(ctx context.Context, academyID string, col Collateral) error
	GetAbout(ctx context.Context, academyID string) (*About, error)
	UpsertAbout(ctx context.Context, about *About) error
	ListAchievements(ctx context.Context, academyID string) ([]Achievement, error)
	CreateAchievement(ctx context.Context, a *Achievement) error
	DeleteAchievement(ctx context.Context, academyID, id string) error
}

type academyRepository struct {
	st *store.Store
}

func NewAcademyRepository(st *store.Store) AcademyRepository {
	return &academyRepository{st: st}
}

func (r *academyRepository) GetProfile(ctx context.Context, academyID string) (*Academy, error) {
	var academy Academy
	err := r.st.Collection(store.Academy).
		FindOne(ctx, bson.M{"academyId": academyID}).Decode(&academy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find academy profile: %w", err)
	}
	return &academy, nil
}

func (r *academyRepository) UpsertProfile(ctx context.Context, academyID string, req UpdateProfileRequest) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":         req.Name,
			"logoUrl":      req.LogoURL,
			"contactEmail": req.ContactEmail,
			"phone":        req.Phone,
			"address":      req.Address,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"academyId": academyID,
			"createdAt": now,
		},
	}
	_, err := r.st.Collection(store.Academy).UpdateOne(ctx,
		bson.M{"academyId": academyID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert academy profile: %w", err)
	}
	r.st.Invalidate(store.Academy)
	return nil
}

// AppendCollateral pushes uploaded-asset metadata onto the profile document,
// creating the profile if the academy has none yet.
func (r *academyRepository) AppendCollateral(ctx context.Context, academyID string, col Collateral) error {
	_, err := r.st.Collection(store.Academy).UpdateOne(ctx,
		bson.M{"academyId": academyID},
		bson.M{
			"$push":        bson.M{"collaterals": col},
			"$set":         bson.M{"updatedAt": time.Now()},
			"$setOnInsert": bson.M{"academyId": academyID, "createdAt": time.Now()},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("append collateral: %w", err)
	}
	r.st.Invalidate(store.Academy)
	return nil
}

func (r *academyRepository) GetAbout(ctx context.Context, academyID string) (*About, error) {
	var about About
	err := r.st.Collection(store.About).
		FindOne(ctx, bson.M{"academyId": academyID}).Decode(&about)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find about document: %w", err)
	}
	return &about, nil
}

func (r *academyRepository) UpsertAbout(ctx context.Context, about *About) error {
	_, err := r.st.Collection(store.About).UpdateOne(ctx,
		bson.M{"academyId": about.AcademyID},
		bson.M{"$set": bson.M{
			"title":     about.Title,
			"content":   about.Content,
			"updatedAt": about.UpdatedAt,
		}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert about document: %w", err)
	}
	r.st.Invalidate(store.About)
	return nil
}

func (r *academyRepository) ListAchievements(ctx context.Context, academyID string) ([]Achievement, error) {
	cur, err := r.st.Collection(store.Achievement).Find(ctx,
		bson.M{"academyId": academyID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer cur.Close(ctx)

	var achievements []Achievement
	if err := cur.All(ctx, &achievements); err != nil {
		return nil, fmt.Errorf("decode achievements: %w", err)
	}
	return achievements, nil
}

func (r *academyRepository) CreateAchievement(ctx context.Context, a *Achievement) error {
	if _, err := r.st.Collection(store.Achievement).InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert achievement: %w", err)
	}
	r.st.Invalidate(store.Achievement)
	return nil
}

func (r *academyRepository) DeleteAchievement(ctx context.Context, academyID, id string) error {
	res, err := r.st.Collection(store.Achievement).DeleteOne(ctx,
		bson.M{"academyId": academyID, "id": id})
	if err != nil {
		return fmt.Errorf("delete achievement: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Achievement)
	return nil
}
