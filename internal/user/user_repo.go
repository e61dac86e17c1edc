package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/store"
)

// UserRepository defines the data operations on ams-users.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByLoginIdentifier(ctx context.Context, identifier string) (*User, error)
	ListByAcademy(ctx context.Context, academyID, role string) ([]User, error)
	UpdateStatus(ctx context.Context, userID, status string) error
	Delete(ctx context.Context, userID string) error
}

type userRepository struct {
	st *store.Store
}

func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{st: st}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	_, err := r.st.Collection(store.Users).InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("username already taken")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	r.st.Invalidate(store.Users)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*User, error) {
	var u User
	err := r.st.Collection(store.Users).FindOne(ctx, bson.M{"id": userID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByLoginIdentifier(ctx context.Context, identifier string) (*User, error) {
	var u User
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}}
	err := r.st.Collection(store.Users).FindOne(ctx, filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by login identifier: %w", err)
	}
	return &u, nil
}

func (r *userRepository) ListByAcademy(ctx context.Context, academyID, role string) ([]User, error) {
	filter := bson.M{"academyId": academyID}
	if role != "" {
		filter["role"] = role
	}
	cur, err := r.st.Collection(store.Users).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, userID, status string) error {
	res, err := r.st.Collection(store.Users).UpdateOne(ctx,
		bson.M{"id": userID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Users)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.st.Collection(store.Users).DeleteOne(ctx, bson.M{"id": userID})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.st.Invalidate(store.Users)
	return nil
}
