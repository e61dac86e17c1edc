package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/store"
)

// AuthRepository persists refresh-token credentials in ams-credentials.
type AuthRepository interface {
	SaveCredential(ctx context.Context, cred *Credential) error
	GetCredential(ctx context.Context, token string) (*Credential, error)
	DeleteCredential(ctx context.Context, token string) error
	DeleteCredentialsForUser(ctx context.Context, userID string) error
}

type authRepository struct {
	st *store.Store
}

func NewAuthRepository(st *store.Store) AuthRepository {
	return &authRepository{st: st}
}

func (r *authRepository) SaveCredential(ctx context.Context, cred *Credential) error {
	cred.CreatedAt = time.Now()
	if _, err := r.st.Collection(store.Credentials).InsertOne(ctx, cred); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	r.st.Invalidate(store.Credentials)
	return nil
}

func (r *authRepository) GetCredential(ctx context.Context, token string) (*Credential, error) {
	var cred Credential
	err := r.st.Collection(store.Credentials).FindOne(ctx, bson.M{"token": token}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &cred, nil
}

func (r *authRepository) DeleteCredential(ctx context.Context, token string) error {
	if _, err := r.st.Collection(store.Credentials).DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	r.st.Invalidate(store.Credentials)
	return nil
}

func (r *authRepository) DeleteCredentialsForUser(ctx context.Context, userID string) error {
	if _, err := r.st.Collection(store.Credentials).DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("delete credentials for user: %w", err)
	}
	r.st.Invalidate(store.Credentials)
	return nil
}
