package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Credential is a stored refresh token in ams-credentials. Tokens are
// rotated: a refresh consumes the old credential and issues a new one.
type Credential struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Token     string             `bson:"token" json:"-"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type SignupRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Role      string `json:"role" binding:"required,oneof=owner admin coordinator coach player"`
	AcademyID string `json:"academyId" binding:"required"`
}

type LoginRequest struct {
	// Username or email.
	LoginIdentifier string `json:"login_identifier" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair is what login and refresh hand back.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
