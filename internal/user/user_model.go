package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in ams-users. UserID is the application-assigned id the
// rest of the system references; the Mongo ObjectID exists but is never used
// as a foreign key by new code.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"id" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	AcademyID string             `bson:"academyId" json:"academyId"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// DeleteUserRequest carries the acting user's password; deletion is refused
// unless it re-verifies.
type DeleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}
