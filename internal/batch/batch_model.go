package batch

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Batch is a document in ams-batches: a named group of players assigned to
// one or more coaches. Coach and player details are resolved by joining at
// read time; nothing is denormalized except in export snapshots.
type Batch struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BatchID   string             `bson:"id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	AcademyID string             `bson:"academyId" json:"academyId"`
	CoachIDs  []string           `bson:"coachIds" json:"coachIds"`
	Players   []string           `bson:"players" json:"players"`
	CreatedBy string             `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateBatchRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	CoachIDs []string `json:"coachIds"`
	Players  []string `json:"players"`
}

type UpdateBatchRequest struct {
	Name     *string   `json:"name" binding:"omitempty,min=2,max=100"`
	CoachIDs *[]string `json:"coachIds"`
	Players  *[]string `json:"players"`
}

// MemberRef is a resolved coach or player reference in a batch detail view.
// A dangling id keeps its position with an empty name.
type MemberRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Detail is a batch with its coach and player references resolved.
type Detail struct {
	Batch   *Batch      `json:"batch"`
	Coaches []MemberRef `json:"coaches"`
	Players []MemberRef `json:"players"`
}
