package player

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayerData is a document in ams-player-data. Attributes is an open map
// because two attribute vocabularies coexist in the data
// (Attack/pace/Physicality/Defense/passing/Technique and
// shooting/speed/positioning/defense/crossing/ballControl); both are stored
// as written and only unified when a rating is computed.
type PlayerData struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PlayerID           string             `bson:"id" json:"id"`
	AcademyID          string             `bson:"academyId" json:"academyId"`
	Name               string             `bson:"name" json:"name"`
	Position           string             `bson:"position" json:"position"`
	Age                int                `bson:"age" json:"age"`
	Attributes         map[string]float64 `bson:"attributes" json:"attributes"`
	PerformanceHistory []PerformanceEntry `bson:"performanceHistory" json:"performanceHistory"`
	AveragePerformance float64            `bson:"averagePerformance" json:"averagePerformance"`
	Stamina            float64            `bson:"stamina" json:"stamina"`
	LastUpdated        time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}

// PerformanceEntry is one recorded performance score.
type PerformanceEntry struct {
	Date  time.Time `bson:"date" json:"date"`
	Score float64   `bson:"score" json:"score"`
	Notes string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

type CreatePlayerRequest struct {
	Name     string             `json:"name" binding:"required,max=100"`
	Position string             `json:"position"`
	Age      int                `json:"age" binding:"omitempty,gte=4,lte=60"`
	Stamina  float64            `json:"stamina" binding:"omitempty,gte=0,lte=10"`
	Attrs    map[string]float64 `json:"attributes"`
}

type UpdateAttributesRequest struct {
	// Partial update; keys from either vocabulary are accepted and merged.
	Attributes map[string]float64 `json:"attributes" binding:"required"`
	Stamina    *float64           `json:"stamina" binding:"omitempty,gte=0,lte=10"`
}

type RecordPerformanceRequest struct {
	Score float64 `json:"score" binding:"gte=0,lte=10"`
	Notes string  `json:"notes" binding:"max=500"`
}
