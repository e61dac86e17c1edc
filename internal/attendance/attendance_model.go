package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record types: attendance is tracked separately for players and coaches.
const (
	TypePlayers = "players"
	TypeCoaches = "coaches"
)

// DateLayout is the wire format for attendance dates.
const DateLayout = "2006-01-02"

// Record is a document in ams-attendance, keyed by (userId, date, type).
// Marking is an upsert on that key, so repeated marks replace the record
// rather than duplicating it.
type Record struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Date      string             `bson:"date" json:"date"`
	Status    string             `bson:"status" json:"status"`
	Type      string             `bson:"type" json:"type"`
	MarkedBy  string             `bson:"markedBy" json:"markedBy"`
	AcademyID string             `bson:"academyId" json:"academyId"`
	MarkedAt  time.Time          `bson:"markedAt" json:"markedAt"`
}

type MarkRequest struct {
	UserID string `json:"userId" binding:"required"`
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Status string `json:"status" binding:"required,oneof=present absent late"`
	Type   string `json:"type" binding:"required,oneof=players coaches"`
}

// Stats is the attendance summary for one user. Both presence metrics are
// reported because the dashboards disagree on whether "late" counts; the
// caller picks the one it wants by name.
type Stats struct {
	UserID                 string  `json:"userId"`
	Type                   string  `json:"type"`
	TotalMarked            int     `json:"totalMarked"`
	PresentStrict          int     `json:"presentStrict"`
	PresentInclusiveOfLate int     `json:"presentInclusiveOfLate"`
	DaysPassedInYear       int     `json:"daysPassedInYear"`
	PercentStrict          float64 `json:"percentStrict"`
	PercentInclusiveOfLate float64 `json:"percentInclusiveOfLate"`
}
