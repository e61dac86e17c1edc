package session

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session statuses. The stored status is advisory except for "cancelled";
// the effective status is derived from the wall clock at read time.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Wire formats for session dates and times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Session is a document in ams-sessions. A recurring session acts as a
// template; the materializer creates one child document per occurrence with
// ParentSessionID pointing back and OccurrenceDate set.
type Session struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID       string             `bson:"id" json:"id"`
	AcademyID       string             `bson:"academyId" json:"academyId"`
	Name            string             `bson:"name" json:"name"`
	Date            string             `bson:"date" json:"date"`
	StartTime       string             `bson:"startTime" json:"startTime"`
	EndTime         string             `bson:"endTime" json:"endTime"`
	AssignedBatch   string             `bson:"assignedBatch" json:"assignedBatch"`
	AssignedPlayers []string           `bson:"assignedPlayers" json:"assignedPlayers"`
	CoachID         string             `bson:"coachId" json:"coachId"`
	Status          string             `bson:"status" json:"status"`
	IsRecurring     bool               `bson:"isRecurring" json:"isRecurring"`
	RecurringDays   []string           `bson:"recurringDays,omitempty" json:"recurringDays,omitempty"`
	ParentSessionID string             `bson:"parentSessionId,omitempty" json:"parentSessionId,omitempty"`
	OccurrenceDate  string             `bson:"occurrenceDate,omitempty" json:"occurrenceDate,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateSessionRequest struct {
	Name            string   `json:"name" binding:"required,max=150"`
	Date            string   `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime       string   `json:"startTime" binding:"required,datetime=15:04"`
	EndTime         string   `json:"endTime" binding:"required,datetime=15:04"`
	AssignedBatch   string   `json:"assignedBatch"`
	AssignedPlayers []string `json:"assignedPlayers"`
	IsRecurring     bool     `json:"isRecurring"`
	RecurringDays   []string `json:"recurringDays" binding:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Notes           string   `json:"notes" binding:"max=1000"`
}

// DeriveStatus computes the effective status from the wall clock. Cancelled
// sticks; otherwise the stored value is ignored in favor of the date and
// start/end comparison. Unparseable dates fall back to the stored status.
func DeriveStatus(s *Session, now time.Time) string {
	if s.Status == StatusCancelled {
		return StatusCancelled
	}
	date := s.Date
	if s.OccurrenceDate != "" {
		date = s.OccurrenceDate
	}

	start, err1 := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+s.StartTime, now.Location())
	end, err2 := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+s.EndTime, now.Location())
	if err1 != nil || err2 != nil {
		return s.Status
	}
	// Sessions crossing midnight end the next day.
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.Before(end):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}

// DurationMinutes is the session length in whole minutes, 0 when the times
// do not parse.
func DurationMinutes(s *Session) int {
	start, err1 := time.Parse(TimeLayout, s.StartTime)
	end, err2 := time.Parse(TimeLayout, s.EndTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return int(end.Sub(start).Minutes())
}
