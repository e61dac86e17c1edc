package attendance

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sahilparmar-7/ams/internal/store"
)

// AttendanceRepository defines the data operations on ams-attendance.
type AttendanceRepository interface {
	Mark(ctx context.Context, rec *Record) error
	List(ctx context.Context, academyID string, filter Filter) ([]Record, error)
}

// Filter narrows attendance queries. Zero values mean "any".
type Filter struct {
	UserID string
	Type   string
	Date   string
}

type attendanceRepository struct {
	st *store.Store
}

func NewAttendanceRepository(st *store.Store) AttendanceRepository {
	return &attendanceRepository{st: st}
}

// Mark upserts the record on its (userId, date, type) key. At most one
// document exists per key; re-marking replaces status and markedBy.
func (r *attendanceRepository) Mark(ctx context.Context, rec *Record) error {
	key := bson.M{
		"userId": rec.UserID,
		"date":   rec.Date,
		"type":   rec.Type,
	}
	_, err := r.st.Collection(store.Attendance).ReplaceOne(ctx, key, rec,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mark attendance: %w", err)
	}
	r.st.Invalidate(store.Attendance)
	return nil
}

func (r *attendanceRepository) List(ctx context.Context, academyID string, f Filter) ([]Record, error) {
	filter := bson.M{"academyId": academyID}
	if f.UserID != "" {
		filter["userId"] = f.UserID
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Date != "" {
		filter["date"] = f.Date
	}

	cur, err := r.st.Collection(store.Attendance).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer cur.Close(ctx)

	var records []Record
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return records, nil
}
