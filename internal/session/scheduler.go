package session

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Materializer turns recurring session templates into concrete occurrences.
// It runs every minute and, for each recurring parent, ensures one child
// session exists per matching weekday inside the look-ahead window.
type Materializer struct {
	repo SessionRepository
	log  *zap.Logger
}

const lookAheadDays = 7

func NewMaterializer(repo SessionRepository, log *zap.Logger) *Materializer {
	return &Materializer{repo: repo, log: log}
}

// Start registers and starts the gocron job. The returned scheduler should
// be shut down on process exit.
func (m *Materializer) Start() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			m.run(ctx, time.Now())
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

func (m *Materializer) run(ctx context.Context, now time.Time) {
	parents, err := m.repo.ListRecurringParents(ctx)
	if err != nil {
		m.log.Warn("recurring session scan failed", zap.Error(err))
		return
	}

	for _, parent := range parents {
		for _, date := range UpcomingOccurrences(parent.RecurringDays, now, lookAheadDays) {
			exists, err := m.repo.OccurrenceExists(ctx, parent.SessionID, date)
			if err != nil {
				m.log.Warn("occurrence lookup failed",
					zap.String("parent", parent.SessionID), zap.Error(err))
				continue
			}
			if exists {
				continue
			}

			child := parent
			child.ID = primitive.NilObjectID
			child.SessionID = uuid.NewString()
			child.IsRecurring = false
			child.RecurringDays = nil
			child.ParentSessionID = parent.SessionID
			child.OccurrenceDate = date
			child.Date = date
			child.Status = StatusUpcoming
			child.CreatedAt = now

			if err := m.repo.Create(ctx, &child); err != nil {
				m.log.Warn("occurrence creation failed",
					zap.String("parent", parent.SessionID),
					zap.String("date", date), zap.Error(err))
				continue
			}
			m.log.Info("materialized recurring session",
				zap.String("parent", parent.SessionID),
				zap.String("date", date))
		}
	}
}

// UpcomingOccurrences returns the dates (inclusive of today) within the next
// `days` days whose weekday name appears in recurringDays.
func UpcomingOccurrences(recurringDays []string, now time.Time, days int) []string {
	wanted := make(map[string]bool, len(recurringDays))
	for _, d := range recurringDays {
		wanted[d] = true
	}

	var out []string
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i)
		if wanted[day.Weekday().String()] {
			out = append(out, day.Format(DateLayout))
		}
	}
	return out
}
