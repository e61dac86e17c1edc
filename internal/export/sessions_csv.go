package export

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sahilparmar-7/ams/internal/session"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/pkg/tabular"
)

// sessionRow is one fully resolved line of the sessions export: ids joined
// against batches, players and coaches, status derived from the wall clock.
type sessionRow struct {
	SessionID       string
	SessionName     string
	IsRecurring     string
	ParentSessionID string
	OccurrenceDate  string
	Date            string
	StartTime       string
	EndTime         string
	Duration        string
	Status          string
	Days            string
	BatchID         string
	BatchName       string
	PlayerIDs       string
	PlayerNames     string
	CoachIDs        string
	CoachNames      string
	AcademyID       string
	Notes           string
}

// sessionColumns is the fixed 19-column schema of the sessions CSV. Column
// order and header text are a contract with downstream spreadsheets; do not
// reorder.
var sessionColumns = []tabular.Column[sessionRow]{
	{Header: "Session ID", Value: func(r sessionRow) string { return r.SessionID }},
	{Header: "Session Name", Value: func(r sessionRow) string { return r.SessionName }},
	{Header: "Is Recurring", Value: func(r sessionRow) string { return r.IsRecurring }},
	{Header: "Parent Session ID", Value: func(r sessionRow) string { return r.ParentSessionID }},
	{Header: "Occurrence Date", Value: func(r sessionRow) string { return r.OccurrenceDate }},
	{Header: "Date", Value: func(r sessionRow) string { return r.Date }},
	{Header: "Start Time", Value: func(r sessionRow) string { return r.StartTime }},
	{Header: "End Time", Value: func(r sessionRow) string { return r.EndTime }},
	{Header: "Duration", Value: func(r sessionRow) string { return r.Duration }},
	{Header: "Status", Value: func(r sessionRow) string { return r.Status }},
	{Header: "Days", Value: func(r sessionRow) string { return r.Days }},
	{Header: "Assigned Batch ID", Value: func(r sessionRow) string { return r.BatchID }},
	{Header: "Assigned Batch Name", Value: func(r sessionRow) string { return r.BatchName }},
	{Header: "Assigned Players IDs", Value: func(r sessionRow) string { return r.PlayerIDs }},
	{Header: "Assigned Players Names", Value: func(r sessionRow) string { return r.PlayerNames }},
	{Header: "Assigned Coaches IDs", Value: func(r sessionRow) string { return r.CoachIDs }},
	{Header: "Assigned Coaches Names", Value: func(r sessionRow) string { return r.CoachNames }},
	{Header: "Academy ID", Value: func(r sessionRow) string { return r.AcademyID }},
	{Header: "Notes", Value: func(r sessionRow) string { return r.Notes }},
}

// buildSessionsCSV fetches sessions plus the collections they reference and
// renders the export document.
func buildSessionsCSV(ctx context.Context, f store.Fetcher, academyID string, now time.Time) (string, error) {
	scope := bson.M{"academyId": academyID}

	sessions, err := f.Fetch(ctx, store.Sessions, scope)
	if err != nil {
		return "", err
	}
	batches, err := f.Fetch(ctx, store.Batches, scope)
	if err != nil {
		return "", err
	}
	users, err := f.Fetch(ctx, store.Users, scope)
	if err != nil {
		return "", err
	}
	players, err := f.Fetch(ctx, store.PlayerData, scope)
	if err != nil {
		return "", err
	}

	batchIdx := store.Index(batches)
	userIdx := store.Index(users)
	playerIdx := store.Index(players)

	rows := make([]sessionRow, 0, len(sessions))
	for _, doc := range sessions {
		rows = append(rows, resolveSessionRow(doc, batchIdx, userIdx, playerIdx, now))
	}
	return tabular.Format(sessionColumns, rows), nil
}

func resolveSessionRow(doc store.Document, batchIdx, userIdx, playerIdx map[string]store.Document, now time.Time) sessionRow {
	s := &session.Session{
		Date:           doc.Str("date"),
		StartTime:      doc.Str("startTime"),
		EndTime:        doc.Str("endTime"),
		Status:         doc.Str("status"),
		OccurrenceDate: doc.Str("occurrenceDate"),
	}

	batchID := doc.Str("assignedBatch")
	batchDoc, _ := store.Lookup(batchIdx, batchID)

	playerIDs := doc.Strs("assignedPlayers")
	if len(playerIDs) == 0 && batchDoc != nil {
		playerIDs = batchDoc.Strs("players")
	}

	coachIDs := []string{}
	if batchDoc != nil {
		coachIDs = batchDoc.Strs("coachIds")
	}
	if len(coachIDs) == 0 {
		if id := doc.Str("coachId"); id != "" {
			coachIDs = []string{id}
		}
	}

	return sessionRow{
		SessionID:       doc.ID(),
		SessionName:     doc.Str("name"),
		IsRecurring:     strconv.FormatBool(doc.Bool("isRecurring")),
		ParentSessionID: doc.Str("parentSessionId"),
		OccurrenceDate:  doc.Str("occurrenceDate"),
		Date:            doc.Str("date"),
		StartTime:       doc.Str("startTime"),
		EndTime:         doc.Str("endTime"),
		Duration:        strconv.Itoa(session.DurationMinutes(s)),
		Status:          session.DeriveStatus(s, now),
		Days:            strings.Join(doc.Strs("recurringDays"), ";"),
		BatchID:         batchID,
		BatchName:       store.LookupStr(batchIdx, batchID, "name"),
		PlayerIDs:       strings.Join(playerIDs, ";"),
		PlayerNames:     strings.Join(store.ResolveAll(playerIdx, playerIDs, "name"), ";"),
		CoachIDs:        strings.Join(coachIDs, ";"),
		CoachNames:      strings.Join(store.ResolveAll(userIdx, coachIDs, "name"), ";"),
		AcademyID:       doc.Str("academyId"),
		Notes:           doc.Str("notes"),
	}
}
