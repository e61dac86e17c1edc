package export

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/pkg/tabular"
)

// Batch report sections resolve member references to rows; a dangling id
// still produces a row so the section row count always matches the batch.
var reportCoachColumns = []tabular.Column[memberRow]{
	{Header: "Coach ID", Value: func(m memberRow) string { return m.ID }},
	{Header: "Coach Name", Value: func(m memberRow) string { return m.Name }},
	{Header: "Email", Value: func(m memberRow) string { return m.Email }},
}

var reportPlayerColumns = []tabular.Column[memberRow]{
	{Header: "Player ID", Value: func(m memberRow) string { return m.ID }},
	{Header: "Player Name", Value: func(m memberRow) string { return m.Name }},
	{Header: "Position", Value: func(m memberRow) string { return m.Position }},
}

type memberRow struct {
	ID       string
	Name     string
	Email    string
	Position string
}

// buildBatchReport renders the multi-section batch export: per batch a
// header line, the coach table, the player table, then three blank lines
// before the next batch block.
func buildBatchReport(ctx context.Context, f store.Fetcher, academyID string) (string, error) {
	scope := bson.M{"academyId": academyID}

	batches, err := f.Fetch(ctx, store.Batches, scope)
	if err != nil {
		return "", err
	}
	coaches, err := f.Fetch(ctx, store.Users, bson.M{"academyId": academyID, "role": common.RoleCoach})
	if err != nil {
		return "", err
	}
	players, err := f.Fetch(ctx, store.PlayerData, scope)
	if err != nil {
		return "", err
	}

	coachIdx := store.Index(coaches)
	playerIdx := store.Index(players)

	var report tabular.Report
	for _, batch := range batches {
		report.Line("Batch:", batch.Str("name"))

		coachRows := make([]memberRow, 0, len(batch.Strs("coachIds")))
		for _, id := range batch.Strs("coachIds") {
			coachRows = append(coachRows, memberRow{
				ID:    id,
				Name:  store.LookupStr(coachIdx, id, "name"),
				Email: store.LookupStr(coachIdx, id, "email"),
			})
		}
		tabular.AppendTable(&report, reportCoachColumns, coachRows)

		playerRows := make([]memberRow, 0, len(batch.Strs("players")))
		for _, id := range batch.Strs("players") {
			playerRows = append(playerRows, memberRow{
				ID:       id,
				Name:     store.LookupStr(playerIdx, id, "name"),
				Position: store.LookupStr(playerIdx, id, "position"),
			})
		}
		tabular.AppendTable(&report, reportPlayerColumns, playerRows)

		report.Blank(3)
	}
	return report.String(), nil
}
