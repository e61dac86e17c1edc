package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/pkg/stats"
	"github.com/sahilparmar-7/ams/pkg/tabular"
)

// Per-collection CSV column schemas. Header casing and column order are part
// of each export's contract and deliberately differ between endpoints;
// downstream spreadsheets depend on them as-is.

var playerColumns = []tabular.Column[store.Document]{
	{Header: "Player ID", Value: func(d store.Document) string { return d.ID() }},
	{Header: "Name", Value: func(d store.Document) string { return d.Str("name") }},
	{Header: "Position", Value: func(d store.Document) string { return d.Str("position") }},
	{Header: "Age", Value: func(d store.Document) string { return formatNum(d.Num("age")) }},
	{Header: "Stamina", Value: func(d store.Document) string { return formatNum(d.Num("stamina")) }},
	{Header: "Average Performance", Value: func(d store.Document) string { return formatNum(d.Num("averagePerformance")) }},
	{Header: "Overall Rating", Value: func(d store.Document) string {
		return strconv.Itoa(stats.OverallRating(attributeMap(d.Doc("attributes"))))
	}},
}

// The coach export predates the others and kept its lower-case headers.
var coachColumns = []tabular.Column[store.Document]{
	{Header: "id", Value: func(d store.Document) string { return d.ID() }},
	{Header: "name", Value: func(d store.Document) string { return d.Str("name") }},
	{Header: "email", Value: func(d store.Document) string { return d.Str("email") }},
	{Header: "status", Value: func(d store.Document) string { return d.Str("status") }},
	{Header: "academyId", Value: func(d store.Document) string { return d.Str("academyId") }},
}

var batchColumns = []tabular.Column[store.Document]{
	{Header: "Batch ID", Value: func(d store.Document) string { return d.ID() }},
	{Header: "Batch Name", Value: func(d store.Document) string { return d.Str("name") }},
	{Header: "Coach IDs", Value: func(d store.Document) string { return strings.Join(d.Strs("coachIds"), ";") }},
	{Header: "Player IDs", Value: func(d store.Document) string { return strings.Join(d.Strs("players"), ";") }},
	{Header: "Created By", Value: func(d store.Document) string { return d.Str("createdBy") }},
}

var financeColumns = []tabular.Column[store.Document]{
	{Header: "Transaction ID", Value: func(d store.Document) string { return d.Str("transactionId") }},
	{Header: "Description", Value: func(d store.Document) string { return d.Str("description") }},
	{Header: "Amount", Value: func(d store.Document) string { return formatNum(d.Num("amount")) }},
	{Header: "Quantity", Value: func(d store.Document) string { return formatNum(d.Num("quantity")) }},
	{Header: "Type", Value: func(d store.Document) string { return d.Str("type") }},
	{Header: "Date", Value: func(d store.Document) string { return d.Str("date") }},
	{Header: "Status", Value: func(d store.Document) string { return d.Str("status") }},
}

var performanceColumns = []tabular.Column[store.Document]{
	{Header: "Player ID", Value: func(d store.Document) string { return d.Str("playerId") }},
	{Header: "Player Name", Value: func(d store.Document) string { return d.Str("playerName") }},
	{Header: "Date", Value: func(d store.Document) string { return formatDate(d.Time("date")) }},
	{Header: "Score", Value: func(d store.Document) string { return formatNum(d.Num("score")) }},
	{Header: "Notes", Value: func(d store.Document) string { return d.Str("notes") }},
}

// flatColumns maps exportable collection names to their flat schema. Batches
// are absent: their CSV form is the multi-section report.
var flatColumns = map[string][]tabular.Column[store.Document]{
	CollectionPlayers:     playerColumns,
	CollectionCoaches:     coachColumns,
	CollectionFinances:    financeColumns,
	CollectionPerformance: performanceColumns,
}

// workbookColumns maps collection names to the schema used for their
// workbook sheet. Batches get their flat schema here; a sectioned report
// does not fit a sheet grid.
var workbookColumns = map[string][]tabular.Column[store.Document]{
	CollectionPlayers:     playerColumns,
	CollectionCoaches:     coachColumns,
	CollectionBatches:     batchColumns,
	CollectionFinances:    financeColumns,
	CollectionPerformance: performanceColumns,
}

func attributeMap(doc store.Document) map[string]float64 {
	if doc == nil {
		return nil
	}
	out := make(map[string]float64, len(doc))
	for k := range doc {
		out[k] = doc.Num(k)
	}
	return out
}

// formatNum renders a numeric cell without trailing zeros (8, 7.5, 0).
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
