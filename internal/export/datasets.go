package export

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/internal/store"
)

// Exportable collection names as they appear in the ?collection= parameter.
const (
	CollectionPlayers     = "players"
	CollectionCoaches     = "coaches"
	CollectionBatches     = "batches"
	CollectionFinances    = "finances"
	CollectionPerformance = "performance"
	CollectionAll         = "all"
)

// exportOrder fixes the dataset order in "all" dumps and workbook sheets.
var exportOrder = []string{
	CollectionPlayers,
	CollectionCoaches,
	CollectionBatches,
	CollectionFinances,
	CollectionPerformance,
}

func validCollection(name string) bool {
	if name == CollectionAll {
		return true
	}
	for _, c := range exportOrder {
		if c == name {
			return true
		}
	}
	return false
}

// collect fetches the documents behind one exportable collection name.
// "performance" is a derived dataset: the flattened performance history of
// every player, not a stored collection.
func collect(ctx context.Context, f store.Fetcher, academyID, name string) ([]store.Document, error) {
	scope := bson.M{"academyId": academyID}

	switch name {
	case CollectionPlayers:
		return f.Fetch(ctx, store.PlayerData, scope)
	case CollectionCoaches:
		return f.Fetch(ctx, store.Users, bson.M{"academyId": academyID, "role": common.RoleCoach})
	case CollectionBatches:
		return f.Fetch(ctx, store.Batches, scope)
	case CollectionFinances:
		return f.Fetch(ctx, store.Finance, scope)
	case CollectionPerformance:
		players, err := f.Fetch(ctx, store.PlayerData, scope)
		if err != nil {
			return nil, err
		}
		return flattenPerformance(players), nil
	default:
		return nil, fmt.Errorf("unknown export collection %q", name)
	}
}

// collectAll gathers every dataset named by collection ("all" expands to the
// full fixed-order set).
func collectAll(ctx context.Context, f store.Fetcher, academyID, collection string) (map[string][]store.Document, []string, error) {
	names := []string{collection}
	if collection == CollectionAll {
		names = exportOrder
	}

	out := make(map[string][]store.Document, len(names))
	for _, name := range names {
		docs, err := collect(ctx, f, academyID, name)
		if err != nil {
			return nil, nil, fmt.Errorf("collect %s: %w", name, err)
		}
		out[name] = docs
	}
	return out, names, nil
}

// flattenPerformance turns per-player performance history arrays into one
// row-shaped document per recorded entry.
func flattenPerformance(players []store.Document) []store.Document {
	rows := []store.Document{}
	for _, p := range players {
		for _, entry := range p.Docs("performanceHistory") {
			rows = append(rows, store.Document{
				"playerId":   p.ID(),
				"playerName": p.Str("name"),
				"date":       entry["date"],
				"score":      entry["score"],
				"notes":      entry.Str("notes"),
			})
		}
	}
	return rows
}
