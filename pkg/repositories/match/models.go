package match

import (
	"database/sql"

	"github.com/fredrikw/dartkeeper/pkg/entities"
)

// Row types decoded once per fetched row, scanned positionally.

// matchRow mirrors the match table header
type matchRow struct {
	ID       int64
	Date     int64 // unix milliseconds
	GameType string
	WinnerID int64
	Winner   string // joined from player
}

// x01Row mirrors the x01_detail table
type x01Row struct {
	MatchID      int64
	TargetFamily int
	DoubleOut    bool
}

// randomRow mirrors the random_detail table
type randomRow struct {
	MatchID   int64
	TurnCount int
}

// scoreRow mirrors one match_score entry joined with the player name
type scoreRow struct {
	PlayerID   int64
	PlayerName string
	Score      int
	SequenceNo int64
}

// statisticsRow mirrors the statistics table
type statisticsRow struct {
	PlayerID        int64
	HighestCheckout sql.NullInt64
	FewestTurns301  sql.NullInt64
	FewestTurns501  sql.NullInt64
}

// toEntity converts a statistics row into its entity form
func (r *statisticsRow) toEntity() *entities.PlayerStatistics {
	return &entities.PlayerStatistics{
		PlayerID:               r.PlayerID,
		HighestCheckoutMatchID: nullableID(r.HighestCheckout),
		FewestTurns301MatchID:  nullableID(r.FewestTurns301),
		FewestTurns501MatchID:  nullableID(r.FewestTurns501),
	}
}

// fromStatistics converts an entity into its row form for writing
func fromStatistics(stats *entities.PlayerStatistics) *statisticsRow {
	return &statisticsRow{
		PlayerID:        stats.PlayerID,
		HighestCheckout: toNullInt64(stats.HighestCheckoutMatchID),
		FewestTurns301:  toNullInt64(stats.FewestTurns301MatchID),
		FewestTurns501:  toNullInt64(stats.FewestTurns501MatchID),
	}
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

func toNullInt64(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
