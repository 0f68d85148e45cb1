package match

import (
	"context"
	"database/sql"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/fredrikw/dartkeeper/pkg/entities"
)

// GetStatistics retrieves a player's best-record pointers. Players without a
// statistics row get an empty record, not an error.
func (r *SQLiteRepository) GetStatistics(ctx context.Context, playerID int64) (*entities.PlayerStatistics, error) {
	var row statisticsRow
	err := r.db.QueryRowContext(ctx, `
		SELECT player_id, highest_checkout_match_id,
		       fewest_turns_301_match_id, fewest_turns_501_match_id
		FROM statistics
		WHERE player_id = ?`, playerID).
		Scan(&row.PlayerID, &row.HighestCheckout, &row.FewestTurns301, &row.FewestTurns501)

	if err == sql.ErrNoRows {
		return &entities.PlayerStatistics{PlayerID: playerID}, nil
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query statistics", err)
	}

	return row.toEntity(), nil
}

// SaveStatistics writes a player's best-record pointers, inserting the row
// on first save. Statistics rows are the only rows mutated in place.
func (r *SQLiteRepository) SaveStatistics(ctx context.Context, stats *entities.PlayerStatistics) error {
	row := fromStatistics(stats)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO statistics (
			player_id, highest_checkout_match_id,
			fewest_turns_301_match_id, fewest_turns_501_match_id
		) VALUES (?, ?, ?, ?)
		ON CONFLICT(player_id)
		DO UPDATE SET highest_checkout_match_id = ?,
		              fewest_turns_301_match_id = ?,
		              fewest_turns_501_match_id = ?`,
		row.PlayerID, row.HighestCheckout, row.FewestTurns301, row.FewestTurns501,
		row.HighestCheckout, row.FewestTurns301, row.FewestTurns501)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to save statistics", err)
	}
	return nil
}

// GetPlayerX01Wins returns every X01 match the player has won, oldest first,
// reconstructed by replay.
func (r *SQLiteRepository) GetPlayerX01Wins(ctx context.Context, playerID int64) ([]*entities.MatchRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id
		FROM match m
		WHERE m.winner_id = ? AND m.game_type = ?
		ORDER BY m.id`, playerID, entities.GameTypeX01.String())
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query x01 wins", err)
	}
	defer rows.Close()

	var matchIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan match id", err)
		}
		matchIDs = append(matchIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error iterating match ids", err)
	}

	records := make([]*entities.MatchRecord, 0, len(matchIDs))
	for _, id := range matchIDs {
		record, err := r.GetMatch(ctx, id)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
