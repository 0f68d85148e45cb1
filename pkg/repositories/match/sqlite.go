package match

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/fredrikw/dartkeeper/pkg/db/migrations"
	"github.com/fredrikw/dartkeeper/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteRepository creates a new SQLite repository at the given path,
// applying any pending schema migrations.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepository{db: db, dbPath: dbPath}, nil
}

func openDatabase(dbPath string) (*sql.DB, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	// Open the database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// One writer at a time; referential integrity on
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("error setting pragmas: %w", err)
	}

	// Apply migrations
	migrator := migrations.NewMigrator(db)
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return db, nil
}

// Reopen closes the current database handle and reopens the repository
// against a new file path. Used by export/import to swap the active store.
func (r *SQLiteRepository) Reopen(dbPath string) error {
	db, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	if r.db != nil {
		r.db.Close()
	}
	r.db = db
	r.dbPath = dbPath
	return nil
}

// Path returns the path of the active database file
func (r *SQLiteRepository) Path() string {
	return r.dbPath
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetOrCreatePlayer looks a player up by name, inserting a new row if the
// name has never been seen. Names are case-sensitive and unique.
func (r *SQLiteRepository) GetOrCreatePlayer(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, types.NewGameError(types.ErrInvalidArgument, "player name must not be empty")
	}

	id, found, err := r.playerID(ctx, name)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO player (name) VALUES (?)`, name)
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to insert player", err)
	}
	return res.LastInsertId()
}

// playerID looks a player up by name without creating one
func (r *SQLiteRepository) playerID(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM player WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, types.WrapError(types.ErrDatabaseError, "failed to query player", err)
	}
	return id, true, nil
}

// GetPlayers returns the names of all known players
func (r *SQLiteRepository) GetPlayers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM player ORDER BY id`)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query players", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan player", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// PlayerExists reports whether a player with the given name is known
func (r *SQLiteRepository) PlayerExists(ctx context.Context, name string) (bool, error) {
	_, found, err := r.playerID(ctx, name)
	return found, err
}

// AddX01Match commits a finished X01 match: header, detail row and one score
// row per turn per player, all inside a single transaction.
func (r *SQLiteRepository) AddX01Match(ctx context.Context, record *entities.MatchRecord) (int64, error) {
	if record.Type != entities.GameTypeX01 || record.X01 == nil {
		return 0, types.NewGameError(types.ErrInvalidArgument, "record is not an X01 match")
	}
	return r.commitMatch(ctx, record, func(ctx context.Context, tx *sql.Tx, matchID int64) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO x01_detail (match_id, target_family, double_out_required)
			VALUES (?, ?, ?)`,
			matchID, record.X01.TargetFamily, record.X01.DoubleOut)
		return err
	})
}

// AddRandomMatch commits a finished random match the same way
func (r *SQLiteRepository) AddRandomMatch(ctx context.Context, record *entities.MatchRecord) (int64, error) {
	if record.Type != entities.GameTypeRandom || record.Random == nil {
		return 0, types.NewGameError(types.ErrInvalidArgument, "record is not a random match")
	}
	return r.commitMatch(ctx, record, func(ctx context.Context, tx *sql.Tx, matchID int64) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO random_detail (match_id, turn_count)
			VALUES (?, ?)`,
			matchID, record.Random.Turns)
		return err
	})
}

// commitMatch writes the match header, its detail row and all score rows in
// one all-or-nothing transaction and returns the new match id.
func (r *SQLiteRepository) commitMatch(ctx context.Context, record *entities.MatchRecord,
	insertDetail func(context.Context, *sql.Tx, int64) error) (int64, error) {

	if record.WinnerSnapshot() == nil {
		return 0, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("winner %q is not among the match players", record.Winner))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	// Resolve player ids, creating unseen players
	playerIDs := make(map[string]int64, len(record.Players))
	for _, p := range record.Players {
		id, err := getOrCreatePlayerTx(ctx, tx, p.Name)
		if err != nil {
			return 0, err
		}
		playerIDs[p.Name] = id
	}

	// Insert match header
	res, err := tx.ExecContext(ctx, `
		INSERT INTO match (date, game_type, winner_id)
		VALUES (?, ?, ?)`,
		record.Date.UnixMilli(), record.Type.String(), playerIDs[record.Winner])
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to insert match", err)
	}
	matchID, err := res.LastInsertId()
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to read match id", err)
	}

	// Insert type-specific detail
	if err := insertDetail(ctx, tx, matchID); err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to insert match detail", err)
	}

	// Insert score rows in global turn order
	for seq, turn := range interleaveScores(record.Players) {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO match_score (match_id, player_id, score, sequence_no)
			VALUES (?, ?, ?, ?)`,
			matchID, playerIDs[turn.name], turn.score, seq+1)
		if err != nil {
			return 0, types.WrapError(types.ErrDatabaseError, "failed to insert score", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to commit match", err)
	}
	return matchID, nil
}

func getOrCreatePlayerTx(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM player WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to query player", err)
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO player (name) VALUES (?)`, name)
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to insert player", err)
	}
	return res.LastInsertId()
}

// GetMatch reconstructs a match record from its stored rows, replaying the
// score entries through the same ledger logic used at write time.
func (r *SQLiteRepository) GetMatch(ctx context.Context, matchID int64) (*entities.MatchRecord, error) {
	var row matchRow
	err := r.db.QueryRowContext(ctx, `
		SELECT m.id, m.date, m.game_type, m.winner_id, p.name
		FROM match m
		JOIN player p ON p.id = m.winner_id
		WHERE m.id = ?`, matchID).
		Scan(&row.ID, &row.Date, &row.GameType, &row.WinnerID, &row.Winner)
	if err == sql.ErrNoRows {
		return nil, types.NewGameError(types.ErrMatchNotFound,
			fmt.Sprintf("no match with id %d", matchID))
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query match", err)
	}

	gameType, err := entities.ParseGameType(row.GameType)
	if err != nil {
		return nil, types.WrapError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d has an unknown game type", matchID), err)
	}

	players, err := r.matchScores(ctx, matchID)
	if err != nil {
		return nil, err
	}
	date := time.UnixMilli(row.Date)

	switch gameType {
	case entities.GameTypeX01:
		detail, err := r.x01Detail(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return buildX01Record(row.ID, date, row.Winner, players, detail)
	case entities.GameTypeRandom:
		detail, err := r.randomDetail(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return buildRandomRecord(row.ID, date, row.Winner, players, detail)
	default:
		return nil, types.NewGameError(types.ErrInternalError,
			fmt.Sprintf("unhandled game type %v", gameType))
	}
}

// matchScores loads a match's score entries grouped per player, players in
// first-turn order and each sequence in stored turn order.
func (r *SQLiteRepository) matchScores(ctx context.Context, matchID int64) ([]playerScores, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ms.player_id, p.name, ms.score, ms.sequence_no
		FROM match_score ms
		JOIN player p ON p.id = ms.player_id
		WHERE ms.match_id = ?
		ORDER BY ms.sequence_no`, matchID)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query scores", err)
	}
	defer rows.Close()

	var players []playerScores
	index := make(map[string]int)
	for rows.Next() {
		var row scoreRow
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &row.Score, &row.SequenceNo); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan score", err)
		}
		i, seen := index[row.PlayerName]
		if !seen {
			i = len(players)
			index[row.PlayerName] = i
			players = append(players, playerScores{name: row.PlayerName})
		}
		players[i].scores = append(players[i].scores, row.Score)
	}
	return players, rows.Err()
}

func (r *SQLiteRepository) x01Detail(ctx context.Context, matchID int64) (*entities.X01Detail, error) {
	var row x01Row
	err := r.db.QueryRowContext(ctx, `
		SELECT match_id, target_family, double_out_required
		FROM x01_detail WHERE match_id = ?`, matchID).
		Scan(&row.MatchID, &row.TargetFamily, &row.DoubleOut)
	if err == sql.ErrNoRows {
		return nil, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d has no x01 detail row", matchID))
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query x01 detail", err)
	}
	return &entities.X01Detail{TargetFamily: row.TargetFamily, DoubleOut: row.DoubleOut}, nil
}

func (r *SQLiteRepository) randomDetail(ctx context.Context, matchID int64) (*entities.RandomDetail, error) {
	var row randomRow
	err := r.db.QueryRowContext(ctx, `
		SELECT match_id, turn_count
		FROM random_detail WHERE match_id = ?`, matchID).
		Scan(&row.MatchID, &row.TurnCount)
	if err == sql.ErrNoRows {
		return nil, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d has no random detail row", matchID))
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query random detail", err)
	}
	return &entities.RandomDetail{Turns: row.TurnCount}, nil
}

// GetPlayerMatchData pages a player's match history newest-first, going
// backward from startMatchID (0 for the most recent). pageSize 0 returns the
// full history.
func (r *SQLiteRepository) GetPlayerMatchData(ctx context.Context, name string, startMatchID int64, pageSize int) ([]*entities.MatchRecord, error) {
	playerID, found, err := r.playerID(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*entities.MatchRecord{}, nil
	}

	if startMatchID <= 0 {
		// Page from the newest match
		startMatchID = int64(^uint64(0) >> 1)
	}
	limit := pageSize
	if limit <= 0 {
		limit = -1 // no limit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT match_id FROM match_score
		WHERE player_id = ? AND match_id < ?
		ORDER BY match_id DESC
		LIMIT ?`, playerID, startMatchID, limit)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query match ids", err)
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

// GetNumberOfGamesPlayed counts the matches a player has score entries in
func (r *SQLiteRepository) GetNumberOfGamesPlayed(ctx context.Context, name string) (int, error) {
	playerID, found, err := r.playerID(ctx, name)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	var count int
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT match_id) FROM match_score WHERE player_id = ?`,
		playerID).Scan(&count)
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to count games played", err)
	}
	return count, nil
}

// GetNumberOfGamesWon counts the matches a player has won
func (r *SQLiteRepository) GetNumberOfGamesWon(ctx context.Context, name string) (int, error) {
	playerID, found, err := r.playerID(ctx, name)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	var count int
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM match WHERE winner_id = ?`, playerID).Scan(&count)
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to count games won", err)
	}
	return count, nil
}
