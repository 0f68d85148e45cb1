package migrations

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration represents a database schema migration. Upgrades are additive
// only; Down exists so a newer schema can be handed back to an older build,
// and may drop whole tables but never rewrites values.
type Migration struct {
	Version     int
	Description string
	Up          string
	Down        string
}

// Schema is the full migration history of the match store. Version 2 added
// the statistics table; downgrading to version 1 drops it entirely.
var Schema = []Migration{
	{
		Version:     1,
		Description: "initial schema",
		Up: `
		CREATE TABLE IF NOT EXISTS player (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS match (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date INTEGER NOT NULL,
			game_type TEXT NOT NULL,
			winner_id INTEGER NOT NULL,
			FOREIGN KEY (winner_id) REFERENCES player(id)
		);

		CREATE TABLE IF NOT EXISTS x01_detail (
			match_id INTEGER NOT NULL,
			target_family INTEGER NOT NULL,
			double_out_required BOOLEAN NOT NULL,
			FOREIGN KEY (match_id) REFERENCES match(id)
		);

		CREATE TABLE IF NOT EXISTS random_detail (
			match_id INTEGER NOT NULL,
			turn_count INTEGER NOT NULL,
			FOREIGN KEY (match_id) REFERENCES match(id)
		);

		CREATE TABLE IF NOT EXISTS match_score (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id INTEGER NOT NULL,
			player_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			sequence_no INTEGER NOT NULL,
			FOREIGN KEY (match_id) REFERENCES match(id),
			FOREIGN KEY (player_id) REFERENCES player(id)
		);
		CREATE INDEX IF NOT EXISTS idx_match_score_match ON match_score(match_id);
		CREATE INDEX IF NOT EXISTS idx_match_score_player ON match_score(player_id)`,
		Down: `
		DROP TABLE IF EXISTS match_score;
		DROP TABLE IF EXISTS random_detail;
		DROP TABLE IF EXISTS x01_detail;
		DROP TABLE IF EXISTS match;
		DROP TABLE IF EXISTS player`,
	},
	{
		Version:     2,
		Description: "statistics table",
		Up: `
		CREATE TABLE IF NOT EXISTS statistics (
			player_id INTEGER PRIMARY KEY,
			highest_checkout_match_id INTEGER,
			fewest_turns_301_match_id INTEGER,
			fewest_turns_501_match_id INTEGER,
			FOREIGN KEY (player_id) REFERENCES player(id)
		)`,
		Down: `DROP TABLE IF EXISTS statistics`,
	},
}

// Migrator applies registered migrations to a database
type Migrator struct {
	db         *sql.DB
	migrations []Migration
}

// NewMigrator creates a migrator over the full registered schema
func NewMigrator(db *sql.DB) *Migrator {
	return NewMigratorWith(db, Schema)
}

// NewMigratorWith creates a migrator over an explicit migration set
func NewMigratorWith(db *sql.DB, migrations []Migration) *Migrator {
	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version < sorted[j].Version
	})
	return &Migrator{db: db, migrations: sorted}
}

// Initialize creates the migrations table if it doesn't exist
func (m *Migrator) Initialize() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// AppliedVersions returns the set of already applied migration versions
func (m *Migrator) AppliedVersions() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// MigrateUp applies all pending migrations in version order
func (m *Migrator) MigrateUp() error {
	if err := m.Initialize(); err != nil {
		return err
	}

	applied, err := m.AppliedVersions()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if applied[migration.Version] {
			continue
		}
		if err := m.apply(migration); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown unapplies migrations above the target version, newest first
func (m *Migrator) MigrateDown(targetVersion int) error {
	if err := m.Initialize(); err != nil {
		return err
	}

	applied, err := m.AppliedVersions()
	if err != nil {
		return err
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		migration := m.migrations[i]
		if migration.Version <= targetVersion || !applied[migration.Version] {
			continue
		}
		if err := m.unapply(migration); err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) apply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(migration.Up); err != nil {
		tx.Rollback()
		return fmt.Errorf("error applying migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec(
		"INSERT INTO migrations (version, description) VALUES (?, ?)",
		migration.Version, migration.Description,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("error recording migration %d: %w", migration.Version, err)
	}

	return tx.Commit()
}

func (m *Migrator) unapply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(migration.Down); err != nil {
		tx.Rollback()
		return fmt.Errorf("error reverting migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec(
		"DELETE FROM migrations WHERE version = ?", migration.Version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("error unrecording migration %d: %w", migration.Version, err)
	}

	return tx.Commit()
}
