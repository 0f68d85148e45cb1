package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUp(t *testing.T) {
	db := openTestDB(t)
	m := NewMigrator(db)

	require.NoError(t, m.MigrateUp())

	applied, err := m.AppliedVersions()
	require.NoError(t, err)
	require.True(t, applied[1])
	require.True(t, applied[2])

	// All tables exist and accept rows
	_, err = db.Exec(`INSERT INTO player (name) VALUES ('Ann')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO statistics (player_id) VALUES (1)`)
	require.NoError(t, err)
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	m := NewMigrator(db)

	require.NoError(t, m.MigrateUp())
	require.NoError(t, m.MigrateUp())

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&count))
	require.Equal(t, len(Schema), count)
}

func TestMigrateDownDropsStatisticsOnly(t *testing.T) {
	db := openTestDB(t)
	m := NewMigrator(db)
	require.NoError(t, m.MigrateUp())

	_, err := db.Exec(`INSERT INTO player (name) VALUES ('Ann')`)
	require.NoError(t, err)

	require.NoError(t, m.MigrateDown(1))

	applied, err := m.AppliedVersions()
	require.NoError(t, err)
	require.True(t, applied[1])
	require.False(t, applied[2])

	// The statistics table is gone, the rest of the schema survives
	_, err = db.Exec(`INSERT INTO statistics (player_id) VALUES (1)`)
	require.Error(t, err)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM player WHERE id = 1`).Scan(&name))
	require.Equal(t, "Ann", name)

	// Migrating back up restores it
	require.NoError(t, m.MigrateUp())
	_, err = db.Exec(`INSERT INTO statistics (player_id) VALUES (1)`)
	require.NoError(t, err)
}
