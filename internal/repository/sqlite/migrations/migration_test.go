package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func entriesDDL(t *testing.T, db *sql.DB) string {
	t.Helper()
	var ddl string
	err := db.QueryRow("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'ENTRIES'").Scan(&ddl)
	require.NoError(t, err)
	return ddl
}

func TestRunMigrations_FreshDatabase(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	assert.Contains(t, strings.ToUpper(entriesDDL(t, db)), "AUTOINCREMENT")

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations WHERE dirty = FALSE").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	_, err := db.Exec(`INSERT INTO ENTRIES (TITLE, DESCRIPTION, CREATION_DATE, ISDONE) VALUES ('a', 'b', '2026-10-19', 0)`)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM ENTRIES").Scan(&count))
	assert.Equal(t, 1, count, "re-running migrations must keep existing rows")
}

func TestRunMigrations_LegacyTableGetsAutoincrement(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(`CREATE TABLE ENTRIES(
		ID INTEGER PRIMARY KEY,
		TITLE TEXT NOT NULL,
		DESCRIPTION TEXT NOT NULL,
		CREATION_DATE TEXT NOT NULL,
		DUE_DATE TEXT,
		ISDONE INTEGER NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO ENTRIES (TITLE, DESCRIPTION, CREATION_DATE, DUE_DATE, ISDONE) VALUES
		('one', 'first', '2024-01-01', NULL, 0),
		('two', 'second', '2024-01-02', '2024-02-01', 1)`)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db))

	assert.Contains(t, strings.ToUpper(entriesDDL(t, db)), "AUTOINCREMENT")

	// Deleting the highest id must not free it for reuse.
	_, err = db.Exec("DELETE FROM ENTRIES WHERE ID = 2")
	require.NoError(t, err)
	res, err := db.Exec(`INSERT INTO ENTRIES (TITLE, DESCRIPTION, CREATION_DATE, ISDONE) VALUES ('three', 'third', '2024-01-03', 0)`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	var title string
	var due sql.NullString
	require.NoError(t, db.QueryRow("SELECT TITLE, DUE_DATE FROM ENTRIES WHERE ID = 1").Scan(&title, &due))
	assert.Equal(t, "one", title)
	assert.False(t, due.Valid)
}

func TestRunMigrations_DirtyDatabase(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`
		CREATE TABLE migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			dirty BOOLEAN DEFAULT FALSE
		)
	`)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO migrations (version, dirty) VALUES (1, TRUE)")
	require.NoError(t, err)

	err = RunMigrations(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is in a dirty state")
	assert.Contains(t, err.Error(), "failed migration(s): [1]")
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_entries.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_something.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.sql"))
}
