package migrations

import (
	"database/sql"
	"fmt"
	"strings"
)

func init() {
	RegisterGoMigration(2, Up_000002_entries_autoincrement)
}

// Up_000002_entries_autoincrement rebuilds an ENTRIES table created without
// AUTOINCREMENT, so ids of deleted entries are never handed out again.
// Tables that already use AUTOINCREMENT are left alone.
func Up_000002_entries_autoincrement(tx *sql.Tx) error {
	var ddl string
	err := tx.QueryRow("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'ENTRIES'").Scan(&ddl)
	if err != nil {
		return fmt.Errorf("failed to read ENTRIES schema: %w", err)
	}
	if strings.Contains(strings.ToUpper(ddl), "AUTOINCREMENT") {
		return nil
	}

	statements := []string{
		`CREATE TABLE ENTRIES_NEW (
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			TITLE TEXT NOT NULL,
			DESCRIPTION TEXT NOT NULL,
			CREATION_DATE TEXT NOT NULL,
			DUE_DATE TEXT,
			ISDONE INTEGER NOT NULL
		)`,
		`INSERT INTO ENTRIES_NEW (ID, TITLE, DESCRIPTION, CREATION_DATE, DUE_DATE, ISDONE)
		 SELECT ID, TITLE, DESCRIPTION, CREATION_DATE, DUE_DATE, ISDONE FROM ENTRIES`,
		`DROP TABLE ENTRIES`,
		`ALTER TABLE ENTRIES_NEW RENAME TO ENTRIES`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to rebuild ENTRIES: %w", err)
		}
	}
	return nil
}
