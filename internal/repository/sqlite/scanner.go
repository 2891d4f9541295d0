package sqlite

import (
	"database/sql"
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEntry scans a single entry from a database row
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	var creationDate string
	var dueDate sql.NullString

	err := scanner.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Description,
		&creationDate,
		&dueDate,
		&entry.IsDone,
	)
	if err != nil {
		return nil, err
	}

	entry.CreationDate, err = ParseDateFromDB(creationDate)
	if err != nil {
		return nil, fmt.Errorf("entry %d: bad creation date %q: %w", entry.ID, creationDate, err)
	}

	if dueDate.Valid {
		due, err := ParseDateFromDB(dueDate.String)
		if err != nil {
			return nil, fmt.Errorf("entry %d: bad due date %q: %w", entry.ID, dueDate.String, err)
		}
		entry.DueDate = &due
	}

	return entry, nil
}

// ScanEntries scans multiple entries from database rows
func ScanEntries(rows Rows) ([]*Entry, error) {
	entries := []*Entry{}
	for rows.Next() {
		entry, err := ScanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
