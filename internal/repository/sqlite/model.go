package sqlite

import "time"

// Entry is one row of the ENTRIES table
type Entry struct {
	ID           int64
	Title        string
	Description  string
	CreationDate time.Time
	DueDate      *time.Time // nil maps to NULL
	IsDone       bool
}
