package domain

import (
	"todo-list/internal/repository/sqlite"
)

// EntryMapper handles conversion between domain and database Entry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain Entry to a database Entry.
func (m *EntryMapper) ToDatabase(entry Entry) sqlite.Entry {
	return sqlite.Entry{
		ID:           entry.ID,
		Title:        entry.Title,
		Description:  entry.Description,
		CreationDate: entry.CreationDate,
		DueDate:      entry.DueDate,
		IsDone:       entry.IsDone,
	}
}

// FromDatabase converts a database Entry to a domain Entry.
func (m *EntryMapper) FromDatabase(row sqlite.Entry) Entry {
	return Entry{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		CreationDate: row.CreationDate,
		DueDate:      row.DueDate,
		IsDone:       row.IsDone,
	}
}

// FromDatabaseSlice converts database rows to domain Entries.
func (m *EntryMapper) FromDatabaseSlice(rows []*sqlite.Entry) []Entry {
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = m.FromDatabase(*row)
	}
	return entries
}
