package domain

import (
	"strconv"

	"todo-list/internal/errors"
)

// EntryList is the in-memory mirror of the stored entries, kept in store
// iteration order.
type EntryList struct {
	entries []Entry
}

// NewEntryList creates an empty list.
func NewEntryList() *EntryList {
	return &EntryList{}
}

// Load replaces the list contents wholesale.
func (l *EntryList) Load(entries []Entry) {
	l.entries = make([]Entry, len(entries))
	copy(l.entries, entries)
}

// Len returns the number of cached entries.
func (l *EntryList) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the cached entries.
func (l *EntryList) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// FindByID returns a pointer into the list for in-place mutation.
func (l *EntryList) FindByID(id int64) (*Entry, bool) {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return &l.entries[i], true
		}
	}
	return nil, false
}

// Append adds an entry to the end of the list.
func (l *EntryList) Append(entry Entry) {
	l.entries = append(l.entries, entry)
}

// Remove deletes the entry with the given id. The id must be present.
func (l *EntryList) Remove(id int64) error {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return errors.NewInvariantError("entry", strconv.FormatInt(id, 10), "not present in entry list")
}
