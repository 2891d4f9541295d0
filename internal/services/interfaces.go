package services

import (
	"context"
	"time"

	"todo-list/internal/domain"
)

// EntryService applies every entry operation to the store and to the
// in-memory entry list, in that order
type EntryService interface {
	// Load replaces the cached list with everything currently stored
	Load(ctx context.Context) error
	// Entries returns a snapshot of the cached list in store order
	Entries() []domain.Entry
	// ListPage reads a window of entries straight from the store
	ListPage(ctx context.Context, offset, limit int) ([]domain.Entry, error)

	AddEntry(ctx context.Context, title, description string, dueDate *time.Time) (*domain.Entry, error)
	ChangeTitle(ctx context.Context, id int64, title string) (*domain.Entry, error)
	ChangeDescription(ctx context.Context, id int64, description string) (*domain.Entry, error)
	ChangeDueDate(ctx context.Context, id int64, dueDate *time.Time) (*domain.Entry, error)
	ToggleDone(ctx context.Context, id int64) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
}
