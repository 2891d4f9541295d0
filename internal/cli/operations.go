package cli

import (
	"context"
	"time"

	"todo-list/internal/services"
)

// Operation is what an interaction decided to do. Apply runs it against
// the entry service and returns the state to show next.
type Operation interface {
	Apply(ctx context.Context, service services.EntryService) (State, error)
}

// SkipTo moves to Next without touching any data.
type SkipTo struct {
	Next State
}

func (op SkipTo) Apply(context.Context, services.EntryService) (State, error) {
	return op.Next, nil
}

// ListEntries offers every cached entry for selection.
type ListEntries struct{}

func (ListEntries) Apply(_ context.Context, service services.EntryService) (State, error) {
	return SelectEntry{Candidates: service.Entries()}, nil
}

// AddEntryOp creates a new entry.
type AddEntryOp struct {
	Title       string
	Description string
	DueDate     *time.Time
}

func (op AddEntryOp) Apply(ctx context.Context, service services.EntryService) (State, error) {
	if _, err := service.AddEntry(ctx, op.Title, op.Description, op.DueDate); err != nil {
		return nil, err
	}
	return MainMenu{}, nil
}

// ChangeTitleOp replaces an entry title.
type ChangeTitleOp struct {
	ID    int64
	Title string
}

func (op ChangeTitleOp) Apply(ctx context.Context, service services.EntryService) (State, error) {
	if _, err := service.ChangeTitle(ctx, op.ID, op.Title); err != nil {
		return nil, err
	}
	return MainMenu{}, nil
}

// ChangeDescriptionOp replaces an entry description.
type ChangeDescriptionOp struct {
	ID          int64
	Description string
}

func (op ChangeDescriptionOp) Apply(ctx context.Context, service services.EntryService) (State, error) {
	if _, err := service.ChangeDescription(ctx, op.ID, op.Description); err != nil {
		return nil, err
	}
	return MainMenu{}, nil
}

// ChangeDueDateOp sets or clears an entry due date.
type ChangeDueDateOp struct {
	ID      int64
	DueDate *time.Time
}

func (op ChangeDueDateOp) Apply(ctx context.Context, service services.EntryService) (State, error) {
	if _, err := service.ChangeDueDate(ctx, op.ID, op.DueDate); err != nil {
		return nil, err
	}
	return MainMenu{}, nil
}

// ToggleDoneOp flips the done flag.
type ToggleDoneOp struct {
	ID int64
}

func (op ToggleDoneOp) Apply(ctx context.Context, service services.EntryService) (State, error) {
	if _, err := service.ToggleDone(ctx, op.ID); err != nil {
		return nil, err
	}
	return MainMenu{}, nil
}

// DeleteEntryOp removes an entry.
type DeleteEntryOp struct {
	ID int64
}

func (op DeleteEntryOp) Apply(ctx context.Context, service services.EntryService) (State, error) {
	if err := service.DeleteEntry(ctx, op.ID); err != nil {
		return nil, err
	}
	return MainMenu{}, nil
}

// ExitOp ends the session.
type ExitOp struct{}

func (ExitOp) Apply(context.Context, services.EntryService) (State, error) {
	return Exit{}, nil
}
