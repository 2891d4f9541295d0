package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for display and storage.
const DateLayout = "2006-01-02"

// Entry represents one to-do task in the domain model.
// This is a pure domain model without database-specific concerns.
type Entry struct {
	ID           int64
	Title        string
	Description  string
	CreationDate time.Time
	DueDate      *time.Time
	IsDone       bool
}

// ChangeTitle replaces the title.
func (e *Entry) ChangeTitle(title string) {
	e.Title = title
}

// ChangeDescription replaces the description.
func (e *Entry) ChangeDescription(description string) {
	e.Description = description
}

// ChangeDueDate replaces the due date. A nil date clears it.
func (e *Entry) ChangeDueDate(dueDate *time.Time) {
	e.DueDate = dueDate
}

// ToggleDone flips the completion flag.
func (e *Entry) ToggleDone() {
	e.IsDone = !e.IsDone
}

// Status returns "Done" or "Pending".
func (e Entry) Status() string {
	if e.IsDone {
		return "Done"
	}
	return "Pending"
}

// DueDateString returns the formatted due date or "No Due Date".
func (e Entry) DueDateString() string {
	if e.DueDate == nil {
		return "No Due Date"
	}
	return e.DueDate.Format(DateLayout)
}

// String returns the one-line label used in selection lists.
func (e Entry) String() string {
	return fmt.Sprintf("ID: %d, Title: %s, Status: %s", e.ID, e.Title, e.Status())
}

// Info returns the multi-line text shown on the entry info page.
func (e Entry) Info() string {
	return fmt.Sprintf("ID: %d\nTitle: %s\nDescription: %s\nCreated: %s\nDue Date: %s\nStatus: %s\n",
		e.ID,
		e.Title,
		e.Description,
		e.CreationDate.Format(DateLayout),
		e.DueDateString(),
		e.Status(),
	)
}
