package cli

import "todo-list/internal/domain"

// State is a point in the prompt loop. Each state knows which interaction
// to run; the interaction yields an Operation that produces the next state.
type State interface {
	stateName() string
}

// MainMenu is the initial state.
type MainMenu struct{}

// AddEntry collects the fields for a new entry.
type AddEntry struct{}

// SelectEntry lets the user pick one of Candidates.
type SelectEntry struct {
	Candidates []domain.Entry
}

// InfoPage shows a single entry.
type InfoPage struct {
	Entry domain.Entry
}

// EntryEditMenu offers the edit actions for an entry.
type EntryEditMenu struct {
	Entry domain.Entry
}

// ChangeTitle asks for a new title.
type ChangeTitle struct {
	Entry domain.Entry
}

// ChangeDescription asks for a new description.
type ChangeDescription struct {
	Entry domain.Entry
}

// ChangeDueDate asks for a new due date. Skipping clears it.
type ChangeDueDate struct {
	Entry domain.Entry
}

// Exit ends the loop.
type Exit struct{}

func (MainMenu) stateName() string { return "main menu" }
func (AddEntry) stateName() string { return "add entry" }
func (SelectEntry) stateName() string { return "select entry" }
func (InfoPage) stateName() string { return "info page" }
func (EntryEditMenu) stateName() string { return "entry edit menu" }
func (ChangeTitle) stateName() string { return "change title" }
func (ChangeDescription) stateName() string { return "change description" }
func (ChangeDueDate) stateName() string { return "change due date" }
func (Exit) stateName() string { return "exit" }
