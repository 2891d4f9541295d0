package cli

import (
	"todo-list/internal/domain"
	"todo-list/internal/prompt"
)

// MainMenuOption is a choice on the main menu.
type MainMenuOption int

const (
	MainMenuAddEntry MainMenuOption = iota
	MainMenuShowEntries
	MainMenuExit
)

func (o MainMenuOption) String() string {
	switch o {
	case MainMenuAddEntry:
		return "Add Entry"
	case MainMenuShowEntries:
		return "Show and Edit Entries"
	case MainMenuExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// InfoPageOption is a choice below an entry's info page.
type InfoPageOption int

const (
	InfoPageEdit InfoPageOption = iota
	InfoPageDelete
	InfoPageReturn
)

func (o InfoPageOption) String() string {
	switch o {
	case InfoPageEdit:
		return "Edit Entry"
	case InfoPageDelete:
		return "Delete Entry"
	case InfoPageReturn:
		return "Return To Main Menu"
	default:
		return "Unknown"
	}
}

// EntryEditOption is a choice on the entry edit menu.
type EntryEditOption int

const (
	EditChangeTitle EntryEditOption = iota
	EditChangeDescription
	EditChangeDueDate
	EditToggleDone
	EditReturn
)

func (o EntryEditOption) String() string {
	switch o {
	case EditChangeTitle:
		return "Change Title"
	case EditChangeDescription:
		return "Change Description"
	case EditChangeDueDate:
		return "Change Due Date"
	case EditToggleDone:
		return "Toggle Done"
	case EditReturn:
		return "Return To Main Menu"
	default:
		return "Unknown"
	}
}

// choicesOf labels each option with its String form.
func choicesOf[T interface {
	~int
	String() string
}](options ...T) []prompt.Choice[T] {
	choices := make([]prompt.Choice[T], len(options))
	for i, o := range options {
		choices[i] = prompt.Choice[T]{Label: o.String(), Value: o}
	}
	return choices
}

var (
	mainMenuChoices = choicesOf(MainMenuAddEntry, MainMenuShowEntries, MainMenuExit)
	infoPageChoices = choicesOf(InfoPageEdit, InfoPageDelete, InfoPageReturn)
	editMenuChoices = choicesOf(EditChangeTitle, EditChangeDescription, EditChangeDueDate, EditToggleDone, EditReturn)
)

func entryChoices(entries []domain.Entry) []prompt.Choice[domain.Entry] {
	choices := make([]prompt.Choice[domain.Entry], len(entries))
	for i, e := range entries {
		choices[i] = prompt.Choice[domain.Entry]{Label: e.String(), Value: e}
	}
	return choices
}
