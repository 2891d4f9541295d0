package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/prompt"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

const clearSequence = "\033[2J\033[1;1H"

// Controller drives the menu loop: it runs the interaction for the current
// state and applies the resulting operation through the entry service.
type Controller struct {
	service     services.EntryService
	prompter    prompt.Prompter
	validator   *validation.EntryValidator
	out         io.Writer
	clearScreen bool

	// keep the screen once so a notice survives the next prompt
	holdScreen bool
}

// NewController creates a controller. A nil config uses the defaults.
func NewController(service services.EntryService, prompter prompt.Prompter, cfg *config.Config, out io.Writer) *Controller {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Controller{
		service:     service,
		prompter:    prompter,
		validator:   validation.NewEntryValidatorWithConfig(cfg),
		out:         out,
		clearScreen: cfg.Display.ClearScreen,
	}
}

// Run loops from the main menu until the user exits. A user abort or a
// cancelled ctx ends the session cleanly; any other failure is returned.
func (c *Controller) Run(ctx context.Context) error {
	var state State = MainMenu{}

	for {
		if _, done := state.(Exit); done {
			return nil
		}
		if ctx.Err() != nil {
			logging.Debugf("session interrupted: %v\n", ctx.Err())
			return nil
		}

		logging.Debugf("state: %s\n", state.stateName())

		op, err := c.interact(state)
		if errors.Is(err, prompt.ErrAborted) {
			logging.Debugln("input aborted, leaving")
			return nil
		}
		if err != nil {
			return err
		}

		state, err = op.Apply(ctx, c.service)
		if err != nil {
			if ctx.Err() != nil {
				// the store rolled back the interrupted statement
				logging.Debugf("operation interrupted: %v\n", err)
				return nil
			}
			return err
		}
	}
}

// interact runs the prompt for state and returns the chosen operation.
func (c *Controller) interact(state State) (Operation, error) {
	switch s := state.(type) {
	case MainMenu:
		c.clear()
		option, err := prompt.Choose(c.prompter, "Main Menu", mainMenuChoices, false)
		if err != nil {
			return nil, err
		}
		switch option {
		case MainMenuAddEntry:
			return SkipTo{Next: AddEntry{}}, nil
		case MainMenuShowEntries:
			return ListEntries{}, nil
		default:
			return ExitOp{}, nil
		}

	case AddEntry:
		c.clear()
		title, err := c.prompter.Text("Title", c.validator.ValidateTitle)
		if err != nil {
			return nil, err
		}
		description, err := c.prompter.Text("Description", c.validator.ValidateDescription)
		if err != nil {
			return nil, err
		}
		dueDate, err := c.prompter.Date("Due date")
		if err != nil {
			return nil, err
		}
		return AddEntryOp{Title: title, Description: description, DueDate: dueDate}, nil

	case SelectEntry:
		if len(s.Candidates) == 0 {
			c.notice("No Entries")
			return SkipTo{Next: MainMenu{}}, nil
		}
		c.clear()
		entry, err := prompt.Choose(c.prompter, "Select Entry", entryChoices(s.Candidates), true)
		if errors.Is(err, prompt.ErrSkipped) {
			return SkipTo{Next: MainMenu{}}, nil
		}
		if err != nil {
			return nil, err
		}
		return SkipTo{Next: InfoPage{Entry: entry}}, nil

	case InfoPage:
		c.clear()
		fmt.Fprintln(c.out, s.Entry.Info())
		option, err := prompt.Choose(c.prompter, "Entry Options", infoPageChoices, false)
		if err != nil {
			return nil, err
		}
		switch option {
		case InfoPageEdit:
			return SkipTo{Next: EntryEditMenu{Entry: s.Entry}}, nil
		case InfoPageDelete:
			return DeleteEntryOp{ID: s.Entry.ID}, nil
		default:
			return SkipTo{Next: MainMenu{}}, nil
		}

	case EntryEditMenu:
		c.clear()
		option, err := prompt.Choose(c.prompter, "Edit Entry", editMenuChoices, false)
		if err != nil {
			return nil, err
		}
		switch option {
		case EditChangeTitle:
			return SkipTo{Next: ChangeTitle{Entry: s.Entry}}, nil
		case EditChangeDescription:
			return SkipTo{Next: ChangeDescription{Entry: s.Entry}}, nil
		case EditChangeDueDate:
			return SkipTo{Next: ChangeDueDate{Entry: s.Entry}}, nil
		case EditToggleDone:
			return ToggleDoneOp{ID: s.Entry.ID}, nil
		default:
			return SkipTo{Next: MainMenu{}}, nil
		}

	case ChangeTitle:
		c.clear()
		title, err := c.prompter.Text("New title", c.validator.ValidateTitle)
		if err != nil {
			return nil, err
		}
		return ChangeTitleOp{ID: s.Entry.ID, Title: title}, nil

	case ChangeDescription:
		c.clear()
		description, err := c.prompter.Text("New description", c.validator.ValidateDescription)
		if err != nil {
			return nil, err
		}
		return ChangeDescriptionOp{ID: s.Entry.ID, Description: description}, nil

	case ChangeDueDate:
		c.clear()
		dueDate, err := c.prompter.Date("New due date")
		if err != nil {
			return nil, err
		}
		return ChangeDueDateOp{ID: s.Entry.ID, DueDate: dueDate}, nil

	default:
		return nil, fmt.Errorf("no interaction for state %T", state)
	}
}

func (c *Controller) clear() {
	if c.holdScreen {
		c.holdScreen = false
		return
	}
	if c.clearScreen {
		fmt.Fprint(c.out, clearSequence)
	}
}

func (c *Controller) notice(message string) {
	fmt.Fprintln(c.out, message)
	c.holdScreen = true
}
