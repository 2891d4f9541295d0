package validation

import (
	"time"

	"todo-list/internal/config"
)

// EntryValidator validates user input for entries
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// NewEntryValidatorWithConfig creates an entry validator using configured limits
func NewEntryValidatorWithConfig(cfg *config.Config) *EntryValidator {
	return &EntryValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a title for creation or update
func (ev *EntryValidator) ValidateTitle(title string) error {
	return ev.validateText("title", title, ev.validator.getTitleMaxLength())
}

// ValidateDescription validates a description for creation or update
func (ev *EntryValidator) ValidateDescription(description string) error {
	return ev.validateText("description", description, ev.validator.getDescriptionMaxLength())
}

func (ev *EntryValidator) validateText(field, value string, maxLength int) error {
	validationError := NewValidationError()

	trimmed := ev.validator.TrimAndValidateString(value)
	if !ev.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(field)
		return validationError
	}

	if !ev.validator.IsValidStringLength(trimmed, 1, maxLength) {
		validationError.AddTooLongError(field, trimmed, maxLength)
	}

	if !ev.validator.IsSingleLine(trimmed) {
		validationError.AddInvalidCharacterError(field, trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ParseDueDate parses optional due date input. Blank input means no due date.
func (ev *EntryValidator) ParseDueDate(input string) (*time.Time, error) {
	if !ev.validator.IsNonEmptyString(input) {
		return nil, nil
	}

	date, ok := ev.validator.ParseDate(input)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("due date", input, "YYYY-MM-DD")
		return nil, validationError
	}
	return &date, nil
}

// ValidateEntryID validates an entry ID
func (ev *EntryValidator) ValidateEntryID(id int64) error {
	if !ev.validator.IsValidEntryID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidText returns the trimmed text when it passes validate
func (ev *EntryValidator) GetValidText(text string, validate func(string) error) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}
	return ev.validator.TrimAndValidateString(text), nil
}
