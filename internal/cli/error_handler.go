package cli

import (
	"fmt"

	"todo-list/internal/errors"
)

// ErrorHandler turns errors that end the session into messages for stderr
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes the user-facing message with the failed operation.
// Structured errors also carry their code, e.g. [DATABASE_ERROR].
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, &userError{message: eh.message(err), cause: err})
}

func (eh *ErrorHandler) message(err error) string {
	message := errors.GetUserMessage(err)
	if errors.IsErrorType(err, errors.ErrorTypeTimeout) {
		message += " Try a larger --db-query-timeout."
	}
	if errors.IsAppError(err) {
		message = fmt.Sprintf("%s [%s]", message, errors.GetErrorCode(err))
	}
	return message
}

// userError carries a friendly message while keeping the original error
// reachable through errors.Is/As.
type userError struct {
	message string
	cause   error
}

func (e *userError) Error() string { return e.message }
func (e *userError) Unwrap() error { return e.cause }
