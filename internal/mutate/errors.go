package mutate

import (
	"errors"
	"fmt"
)

// ValidationError is a user-facing refusal: the command is a no-op and the
// message is shown as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

var (
	ErrNoViablePositions = &ValidationError{Msg: "none of the positions given were valid. They must be positive integers within the list range."}
	ErrTodoEmpty         = &ValidationError{Msg: "todo list is empty."}
	ErrDoneEmpty         = &ValidationError{Msg: "done list is already empty."}
	ErrTodoFull          = &ValidationError{Msg: "todo list is full. Complete or remove some tasks first."}
	ErrEmptyTask         = &ValidationError{Msg: "task can't be empty."}
	ErrReservedTask      = &ValidationError{Msg: "task can't be the separator line -----."}
	ErrNothingToAdd      = &ValidationError{Msg: "nothing to add: no task was given."}
)

// BulkIntentError means the user enumerated a whole list; Suggest names the
// dedicated command that does the same thing explicitly.
type BulkIntentError struct {
	Suggest string
}

func (e *BulkIntentError) Error() string {
	return fmt.Sprintf("you've selected the whole list. Use %q instead.", e.Suggest)
}

// IsUserFacing reports whether err should be printed as a message (exit 0)
// rather than treated as a failure.
func IsUserFacing(err error) bool {
	var ve *ValidationError
	var be *BulkIntentError
	return errors.As(err, &ve) || errors.As(err, &be)
}
