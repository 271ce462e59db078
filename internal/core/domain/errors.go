package domain

import (
	"errors"
	"fmt"
)

var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports caller input that cannot be processed. Values are
// comparable, so the sentinels below work with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var (
	ErrTitleRequired         = ValidationError{Field: "title", Reason: "title is required"}
	ErrDueDateRequired       = ValidationError{Field: "dueDate", Reason: "due date is required"}
	ErrInvalidDueDate        = ValidationError{Field: "dueDate", Reason: "due date must be formatted as YYYY-MM-DD"}
	ErrInvalidPriority       = ValidationError{Field: "priority", Reason: "priority must be 0, 1 or 2"}
	ErrInvalidStatus         = ValidationError{Field: "status", Reason: "status must be between 0 and 100"}
	ErrNoUpdateFields        = ValidationError{Reason: "no update fields provided"}
	ErrSharedWithRequired    = ValidationError{Field: "sharedWith", Reason: "email is required"}
	ErrInvalidReorderPayload = ValidationError{Field: "tasks", Reason: "tasks must be a list of {id, position}"}
	ErrSubtaskTitleRequired  = ValidationError{Field: "title", Reason: "subtask title is required"}
	ErrInvalidPayload        = ValidationError{Reason: "invalid request body"}
)

func IsValidationError(err error) bool {
	var validationErr ValidationError
	return errors.As(err, &validationErr)
}

// StoreError wraps a failure of the persistent store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError returns nil when err is nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
