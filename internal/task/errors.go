package task

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes operation failures.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates a field validation failure
	// (empty title, over-length title or description, bad enum value).
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeCapacityExceeded indicates the list already holds MaxTasks tasks.
	ErrCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"

	// ErrCodeTaskNotFound indicates the task id does not resolve within
	// the caller's list.
	ErrCodeTaskNotFound ErrorCode = "TASK_NOT_FOUND"

	// ErrCodeUnauthorized indicates the caller lacks the required
	// relationship to the task (creator gate on reassign, creator-or-
	// assignee gate on status updates).
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// ErrCodeAlreadyCompleted indicates a status update on a task whose
	// status is Completed. Completed is terminal.
	ErrCodeAlreadyCompleted ErrorCode = "ALREADY_COMPLETED"

	// ErrCodeInvalidTransition indicates a status transition the state
	// machine forbids (anything but InProgress out of Cancelled).
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
)

// OpError is the typed failure returned by every operation.
//
// Code is always set. TaskID is set for failures that resolved a task id
// (or tried to); Field is set for validation failures so the caller knows
// which input to fix without inspecting internal state.
type OpError struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// TaskID is the task identifier involved, when one exists.
	// Meaningful only when HasTaskID is true (id 0 is a valid task).
	TaskID uint64

	// HasTaskID reports whether TaskID carries a value.
	HasTaskID bool

	// Field names the offending input for validation failures.
	Field string
}

// Error implements the error interface.
func (e *OpError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	case e.HasTaskID:
		return fmt.Sprintf("%s: %s (task=%d)", e.Code, e.Message, e.TaskID)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// NewInvalidInputError creates an INVALID_INPUT error for the given field.
func NewInvalidInputError(field, message string) *OpError {
	return &OpError{Code: ErrCodeInvalidInput, Message: message, Field: field}
}

// NewCapacityError creates a CAPACITY_EXCEEDED error.
func NewCapacityError(maxTasks int) *OpError {
	return &OpError{
		Code:    ErrCodeCapacityExceeded,
		Message: fmt.Sprintf("list already holds the maximum of %d tasks", maxTasks),
	}
}

// NewNotFoundError creates a TASK_NOT_FOUND error for the given id.
func NewNotFoundError(taskID uint64) *OpError {
	return &OpError{
		Code:      ErrCodeTaskNotFound,
		Message:   "no task with this id in the caller's list",
		TaskID:    taskID,
		HasTaskID: true,
	}
}

// NewUnauthorizedError creates an UNAUTHORIZED error for the given id.
func NewUnauthorizedError(taskID uint64, message string) *OpError {
	return &OpError{
		Code:      ErrCodeUnauthorized,
		Message:   message,
		TaskID:    taskID,
		HasTaskID: true,
	}
}

// CodeOf extracts the ErrorCode from err, or "" if err is not an *OpError.
func CodeOf(err error) ErrorCode {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Code
	}
	return ""
}

// IsCode reports whether err is an *OpError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
