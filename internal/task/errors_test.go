package task

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpError_ErrorFormat(t *testing.T) {
	err := NewInvalidInputError("title", "title must not be empty")
	assert.Equal(t, "INVALID_INPUT: title must not be empty (field=title)", err.Error())

	err = NewNotFoundError(7)
	assert.Equal(t, "TASK_NOT_FOUND: no task with this id in the caller's list (task=7)", err.Error())

	err = NewCapacityError(100)
	assert.Equal(t, "CAPACITY_EXCEEDED: list already holds the maximum of 100 tasks", err.Error())
}

func TestOpError_TaskIDZeroIsMeaningful(t *testing.T) {
	err := NewNotFoundError(0)
	assert.True(t, err.HasTaskID)
	assert.Equal(t, uint64(0), err.TaskID)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeUnauthorized, CodeOf(NewUnauthorizedError(1, "nope")))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestIsCode_MatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("apply operation: %w", NewCapacityError(3))
	assert.True(t, IsCode(wrapped, ErrCodeCapacityExceeded))
	assert.False(t, IsCode(wrapped, ErrCodeTaskNotFound))
}
