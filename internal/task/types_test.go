package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity_Unique(t *testing.T) {
	a := NewIdentity()
	b := NewIdentity()

	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
}

func TestIdentity_IsZero(t *testing.T) {
	assert.True(t, Identity("").IsZero())
	assert.False(t, Identity("user-alice").IsZero())
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("urgent")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)

	_, err = ParsePriority("critical")
	assert.Error(t, err)

	_, err = ParsePriority("")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("shopping")
	require.NoError(t, err)
	assert.Equal(t, CategoryShopping, c)

	_, err = ParseCategory("errands")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("done")
	assert.Error(t, err)
}

func TestEnumDefaults(t *testing.T) {
	assert.Equal(t, PriorityCasual, DefaultPriority)
	assert.Equal(t, CategoryPersonal, DefaultCategory)
}

func TestTask_Assigned(t *testing.T) {
	task := Task{}
	assert.False(t, task.Assigned())

	task.Assignee = Identity("user-bob")
	assert.True(t, task.Assigned())
}
