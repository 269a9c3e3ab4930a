package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle_Empty(t *testing.T) {
	_, err := validateTitle("", DefaultLimits())
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidInput))

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "title", opErr.Field)
}

func TestValidateTitle_Bounds(t *testing.T) {
	limits := DefaultLimits()

	// Exactly at the limit succeeds
	title, err := validateTitle(strings.Repeat("a", limits.MaxTitleLen), limits)
	require.NoError(t, err)
	assert.Len(t, title, limits.MaxTitleLen)

	// One over fails
	_, err = validateTitle(strings.Repeat("a", limits.MaxTitleLen+1), limits)
	assert.True(t, IsCode(err, ErrCodeInvalidInput))
}

func TestValidateTitle_NFCNormalization(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) normalizes to U+00E9.
	title, err := validateTitle("café", DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, "café", title)
}

func TestValidateDescription_EmptyAllowedByDefault(t *testing.T) {
	desc, err := validateDescription("", DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, "", desc)
}

func TestValidateDescription_EmptyRejectedWhenRequired(t *testing.T) {
	limits := DefaultLimits()
	limits.RequireDescription = true

	_, err := validateDescription("", limits)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidInput))

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "description", opErr.Field)

	_, err = validateDescription("non-empty", limits)
	assert.NoError(t, err)
}

func TestValidateDescription_Bounds(t *testing.T) {
	limits := DefaultLimits()

	_, err := validateDescription(strings.Repeat("d", limits.MaxDescriptionLen), limits)
	require.NoError(t, err)

	_, err = validateDescription(strings.Repeat("d", limits.MaxDescriptionLen+1), limits)
	assert.True(t, IsCode(err, ErrCodeInvalidInput))
}

func TestLimits_Validate(t *testing.T) {
	require.NoError(t, DefaultLimits().Validate())

	bad := DefaultLimits()
	bad.MaxTasks = 0
	assert.Error(t, bad.Validate())

	bad = DefaultLimits()
	bad.MaxTitleLen = -1
	assert.Error(t, bad.Validate())
}
