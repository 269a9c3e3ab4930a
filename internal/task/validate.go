package task

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// normalizeText applies Unicode NFC normalization so that length checks
// and stored bytes do not depend on which equivalent encoding the caller
// happened to send.
func normalizeText(s string) string {
	return norm.NFC.String(s)
}

// validateTitle normalizes and bounds-checks a task title.
// Returns the normalized title on success.
func validateTitle(title string, limits Limits) (string, error) {
	title = normalizeText(title)
	if title == "" {
		return "", NewInvalidInputError("title", "title must not be empty")
	}
	if len(title) > limits.MaxTitleLen {
		return "", NewInvalidInputError("title",
			fmt.Sprintf("title is %d bytes, maximum is %d", len(title), limits.MaxTitleLen))
	}
	return title, nil
}

// validateDescription normalizes and bounds-checks a task description.
// Returns the normalized description on success.
func validateDescription(description string, limits Limits) (string, error) {
	description = normalizeText(description)
	if limits.RequireDescription && description == "" {
		return "", NewInvalidInputError("description", "description must not be empty")
	}
	if len(description) > limits.MaxDescriptionLen {
		return "", NewInvalidInputError("description",
			fmt.Sprintf("description is %d bytes, maximum is %d", len(description), limits.MaxDescriptionLen))
	}
	return description, nil
}
