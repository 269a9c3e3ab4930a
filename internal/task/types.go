package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Identity is an opaque caller/owner token supplied by the layer that
// authenticated the caller. The core never inspects it - identities are
// only compared for equality. The zero value means "no identity".
type Identity string

// NewIdentity generates a fresh UUIDv7 identity.
//
// UUIDv7 embeds a timestamp in the most significant bits, so identities
// sort by creation time, which helps when eyeballing store contents.
func NewIdentity() Identity {
	return Identity(uuid.Must(uuid.NewV7()).String())
}

// IsZero reports whether the identity is absent.
func (id Identity) IsZero() bool { return id == "" }

// Priority classifies how urgent a task is. Closed set: adding a variant
// is a breaking schema change.
type Priority string

const (
	PriorityLeisure Priority = "leisure"
	PriorityCasual  Priority = "casual"
	PriorityUrgent  Priority = "urgent"
)

// DefaultPriority is used when the caller does not specify one.
const DefaultPriority = PriorityCasual

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLeisure, PriorityCasual, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority converts a wire/CLI string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (want leisure, casual, or urgent)", s)
	}
	return p, nil
}

// Category classifies what area of life a task belongs to. Closed set,
// same versioning rule as Priority.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHome     Category = "home"
	CategoryShopping Category = "shopping"
)

// DefaultCategory is used when the caller does not specify one.
const DefaultCategory = CategoryPersonal

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHome, CategoryShopping:
		return true
	}
	return false
}

// ParseCategory converts a wire/CLI string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q (want work, personal, home, or shopping)", s)
	}
	return c, nil
}

// Status is the lifecycle state of a task.
//
// State machine (enforced by Service.UpdateTaskStatus):
//   - Pending and InProgress may move to any status.
//   - Completed is terminal: every further update fails with ALREADY_COMPLETED.
//   - Cancelled may only move back to InProgress.
//   - Same-state updates on Pending/InProgress are legal no-ops.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus converts a wire/CLI string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid status %q (want pending, in_progress, completed, or cancelled)", s)
	}
	return st, nil
}

// Task is one unit of work inside a TodoList.
//
// ID is the 0-based creation index within the owning list: it equals the
// list's TaskCount at the moment of creation and is never reused. Creator
// and CreatedAt are set once at creation and never change; Assignee and
// Status are the mutable fields.
type Task struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Creator     Identity   `json:"creator"`
	Assignee    Identity   `json:"assignee,omitempty"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Assigned reports whether the task currently has an assignee.
func (t *Task) Assigned() bool { return !t.Assignee.IsZero() }
