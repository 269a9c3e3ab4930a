package harness

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/task"
)

// Assertion types over the final record state.
const (
	// AssertTaskCount checks an owner's task count (and implicitly the
	// stored sequence length, which always matches it).
	AssertTaskCount = "task_count"

	// AssertTask checks individual fields of one task (subset match).
	AssertTask = "task"

	// AssertStreak checks an owner's completion streak.
	AssertStreak = "streak"
)

// Assertion validates one aspect of the final record state.
type Assertion struct {
	Type  string `yaml:"type"`
	Owner string `yaml:"owner"`

	// task_count
	Count *uint64 `yaml:"count,omitempty"`

	// task
	TaskID   uint64 `yaml:"task_id,omitempty"`
	Status   string `yaml:"status,omitempty"`
	Assignee string `yaml:"assignee,omitempty"` // cast name
	Title    string `yaml:"title,omitempty"`

	// streak
	Streak *uint64 `yaml:"streak,omitempty"`
}

func (a Assertion) validate(cast map[string]bool) error {
	switch a.Type {
	case AssertTaskCount:
		if a.Count == nil {
			return fmt.Errorf("task_count assertion needs count")
		}
	case AssertTask:
	case AssertStreak:
		if a.Streak == nil {
			return fmt.Errorf("streak assertion needs streak")
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	if !cast[a.Owner] {
		return fmt.Errorf("owner %q is not in the cast", a.Owner)
	}
	if a.Assignee != "" && !cast[a.Assignee] {
		return fmt.Errorf("assignee %q is not in the cast", a.Assignee)
	}
	return nil
}

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for i, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s by %s -> %s\n", i+1, event.Op, event.Caller, event.Outcome)
	}

	return buf.String()
}

// evaluateAssertion checks one assertion against the final service state.
func (h *Harness) evaluateAssertion(a Assertion, trace []TraceEvent) error {
	owner := h.cast[a.Owner]

	switch a.Type {
	case AssertTaskCount:
		var count uint64
		if list, ok := h.svc.Registry().Get(owner); ok {
			count = list.TaskCount()
		}
		if count != *a.Count {
			return &AssertionError{
				Type:     AssertTaskCount,
				Expected: fmt.Sprintf("owner %s has task_count %d", a.Owner, *a.Count),
				Actual:   fmt.Sprintf("task_count %d", count),
				Trace:    trace,
			}
		}

	case AssertTask:
		got, err := h.svc.Find(owner, a.TaskID)
		if err != nil {
			return &AssertionError{
				Type:     AssertTask,
				Expected: fmt.Sprintf("owner %s has task %d", a.Owner, a.TaskID),
				Actual:   err.Error(),
				Trace:    trace,
			}
		}
		if a.Status != "" && string(got.Status) != a.Status {
			return &AssertionError{
				Type:     AssertTask,
				Expected: fmt.Sprintf("task %d has status %s", a.TaskID, a.Status),
				Actual:   string(got.Status),
				Trace:    trace,
			}
		}
		if a.Assignee != "" && got.Assignee != h.cast[a.Assignee] {
			return &AssertionError{
				Type:     AssertTask,
				Expected: fmt.Sprintf("task %d assigned to %s", a.TaskID, a.Assignee),
				Actual:   h.castName(got.Assignee),
				Trace:    trace,
			}
		}
		if a.Title != "" && got.Title != a.Title {
			return &AssertionError{
				Type:     AssertTask,
				Expected: fmt.Sprintf("task %d titled %q", a.TaskID, a.Title),
				Actual:   got.Title,
				Trace:    trace,
			}
		}

	case AssertStreak:
		var streak uint64
		if list, ok := h.svc.Registry().Get(owner); ok {
			streak = list.CompletedStreak()
		}
		if streak != *a.Streak {
			return &AssertionError{
				Type:     AssertStreak,
				Expected: fmt.Sprintf("owner %s has streak %d", a.Owner, *a.Streak),
				Actual:   fmt.Sprintf("streak %d", streak),
				Trace:    trace,
			}
		}
	}

	return nil
}

// castName maps an identity back to its cast name for readable output.
func (h *Harness) castName(id task.Identity) string {
	for name, identity := range h.cast {
		if identity == id {
			return name
		}
	}
	return string(id)
}
