package task

import (
	"fmt"
	"time"
)

// TodoList is the per-owner record: a bounded, creation-ordered task
// sequence plus a monotonic counter.
//
// Invariants maintained by this type and Service:
//   - len(tasks) never exceeds the deployment's MaxTasks.
//   - tasks[i].ID == i (tasks are never deleted, so ids are dense).
//   - taskCount == len(tasks); the counter only ever grows.
//   - owner is set once and never reassigned.
//
// TodoList is not safe for concurrent use on its own; Registry serializes
// access per owner.
type TodoList struct {
	owner           Identity
	tasks           []Task
	taskCount       uint64
	completedStreak uint64
	lastCompletedAt *time.Time
}

// NewTodoList creates an empty list owned by the given identity.
func NewTodoList(owner Identity) *TodoList {
	return &TodoList{owner: owner}
}

// RestoreTodoList rebuilds a list from persisted state, verifying the
// record invariants before accepting it. A record that fails these checks
// was corrupted outside this package and must not be loaded.
func RestoreTodoList(owner Identity, tasks []Task, taskCount, completedStreak uint64, lastCompletedAt *time.Time) (*TodoList, error) {
	if owner.IsZero() {
		return nil, fmt.Errorf("restore list: owner identity is empty")
	}
	if taskCount != uint64(len(tasks)) {
		return nil, fmt.Errorf("restore list: task_count %d does not match %d stored tasks", taskCount, len(tasks))
	}
	for i, t := range tasks {
		if t.ID != uint64(i) {
			return nil, fmt.Errorf("restore list: task at position %d has id %d", i, t.ID)
		}
	}
	l := &TodoList{
		owner:           owner,
		tasks:           append([]Task(nil), tasks...),
		taskCount:       taskCount,
		completedStreak: completedStreak,
	}
	if lastCompletedAt != nil {
		ts := *lastCompletedAt
		l.lastCompletedAt = &ts
	}
	return l, nil
}

// Owner returns the owning identity.
func (l *TodoList) Owner() Identity { return l.owner }

// TaskCount returns the monotonic creation counter.
func (l *TodoList) TaskCount() uint64 { return l.taskCount }

// Len returns the number of tasks currently stored.
func (l *TodoList) Len() int { return len(l.tasks) }

// CompletedStreak returns the current consecutive-day completion streak.
func (l *TodoList) CompletedStreak() uint64 { return l.completedStreak }

// LastCompletedAt returns when a task in this list was last completed,
// or nil if none ever was.
func (l *TodoList) LastCompletedAt() *time.Time {
	if l.lastCompletedAt == nil {
		return nil
	}
	ts := *l.lastCompletedAt
	return &ts
}

// Tasks returns a copy of the task sequence in creation order.
func (l *TodoList) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}

// append adds a task and bumps the counter as one step. The capacity
// check happens first, so a full list is left untouched.
func (l *TodoList) append(t Task, maxTasks int) error {
	if len(l.tasks) >= maxTasks {
		return NewCapacityError(maxTasks)
	}
	if t.ID != l.taskCount {
		return fmt.Errorf("append: task id %d does not match counter %d", t.ID, l.taskCount)
	}
	l.tasks = append(l.tasks, t)
	l.taskCount++
	return nil
}

// findByID resolves a task by identifier for in-place mutation.
//
// Ids happen to be dense indexes today, but this stays a lookup by
// identifier so the contract survives if deletion ever exists.
func (l *TodoList) findByID(id uint64) (*Task, bool) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return &l.tasks[i], true
		}
	}
	return nil, false
}

// FindByID returns a snapshot of the task with the given id.
func (l *TodoList) FindByID(id uint64) (Task, bool) {
	t, ok := l.findByID(id)
	if !ok {
		return Task{}, false
	}
	return *t, true
}
