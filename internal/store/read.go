package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/task"
)

// LoadList reads an owner's record. The second return value is false if
// no record exists for this owner.
//
// The loaded record passes the task package's restore invariants; a row
// set that violates them (tampered file, partial manual edit) is reported
// as an error rather than returned.
func (s *Store) LoadList(ctx context.Context, owner task.Identity) (*task.TodoList, bool, error) {
	var (
		taskCount       uint64
		completedStreak uint64
		lastCompleted   sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT task_count, completed_streak, last_completed_at
		FROM todo_lists
		WHERE owner = ?
	`, string(owner)).Scan(&taskCount, &completedStreak, &lastCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load list: %w", err)
	}

	tasks, err := s.readTasks(ctx, owner)
	if err != nil {
		return nil, false, err
	}

	l, err := task.RestoreTodoList(owner, tasks, taskCount, completedStreak, timePtr(lastCompleted))
	if err != nil {
		return nil, false, fmt.Errorf("load list: %w", err)
	}
	return l, true, nil
}

// readTasks returns the owner's tasks in creation order.
func (s *Store) readTasks(ctx context.Context, owner task.Identity) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, creator, assignee, priority, category, status, created_at, updated_at, completed_at
		FROM tasks
		WHERE owner = ?
		ORDER BY id ASC
	`, string(owner))
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var (
			t           task.Task
			assignee    sql.NullString
			createdAt   int64
			updatedAt   int64
			completedAt sql.NullInt64
		)
		err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Creator,
			&assignee,
			&t.Priority,
			&t.Category,
			&t.Status,
			&createdAt,
			&updatedAt,
			&completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if assignee.Valid {
			t.Assignee = task.Identity(assignee.String)
		}
		t.CreatedAt = time.Unix(createdAt, 0).UTC()
		t.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		t.CompletedAt = timePtr(completedAt)
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// ListOwners returns every identity with a persisted record, ordered for
// deterministic output.
func (s *Store) ListOwners(ctx context.Context) ([]task.Identity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT owner FROM todo_lists ORDER BY owner ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query owners: %w", err)
	}
	defer rows.Close()

	owners := []task.Identity{}
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		owners = append(owners, task.Identity(owner))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate owners: %w", err)
	}
	return owners, nil
}

// timePtr converts a nullable unix-seconds column to an optional timestamp.
func timePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}
