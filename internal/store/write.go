package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/task"
)

// SaveList persists an owner's record, replacing any previous version.
//
// The list row upsert, the task deletes, and the task inserts all run in
// one transaction: a crash mid-save leaves the previous record intact,
// never a mix of old and new rows.
func (s *Store) SaveList(ctx context.Context, l *task.TodoList) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save list: begin: %w", err)
	}
	defer tx.Rollback()

	owner := string(l.Owner())

	_, err = tx.ExecContext(ctx, `
		INSERT INTO todo_lists (owner, task_count, completed_streak, last_completed_at, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner) DO UPDATE SET
			task_count        = excluded.task_count,
			completed_streak  = excluded.completed_streak,
			last_completed_at = excluded.last_completed_at,
			saved_at          = excluded.saved_at
	`,
		owner,
		l.TaskCount(),
		l.CompletedStreak(),
		nullTime(l.LastCompletedAt()),
		time.Now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save list: upsert record: %w", err)
	}

	// Records are saved whole: drop the previous task rows and reinsert.
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE owner = ?`, owner); err != nil {
		return fmt.Errorf("save list: clear tasks: %w", err)
	}

	for _, t := range l.Tasks() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tasks
			(owner, id, title, description, creator, assignee, priority, category, status, created_at, updated_at, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			owner,
			t.ID,
			t.Title,
			t.Description,
			string(t.Creator),
			nullIdentity(t.Assignee),
			string(t.Priority),
			string(t.Category),
			string(t.Status),
			t.CreatedAt.Unix(),
			t.UpdatedAt.Unix(),
			nullTime(t.CompletedAt),
		)
		if err != nil {
			return fmt.Errorf("save list: insert task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save list: commit: %w", err)
	}
	return nil
}

// nullTime converts an optional timestamp to a nullable unix-seconds column.
func nullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

// nullIdentity converts an optional identity to a nullable text column.
func nullIdentity(id task.Identity) sql.NullString {
	if id.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: string(id), Valid: true}
}
