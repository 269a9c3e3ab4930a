package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/task"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

// buildList runs real operations through the service so the persisted
// record is one the core actually produced.
func buildList(t *testing.T, owner task.Identity) *task.TodoList {
	t.Helper()

	clock := testutil.NewDeterministicClock()
	svc := task.NewService(task.NewRegistry(), task.DefaultLimits(), clock)

	_, err := svc.CreateTask(owner, task.CreateTaskParams{
		Title:       "write the report",
		Description: "quarterly numbers",
		Priority:    task.PriorityUrgent,
		Category:    task.CategoryWork,
	})
	require.NoError(t, err)

	_, err = svc.CreateTask(owner, task.CreateTaskParams{
		Title:    "buy groceries",
		Category: task.CategoryShopping,
		Assignee: testutil.NamedIdentity("bob"),
	})
	require.NoError(t, err)

	_, err = svc.UpdateTaskStatus(owner, 0, task.StatusCompleted)
	require.NoError(t, err)

	l, ok := svc.Registry().Get(owner)
	require.True(t, ok)
	return l
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	owner := testutil.NamedIdentity("alice")
	original := buildList(t, owner)

	require.NoError(t, s.SaveList(ctx, original))

	loaded, found, err := s.LoadList(ctx, owner)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, original.Owner(), loaded.Owner())
	assert.Equal(t, original.TaskCount(), loaded.TaskCount())
	assert.Equal(t, original.CompletedStreak(), loaded.CompletedStreak())
	require.NotNil(t, loaded.LastCompletedAt())
	assert.True(t, loaded.LastCompletedAt().Equal(*original.LastCompletedAt()))

	origTasks := original.Tasks()
	loadedTasks := loaded.Tasks()
	require.Len(t, loadedTasks, len(origTasks))
	for i := range origTasks {
		assert.Equal(t, origTasks[i].ID, loadedTasks[i].ID)
		assert.Equal(t, origTasks[i].Title, loadedTasks[i].Title)
		assert.Equal(t, origTasks[i].Description, loadedTasks[i].Description)
		assert.Equal(t, origTasks[i].Creator, loadedTasks[i].Creator)
		assert.Equal(t, origTasks[i].Assignee, loadedTasks[i].Assignee)
		assert.Equal(t, origTasks[i].Priority, loadedTasks[i].Priority)
		assert.Equal(t, origTasks[i].Category, loadedTasks[i].Category)
		assert.Equal(t, origTasks[i].Status, loadedTasks[i].Status)
		assert.True(t, loadedTasks[i].CreatedAt.Equal(origTasks[i].CreatedAt))
	}

	// The completed task kept its completion stamp, the open one has none.
	require.NotNil(t, loadedTasks[0].CompletedAt)
	assert.Nil(t, loadedTasks[1].CompletedAt)
}

func TestSaveList_ReplacesPreviousRecord(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	owner := testutil.NamedIdentity("alice")

	first := buildList(t, owner)
	require.NoError(t, s.SaveList(ctx, first))

	// Apply one more operation and save again.
	reg := task.NewRegistry()
	reg.Put(first)
	svc := task.NewService(reg, task.DefaultLimits(), testutil.NewDeterministicClock())
	_, err = svc.CreateTask(owner, task.CreateTaskParams{Title: "one more"})
	require.NoError(t, err)
	require.NoError(t, s.SaveList(ctx, first))

	loaded, found, err := s.LoadList(ctx, owner)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(3), loaded.TaskCount())
	assert.Equal(t, 3, loaded.Len())
}

func TestLoadList_AbsentOwner(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	loaded, found, err := s.LoadList(context.Background(), testutil.NamedIdentity("ghost"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, loaded)
}

func TestLoadList_RejectsTamperedRecord(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	owner := testutil.NamedIdentity("alice")
	require.NoError(t, s.SaveList(ctx, buildList(t, owner)))

	// Desync the counter behind the core's back.
	_, err = s.db.ExecContext(ctx, `UPDATE todo_lists SET task_count = 9 WHERE owner = ?`, string(owner))
	require.NoError(t, err)

	_, _, err = s.LoadList(ctx, owner)
	assert.Error(t, err)
}

func TestListOwners(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	owners, err := s.ListOwners(ctx)
	require.NoError(t, err)
	assert.Empty(t, owners)

	require.NoError(t, s.SaveList(ctx, buildList(t, testutil.NamedIdentity("bea"))))
	require.NoError(t, s.SaveList(ctx, buildList(t, testutil.NamedIdentity("alice"))))

	owners, err = s.ListOwners(ctx)
	require.NoError(t, err)
	assert.Equal(t, []task.Identity{
		testutil.NamedIdentity("alice"),
		testutil.NamedIdentity("bea"),
	}, owners)
}

func TestSaveLoad_StraddlesReopen(t *testing.T) {
	path := t.TempDir() + "/taskdeck.db"

	s1, err := Open(path)
	require.NoError(t, err)
	owner := testutil.NamedIdentity("alice")
	require.NoError(t, s1.SaveList(context.Background(), buildList(t, owner)))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	loaded, found, err := s2.LoadList(context.Background(), owner)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(2), loaded.TaskCount())
	assert.True(t, loaded.Tasks()[0].CreatedAt.Equal(testutil.Epoch), "timestamps survive persistence")
}
