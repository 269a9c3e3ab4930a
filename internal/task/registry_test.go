package task

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreate_Lazy(t *testing.T) {
	r := NewRegistry()
	owner := Identity("user-alice")

	_, ok := r.Get(owner)
	assert.False(t, ok, "no list before first write")

	l := r.GetOrCreate(owner)
	require.NotNil(t, l)
	assert.Equal(t, owner, l.Owner())

	// Second call returns the same list
	assert.Same(t, l, r.GetOrCreate(owner))
}

func TestRegistry_Put_Replaces(t *testing.T) {
	r := NewRegistry()
	owner := Identity("user-alice")

	restored, err := RestoreTodoList(owner, nil, 0, 5, nil)
	require.NoError(t, err)
	r.Put(restored)

	got, ok := r.Get(owner)
	require.True(t, ok)
	assert.Equal(t, uint64(5), got.CompletedStreak())
}

func TestRegistry_Owners(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreate(Identity("user-alice"))
	r.GetOrCreate(Identity("user-bob"))

	owners := r.Owners()
	assert.ElementsMatch(t, []Identity{"user-alice", "user-bob"}, owners)
}

func TestRegistry_ConcurrentGetOrCreate(t *testing.T) {
	r := NewRegistry()
	owner := Identity("user-alice")

	var wg sync.WaitGroup
	lists := make([]*TodoList, 8)
	for i := range lists {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lists[i] = r.GetOrCreate(owner)
		}(i)
	}
	wg.Wait()

	for _, l := range lists {
		assert.Same(t, lists[0], l, "all goroutines must see the same list")
	}
}
