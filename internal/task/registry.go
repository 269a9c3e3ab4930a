package task

import "sync"

// Registry is the keyed collection of per-owner lists: owner identity ->
// *TodoList. Lists are created lazily on first write and live for the
// registry's lifetime.
//
// Thread-safety: the map is mutex-guarded so lookups and lazy creation
// are safe from concurrent goroutines. Operations against different
// owners are independent; the external layer serializes operations
// against the same owner.
type Registry struct {
	mu    sync.Mutex
	lists map[Identity]*TodoList
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{lists: make(map[Identity]*TodoList)}
}

// Get returns the list owned by owner, if one exists.
func (r *Registry) Get(owner Identity) (*TodoList, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[owner]
	return l, ok
}

// GetOrCreate returns the list owned by owner, creating an empty one on
// first use.
func (r *Registry) GetOrCreate(owner Identity) *TodoList {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[owner]
	if !ok {
		l = NewTodoList(owner)
		r.lists[owner] = l
	}
	return l
}

// Put registers an already-built list (e.g. one restored from storage)
// under its owner, replacing any previous entry.
func (r *Registry) Put(l *TodoList) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[l.owner] = l
}

// Owners returns the identities that currently have a list.
func (r *Registry) Owners() []Identity {
	r.mu.Lock()
	defer r.mu.Unlock()
	owners := make([]Identity, 0, len(r.lists))
	for owner := range r.lists {
		owners = append(owners, owner)
	}
	return owners
}
