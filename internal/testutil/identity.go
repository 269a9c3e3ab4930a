package testutil

import "github.com/taskdeck/taskdeck/internal/task"

// NamedIdentity derives a stable identity from a human-readable name.
//
// Production identities are UUIDv7 strings; tests and scenarios use named
// identities instead so traces and golden files stay readable and
// deterministic.
func NamedIdentity(name string) task.Identity {
	return task.Identity("user-" + name)
}

// Identities builds a name -> identity map for a scenario cast.
func Identities(names ...string) map[string]task.Identity {
	m := make(map[string]task.Identity, len(names))
	for _, name := range names {
		m[name] = NamedIdentity(name)
	}
	return m
}
