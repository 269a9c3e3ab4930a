package cli

import (
	"context"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/task"
)

// session bundles the open database, the service, and the resolved caller
// for a single command run. Commands load the caller's record, apply one
// operation, and save - the serialized per-owner operation stream the
// core expects.
type session struct {
	store  *store.Store
	svc    *task.Service
	caller task.Identity
}

// openSession builds a session from the global options. When needCaller
// is true the --as flag is required and the caller's record, if any, is
// loaded into the service registry.
func openSession(ctx context.Context, opts *RootOptions, needCaller bool) (*session, error) {
	limits, err := config.Load(opts.Limits)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load limits", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	s := &session{
		store: st,
		svc:   task.NewService(task.NewRegistry(), limits, nil),
	}

	if needCaller {
		if opts.As == "" {
			st.Close()
			return nil, &ExitError{Code: ExitCommandError, Message: "missing --as: a caller identity is required"}
		}
		s.caller = task.Identity(opts.As)

		list, found, err := st.LoadList(ctx, s.caller)
		if err != nil {
			st.Close()
			return nil, WrapExitError(ExitCommandError, "failed to load record", err)
		}
		if found {
			s.svc.Registry().Put(list)
			slog.Debug("record loaded", "owner", s.caller, "tasks", list.Len())
		} else {
			slog.Debug("no record yet", "owner", s.caller)
		}
	}

	return s, nil
}

// save persists the caller's record after a successful operation.
func (s *session) save(ctx context.Context) error {
	list, ok := s.svc.Registry().Get(s.caller)
	if !ok {
		// Operation succeeded without touching a list; nothing to persist.
		return nil
	}
	if err := s.store.SaveList(ctx, list); err != nil {
		return WrapExitError(ExitCommandError, "failed to save record", err)
	}
	slog.Debug("record saved", "owner", s.caller, "tasks", list.Len())
	return nil
}

// Close releases the database handle.
func (s *session) Close() error {
	return s.store.Close()
}
