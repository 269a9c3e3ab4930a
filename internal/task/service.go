package task

// CreateTaskParams carries the caller-supplied fields for a new task.
// Priority and Category fall back to their defaults when empty; Assignee
// may be zero for an unassigned task.
type CreateTaskParams struct {
	Title       string
	Description string
	Priority    Priority
	Category    Category
	Assignee    Identity
}

// Service exposes the three mutating operations over per-owner lists.
//
// Every method fully resolves validation and authorization before writing
// anything, then applies its mutation in one step, so a failed call never
// leaves partial state behind. Returned Task values are snapshots.
type Service struct {
	registry *Registry
	limits   Limits
	clock    Clock
}

// NewService creates a service over the given registry with the given
// deployment limits. A nil clock defaults to SystemClock.
func NewService(registry *Registry, limits Limits, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{registry: registry, limits: limits, clock: clock}
}

// Registry returns the keyed collection backing this service.
func (s *Service) Registry() *Registry { return s.registry }

// Limits returns the deployment limits the service enforces.
func (s *Service) Limits() Limits { return s.limits }

// CreateTask validates the params, appends a new Pending task to the
// caller's own list (creating the list on first use), and returns it.
//
// The new task's id equals the list's counter before the increment, so
// ids are the 0-based creation order. Failure codes: INVALID_INPUT for
// field problems, CAPACITY_EXCEEDED when the list is full.
func (s *Service) CreateTask(caller Identity, params CreateTaskParams) (Task, error) {
	if caller.IsZero() {
		return Task{}, NewInvalidInputError("caller", "caller identity is required")
	}

	title, err := validateTitle(params.Title, s.limits)
	if err != nil {
		return Task{}, err
	}
	description, err := validateDescription(params.Description, s.limits)
	if err != nil {
		return Task{}, err
	}

	priority := params.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	if !priority.Valid() {
		return Task{}, NewInvalidInputError("priority", "unknown priority value")
	}
	category := params.Category
	if category == "" {
		category = DefaultCategory
	}
	if !category.Valid() {
		return Task{}, NewInvalidInputError("category", "unknown category value")
	}

	list := s.registry.GetOrCreate(caller)
	now := s.clock.Now()
	t := Task{
		ID:          list.TaskCount(),
		Title:       title,
		Description: description,
		Creator:     caller,
		Assignee:    params.Assignee,
		Priority:    priority,
		Category:    category,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := list.append(t, s.limits.MaxTasks); err != nil {
		return Task{}, err
	}
	return t, nil
}

// ReassignTask sets the assignee of a task in the caller's list.
//
// Only the task's creator may reassign. Reassigning to the current
// assignee is a legal no-op; no other field changes. Failure codes:
// TASK_NOT_FOUND, UNAUTHORIZED, INVALID_INPUT for an empty assignee.
func (s *Service) ReassignTask(caller Identity, taskID uint64, newAssignee Identity) (Task, error) {
	if caller.IsZero() {
		return Task{}, NewInvalidInputError("caller", "caller identity is required")
	}
	if newAssignee.IsZero() {
		return Task{}, NewInvalidInputError("assignee", "new assignee identity is required")
	}

	list, ok := s.registry.Get(caller)
	if !ok {
		return Task{}, NewNotFoundError(taskID)
	}
	t, ok := list.findByID(taskID)
	if !ok {
		return Task{}, NewNotFoundError(taskID)
	}
	if t.Creator != caller {
		return Task{}, NewUnauthorizedError(taskID, "only the creator may reassign a task")
	}

	t.Assignee = newAssignee
	t.UpdatedAt = s.clock.Now()
	return *t, nil
}

// UpdateTaskStatus moves a task through the status state machine.
//
// The caller must be the task's creator or its current assignee. Terminal
// and cancelled-state rules apply (see Status). Completing a task stamps
// CompletedAt and advances the owner list's consecutive-day streak.
// Failure codes: TASK_NOT_FOUND, UNAUTHORIZED, INVALID_INPUT for an
// unknown status, ALREADY_COMPLETED, INVALID_TRANSITION.
func (s *Service) UpdateTaskStatus(caller Identity, taskID uint64, newStatus Status) (Task, error) {
	if caller.IsZero() {
		return Task{}, NewInvalidInputError("caller", "caller identity is required")
	}
	if !newStatus.Valid() {
		return Task{}, NewInvalidInputError("status", "unknown status value")
	}

	list, ok := s.registry.Get(caller)
	if !ok {
		return Task{}, NewNotFoundError(taskID)
	}
	t, ok := list.findByID(taskID)
	if !ok {
		return Task{}, NewNotFoundError(taskID)
	}
	if t.Creator != caller && t.Assignee != caller {
		return Task{}, NewUnauthorizedError(taskID, "only the creator or assignee may update status")
	}

	switch t.Status {
	case StatusCompleted:
		return Task{}, &OpError{
			Code:      ErrCodeAlreadyCompleted,
			Message:   "task is already completed",
			TaskID:    taskID,
			HasTaskID: true,
		}
	case StatusCancelled:
		if newStatus != StatusInProgress {
			return Task{}, &OpError{
				Code:      ErrCodeInvalidTransition,
				Message:   "a cancelled task may only be moved back to in_progress",
				TaskID:    taskID,
				HasTaskID: true,
			}
		}
	}

	now := s.clock.Now()
	t.Status = newStatus
	t.UpdatedAt = now

	if newStatus == StatusCompleted {
		ts := now
		t.CompletedAt = &ts

		// Consecutive-day streak: extends only when the previous
		// completion fell on the previous UTC day, otherwise restarts.
		today := now.Unix() / 86400
		if last := list.lastCompletedAt; last != nil && last.Unix()/86400 == today-1 {
			list.completedStreak++
		} else {
			list.completedStreak = 1
		}
		lc := now
		list.lastCompletedAt = &lc
	}

	return *t, nil
}

// Find returns a snapshot of one task in the caller's list.
func (s *Service) Find(caller Identity, taskID uint64) (Task, error) {
	list, ok := s.registry.Get(caller)
	if !ok {
		return Task{}, NewNotFoundError(taskID)
	}
	t, ok := list.FindByID(taskID)
	if !ok {
		return Task{}, NewNotFoundError(taskID)
	}
	return t, nil
}

// List returns the caller's tasks in creation order. A caller with no
// list yet gets an empty slice.
func (s *Service) List(caller Identity) []Task {
	list, ok := s.registry.Get(caller)
	if !ok {
		return []Task{}
	}
	return list.Tasks()
}
