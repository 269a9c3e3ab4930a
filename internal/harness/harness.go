package harness

import (
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/task"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

// Harness executes one scenario against a fresh service.
//
// Determinism: the service runs on a DeterministicClock starting at
// testutil.Epoch, and cast names map to fixed identities, so repeated
// runs of the same scenario produce identical traces.
type Harness struct {
	svc   *task.Service
	clock *testutil.DeterministicClock
	cast  map[string]task.Identity
}

// Run executes a scenario and returns its result.
//
// Execution flow:
//  1. Build the cast and the (possibly overridden) limits
//  2. Create a fresh in-memory service with a deterministic clock
//  3. Execute flow steps, validating expect clauses
//  4. Evaluate final-state assertions
//
// Expect and assertion failures land in the result; an error return
// means the scenario itself is broken (bad step arguments, unparsable
// durations), not that the core misbehaved.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	limits := task.DefaultLimits()
	if o := scenario.Limits; o != nil {
		if o.MaxTasks != nil {
			limits.MaxTasks = *o.MaxTasks
		}
		if o.MaxTitleLen != nil {
			limits.MaxTitleLen = *o.MaxTitleLen
		}
		if o.MaxDescriptionLen != nil {
			limits.MaxDescriptionLen = *o.MaxDescriptionLen
		}
		if o.RequireDescription != nil {
			limits.RequireDescription = *o.RequireDescription
		}
	}

	clock := testutil.NewDeterministicClock()
	h := &Harness{
		svc:   task.NewService(task.NewRegistry(), limits, clock),
		clock: clock,
		cast:  testutil.Identities(scenario.Identities...),
	}

	result := NewResult()
	for i, step := range scenario.Flow {
		if step.Advance != "" {
			d, err := time.ParseDuration(step.Advance)
			if err != nil {
				return nil, fmt.Errorf("flow[%d]: bad advance: %w", i, err)
			}
			clock.Advance(d)
		}

		event, err := h.executeStep(i, step)
		if err != nil {
			return nil, err
		}
		event.Seq = i + 1
		result.Trace = append(result.Trace, event)

		h.checkExpect(i, step, event, result)
	}

	for _, a := range scenario.Assertions {
		if err := h.evaluateAssertion(a, result.Trace); err != nil {
			result.AddError(err.Error())
		}
	}

	return result, nil
}

// executeStep applies one operation and converts its outcome into a
// trace event. Typed operation failures become the event's outcome;
// anything else is an internal error.
func (h *Harness) executeStep(i int, step FlowStep) (TraceEvent, error) {
	event := TraceEvent{
		Op:     step.Op,
		Caller: step.Caller,
	}
	caller := h.cast[step.Caller]

	var (
		got task.Task
		err error
	)
	switch step.Op {
	case OpCreate:
		got, err = h.svc.CreateTask(caller, task.CreateTaskParams{
			Title:       step.Title,
			Description: step.Description,
			Priority:    task.Priority(step.Priority),
			Category:    task.Category(step.Category),
			Assignee:    h.optionalIdentity(step.Assignee),
		})
	case OpReassign:
		got, err = h.svc.ReassignTask(caller, step.TaskID, h.cast[step.Assignee])
	case OpUpdateStatus:
		status, parseErr := task.ParseStatus(step.Status)
		if parseErr != nil {
			return TraceEvent{}, fmt.Errorf("flow[%d]: %w", i, parseErr)
		}
		got, err = h.svc.UpdateTaskStatus(caller, step.TaskID, status)
	}

	if err != nil {
		code := task.CodeOf(err)
		if code == "" {
			return TraceEvent{}, fmt.Errorf("flow[%d]: %w", i, err)
		}
		event.Outcome = string(code)
		return event, nil
	}

	event.Outcome = "ok"
	id := got.ID
	event.TaskID = &id
	event.Status = string(got.Status)
	if got.Assigned() {
		event.Assignee = h.castName(got.Assignee)
	}
	return event, nil
}

// checkExpect validates a step's expect clause against its trace event.
func (h *Harness) checkExpect(i int, step FlowStep, event TraceEvent, result *Result) {
	expect := step.Expect
	if expect == nil {
		return
	}

	want := "ok"
	if expect.Error != "" {
		want = expect.Error
	}
	if event.Outcome != want {
		result.AddError(fmt.Sprintf("flow[%d]: expected outcome %s, got %s", i, want, event.Outcome))
		return
	}
	if event.Outcome != "ok" {
		return
	}

	if expect.TaskID != nil && (event.TaskID == nil || *event.TaskID != *expect.TaskID) {
		result.AddError(fmt.Sprintf("flow[%d]: expected task_id %d, got %v", i, *expect.TaskID, event.TaskID))
	}
	if expect.Status != "" && event.Status != expect.Status {
		result.AddError(fmt.Sprintf("flow[%d]: expected status %s, got %s", i, expect.Status, event.Status))
	}
	if expect.Assignee != "" && event.Assignee != expect.Assignee {
		result.AddError(fmt.Sprintf("flow[%d]: expected assignee %s, got %s", i, expect.Assignee, event.Assignee))
	}
}

// optionalIdentity resolves a cast name that may be empty.
func (h *Harness) optionalIdentity(name string) task.Identity {
	if name == "" {
		return ""
	}
	return h.cast[name]
}
