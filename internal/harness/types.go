package harness

// TraceEvent records one executed flow step and its outcome.
//
// Caller and Assignee are cast names rather than raw identities so the
// trace (and its golden files) read the way the scenario was written.
// Task fields are present only for successful operations.
type TraceEvent struct {
	Seq      int     `json:"seq"`
	Op       string  `json:"op"`
	Caller   string  `json:"caller"`
	Outcome  string  `json:"outcome"` // "ok" or an error code
	TaskID   *uint64 `json:"task_id,omitempty"`
	Status   string  `json:"status,omitempty"`
	Assignee string  `json:"assignee,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per executed flow step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expect/assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
