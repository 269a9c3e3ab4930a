package harness

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Operation names usable in flow steps.
const (
	OpCreate       = "create"
	OpReassign     = "reassign"
	OpUpdateStatus = "update_status"
)

// Scenario defines a conformance scenario: a cast of identities, a flow
// of operations with expected outcomes, and assertions over the final
// record state.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Identities lists the cast by name. Flow steps and assertions refer
	// to these names; the harness maps them to deterministic identities.
	Identities []string `yaml:"identities"`

	// Limits optionally overrides deployment limits for this scenario.
	Limits *LimitsOverride `yaml:"limits,omitempty"`

	// Flow contains the operations to execute, in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final record state after the flow.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// LimitsOverride adjusts individual deployment limits; unset fields keep
// their defaults.
type LimitsOverride struct {
	MaxTasks           *int  `yaml:"max_tasks,omitempty"`
	MaxTitleLen        *int  `yaml:"max_title_len,omitempty"`
	MaxDescriptionLen  *int  `yaml:"max_description_len,omitempty"`
	RequireDescription *bool `yaml:"require_description,omitempty"`
}

// FlowStep is one operation in the scenario flow.
type FlowStep struct {
	// Op is one of create, reassign, update_status.
	Op string `yaml:"op"`

	// Caller is the cast name invoking the operation.
	Caller string `yaml:"caller"`

	// Advance moves the deterministic clock forward before the step,
	// e.g. "24h". Used by streak scenarios.
	Advance string `yaml:"advance,omitempty"`

	// Create arguments.
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
	Category    string `yaml:"category,omitempty"`

	// Assignee is a cast name: the new assignee for reassign, or the
	// initial assignee for create.
	Assignee string `yaml:"assignee,omitempty"`

	// Target task for reassign/update_status.
	TaskID uint64 `yaml:"task_id,omitempty"`

	// Status is the new status for update_status.
	Status string `yaml:"status,omitempty"`

	// Expect specifies the expected outcome. If nil, the step is only
	// required not to fail with an internal error.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Error is the expected error code; empty means the step must succeed.
	Error string `yaml:"error,omitempty"`

	// Field expectations for successful steps (subset match: only the
	// fields set here are validated).
	TaskID   *uint64 `yaml:"task_id,omitempty"`
	Status   string  `yaml:"status,omitempty"`
	Assignee string  `yaml:"assignee,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the scenario for structural problems before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Identities) == 0 {
		return fmt.Errorf("at least one identity is required")
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("flow must contain at least one step")
	}

	cast := make(map[string]bool, len(s.Identities))
	for _, name := range s.Identities {
		cast[name] = true
	}

	for i, step := range s.Flow {
		switch step.Op {
		case OpCreate, OpReassign, OpUpdateStatus:
		default:
			return fmt.Errorf("flow[%d]: unknown op %q", i, step.Op)
		}
		if !cast[step.Caller] {
			return fmt.Errorf("flow[%d]: caller %q is not in the cast", i, step.Caller)
		}
		if step.Assignee != "" && !cast[step.Assignee] {
			return fmt.Errorf("flow[%d]: assignee %q is not in the cast", i, step.Assignee)
		}
		if step.Advance != "" {
			if _, err := time.ParseDuration(step.Advance); err != nil {
				return fmt.Errorf("flow[%d]: bad advance: %w", i, err)
			}
		}
	}

	for i, a := range s.Assertions {
		if err := a.validate(cast); err != nil {
			return fmt.Errorf("assertions[%d]: %w", i, err)
		}
	}
	return nil
}
