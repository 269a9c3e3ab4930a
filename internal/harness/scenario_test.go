package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenarioFile(t, `
name: minimal
identities: [alice]
flow:
  - op: create
    caller: alice
    title: hello
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", s.Name)
	require.Len(t, s.Flow, 1)
	assert.Equal(t, OpCreate, s.Flow[0].Op)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scenario")
}

func TestLoadScenarioBadYAML(t *testing.T) {
	path := writeScenarioFile(t, "name: [unclosed")
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario")
}

func TestScenarioValidate(t *testing.T) {
	count := uint64(1)

	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			name: "missing name",
			scenario: Scenario{
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: OpCreate, Caller: "alice"}},
			},
			wantErr: "name is required",
		},
		{
			name: "no identities",
			scenario: Scenario{
				Name: "x",
				Flow: []FlowStep{{Op: OpCreate, Caller: "alice"}},
			},
			wantErr: "identity",
		},
		{
			name: "empty flow",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
			},
			wantErr: "flow",
		},
		{
			name: "unknown op",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: "destroy", Caller: "alice"}},
			},
			wantErr: `unknown op "destroy"`,
		},
		{
			name: "caller not in cast",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: OpCreate, Caller: "mallory"}},
			},
			wantErr: `caller "mallory"`,
		},
		{
			name: "assignee not in cast",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: OpReassign, Caller: "alice", Assignee: "mallory"}},
			},
			wantErr: `assignee "mallory"`,
		},
		{
			name: "bad advance duration",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: OpCreate, Caller: "alice", Advance: "tomorrow"}},
			},
			wantErr: "bad advance",
		},
		{
			name: "task_count assertion without count",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: OpCreate, Caller: "alice"}},
				Assertions: []Assertion{{Type: AssertTaskCount, Owner: "alice"}},
			},
			wantErr: "needs count",
		},
		{
			name: "assertion owner not in cast",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: OpCreate, Caller: "alice"}},
				Assertions: []Assertion{{Type: AssertTaskCount, Owner: "bob", Count: &count}},
			},
			wantErr: `owner "bob"`,
		},
		{
			name: "unknown assertion type",
			scenario: Scenario{
				Name:       "x",
				Identities: []string{"alice"},
				Flow:       []FlowStep{{Op: OpCreate, Caller: "alice"}},
				Assertions: []Assertion{{Type: "balance", Owner: "alice"}},
			},
			wantErr: "unknown assertion type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenarioValidateOK(t *testing.T) {
	count := uint64(0)
	s := Scenario{
		Name:       "ok",
		Identities: []string{"alice", "bob"},
		Flow: []FlowStep{
			{Op: OpCreate, Caller: "alice", Title: "t", Assignee: "bob"},
			{Op: OpUpdateStatus, Caller: "bob", Status: "in_progress", Advance: "30m"},
		},
		Assertions: []Assertion{{Type: AssertTaskCount, Owner: "alice", Count: &count}},
	}
	require.NoError(t, s.Validate())
}
