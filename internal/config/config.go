// Package config loads deployment limits from CUE files.
//
// The embedded schema carries the defaults and the sanity bounds; a user
// file only needs to state the fields it overrides. Schema violations
// surface as errors before any limit reaches the core.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/taskdeck/taskdeck/internal/task"
)

//go:embed limits.cue
var limitsSchema string

// Load reads deployment limits from the CUE file at path. An empty path
// returns the defaults.
func Load(path string) (task.Limits, error) {
	if path == "" {
		return task.DefaultLimits(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return task.Limits{}, fmt.Errorf("read limits file: %w", err)
	}
	return Parse(data, path)
}

// Parse unifies the given CUE source with the embedded schema and decodes
// the result. filename is used in error positions.
func Parse(data []byte, filename string) (task.Limits, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(limitsSchema, cue.Filename("limits.cue"))
	if err := schema.Err(); err != nil {
		return task.Limits{}, fmt.Errorf("compile limits schema: %w", err)
	}

	val := ctx.CompileBytes(data, cue.Filename(filename))
	if err := val.Err(); err != nil {
		return task.Limits{}, fmt.Errorf("compile %s: %w", filename, err)
	}

	merged := schema.Unify(val)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return task.Limits{}, fmt.Errorf("validate %s: %w", filename, err)
	}

	var limits task.Limits
	if err := merged.Decode(&limits); err != nil {
		return task.Limits{}, fmt.Errorf("decode %s: %w", filename, err)
	}
	if err := limits.Validate(); err != nil {
		return task.Limits{}, fmt.Errorf("%s: %w", filename, err)
	}
	return limits, nil
}
