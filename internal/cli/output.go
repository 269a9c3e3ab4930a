package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taskdeck/taskdeck/internal/task"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (validation, authorization, capacity)
	ExitCommandError = 2 // Command error (bad flags, database not found, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// opError converts a core operation failure into an ExitError, keeping
// the typed code and context in the message.
func opError(err error) error {
	return WrapExitError(ExitFailure, "operation failed", err)
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// newFormatter builds a formatter from the global options and a writer.
func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}

// PrintTask renders a single task.
func (f *OutputFormatter) PrintTask(t task.Task) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}

	fmt.Fprintf(f.Writer, "Task %d: %s\n", t.ID, t.Title)
	if t.Description != "" {
		fmt.Fprintf(f.Writer, "  Description: %s\n", t.Description)
	}
	fmt.Fprintf(f.Writer, "  Status:   %s\n", t.Status)
	fmt.Fprintf(f.Writer, "  Priority: %s\n", t.Priority)
	fmt.Fprintf(f.Writer, "  Category: %s\n", t.Category)
	fmt.Fprintf(f.Writer, "  Creator:  %s\n", t.Creator)
	if t.Assigned() {
		fmt.Fprintf(f.Writer, "  Assignee: %s\n", t.Assignee)
	}
	fmt.Fprintf(f.Writer, "  Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	if t.CompletedAt != nil {
		fmt.Fprintf(f.Writer, "  Completed: %s\n", t.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// PrintTasks renders a task sequence in creation order.
func (f *OutputFormatter) PrintTasks(tasks []task.Task) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(f.Writer, "No tasks.")
		return nil
	}

	tw := tabwriter.NewWriter(f.Writer, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tCATEGORY\tTITLE")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Priority, t.Category, t.Title)
	}
	return tw.Flush()
}

// PrintIdentity renders an identity.
func (f *OutputFormatter) PrintIdentity(id task.Identity) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(map[string]string{"identity": string(id)})
	}
	fmt.Fprintln(f.Writer, string(id))
	return nil
}
