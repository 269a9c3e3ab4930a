package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <task-id> <new-status>",
		Short: "Move a task to a new status",
		Long: `Move a task in the caller's list to a new status.

The caller must be the task's creator or its current assignee. Completed
tasks are final; a cancelled task can only be moved back to in_progress.

Example:
  taskdeck --as user-alice status 0 in_progress
  taskdeck --as user-alice status 0 completed`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runStatus(opts *RootOptions, idArg, statusArg string, cmd *cobra.Command) error {
	ctx := cmd.Context()

	taskID, err := strconv.ParseUint(idArg, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid task id", err)
	}
	newStatus, err := task.ParseStatus(statusArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid status", err)
	}

	s, err := openSession(ctx, opts, true)
	if err != nil {
		return err
	}
	defer s.Close()

	updated, err := s.svc.UpdateTaskStatus(s.caller, taskID, newStatus)
	if err != nil {
		return opError(err)
	}

	if err := s.save(ctx); err != nil {
		return err
	}

	return newFormatter(opts, cmd.OutOrStdout()).PrintTask(updated)
}
