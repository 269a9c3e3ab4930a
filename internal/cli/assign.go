package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

// NewAssignCommand creates the assign command.
func NewAssignCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <task-id> <assignee>",
		Short: "Reassign a task to a different identity",
		Long: `Reassign a task in the caller's list to a different identity.

Only the task's creator may reassign it. Reassigning to the current
assignee is a no-op.

Example:
  taskdeck --as user-alice assign 0 user-bob`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runAssign(opts *RootOptions, idArg, assignee string, cmd *cobra.Command) error {
	ctx := cmd.Context()

	taskID, err := strconv.ParseUint(idArg, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid task id", err)
	}

	s, err := openSession(ctx, opts, true)
	if err != nil {
		return err
	}
	defer s.Close()

	updated, err := s.svc.ReassignTask(s.caller, taskID, task.Identity(assignee))
	if err != nil {
		return opError(err)
	}

	if err := s.save(ctx); err != nil {
		return err
	}

	return newFormatter(opts, cmd.OutOrStdout()).PrintTask(updated)
}
