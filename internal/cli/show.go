package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task from the caller's list",
		Long: `Show one task from the caller's list.

Example:
  taskdeck --as user-alice show 0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, idArg string, cmd *cobra.Command) error {
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

	t, err := s.svc.Find(s.caller, taskID)
	if err != nil {
		return opError(err)
	}

	return newFormatter(opts, cmd.OutOrStdout()).PrintTask(t)
}
