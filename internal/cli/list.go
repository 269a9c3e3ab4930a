package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the caller's tasks in creation order",
		Long: `Show the caller's tasks in creation order.

Example:
  taskdeck --as user-alice list
  taskdeck --as user-alice list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()

	s, err := openSession(ctx, opts, true)
	if err != nil {
		return err
	}
	defer s.Close()

	f := newFormatter(opts, cmd.OutOrStdout())
	if err := f.PrintTasks(s.svc.List(s.caller)); err != nil {
		return err
	}

	if opts.Format == "text" {
		if list, ok := s.svc.Registry().Get(s.caller); ok && list.CompletedStreak() > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Completion streak: %d day(s)\n", list.CompletedStreak())
		}
	}
	return nil
}
