package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the caller identity, generating a fresh one if unset",
		Long: `Print the caller identity from --as, or generate a fresh one.

A generated identity is a UUIDv7 string; pass it back via --as on later
commands to operate on the same list.

Example:
  taskdeck whoami
  taskdeck --as user-alice whoami`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := task.Identity(rootOpts.As)
			if id.IsZero() {
				id = task.NewIdentity()
			}
			return newFormatter(rootOpts, cmd.OutOrStdout()).PrintIdentity(id)
		},
	}

	return cmd
}
