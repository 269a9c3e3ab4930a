package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Description string
	Priority    string
	Category    string
	Assignee    string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task in the caller's list",
		Long: `Create a task in the caller's list.

The new task starts as pending, gets the next sequential id, and records
the caller as its creator. The list is created on first use.

Example:
  taskdeck --as user-alice add "write the report" --priority urgent --category work
  taskdeck --as user-alice add "buy milk" --category shopping --assignee user-bob`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", string(task.DefaultPriority), "priority (leisure|casual|urgent)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", string(task.DefaultCategory), "category (work|personal|home|shopping)")
	cmd.Flags().StringVar(&opts.Assignee, "assignee", "", "identity responsible for the task (optional)")

	return cmd
}

func runAdd(opts *AddOptions, title string, cmd *cobra.Command) error {
	ctx := cmd.Context()

	priority, err := task.ParsePriority(opts.Priority)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --priority", err)
	}
	category, err := task.ParseCategory(opts.Category)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --category", err)
	}

	s, err := openSession(ctx, opts.RootOptions, true)
	if err != nil {
		return err
	}
	defer s.Close()

	created, err := s.svc.CreateTask(s.caller, task.CreateTaskParams{
		Title:       title,
		Description: opts.Description,
		Priority:    priority,
		Category:    category,
		Assignee:    task.Identity(opts.Assignee),
	})
	if err != nil {
		return opError(err)
	}

	if err := s.save(ctx); err != nil {
		return err
	}

	return newFormatter(opts.RootOptions, cmd.OutOrStdout()).PrintTask(created)
}
