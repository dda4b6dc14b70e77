package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/task"
)

// taskResult is the payload of commands that act on one task.
type taskResult struct {
	verb string
	Task task.Task `json:"task" yaml:"task"`
}

func (r taskResult) String() string {
	return fmt.Sprintf("%s task %d: %s", r.verb, r.Task.ID, r.Task.Content)
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a new task",
		Long: `Add a new task to the end of the list.

All arguments are joined with single spaces to form the task text, which
is stored exactly as given.

Example:
  todo add "buy milk"
  todo add walk the dog`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, args []string, cmd *cobra.Command) error {
	content := strings.Join(args, " ")

	var added task.Task
	err := mutateTasks(opts, func(s *task.Store) error {
		t, err := s.Add(content)
		if err != nil {
			return taskError(err)
		}
		added = t
		return nil
	})
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(taskResult{verb: "Added", Task: added})
}
