package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/task"
)

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task as completed",
		Long: `Mark the task with the given id as completed.

Fails if no task has that id or if the task is already completed.

Example:
  todo complete 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runComplete(opts *RootOptions, arg string, cmd *cobra.Command) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	var completed task.Task
	err = mutateTasks(opts, func(s *task.Store) error {
		t, err := s.Complete(id)
		if err != nil {
			return taskError(err)
		}
		completed = t
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
	return formatter.Success(taskResult{verb: "Completed", Task: completed})
}

// parseID parses a task id argument. IDs are positive integers.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, NewExitError(ExitCommandError, ErrCodeUsage,
			fmt.Sprintf("invalid task id %q: must be a positive integer", arg))
	}
	return id, nil
}
