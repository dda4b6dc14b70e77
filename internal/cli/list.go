package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/task"
)

// noTasksMessage is printed by list for an empty store.
const noTasksMessage = "No tasks found."

// listResult is the payload of the list command.
type listResult struct {
	store *task.Store
	Tasks []task.Task `json:"tasks" yaml:"tasks"`
}

func newListResult(s *task.Store) listResult {
	tasks := s.Tasks()
	if tasks == nil {
		tasks = []task.Task{}
	}
	return listResult{store: s, Tasks: tasks}
}

func (r listResult) String() string {
	var lines []string
	for row := range r.store.Rows() {
		lines = append(lines, row.String())
	}
	if len(lines) == 0 {
		return noTasksMessage
	}
	return strings.Join(lines, "\n")
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Long: `List all tasks in the order they were added.

Each line shows the id, an "x" for completed tasks, and the task text:

  [1] x - buy milk
  [2]   - walk dog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	s, err := loadTasks(opts)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(newListResult(s))
}
