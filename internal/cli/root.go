package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	File    string // task file path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// newRootCommand creates the root command for the todo CLI, binding global
// flags to opts.
func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - a tiny task tracker",
		Long: `A tiny command-line task tracker.

Tasks are kept in a JSON file in the current directory (tasks.json by
default). Add tasks, list them, and mark them complete.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			slog.Debug("task file", "path", opts.File)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewExitError(ExitCommandError, ErrCodeUsage, "a command is required")
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", store.DefaultPath, "path to the task file")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCompleteCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Every failure is reported exactly once, on errOut in text mode or as a
// structured response on out otherwise.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	opts := &RootOptions{}
	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitSuccess
	}

	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	formatter := &OutputFormatter{
		Format:    format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}

	code := GetExitCode(err)
	_ = formatter.Error(errorCode(err), err.Error(), errorDetails(err))

	if code == ExitCommandError && !formatter.structured() {
		fmt.Fprintln(errOut)
		fmt.Fprint(errOut, cmd.UsageString())
	}
	return code
}

// errorCode returns the CLI error code for err.
func errorCode(err error) string {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ErrCode
	}
	return ErrCodeUsage
}

// configureLogging routes slog to w. Only warnings are shown unless verbose.
func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
