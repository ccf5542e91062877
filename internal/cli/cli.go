// Package cli maps subcommands onto the todo and pattern stores and
// prints the results. All domain logic lives in the store packages;
// this is the only layer that writes to stdout/stderr.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todopat/internal/config"
	"todopat/internal/model"
	"todopat/internal/pattern"
	"todopat/internal/store/jsonstore"
	"todopat/internal/todo"
	"todopat/internal/ui"
)

// app carries the writers and the resolved config shared by all commands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
}

// Execute runs the CLI and returns the process exit code
// (0 ok, 1 error, 2 usage or invalid input).
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, ui.Fail(err.Error()))
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	var todoInvalid *todo.ValidationError
	var patternInvalid *pattern.ValidationError
	if errors.As(err, &todoInvalid) || errors.As(err, &patternInvalid) {
		return 2
	}
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "todo",
		Short: "Todo list with pattern autocomplete",
		Long: `A todo list manager. Register pattern shortcuts and they expand to
full text when they start a new item:

  todo pattern add mtg "Meeting with team"
  todo add "mtg at 3pm"        adds "Meeting with team at 3pm"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().String("todo-file", "", "path to the todo items file (default ~/"+config.DefaultTodoFileName+")")
	root.PersistentFlags().String("pattern-file", "", "path to the patterns file (default ~/"+config.DefaultPatternFileName+")")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newCompleteCmd(a),
		newUncompleteCmd(a),
		newRemoveCmd(a),
		newClearCmd(a),
		newPatternCmd(a),
		newExpandCmd(a),
		newTUICmd(a),
	)
	return root
}

// patternStore opens the pattern store on the configured file.
func (a *app) patternStore() (*pattern.Store, error) {
	return pattern.NewStore(jsonstore.New[map[string]string](a.cfg.PatternFile))
}

// todoStore opens the todo store on the configured file. expander may be
// nil for commands that never add items.
func (a *app) todoStore(expander todo.Expander) (*todo.Store, error) {
	return todo.NewStore(jsonstore.New[[]model.Item](a.cfg.TodoFile), expander)
}

func formatItem(item model.Item) string {
	box := ui.BoxUnchecked
	if item.Completed {
		box = ui.BoxChecked
	}
	return box + " " + item.Text
}
