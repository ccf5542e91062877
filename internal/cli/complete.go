package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"todopat/internal/todo"
	"todopat/internal/ui"
)

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <index>",
		Short: "Mark a todo item as complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			store, err := a.todoStore(nil)
			if err != nil {
				return err
			}
			if err := store.Complete(index); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, ui.OK(fmt.Sprintf("marked item %d as complete", index)))
			return nil
		},
	}
}

func newUncompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uncomplete <index>",
		Short: "Mark a todo item as incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			store, err := a.todoStore(nil)
			if err != nil {
				return err
			}
			if err := store.Uncomplete(index); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, ui.OK(fmt.Sprintf("marked item %d as incomplete", index)))
			return nil
		},
	}
}

func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &todo.ValidationError{Msg: "not a number: " + arg}
	}
	return n, nil
}
