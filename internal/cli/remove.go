package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todopat/internal/ui"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove a todo item",
		Long:  `Remove the item at the given 1-based index. Items after it move up one position.`,
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
			item, err := store.Remove(index)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, ui.OK("removed: "+formatItem(item)))
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all completed items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.todoStore(nil)
			if err != nil {
				return err
			}
			count, err := store.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, ui.OK(fmt.Sprintf("cleared %d completed item(s)", count)))
			return nil
		},
	}
}
