package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todopat/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a new todo item",
		Long:  `Add a new todo item. A registered pattern shortcut at the start of the text is expanded before the item is stored.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			patterns, err := a.patternStore()
			if err != nil {
				return err
			}
			store, err := a.todoStore(patterns)
			if err != nil {
				return err
			}

			item, expanded, err := store.Add(text)
			if err != nil {
				return err
			}
			if expanded && item.Text != text {
				fmt.Fprintf(a.stdout, "Pattern expanded: '%s' -> '%s'\n", text, item.Text)
			}
			fmt.Fprintln(a.stdout, ui.OK("added: "+formatItem(item)))
			return nil
		},
	}
}
