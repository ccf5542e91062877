package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todopat/internal/todo"
	"todopat/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var filterName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todo items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := todo.ParseFilter(filterName)
			if err != nil {
				return err
			}
			store, err := a.todoStore(nil)
			if err != nil {
				return err
			}

			// Header + progress
			done, pending := store.Stats()
			header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
				ui.TitleStyle.Render("Todos"),
				ui.SuccessStyle.Render("✔"), done,
				ui.PendingStyle.Render("•"), pending,
				ui.AccentStyle.Render("Total"), store.Len(),
			)

			lines := []string{
				header,
				ui.MutedStyle.Render(ui.ProgressBar(done, done+pending, 28)),
				"",
			}

			entries := store.Entries(filter)
			if len(entries) == 0 {
				lines = append(lines, ui.MutedStyle.Render("no items"))
			} else {
				for _, e := range entries {
					lines = append(lines, entryLine(e))
				}
			}
			lines = append(lines, "")
			lines = append(lines, ui.MutedStyle.Render("Tip: add with `todo add \"Buy milk\"`"))

			fmt.Fprintln(a.stdout, ui.Panel(lines))
			return nil
		},
	}
	cmd.Flags().StringVar(&filterName, "filter", "all", "show all, pending or completed items")
	return cmd
}

// entryLine renders one item with its index in the full sequence, so the
// number is valid input for complete/uncomplete/remove.
func entryLine(e todo.Entry) string {
	idx := fmt.Sprintf("%2d.", e.Index)
	box := ui.BoxUnchecked
	style := ui.MutedStyle
	if e.Item.Completed {
		box, style = ui.BoxChecked, ui.SuccessStyle
	}
	text := e.Item.Text
	if len(text) > 80 {
		text = text[:77] + "..."
	}
	return fmt.Sprintf("%s %s %s", ui.MutedStyle.Render(idx), style.Render(box), text)
}
