package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todopat/internal/ui"
)

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <text>...",
		Short: "Show how a text would be expanded",
		Long:  `Run the pattern expansion on the given text and print the result without adding an item.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			store, err := a.patternStore()
			if err != nil {
				return err
			}
			expanded, ok := store.Expand(text)
			fmt.Fprintln(a.stdout, expanded)
			if !ok {
				fmt.Fprintln(a.stderr, ui.MutedStyle.Render("(no pattern matched)"))
			}
			return nil
		},
	}
}
