package cli

import (
	"github.com/spf13/cobra"

	"todopat/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the list interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := a.patternStore()
			if err != nil {
				return err
			}
			store, err := a.todoStore(patterns)
			if err != nil {
				return err
			}
			return tui.Run(store, patterns)
		},
	}
}
