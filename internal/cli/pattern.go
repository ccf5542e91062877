package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todopat/internal/pattern"
	"todopat/internal/ui"
)

func newPatternCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Manage text-expansion patterns",
	}
	cmd.AddCommand(
		newPatternAddCmd(a),
		newPatternRemoveCmd(a),
		newPatternListCmd(a),
		newPatternMatchCmd(a),
	)
	return cmd
}

func newPatternAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <shortcut> <expansion>...",
		Short: "Add or overwrite a pattern",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shortcut := args[0]
			expansion := strings.Join(args[1:], " ")
			store, err := a.patternStore()
			if err != nil {
				return err
			}
			if err := store.Add(shortcut, expansion); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, ui.OK(fmt.Sprintf("added pattern: '%s' -> '%s'", shortcut, expansion)))
			return nil
		},
	}
}

func newPatternRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <shortcut>",
		Short: "Remove a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.patternStore()
			if err != nil {
				return err
			}
			if err := store.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, ui.OK(fmt.Sprintf("removed pattern: '%s'", args[0])))
			return nil
		},
	}
}

func newPatternListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.patternStore()
			if err != nil {
				return err
			}
			printPatterns(a, store.List())
			return nil
		},
	}
}

func newPatternMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match <partial>",
		Short: "List patterns whose shortcut starts with the given text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.patternStore()
			if err != nil {
				return err
			}
			printPatterns(a, store.Matching(args[0]))
			return nil
		},
	}
}

func printPatterns(a *app, patterns []pattern.Pattern) {
	if len(patterns) == 0 {
		fmt.Fprintln(a.stdout, ui.MutedStyle.Render("no patterns defined"))
		return
	}
	lines := []string{ui.TitleStyle.Render("Patterns"), ""}
	for _, p := range patterns {
		lines = append(lines, fmt.Sprintf("%s -> %s",
			ui.AccentStyle.Render("'"+p.Shortcut+"'"), "'"+p.Expansion+"'"))
	}
	fmt.Fprintln(a.stdout, ui.Panel(lines))
}
