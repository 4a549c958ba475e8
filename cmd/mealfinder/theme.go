package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mealfinder/internal/components"
	"github.com/alexisbeaulieu97/mealfinder/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved display theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeManager(cmd, flags, func(m *theme.Manager, toggle *components.ThemeToggle) error {
				m.Init()
				printTheme(cmd, m, toggle)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Save the display theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			next, ok := theme.Parse(args[0])
			if !ok {
				return fmt.Errorf("invalid theme %q: expected %q or %q", args[0], theme.Light, theme.Dark)
			}
			return withThemeManager(cmd, flags, func(m *theme.Manager, toggle *components.ThemeToggle) error {
				m.Set(next)
				printTheme(cmd, m, toggle)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeManager(cmd, flags, func(m *theme.Manager, toggle *components.ThemeToggle) error {
				m.Init()
				toggle.Click()
				printTheme(cmd, m, toggle)
				return nil
			})
		},
	})

	return cmd
}

// withThemeManager wires a manager to a headless root and toggle backed by
// the configured store.
func withThemeManager(cmd *cobra.Command, flags *rootFlags, fn func(*theme.Manager, *components.ThemeToggle) error) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	toggle := components.NewThemeToggle()
	m := theme.NewManager(components.NewRoot(), toggle, app.Store, app.Logger)
	toggle.OnClick(func(components.ClickEvent) { m.Toggle() })

	return fn(m, toggle)
}

func printTheme(cmd *cobra.Command, m *theme.Manager, toggle *components.ThemeToggle) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", toggle.Icon(), m.Current(), toggle.Label())
}
