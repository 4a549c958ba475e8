package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mealfinder/internal/tui"
)

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer app.Close()

	client, err := app.Client()
	if err != nil {
		return err
	}

	app.Logger.Info("launching search widget")

	m := tui.New(tui.Options{
		Context:      cmd.Context(),
		Store:        app.Store,
		Source:       client,
		Logger:       app.Logger,
		DiscardStale: app.Config.Search.DiscardStale,
		Hyperlinks:   true,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "search widget failed")
		return fmt.Errorf("failed to run search widget: %w", err)
	}
	return nil
}
