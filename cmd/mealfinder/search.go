package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mealfinder/internal/components"
	"github.com/alexisbeaulieu97/mealfinder/internal/search"
	"github.com/alexisbeaulieu97/mealfinder/internal/theme"
)

const defaultRenderWidth = 80

var errSearchFailed = errors.New("recipe search failed")

func newSearchCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term...>",
		Short: "Search recipes by name and print the results",
		Long: `Search TheMealDB by recipe name. Multiple arguments are joined with
spaces, so "mealfinder search beef stew" searches for "beef stew".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			return runSearch(cmd, app, strings.Join(args, " "))
		},
	}

	return cmd
}

// runSearch drives the same widgets as the interactive view once and prints
// the results container.
func runSearch(cmd *cobra.Command, app *AppContext, term string) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	root := components.NewRoot()
	root.SetHyperlinks(isTerminal(out))
	toggle := components.NewThemeToggle()
	theme.NewManager(root, toggle, app.Store, app.Logger).Init()

	input := components.NewTextInput(components.SearchInputID, components.SearchPlaceholder)
	button := components.NewButton(components.SearchButtonID, "Search")
	results := components.NewResults()

	fetcher := search.NewFetcher(search.FetcherOptions{
		Source:       client,
		Container:    results,
		Scheduler:    search.Inline{},
		Logger:       app.Logger,
		DiscardStale: app.Config.Search.DiscardStale,
	})
	search.NewController(cmd.Context(), input, button, results, fetcher)

	input.SetValue(term)
	input.Press(components.EnterKey)

	fmt.Fprintln(out, results.View(root.Styles(), terminalWidth(out, defaultRenderWidth)))

	if msg, ok := results.Message(); ok && msg.Kind == components.MessageError {
		return errSearchFailed
	}
	return nil
}
