// Package search implements the search command, which queries the store
// from the terminal without a chat connection.
package search

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Kwehdev/discord-game-bot/cmd/common"
	"github.com/Kwehdev/discord-game-bot/internal/bootstrap"
	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/command"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
	"github.com/Kwehdev/discord-game-bot/internal/storefront"
)

// Column width limits
const (
	nameColumnWidth  = 48
	urlColumnWidth   = 72
	valueColumnWidth = 100
)

// ErrPickOutOfRange is returned when --pick does not name a listed result.
var ErrPickOutOfRange = errors.New("pick is outside the result list")

// Command returns the search command.
func Command(opts *common.Options) *cobra.Command {
	var (
		query string
		pick  int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the store from the terminal",
		Long: `Search runs the same store search as ?steam and prints the candidates.

Examples:
  # List the candidates for "half life"
  discord-game-bot search -q "half life"

  # Show details for the second candidate
  discord-game-bot search -q "half life" --pick 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := common.NewCommandDeps(opts)
			if err != nil {
				return err
			}
			defer func() { _ = deps.Logger.Sync() }()

			if err := deps.Config.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			store := bootstrap.NewStoreClients(deps.Config.Store)
			return Run(cmd, store.Fetcher, store.Resolver, deps.Logger, strings.Fields(query), pick)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Query string to search for")
	cmd.Flags().IntVarP(&pick, "pick", "p", 0, "Show details for the candidate at this position")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

// Run searches for query and renders the results to cmd's output. A pick
// above zero also resolves and renders that candidate's details.
func Run(
	cmd *cobra.Command,
	searcher command.Searcher,
	resolver command.DetailResolver,
	log logger.Logger,
	query []string,
	pick int,
) error {
	if len(query) == 0 {
		return errors.New("query must not be empty")
	}

	ctx := cmd.Context()
	log.Debug("Searching store", logger.Strings("query", query))

	candidates, err := searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search store: %w", err)
	}

	out := cmd.OutOrStdout()
	renderCandidates(out, candidates, strings.Join(query, " "))

	if pick == 0 {
		return nil
	}
	if pick < 0 || pick > len(candidates) {
		return fmt.Errorf("%w: %d of %d", ErrPickOutOfRange, pick, len(candidates))
	}

	chosen := candidates[pick-1]
	detail, err := resolver.Resolve(ctx, chosen)
	if errors.Is(err, storefront.ErrNotFound) {
		fmt.Fprintf(out, "\nNo store details for %s.\n", chosen.DisplayName)
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve %s: %w", chosen.DisplayName, err)
	}

	renderDetail(out, command.DetailCard(detail, chosen))
	return nil
}

func newTable(out io.Writer, columns ...table.ColumnConfig) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	t.SetColumnConfigs(columns)
	return t
}

func renderCandidates(out io.Writer, candidates []catalog.Candidate, query string) {
	if len(candidates) == 0 {
		fmt.Fprintf(out, "No games matching %s.\n", query)
		return
	}

	t := newTable(out,
		table.ColumnConfig{Number: 3, WidthMax: nameColumnWidth},
		table.ColumnConfig{Number: 4, WidthMax: urlColumnWidth},
	)
	t.AppendHeader(table.Row{"#", "App ID", "Name", "URL"})
	for i, c := range candidates {
		t.AppendRow(table.Row{i + 1, c.ID, c.DisplayName, c.URL})
	}
	t.AppendFooter(table.Row{"Total", len(candidates), "Query: " + query, ""})

	fmt.Fprintf(out, "\nSearch Results:\n")
	t.Render()
}

func renderDetail(out io.Writer, card chat.Card) {
	t := newTable(out, table.ColumnConfig{Number: 2, WidthMax: valueColumnWidth})
	t.SetTitle(card.Title)
	t.AppendRow(table.Row{"Description", card.Description})
	for _, f := range card.Fields {
		t.AppendRow(table.Row{f.Name, f.Value})
	}
	t.AppendRow(table.Row{"Store page", card.URL})

	fmt.Fprintln(out)
	t.Render()
}
