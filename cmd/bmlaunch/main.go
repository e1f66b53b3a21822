package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/bmlaunch/internal/config"
	"github.com/nikbrunner/bmlaunch/internal/launcher"
	"github.com/nikbrunner/bmlaunch/internal/logger"
	"github.com/nikbrunner/bmlaunch/internal/output"
	"github.com/nikbrunner/bmlaunch/internal/picker"
	"github.com/nikbrunner/bmlaunch/internal/search"
	"github.com/nikbrunner/bmlaunch/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bmlaunch [query]",
		Short: "Filter bookmarks for a launcher",
		Long: `bmlaunch - bookmark filter for launcher script filters

Reads the bookmarks named by BOOKMARKS_FILE, ranks them against the query
and prints launcher items. Without a query, or when nothing matches, a
single item pointing at DEFAULT_SEARCH_URL is printed.

Environment:
  BOOKMARKS_FILE          bookmarks source (.json, .html, .db)   required
  DEFAULT_SEARCH_URL      fallback URL                           required
  BOOKMARKS_MATCHER       fuzzy | substring                      default fuzzy
  BOOKMARKS_OUTPUT        alfred | text | pick                   default alfred
  BOOKMARKS_LIMIT         maximum number of results              default 10
  BOOKMARKS_SKIP_INVALID  skip malformed entries                 default false
  BOOKMARKS_VERBOSE       debug output on stderr                 default false`,
		// Everything after the command name is query text
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
				return cmd.Help()
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "))
		},
	}
}

// run loads configuration and bookmarks, then renders the items for query.
func run(stdout, stderr io.Writer, query string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.SetVerbose(cfg.Verbose)
	logger.Section("Config")
	logger.Debug("bookmarks file: %s", cfg.BookmarksFile)
	logger.Debug("matcher: %s, output: %s, limit: %d", cfg.Matcher, cfg.Output, cfg.Limit)

	source := storage.Open(cfg.BookmarksFile, storage.Options{SkipInvalid: cfg.SkipInvalid})
	bookmarks, err := source.Load()
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}
	logger.Info("loaded %d bookmarks from %s", len(bookmarks), source.Path())

	// Validated by config.Load
	scorer, _ := search.NewScorer(cfg.Matcher)

	logger.Section("Ranking")
	items := launcher.Filter(bookmarks, query, launcher.Params{
		Scorer:           scorer,
		DefaultSearchURL: cfg.DefaultSearchURL,
		Limit:            cfg.Limit,
	})

	switch cfg.Output {
	case config.OutputText:
		return output.Text{}.Render(stdout, items)
	case config.OutputPick:
		return pick(stdout, stderr, items, search.NormalizeQuery(query))
	default:
		return output.Alfred{}.Render(stdout, items)
	}
}

// pick lets the user choose an item and prints its URL.
// The picker draws on stderr so stdout only ever carries the URL.
func pick(stdout, stderr io.Writer, items []launcher.Item, query string) error {
	p, err := picker.Run(items, query, tea.WithOutput(stderr))
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}
	if err := p.Err(); err != nil {
		return err
	}

	item, ok := p.Selected()
	if !ok {
		return nil
	}
	_, err = fmt.Fprintln(stdout, item.Arg)
	return err
}
