package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/flags"
	"github.com/zjrosen/quill/internal/search"
)

var (
	searchCaseSensitive bool
	searchPosix         bool
	searchShowGroups    bool
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern> <file>",
	Short: "Search a file with a regular expression",
	Long: `Search a file and print every match as line:column followed by the
matched text.

Patterns support character classes, \(...\) tagged groups, the \< and \>
word boundaries and * + ? quantifiers. With --posix, plain parentheses form
the tagged groups instead. Matching is case insensitive unless
--case-sensitive is given.

Examples:
  quill search 'select' schema.sql
  quill search --case-sensitive 'CREATE TABLE' schema.sql
  quill search --posix --groups '([a-z]+)_id' schema.sql`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false,
		"match case exactly")
	searchCmd.Flags().BoolVar(&searchPosix, "posix", false,
		"treat plain parentheses as groups")
	searchCmd.Flags().BoolVar(&searchShowGroups, "groups", false,
		"print captured groups after each match")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := buildTracing(cfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer shutdownTracing(provider)

	pattern, path := args[0], args[1]
	doc, _, err := loadDocument(path, cfg, provider.Tracer())
	if err != nil {
		return err
	}

	registry := flags.New(cfg.Flags)
	service := search.NewService(doc, cfg.Search, provider.Tracer(),
		registry.Enabled(flags.FlagSearchCache))

	matches, err := service.Find(context.Background(), pattern, search.Options{
		CaseSensitive: searchCaseSensitive,
		Posix:         searchPosix,
	})
	if err != nil {
		return err
	}

	for _, m := range matches {
		col := m.Start - doc.LineStart(m.Line)
		fmt.Fprintf(os.Stdout, "%s:%d:%d: %s\n", path, m.Line+1, col+1, m.Text)
		if searchShowGroups {
			for i, g := range m.Groups {
				fmt.Fprintf(os.Stdout, "  group %d: %s\n", i+1, g)
			}
		}
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stderr, "no matches")
	}
	return nil
}
