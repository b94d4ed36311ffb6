package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/ui"
)

var highlightNoColor bool

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print a file with syntax highlighting",
	Long: `Print a file to stdout with ANSI syntax highlighting.

The language is resolved from the file extension using the configured
languages. Use --no-color to strip the escape sequences, which leaves the
styling pass as a syntax check.

Examples:
  quill highlight schema.sql
  quill highlight --theme dracula schema.sql
  quill highlight --no-color app.properties`,
	Args: cobra.ExactArgs(1),
	RunE: runHighlight,
}

func init() {
	rootCmd.AddCommand(highlightCmd)

	highlightCmd.Flags().BoolVar(&highlightNoColor, "no-color", false,
		"disable ANSI colors in the output")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if highlightNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if err := applyTheme(cfg); err != nil {
		return err
	}

	provider, err := buildTracing(cfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer shutdownTracing(provider)

	doc, lang, err := loadDocument(args[0], cfg, provider.Tracer())
	if err != nil {
		return err
	}

	for _, line := range ui.HighlightLines(doc, lang) {
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
