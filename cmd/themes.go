package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long: `List the built-in theme presets.

Set one in the config file:
  theme:
    preset: catppuccin-mocha

Or pass it for a single run:
  quill --theme dracula schema.sql`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(os.Stdout, "%-18s %s\n", name, styles.Presets[name].Description)
	}
	return nil
}
