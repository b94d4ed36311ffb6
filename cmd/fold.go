package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/lexer"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/store"
)

var (
	foldSnapshot bool
	foldPrune    int
)

var foldCmd = &cobra.Command{
	Use:   "fold <file>",
	Short: "Print the fold structure of a file",
	Long: `Print the computed fold level of every line.

Each line shows its depth relative to the base level, a marker for fold
headers and blank lines, and the line text indented by depth. With
--snapshot the levels are also persisted to the snapshot store, and --prune
keeps only the newest N revisions for the file afterwards.

Examples:
  quill fold schema.sql
  quill fold --snapshot schema.sql
  quill fold --snapshot --prune 5 schema.sql`,
	Args: cobra.ExactArgs(1),
	RunE: runFold,
}

func init() {
	rootCmd.AddCommand(foldCmd)

	foldCmd.Flags().BoolVar(&foldSnapshot, "snapshot", false,
		"persist the fold levels to the snapshot store")
	foldCmd.Flags().IntVar(&foldPrune, "prune", 0,
		"after saving, keep only the newest N revisions for this file")
}

func runFold(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := buildTracing(cfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer shutdownTracing(provider)

	doc, _, err := loadDocument(args[0], cfg, provider.Tracer())
	if err != nil {
		return err
	}

	for line := 0; line < doc.Lines(); line++ {
		level := doc.LevelAt(line)
		depth := (level & lexer.FoldLevelNumberMask) - lexer.FoldLevelBase
		marker := " "
		switch {
		case level&lexer.FoldLevelHeaderFlag != 0:
			marker = "+"
		case level&lexer.FoldLevelWhiteFlag != 0:
			marker = "~"
		}
		fmt.Fprintf(os.Stdout, "%4d %2d %s %s%s\n",
			line+1, depth, marker, strings.Repeat("  ", maxInt(depth, 0)), doc.LineText(line))
	}

	if !foldSnapshot {
		return nil
	}
	if cfg.Store.Path == "" {
		return fmt.Errorf("store.path is not configured")
	}

	db, err := store.NewDB(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}
	defer func() { _ = db.Close() }()

	snapshots := db.FoldStore()
	snap := &store.Snapshot{
		Path:     doc.Path(),
		Revision: doc.Revision(),
		Levels:   doc.Levels(),
	}
	if err := snapshots.Save(snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	fmt.Fprintf(os.Stdout, "snapshot %s saved\n", snap.ID)

	if foldPrune > 0 {
		deleted, err := snapshots.Prune(doc.Path(), foldPrune)
		if err != nil {
			return fmt.Errorf("pruning snapshots: %w", err)
		}
		log.Debug(log.CatStore, "snapshots pruned", "path", doc.Path(), "deleted", deleted)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
