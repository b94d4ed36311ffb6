package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/document"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/store"
	"github.com/zjrosen/quill/internal/tracing"
	"github.com/zjrosen/quill/internal/ui"
	"github.com/zjrosen/quill/internal/ui/styles"
)

// applyTheme pushes the configured theme into the style tables.
func applyTheme(cfg config.Config) error {
	return styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	})
}

// buildTracing constructs the trace provider from the merged configuration.
func buildTracing(cfg config.Config) (*tracing.Provider, error) {
	tcfg := tracing.DefaultConfig()
	tcfg.Enabled = cfg.Tracing.Enabled
	if cfg.Tracing.Exporter != "" {
		tcfg.Exporter = cfg.Tracing.Exporter
	}
	tcfg.FilePath = cfg.Tracing.FilePath
	if tcfg.FilePath == "" {
		tcfg.FilePath = config.DefaultTracesFilePath()
	}
	if cfg.Tracing.OTLPEndpoint != "" {
		tcfg.OTLPEndpoint = cfg.Tracing.OTLPEndpoint
	}
	tcfg.SampleRate = cfg.Tracing.SampleRate
	return tracing.NewProvider(tcfg)
}

// shutdownTracing flushes pending spans with a bounded wait.
func shutdownTracing(provider *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatConfig, "failed to shut down tracing", err)
	}
}

// loadDocument reads the file, resolves its language and runs the first
// styling pass.
func loadDocument(path string, cfg config.Config, tracer trace.Tracer) (*document.Document, *ui.Language, error) {
	text, err := os.ReadFile(path) // #nosec G304 -- path is the file the user asked to view
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lang, err := ui.NewLanguage(cfg.LanguageFor(path))
	if err != nil {
		return nil, nil, err
	}

	doc := document.New()
	doc.SetPath(path)
	doc.SetText(text)
	lang.Configure(doc)
	lang.Relex(context.Background(), tracer, doc)
	return doc, lang, nil
}

// saveFoldSnapshot persists the document's fold levels, logging failures
// instead of aborting startup.
func saveFoldSnapshot(snapshots *store.FoldStore, doc *document.Document) {
	snap := &store.Snapshot{
		Path:     doc.Path(),
		Revision: doc.Revision(),
		Levels:   doc.Levels(),
	}
	if err := snapshots.Save(snap); err != nil {
		log.ErrorErr(log.CatStore, "failed to save fold snapshot", err)
		return
	}
	log.Debug(log.CatStore, "fold snapshot saved", "path", doc.Path(), "id", snap.ID)
}
