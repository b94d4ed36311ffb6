package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/lexer"
)

func TestLoadDocument_SQL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1;\n"), 0o600))

	tracer := noop.NewTracerProvider().Tracer("test")
	doc, lang, err := loadDocument(path, config.Defaults(), tracer)
	require.NoError(t, err)

	require.Equal(t, path, doc.Path())
	require.Equal(t, "SQL", lang.Name())
	require.Equal(t, lexer.StyleWord, doc.StyleAt(0))
}

func TestLoadDocument_Props(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.properties")
	require.NoError(t, os.WriteFile(path, []byte("[main]\nkey=value\n"), 0o600))

	tracer := noop.NewTracerProvider().Tracer("test")
	doc, lang, err := loadDocument(path, config.Defaults(), tracer)
	require.NoError(t, err)

	require.Equal(t, "Properties", lang.Name())
	require.Equal(t, lexer.PropsSection, doc.StyleAt(0))
	require.True(t, doc.LevelAt(0)&lexer.FoldLevelHeaderFlag != 0)
}

func TestLoadDocument_MissingFile(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	_, _, err := loadDocument("/nonexistent/file.sql", config.Defaults(), tracer)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading")
}

func TestApplyTheme_FromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Theme.Preset = "nord"
	require.NoError(t, applyTheme(cfg))

	cfg.Theme.Preset = "no-such-theme"
	require.Error(t, applyTheme(cfg))

	// Restore the default palette for other tests
	cfg.Theme.Preset = ""
	require.NoError(t, applyTheme(cfg))
}

func TestBuildTracing_Disabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.Tracing.Enabled = false

	provider, err := buildTracing(cfg)
	require.NoError(t, err)
	require.False(t, provider.Enabled())
	require.NotNil(t, provider.Tracer())
	shutdownTracing(provider)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["highlight"])
	require.True(t, names["fold"])
	require.True(t, names["search"])
	require.True(t, names["themes"])
}
