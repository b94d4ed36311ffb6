package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.FilePath = filepath.Join(t.TempDir(), "traces.jsonl")
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled)
	require.Equal(t, "file", cfg.Exporter)
	require.Empty(t, cfg.FilePath)
	require.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	require.Equal(t, 1.0, cfg.SampleRate)
	require.Equal(t, "quill", cfg.ServiceName)
}

func TestNewProvider_DisabledIsNoOp(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)
	require.False(t, provider.Enabled())

	// Spans still work, they just record nothing.
	ctx, span := provider.Tracer().Start(context.Background(), SpanPrefixSearch+"find")
	require.NotNil(t, ctx)
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterWritesTraceFile(t *testing.T) {
	cfg := fileConfig(t)

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), SpanPrefixLex+"document")
	sc := span.SpanContext()
	require.True(t, sc.IsValid())
	require.True(t, sc.TraceID().IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	_, err = os.Stat(cfg.FilePath)
	require.NoError(t, err, "trace file should exist after shutdown flush")
}

func TestNewProvider_NoneExporterStillRecords(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: "none"})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), SpanPrefixFold+"pass")
	require.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_StdoutExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: "stdout"})
	require.NoError(t, err)

	_, span := provider.Tracer().Start(context.Background(), SpanPrefixStore+"save")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterRequiresPath(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: "file"})
	require.Error(t, err)
	require.Nil(t, provider)
	require.Contains(t, err.Error(), "file_path required")
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: "carrier-pigeon"})
	require.Error(t, err)
	require.Nil(t, provider)
	require.Contains(t, err.Error(), "unsupported exporter")
}

func TestNewProvider_ZeroSampleRateMeansSampleAll(t *testing.T) {
	cfg := fileConfig(t)
	cfg.SampleRate = 0

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_EmptyServiceNameDefaults(t *testing.T) {
	cfg := fileConfig(t)
	cfg.ServiceName = ""

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_ChildSpanSharesTraceID(t *testing.T) {
	provider, err := NewProvider(fileConfig(t))
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	tracer := provider.Tracer()
	ctx, parent := tracer.Start(context.Background(), SpanPrefixSearch+"find")
	_, child := tracer.Start(ctx, SpanPrefixRegex+"execute")

	require.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())

	child.End()
	parent.End()
}

func TestProvider_TracerIsStable(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)

	require.Equal(t, provider.Tracer(), provider.Tracer())
}
