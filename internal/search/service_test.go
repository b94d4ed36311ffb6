package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/document"
)

func newTestService(t *testing.T, text string, cacheEnabled bool) (*Service, *document.Document) {
	t.Helper()
	doc := document.NewFromString(text)
	cfg := config.SearchConfig{CacheEntries: 128, CacheTTLSeconds: 60}
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewService(doc, cfg, tracer, cacheEnabled), doc
}

func TestService_Find_Literal(t *testing.T) {
	svc, _ := newTestService(t, "select a from t\nselect b from t\n", true)

	matches, err := svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	require.Equal(t, 0, matches[0].Start)
	require.Equal(t, 6, matches[0].End)
	require.Equal(t, 0, matches[0].Line)
	require.Equal(t, "select", matches[0].Text)

	require.Equal(t, 1, matches[1].Line)
}

func TestService_Find_CaseInsensitiveByDefault(t *testing.T) {
	svc, _ := newTestService(t, "SELECT a FROM t\n", true)

	matches, err := svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "SELECT", matches[0].Text)
}

func TestService_Find_CaseSensitive(t *testing.T) {
	svc, _ := newTestService(t, "SELECT a from t\n", true)

	matches, err := svc.Find(context.Background(), "select", Options{CaseSensitive: true})
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestService_Find_Captures(t *testing.T) {
	svc, _ := newTestService(t, "create table users\n", true)

	matches, err := svc.Find(context.Background(), `create \(table\) \([a-z]+\)`, Options{CaseSensitive: true})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, []string{"table", "users"}, matches[0].Groups)
}

func TestService_Find_PosixGroups(t *testing.T) {
	svc, _ := newTestService(t, "create table users\n", true)

	matches, err := svc.Find(context.Background(), `create (table) ([a-z]+)`, Options{CaseSensitive: true, Posix: true})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, []string{"table", "users"}, matches[0].Groups)
}

func TestService_Find_LineAnchors(t *testing.T) {
	svc, _ := newTestService(t, "begin\nnot begin\nbegin\n", true)

	matches, err := svc.Find(context.Background(), "^begin", Options{CaseSensitive: true})
	require.NoError(t, err)
	require.Len(t, matches, 2, "anchors are line-local so every line start counts")
	require.Equal(t, 0, matches[0].Line)
	require.Equal(t, 2, matches[1].Line)
}

func TestService_Find_EndAnchor(t *testing.T) {
	svc, _ := newTestService(t, "end\nend\n", true)

	matches, err := svc.Find(context.Background(), "end$", Options{CaseSensitive: true})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, 0, matches[0].Line)
	require.Equal(t, 1, matches[1].Line)
}

func TestService_Find_NoMatches(t *testing.T) {
	svc, _ := newTestService(t, "select a from t\n", true)

	matches, err := svc.Find(context.Background(), "xyzzy", Options{})
	require.NoError(t, err)
	require.NotNil(t, matches)
	require.Empty(t, matches)
}

func TestService_Find_CompileError(t *testing.T) {
	svc, _ := newTestService(t, "select a from t\n", true)

	_, err := svc.Find(context.Background(), "[abc", Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to compile pattern")
	require.Contains(t, err.Error(), "Missing ]")
}

func TestService_Find_CachedAcrossCalls(t *testing.T) {
	svc, _ := newTestService(t, "select a from t\n", true)

	first, err := svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)

	second, err := svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestService_Find_RevisionInvalidatesCache(t *testing.T) {
	svc, doc := newTestService(t, "select a from t\n", true)

	matches, err := svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	// An edit bumps the revision, so the cached entry stops being addressed
	doc.SetText([]byte("select a from t\nselect b from u\n"))

	matches, err = svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
}

func TestService_Find_CacheDisabled(t *testing.T) {
	svc, doc := newTestService(t, "select a from t\n", false)

	matches, err := svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	doc.SetText([]byte("nothing here\n"))

	matches, err = svc.Find(context.Background(), "select", Options{})
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestService_Find_WordBoundaries(t *testing.T) {
	svc, _ := newTestService(t, "id idx id\n", true)

	matches, err := svc.Find(context.Background(), `\<id\>`, Options{CaseSensitive: true})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, 0, matches[0].Start)
	require.Equal(t, 7, matches[1].Start)
}

func TestService_Find_EmptyMatchAdvances(t *testing.T) {
	svc, _ := newTestService(t, "ab\n", true)

	// x* matches empty at every position without looping forever
	matches, err := svc.Find(context.Background(), "x*", Options{CaseSensitive: true})
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		require.GreaterOrEqual(t, m.End, m.Start)
	}
}

func TestOptions_FlagString(t *testing.T) {
	require.Equal(t, "ci", Options{}.flagString())
	require.Equal(t, "cs", Options{CaseSensitive: true}.flagString())
	require.Equal(t, "ci+px", Options{Posix: true}.flagString())
	require.Equal(t, "cs+px", Options{CaseSensitive: true, Posix: true}.flagString())
}
