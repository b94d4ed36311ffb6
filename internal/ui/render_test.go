package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/document"
	"github.com/zjrosen/quill/internal/lexer"
	"github.com/zjrosen/quill/internal/search"
)

// foldedDoc builds a five line document where line 0 is a fold header with
// two child lines.
func foldedDoc() *document.Document {
	doc := document.NewFromString("begin\na\nb\nend\ndone")
	doc.SetLevel(0, lexer.FoldLevelBase|lexer.FoldLevelHeaderFlag)
	doc.SetLevel(1, lexer.FoldLevelBase+1)
	doc.SetLevel(2, lexer.FoldLevelBase+1)
	doc.SetLevel(3, lexer.FoldLevelBase)
	doc.SetLevel(4, lexer.FoldLevelBase)
	return doc
}

func TestVisibleLines_NothingCollapsed(t *testing.T) {
	doc := foldedDoc()
	require.Equal(t, []int{0, 1, 2, 3, 4}, visibleLines(doc, map[int]bool{}))
}

func TestVisibleLines_CollapsedHeaderHidesChildren(t *testing.T) {
	doc := foldedDoc()
	require.Equal(t, []int{0, 3, 4}, visibleLines(doc, map[int]bool{0: true}))
}

func TestVisibleLines_CollapsedNonHeaderIsIgnored(t *testing.T) {
	doc := foldedDoc()
	require.Equal(t, []int{0, 1, 2, 3, 4}, visibleLines(doc, map[int]bool{1: true}))
}

func TestVisibleLines_NestedCollapse(t *testing.T) {
	doc := document.NewFromString("outer\ninner\nx\ny\nafter")
	doc.SetLevel(0, lexer.FoldLevelBase|lexer.FoldLevelHeaderFlag)
	doc.SetLevel(1, (lexer.FoldLevelBase+1)|lexer.FoldLevelHeaderFlag)
	doc.SetLevel(2, lexer.FoldLevelBase+2)
	doc.SetLevel(3, lexer.FoldLevelBase+2)
	doc.SetLevel(4, lexer.FoldLevelBase)

	require.Equal(t, []int{0, 1, 4}, visibleLines(doc, map[int]bool{1: true}))
	require.Equal(t, []int{0, 4}, visibleLines(doc, map[int]bool{0: true, 1: true}))
}

func TestGutterWidth(t *testing.T) {
	require.Equal(t, 1, gutterWidth(document.NewFromString("one")))

	var b strings.Builder
	for i := 0; i < 120; i++ {
		b.WriteString("line\n")
	}
	require.Equal(t, 3, gutterWidth(document.NewFromString(b.String())))
}

func TestRenderLine_PreservesText(t *testing.T) {
	doc := document.NewFromString("select id from users\n")
	rendered := renderLine(doc, nil, 0, nil, -1)
	require.Equal(t, "select id from users", ansi.Strip(rendered))
}

func TestRenderLine_WithMatches(t *testing.T) {
	doc := document.NewFromString("select id from users\n")
	matches := []search.Match{{Start: 7, End: 9, Line: 0, Text: "id"}}

	rendered := renderLine(doc, nil, 0, matches, 0)
	require.Equal(t, "select id from users", ansi.Strip(rendered))
}

func TestRenderDocument_GutterColumns(t *testing.T) {
	doc := foldedDoc()
	rows := renderDocument(doc, nil, visibleLines(doc, map[int]bool{}), map[int]bool{}, nil, -1, renderOptions{
		cursorLine:      0,
		showLineNumbers: true,
		showFoldGutter:  true,
	})

	require.Len(t, rows, 5)
	require.Contains(t, ansi.Strip(rows[0]), "1 ")
	require.Contains(t, ansi.Strip(rows[0]), foldMarkerHeader)
	require.Contains(t, ansi.Strip(rows[0]), "begin")
	require.NotContains(t, ansi.Strip(rows[1]), foldMarkerHeader)
}

func TestRenderDocument_CollapsedMarker(t *testing.T) {
	doc := foldedDoc()
	collapsed := map[int]bool{0: true}
	rows := renderDocument(doc, nil, visibleLines(doc, collapsed), collapsed, nil, -1, renderOptions{
		cursorLine:     -1,
		showFoldGutter: true,
	})

	require.Len(t, rows, 3)
	require.Contains(t, ansi.Strip(rows[0]), foldMarkerCollapsed)
}

func TestRenderDocument_WidthClipsRows(t *testing.T) {
	doc := document.NewFromString("select a_very_long_identifier from somewhere\n")
	rows := renderDocument(doc, nil, []int{0}, map[int]bool{}, nil, -1, renderOptions{
		width:      10,
		cursorLine: -1,
	})

	require.LessOrEqual(t, ansi.StringWidth(rows[0]), 10)
}

func TestCountHeaders(t *testing.T) {
	require.Equal(t, 1, countHeaders(foldedDoc()))
	require.Equal(t, 0, countHeaders(document.NewFromString("plain\ntext")))
}
