package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/quill/internal/document"
	"github.com/zjrosen/quill/internal/lexer"
	"github.com/zjrosen/quill/internal/search"
	"github.com/zjrosen/quill/internal/ui/styles"
)

const (
	foldMarkerHeader    = "▾"
	foldMarkerCollapsed = "▸"
	foldMarkerNone      = " "
)

func foldLevel(level int) int { return level & lexer.FoldLevelNumberMask }

func isFoldHeader(level int) bool { return level&lexer.FoldLevelHeaderFlag != 0 }

// visibleLines returns the document lines still on screen given the set of
// collapsed header lines. Lines inside a collapsed header are skipped until
// the fold level drops back to the header's level or below.
func visibleLines(doc *document.Document, collapsed map[int]bool) []int {
	visible := make([]int, 0, doc.Lines())
	line := 0
	for line < doc.Lines() {
		visible = append(visible, line)
		level := doc.LevelAt(line)
		if isFoldHeader(level) && collapsed[line] {
			child := line + 1
			for child < doc.Lines() && foldLevel(doc.LevelAt(child)) > foldLevel(level) {
				child++
			}
			line = child
		} else {
			line++
		}
	}
	return visible
}

// gutterWidth returns the width of the line number column.
func gutterWidth(doc *document.Document) int {
	return len(strconv.Itoa(doc.Lines()))
}

// renderLine styles one line of the document, layering search highlight
// backgrounds over the syntax colouring so both remain readable.
func renderLine(doc *document.Document, lang *Language, line int, matches []search.Match, current int) string {
	start := doc.LineStart(line)
	end := start + len(doc.LineText(line))

	matchAt := func(pos int) int {
		for i, m := range matches {
			if pos >= m.Start && pos < m.End {
				return i
			}
		}
		return -1
	}

	styleFor := styles.SQLStyle
	if lang != nil && lang.lexerName == "props" {
		styleFor = styles.PropsStyle
	}

	var b strings.Builder
	pos := start
	for pos < end {
		id := doc.StyleAt(pos)
		mi := matchAt(pos)
		run := pos + 1
		for run < end && doc.StyleAt(run) == id && matchAt(run) == mi {
			run++
		}
		st := styleFor(id)
		switch {
		case mi >= 0 && mi == current:
			st = st.Background(styles.SearchCurrentStyle.GetBackground()).Bold(true)
		case mi >= 0:
			st = st.Background(styles.SearchMatchStyle.GetBackground())
		}
		b.WriteString(st.Render(string(doc.Text()[pos:run])))
		pos = run
	}
	return b.String()
}

// renderOptions control the gutter columns and clipping for a render pass.
type renderOptions struct {
	width           int
	cursorLine      int
	showLineNumbers bool
	showFoldGutter  bool
}

// renderDocument renders the visible lines with their gutters, clipped to the
// configured width.
func renderDocument(doc *document.Document, lang *Language, lines []int, collapsed map[int]bool, matches []search.Match, current int, opts renderOptions) []string {
	numWidth := gutterWidth(doc)
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		var b strings.Builder
		if opts.showLineNumbers {
			numStyle := styles.LineNumberStyle
			if line == opts.cursorLine {
				numStyle = numStyle.Bold(true).Foreground(styles.TextPrimaryColor)
			}
			b.WriteString(numStyle.Render(fmt.Sprintf("%*d ", numWidth, line+1)))
		}
		if opts.showFoldGutter {
			level := doc.LevelAt(line)
			marker := foldMarkerNone
			markerStyle := styles.FoldMarkerStyle
			switch {
			case isFoldHeader(level) && collapsed[line]:
				marker = foldMarkerCollapsed
				markerStyle = styles.CollapsedStyle
			case isFoldHeader(level):
				marker = foldMarkerHeader
			}
			b.WriteString(markerStyle.Render(marker + " "))
		}
		b.WriteString(renderLine(doc, lang, line, matches, current))
		row := b.String()
		if opts.width > 0 {
			row = ansi.Truncate(row, opts.width, "…")
		}
		rendered = append(rendered, row)
	}
	return rendered
}

// HighlightLines renders every document line with syntax colouring and no
// gutters, for non-interactive output.
func HighlightLines(doc *document.Document, lang *Language) []string {
	lines := make([]string, 0, doc.Lines())
	for line := 0; line < doc.Lines(); line++ {
		lines = append(lines, renderLine(doc, lang, line, nil, -1))
	}
	return lines
}

// countHeaders returns the number of fold header lines in the document.
func countHeaders(doc *document.Document) int {
	count := 0
	for line := 0; line < doc.Lines(); line++ {
		if isFoldHeader(doc.LevelAt(line)) {
			count++
		}
	}
	return count
}
