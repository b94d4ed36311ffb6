// Package document holds the in-memory text buffer the lexers and the regex
// engine operate on. A Document stores the source bytes together with a
// per-position style array, a per-line fold level array and a property map,
// satisfying both the styling and the character indexing contracts.
package document

import (
	"sort"

	"github.com/rivo/uniseg"

	"github.com/zjrosen/quill/internal/lexer"
	"github.com/zjrosen/quill/internal/regex"
)

var (
	_ lexer.Styler           = (*Document)(nil)
	_ regex.CharacterIndexer = (*Document)(nil)
)

// Document is a line-indexed text buffer. It is not safe for concurrent use;
// the host borrows it exclusively for the duration of each pass.
type Document struct {
	path       string
	text       []byte
	styles     []byte
	levels     []int
	props      map[string]int
	lineStarts []int
	words      *CharClass
	revision   int64
	colourPos  int
}

// New returns an empty document with the default word-character table.
func New() *Document {
	d := &Document{
		props: map[string]int{},
		words: NewCharClass(""),
	}
	d.SetText(nil)
	return d
}

// NewFromString returns a document holding the given text.
func NewFromString(text string) *Document {
	d := New()
	d.SetText([]byte(text))
	return d
}

// SetText replaces the buffer contents, resetting styles and fold levels and
// bumping the revision.
func (d *Document) SetText(text []byte) {
	d.text = append(d.text[:0], text...)
	d.styles = make([]byte, len(d.text))
	d.lineStarts = d.lineStarts[:0]
	d.lineStarts = append(d.lineStarts, 0)
	for i := 0; i < len(d.text); i++ {
		if d.text[i] == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
	d.levels = make([]int, len(d.lineStarts)+1)
	for i := range d.levels {
		d.levels[i] = lexer.FoldLevelBase
	}
	d.revision++
}

// SetWordChars replaces the word-character table, adding extra to the
// default letters, digits and underscore.
func (d *Document) SetWordChars(extra string) { d.words = NewCharClass(extra) }

// IsWordChar reports whether b belongs to the document's word class.
func (d *Document) IsWordChar(b byte) bool { return d.words.IsWord(b) }

// Path returns the file path this document was loaded from, if any.
func (d *Document) Path() string { return d.path }

// SetPath records the originating file path.
func (d *Document) SetPath(path string) { d.path = path }

// Revision returns a counter bumped on every SetText.
func (d *Document) Revision() int64 { return d.revision }

// Text returns the raw buffer bytes.
func (d *Document) Text() []byte { return d.text }

// Lines returns the number of lines, counting a final line with no
// terminator.
func (d *Document) Lines() int { return len(d.lineStarts) }

// LineText returns one line without its terminator.
func (d *Document) LineText(line int) string {
	start := d.LineStart(line)
	end := d.LineStart(line + 1)
	for end > start && (d.text[end-1] == '\n' || d.text[end-1] == '\r') {
		end--
	}
	return string(d.text[start:end])
}

// LineWidth returns the display cell width of one line.
func (d *Document) LineWidth(line int) int {
	return uniseg.StringWidth(d.LineText(line))
}

// Match reports whether the literal appears at pos.
func (d *Document) Match(pos int, literal string) bool {
	if pos < 0 || pos+len(literal) > len(d.text) {
		return false
	}
	return string(d.text[pos:pos+len(literal)]) == literal
}

// Styler contract.

func (d *Document) Length() int { return len(d.text) }

func (d *Document) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(d.text) {
		return 0
	}
	return d.text[pos]
}

func (d *Document) StyleAt(pos int) int {
	if pos < 0 || pos >= len(d.styles) {
		return 0
	}
	return int(d.styles[pos])
}

func (d *Document) StartAt(pos int)      { d.colourPos = pos }
func (d *Document) StartSegment(pos int) { d.colourPos = pos }

func (d *Document) ColourTo(pos, style int) {
	for i := d.colourPos; i <= pos && i < len(d.styles); i++ {
		d.styles[i] = byte(style)
	}
	d.colourPos = pos + 1
}

func (d *Document) LineFromPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	return sort.SearchInts(d.lineStarts, pos+1) - 1
}

func (d *Document) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.text)
	}
	return d.lineStarts[line]
}

func (d *Document) LevelAt(line int) int {
	if line < 0 || line >= len(d.levels) {
		return lexer.FoldLevelBase
	}
	return d.levels[line]
}

func (d *Document) SetLevel(line, level int) {
	if line < 0 {
		return
	}
	for len(d.levels) <= line {
		d.levels = append(d.levels, lexer.FoldLevelBase)
	}
	d.levels[line] = level
}

func (d *Document) PropertyInt(name string, defaultValue int) int {
	if v, ok := d.props[name]; ok {
		return v
	}
	return defaultValue
}

// SetProperty stores a named integer option read back through PropertyInt.
func (d *Document) SetProperty(name string, value int) { d.props[name] = value }

// Levels returns the per-line fold level words.
func (d *Document) Levels() []int { return d.levels }

// SetLevels replaces the per-line fold level words, truncating or padding to
// the current line count.
func (d *Document) SetLevels(levels []int) {
	for i := range d.levels {
		if i < len(levels) {
			d.levels[i] = levels[i]
		} else {
			d.levels[i] = lexer.FoldLevelBase
		}
	}
}
