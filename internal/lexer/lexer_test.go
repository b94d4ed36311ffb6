package lexer_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/quill/internal/lexer"
	"github.com/zjrosen/quill/internal/wordlist"
)

// testStyler is an in-memory Styler backed by a string.
type testStyler struct {
	text       string
	styles     []int
	levels     map[int]int
	props      map[string]int
	lineStarts []int
	colourPos  int
}

func newTestStyler(text string, props map[string]int) *testStyler {
	s := &testStyler{
		text:       text,
		styles:     make([]int, len(text)),
		levels:     map[int]int{},
		props:      props,
		lineStarts: []int{0},
	}
	if s.props == nil {
		s.props = map[string]int{}
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *testStyler) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(s.text) {
		return 0
	}
	return s.text[pos]
}

func (s *testStyler) StyleAt(pos int) int {
	if pos < 0 || pos >= len(s.styles) {
		return 0
	}
	return s.styles[pos]
}

func (s *testStyler) Length() int        { return len(s.text) }
func (s *testStyler) StartAt(pos int)    {}
func (s *testStyler) StartSegment(p int) { s.colourPos = p }

func (s *testStyler) ColourTo(pos, style int) {
	for i := s.colourPos; i <= pos && i < len(s.styles); i++ {
		s.styles[i] = style
	}
	s.colourPos = pos + 1
}

func (s *testStyler) LineFromPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	n := sort.SearchInts(s.lineStarts, pos+1)
	return n - 1
}

func (s *testStyler) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(s.lineStarts) {
		return len(s.text)
	}
	return s.lineStarts[line]
}

func (s *testStyler) LevelAt(line int) int     { return s.levels[line] }
func (s *testStyler) SetLevel(line, level int) { s.levels[line] = level }
func (s *testStyler) PropertyInt(name string, def int) int {
	if v, ok := s.props[name]; ok {
		return v
	}
	return def
}

var sqlKeywords = wordlist.New("begin case declare else elsif end exception exit for from " +
	"function if into loop matched merge not null on package procedure repeat select start " +
	"then update using when where while")

var sqlKeywords2 = wordlist.New("int varchar")

var sqlFunctions = wordlist.New("count( substr(ing(")

func colourise(st *testStyler) {
	lexer.ColouriseSQL(0, len(st.text), lexer.StyleDefault, sqlKeywords, sqlKeywords2, sqlFunctions, st)
}

func assertStyleRange(t *testing.T, st *testStyler, from, to, style int) {
	t.Helper()
	for i := from; i <= to; i++ {
		assert.Equalf(t, style, st.styles[i], "style at %d (%q)", i, string(st.text[i]))
	}
}

func TestColouriseSQLTokens(t *testing.T) {
	text := "SELECT 0x1F, 'it''s', \"a\"\"b\", `ident`, 3.14e+2 FROM t;"
	st := newTestStyler(text, nil)

	colourise(st)

	assertStyleRange(t, st, 0, 5, lexer.StyleWord)        // SELECT
	assertStyleRange(t, st, 7, 10, lexer.StyleHex)        // 0x1F
	assert.Equal(t, lexer.StyleOperator, st.styles[11])   // ,
	assertStyleRange(t, st, 13, 19, lexer.StyleCharacter) // 'it''s'
	assertStyleRange(t, st, 22, 27, lexer.StyleString)    // "a""b"
	assertStyleRange(t, st, 30, 36, lexer.StyleQuotedIdentifier)
	assertStyleRange(t, st, 39, 45, lexer.StyleNumber)    // 3.14e+2
	assertStyleRange(t, st, 47, 50, lexer.StyleWord)      // FROM
	assert.Equal(t, lexer.StyleIdentifier, st.styles[52]) // t
	assert.Equal(t, lexer.StyleOperator, st.styles[53])   // ;
}

func TestColouriseSQLCommentsAndVariables(t *testing.T) {
	text := "/* c */ -- line\n# doc\n@var b'01' x'FF'"
	st := newTestStyler(text, nil)

	colourise(st)

	assertStyleRange(t, st, 0, 6, lexer.StyleComment)
	assertStyleRange(t, st, 8, 14, lexer.StyleCommentLine)
	assertStyleRange(t, st, 16, 20, lexer.StyleCommentLineDoc)
	assertStyleRange(t, st, 22, 25, lexer.StyleVariable)
	assertStyleRange(t, st, 27, 31, lexer.StyleBit2)
	assertStyleRange(t, st, 33, 37, lexer.StyleHex2)
}

func TestColouriseSQLUserFunction(t *testing.T) {
	text := "substring(x)"
	st := newTestStyler(text, nil)

	colourise(st)

	assertStyleRange(t, st, 0, 8, lexer.StyleUser1)
	assert.Equal(t, lexer.StyleOperator, st.styles[9])
}

func TestColouriseSQLOptions(t *testing.T) {
	t.Run("numbersign comment disabled", func(t *testing.T) {
		st := newTestStyler("# not a comment", map[string]int{lexer.PropSQLNumbersignComment: 0})
		colourise(st)
		assert.Equal(t, lexer.StyleDefault, st.styles[0])
	})
	t.Run("backticks disabled", func(t *testing.T) {
		st := newTestStyler("`x`", map[string]int{lexer.PropSQLBackticksIdentifier: 0})
		colourise(st)
		assert.NotEqual(t, lexer.StyleQuotedIdentifier, st.styles[0])
	})
	t.Run("dotted word", func(t *testing.T) {
		st := newTestStyler("schema.table ", map[string]int{lexer.PropSQLAllowDottedWord: 1})
		colourise(st)
		assertStyleRange(t, st, 0, 11, lexer.StyleIdentifier)
	})
	t.Run("backslash escape in character", func(t *testing.T) {
		st := newTestStyler(`'a\'b' x`, nil)
		colourise(st)
		assertStyleRange(t, st, 0, 5, lexer.StyleCharacter)
		assert.Equal(t, lexer.StyleIdentifier, st.styles[7])
	})
}

func TestColouriseSQLTrailingIdentifier(t *testing.T) {
	st := newTestStyler("select", nil)

	colourise(st)

	assertStyleRange(t, st, 0, 5, lexer.StyleWord)
}

func TestColouriseSQLRestartable(t *testing.T) {
	// "iffy" opens with the keyword "if", so a split inside it must leave
	// resolution to the resuming pass instead of closing the prefix early.
	text := "SELECT iffy, 'lit' FROM t; -- done\nUPDATE t;"
	full := newTestStyler(text, nil)
	colourise(full)

	// Restart at default-styled boundaries and inside plain identifiers.
	// A restart cannot see the leading half of a keyword, so split points
	// inside keyword-styled text resume at the next boundary instead.
	for p := 1; p < len(text); p++ {
		prev := full.styles[p-1]
		if prev != lexer.StyleDefault && prev != lexer.StyleIdentifier {
			continue
		}
		split := newTestStyler(text, nil)
		lexer.ColouriseSQL(0, p, lexer.StyleDefault, sqlKeywords, sqlKeywords2, sqlFunctions, split)
		lexer.ColouriseSQL(p, len(text)-p, split.StyleAt(p-1), sqlKeywords, sqlKeywords2, sqlFunctions, split)
		require.Equalf(t, full.styles, split.styles, "split at %d", p)
	}
}

func TestColouriseSQLIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom([]rune("abc19.'\"`-*/#@ ;\n")), 0, 80, -1).Draw(t, "text")
		first := newTestStyler(text, nil)
		colourise(first)
		second := newTestStyler(text, nil)
		colourise(second)
		if len(text) > 0 {
			require.Equal(t, first.styles, second.styles)
		}
	})
}

func foldProps(extra map[string]int) map[string]int {
	props := map[string]int{lexer.PropFold: 1}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func foldSQL(st *testStyler) *lexer.SQLFolder {
	colourise(st)
	f := lexer.NewSQLFolder()
	f.Fold(0, len(st.text), lexer.StyleDefault, st)
	return f
}

func level(st *testStyler, line int) int { return st.levels[line] & lexer.FoldLevelNumberMask }
func nextLevel(st *testStyler, line int) int {
	return (st.levels[line] >> 16) & lexer.FoldLevelNumberMask
}
func isHeader(st *testStyler, line int) bool {
	return st.levels[line]&lexer.FoldLevelHeaderFlag != 0
}

func TestFoldSQLBeginEnd(t *testing.T) {
	text := "BEGIN\nNULL;\nEND;\n"
	st := newTestStyler(text, foldProps(nil))

	foldSQL(st)

	assert.True(t, isHeader(st, 0))
	assert.Equal(t, lexer.FoldLevelBase, level(st, 0))
	assert.Equal(t, lexer.FoldLevelBase+1, nextLevel(st, 0))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 1))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 2))
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 2))
}

func TestFoldSQLSingleLineIfNoFold(t *testing.T) {
	text := "IF a THEN b; ELSE c; END IF;\n"
	st := newTestStyler(text, foldProps(map[string]int{lexer.PropFoldAtElse: 1}))

	foldSQL(st)

	assert.False(t, isHeader(st, 0))
	assert.Equal(t, lexer.FoldLevelBase, level(st, 0))
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 0))
}

func TestFoldSQLIfThenElse(t *testing.T) {
	text := "IF a THEN\nb;\nELSE\nc;\nEND IF;\n"
	st := newTestStyler(text, foldProps(map[string]int{lexer.PropFoldAtElse: 1}))

	foldSQL(st)

	assert.True(t, isHeader(st, 0))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 1))
	// The ELSE line drops back to the base so it folds as its own header.
	assert.Equal(t, lexer.FoldLevelBase, level(st, 2))
	assert.True(t, isHeader(st, 2))
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 4))
}

func TestFoldSQLExceptionSection(t *testing.T) {
	text := "BEGIN\nEXCEPTION\nWHEN others THEN\nNULL;\nEND;\n"
	st := newTestStyler(text, foldProps(nil))

	f := foldSQL(st)

	assert.True(t, f.LineState(2).IsIntoException())
	assert.True(t, f.LineState(4).IsIntoException())
	assert.False(t, f.LineState(5).IsIntoException())
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 4))
}

func TestFoldSQLMerge(t *testing.T) {
	text := "MERGE INTO t USING s ON (c)\nWHEN MATCHED THEN u\nWHEN NOT MATCHED THEN i;\n"
	st := newTestStyler(text, foldProps(nil))

	f := foldSQL(st)

	assert.True(t, isHeader(st, 0))
	assert.True(t, f.LineState(1).IsIntoMerge())
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 2))
	assert.False(t, f.LineState(3).IsIntoMerge())
}

func TestFoldSQLNestedCase(t *testing.T) {
	text := "CASE x WHEN 1 THEN CASE y WHEN 2 THEN 'a' END END;\n"
	st := newTestStyler(text, foldProps(nil))

	f := foldSQL(st)

	// The whole statement sits on one line, so no fold opens and the level
	// is unchanged across it.
	assert.False(t, isHeader(st, 0))
	assert.Equal(t, lexer.FoldLevelBase, level(st, 0))
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 0))
	assert.Equal(t, 2, f.LineState(1).NestedCases())
}

func TestFoldSQLEndCaseClosesNesting(t *testing.T) {
	text := "CASE x\nWHEN 1 THEN a\nEND CASE;\n"
	st := newTestStyler(text, foldProps(nil))

	f := foldSQL(st)

	assert.True(t, isHeader(st, 0))
	assert.Equal(t, 1, f.LineState(1).NestedCases())
	assert.Equal(t, 1, f.LineState(2).NestedCases())
	assert.Equal(t, 0, f.LineState(3).NestedCases())
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 2))
}

func TestFoldSQLComments(t *testing.T) {
	text := "/* block\ncomment */ SELECT 1;\n-- one\n-- two\nSELECT 2;\n"
	st := newTestStyler(text, foldProps(nil))

	foldSQL(st)

	assert.True(t, isHeader(st, 0))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 1))
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 1))
	assert.True(t, isHeader(st, 2))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 3))
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 3))
}

func TestFoldSQLParens(t *testing.T) {
	text := "f (\na,\nb)\n"
	st := newTestStyler(text, foldProps(nil))

	foldSQL(st)

	assert.True(t, isHeader(st, 0))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 1))
	assert.Equal(t, lexer.FoldLevelBase, nextLevel(st, 2))
}

func TestFoldSQLCompactWhiteFlag(t *testing.T) {
	text := "BEGIN\n\nEND;\n"
	st := newTestStyler(text, foldProps(map[string]int{lexer.PropFoldCompact: 1}))

	foldSQL(st)

	assert.NotZero(t, st.levels[1]&lexer.FoldLevelWhiteFlag)
	assert.Zero(t, st.levels[0]&lexer.FoldLevelWhiteFlag)
}

func TestFoldSQLDisabled(t *testing.T) {
	text := "BEGIN\nEND;\n"
	st := newTestStyler(text, nil)

	foldSQL(st)

	assert.Empty(t, st.levels)
}

func TestFoldSQLNeverBelowBase(t *testing.T) {
	text := "END END END\nBEGIN\n"
	st := newTestStyler(text, foldProps(nil))

	foldSQL(st)

	for line := range st.levels {
		assert.GreaterOrEqual(t, level(st, line), lexer.FoldLevelBase)
	}
}

func TestColouriseProps(t *testing.T) {
	text := "# comment\n[section]\nkey=value\n@=def\n  spaced\n"
	st := newTestStyler(text, nil)

	lexer.ColouriseProps(0, len(text), lexer.PropsDefault, st)

	assertStyleRange(t, st, 0, 8, lexer.PropsComment)
	assertStyleRange(t, st, 10, 18, lexer.PropsSection)
	assertStyleRange(t, st, 20, 22, lexer.PropsKey)
	assert.Equal(t, lexer.PropsAssignment, st.styles[23]) // =
	assertStyleRange(t, st, 24, 28, lexer.PropsDefault)   // value
	assert.Equal(t, lexer.PropsDefVal, st.styles[30])     // @
	assert.Equal(t, lexer.PropsAssignment, st.styles[31]) // =
	assertStyleRange(t, st, 36, 43, lexer.PropsDefault)   // "  spaced"
}

func TestColourisePropsNoInitialSpaces(t *testing.T) {
	text := "  key=value\n"
	st := newTestStyler(text, map[string]int{lexer.PropPropsInitialSpaces: 0})

	lexer.ColouriseProps(0, len(text), lexer.PropsDefault, st)

	assertStyleRange(t, st, 0, len(text)-1, lexer.PropsDefault)
}

func TestFoldProps(t *testing.T) {
	text := "[one]\na=1\nb=2\n[two]\nc=3"
	st := newTestStyler(text, foldProps(nil))

	lexer.ColouriseProps(0, len(text), lexer.PropsDefault, st)
	lexer.FoldProps(0, len(text), lexer.PropsDefault, st)

	assert.True(t, isHeader(st, 0))
	assert.Equal(t, lexer.FoldLevelBase, level(st, 0))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 1))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 2))
	assert.True(t, isHeader(st, 3))
	assert.Equal(t, lexer.FoldLevelBase, level(st, 3))
	assert.Equal(t, lexer.FoldLevelBase+1, level(st, 4))
}
