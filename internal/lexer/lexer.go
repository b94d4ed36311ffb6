// Package lexer provides incremental syntax colouring and structural folding
// for an editor component. Lexing runs as a streaming state machine over a
// host-provided Styler: a colourise pass assigns a style to every character,
// then a fold pass reads those styles and assigns a fold level to every line.
// Both passes are restartable from any position the host hands them.
package lexer

// Styler is the host text accessor lexers colour into. It provides random
// access to the text and per-position styles, stores per-line fold levels,
// and exposes integer properties that tune lexer behavior. ByteAt returns 0
// outside the valid range.
type Styler interface {
	ByteAt(pos int) byte
	StyleAt(pos int) int
	Length() int

	StartAt(pos int)
	StartSegment(pos int)
	ColourTo(pos, style int)

	LineFromPosition(pos int) int
	LineStart(line int) int
	LevelAt(line int) int
	SetLevel(line, level int)

	PropertyInt(name string, def int) int
}

// WordList answers keyword membership tests. Words are matched case folded.
type WordList interface {
	InList(word string) bool
	InListAbbreviated(word string, marker byte) bool
}

// Fold level words store a base-relative nesting level in the low bits with
// orthogonal flag bits above. The level of the following line is carried in
// bits 16..27 so a fold pass can restart from any line.
const (
	FoldLevelBase       = 0x400
	FoldLevelNumberMask = 0x0FFF
	FoldLevelWhiteFlag  = 0x1000
	FoldLevelHeaderFlag = 0x2000
)

func isSpaceChar(c byte) bool {
	return c == ' ' || (c >= 0x09 && c <= 0x0D)
}

func isDigitChar(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigitChar(c byte) bool {
	return isDigitChar(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlphaNumeric(c byte) bool {
	return isDigitChar(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWordChar matches the loose word class used when scanning existing text:
// alphanumerics, underscore and dot.
func isWordChar(c byte) bool {
	return isAlphaNumeric(c) || c == '.' || c == '_'
}

func isWordStart(c byte) bool {
	return isAlphaNumeric(c) || c == '_'
}

func isOperatorChar(c byte) bool {
	if isAlphaNumeric(c) {
		return false
	}
	switch c {
	case '%', '^', '&', '*', '(', ')', '-', '+',
		'=', '|', '{', '}', '[', ']', ':', ';',
		'<', '>', ',', '/', '?', '!', '.', '~':
		return true
	}
	return false
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// nextNonBlank returns the first character at or after pos that is not a
// space or tab, or 0 when the text runs out first.
func nextNonBlank(styler Styler, pos int) byte {
	for pos < styler.Length() {
		c := styler.ByteAt(pos)
		if c != ' ' && c != '\t' {
			return c
		}
		pos++
	}
	return 0
}
