package lexer

// maxPropsLine bounds the per-line buffer; longer lines split mid-line and
// the tail is coloured as a fresh line.
const maxPropsLine = 1024

func isAssignChar(c byte) bool { return c == '=' || c == ':' }

// colourisePropsLine styles one buffered line spanning [startLine, endPos].
func colourisePropsLine(line []byte, startLine, endPos int, styler Styler, allowInitialSpaces bool) {
	i := 0
	if allowInitialSpaces {
		for i < len(line) && isSpaceChar(line[i]) {
			i++
		}
	} else if len(line) > 0 && isSpaceChar(line[0]) {
		i = len(line)
	}
	if i >= len(line) {
		styler.ColourTo(endPos, PropsDefault)
		return
	}
	switch line[i] {
	case '#', '!', ';':
		styler.ColourTo(endPos, PropsComment)
	case '[':
		styler.ColourTo(endPos, PropsSection)
	case '@':
		styler.ColourTo(startLine+i, PropsDefVal)
		i++
		if i < len(line) && isAssignChar(line[i]) {
			styler.ColourTo(startLine+i, PropsAssignment)
		}
		styler.ColourTo(endPos, PropsDefault)
	default:
		for i < len(line) && !isAssignChar(line[i]) {
			i++
		}
		if i < len(line) {
			styler.ColourTo(startLine+i-1, PropsKey)
			styler.ColourTo(startLine+i, PropsAssignment)
		}
		styler.ColourTo(endPos, PropsDefault)
	}
}

// ColouriseProps assigns a style to every character in [startPos,
// startPos+length). The format is line oriented, so the pass buffers each
// line and dispatches on its first significant character.
func ColouriseProps(startPos, length, initStyle int, styler Styler) {
	_ = initStyle // line oriented, no state crosses a line boundary
	allowInitialSpaces := styler.PropertyInt(PropPropsInitialSpaces, 1) != 0

	styler.StartAt(startPos)
	styler.StartSegment(startPos)

	var lineBuffer [maxPropsLine]byte
	linePos := 0
	startLine := startPos
	endPos := startPos + length
	for i := startPos; i < endPos; i++ {
		ch := styler.ByteAt(i)
		lineBuffer[linePos] = ch
		linePos++
		atEOL := ch == '\n' || (ch == '\r' && styler.ByteAt(i+1) != '\n')
		if atEOL || linePos >= maxPropsLine-1 {
			colourisePropsLine(lineBuffer[:linePos], startLine, i, styler, allowInitialSpaces)
			linePos = 0
			startLine = i + 1
		}
	}
	if linePos > 0 {
		colourisePropsLine(lineBuffer[:linePos], startLine, endPos-1, styler, allowInitialSpaces)
	}
}

// FoldProps folds a properties file at its section headers. Every section
// line becomes a header at the base level and the lines beneath it sit one
// level deeper.
func FoldProps(startPos, length, initStyle int, styler Styler) {
	if styler.PropertyInt(PropFold, 0) == 0 {
		return
	}
	foldCompact := styler.PropertyInt(PropFoldCompact, 1) != 0

	endPos := startPos + length
	visibleChars := 0
	lineCurrent := styler.LineFromPosition(startPos)
	chNext := styler.ByteAt(startPos)
	styleNext := styler.StyleAt(startPos)
	headerPoint := false

	for i := startPos; i < endPos; i++ {
		ch := chNext
		chNext = styler.ByteAt(i + 1)
		style := styleNext
		styleNext = styler.StyleAt(i + 1)
		atEOL := (ch == '\r' && chNext != '\n') || ch == '\n'

		if style == PropsSection {
			headerPoint = true
		}
		if atEOL {
			lev := FoldLevelBase
			if lineCurrent > 0 {
				levelPrevious := styler.LevelAt(lineCurrent - 1)
				if levelPrevious&FoldLevelHeaderFlag != 0 {
					lev = FoldLevelBase + 1
				} else {
					lev = levelPrevious & FoldLevelNumberMask
				}
			}
			if headerPoint {
				lev = FoldLevelBase
			}
			if visibleChars == 0 && foldCompact {
				lev |= FoldLevelWhiteFlag
			}
			if headerPoint {
				lev |= FoldLevelHeaderFlag
			}
			if lev != styler.LevelAt(lineCurrent) {
				styler.SetLevel(lineCurrent, lev)
			}
			lineCurrent++
			visibleChars = 0
			headerPoint = false
		}
		if !isSpaceChar(ch) {
			visibleChars++
		}
	}

	// The last line has no terminator, so flush its level separately while
	// keeping whatever flags a later pass already set on it.
	lev := FoldLevelBase
	if lineCurrent > 0 {
		levelPrevious := styler.LevelAt(lineCurrent - 1)
		if levelPrevious&FoldLevelHeaderFlag != 0 {
			lev = FoldLevelBase + 1
		} else {
			lev = levelPrevious & FoldLevelNumberMask
		}
	}
	flagsNext := styler.LevelAt(lineCurrent)
	styler.SetLevel(lineCurrent, lev|(flagsNext&^FoldLevelNumberMask))
}
