package lexer

func isStreamCommentStyle(style int) bool {
	return style == StyleComment
}

func isCommentStyle(style int) bool {
	return style == StyleComment || style == StyleCommentLine || style == StyleCommentLineDoc
}

// isCommentLine reports whether the first non-blank character of a line
// carries a line-comment style.
func isCommentLine(line int, styler Styler) bool {
	if line < 0 {
		return false
	}
	pos := styler.LineStart(line)
	end := styler.LineStart(line+1) - 1
	if end >= styler.Length() {
		end = styler.Length() - 1
	}
	for i := pos; i <= end; i++ {
		c := styler.ByteAt(i)
		if c == ' ' || c == '\t' {
			continue
		}
		if c == '\r' || c == '\n' {
			return false
		}
		st := styler.StyleAt(i)
		return st == StyleCommentLine || st == StyleCommentLineDoc
	}
	return false
}

// maxFoldKeywordLen bounds the keyword scan; longer words never fold.
const maxFoldKeywordLen = 9

// SQLFolder assigns fold levels to SQL text, carrying a per-line packed
// statement state so a pass can restart at any line boundary.
type SQLFolder struct {
	states lineStates
}

// NewSQLFolder returns a folder with no recorded line state.
func NewSQLFolder() *SQLFolder {
	return &SQLFolder{}
}

// LineState returns the recorded statement state entering the given line.
func (f *SQLFolder) LineState(line int) LineState {
	return f.states.forLine(line)
}

// Fold computes a fold level word for every line covered by [startPos,
// startPos+length). It reads the styles a previous ColouriseSQL pass wrote,
// so colourise must complete over the range first.
func (f *SQLFolder) Fold(startPos, length, initStyle int, styler Styler) {
	if styler.PropertyInt(PropFold, 0) == 0 {
		return
	}
	foldOnlyBegin := styler.PropertyInt(PropFoldOnlyBegin, 0) != 0
	foldComment := styler.PropertyInt(PropFoldComment, 1) != 0
	foldAtElse := styler.PropertyInt(PropFoldAtElse, 0) != 0
	foldCompact := styler.PropertyInt(PropFoldCompact, 0) != 0

	endPos := startPos + length
	visibleChars := 0
	lineCurrent := styler.LineFromPosition(startPos)
	levelCurrent := FoldLevelBase
	if lineCurrent > 0 {
		levelCurrent = styler.LevelAt(lineCurrent-1) >> 16
	}
	levelNext := levelCurrent

	chNext := styler.ByteAt(startPos)
	style := initStyle
	styleNext := styler.StyleAt(startPos)
	endFound := false
	isUnfoldingIgnored := false
	// Suppresses ELSE/ELSIF folds when the whole statement sits on one line,
	// as in "IF c THEN ... ELSE ... END IF;".
	statementFound := false
	var statesLine LineState
	if foldOnlyBegin {
		statesLine = f.states.forLine(lineCurrent)
	}

	for i := startPos; i < endPos; i++ {
		ch := chNext
		chNext = styler.ByteAt(i + 1)
		stylePrev := style
		style = styleNext
		styleNext = styler.StyleAt(i + 1)
		atEOL := (ch == '\r' && chNext != '\n') || ch == '\n'

		if atEOL || (!isCommentStyle(style) && ch == ';') {
			if endFound {
				// An END right before the terminator also closes any open
				// EXCEPTION section.
				statesLine = statesLine.IntoException(false)
			}
			endFound = false
			isUnfoldingIgnored = false
		}
		if !isCommentStyle(style) && ch == ';' {
			if statesLine.IsIntoMerge() {
				if !statesLine.IsCaseMergeNoWhen() {
					levelNext--
				}
				statesLine = statesLine.IntoMerge(false)
				levelNext--
			}
			if statesLine.IsIntoSelectOrAssign() {
				statesLine = statesLine.IntoSelectOrAssign(false)
			}
		}
		if ch == ':' && chNext == '=' && !isCommentStyle(style) {
			statesLine = statesLine.IntoSelectOrAssign(true)
		}

		if foldComment && isStreamCommentStyle(style) {
			if !isStreamCommentStyle(stylePrev) {
				levelNext++
			} else if !isStreamCommentStyle(styleNext) && !atEOL {
				// Stream comments end mid-line and the next char may be
				// unstyled.
				levelNext--
			}
		}
		if foldComment && atEOL && isCommentLine(lineCurrent, styler) {
			if !isCommentLine(lineCurrent-1, styler) && isCommentLine(lineCurrent+1, styler) {
				levelNext++
			} else if isCommentLine(lineCurrent-1, styler) && !isCommentLine(lineCurrent+1, styler) {
				levelNext--
			}
		}
		if style == StyleOperator {
			switch {
			case ch == '(':
				if levelCurrent > levelNext {
					levelCurrent--
				}
				levelNext++
			case ch == ')':
				levelNext--
			case foldOnlyBegin && ch == ';':
				statesLine = statesLine.IgnoreWhen(false)
			}
		}
		if style == StyleWord && stylePrev != StyleWord {
			var buf [maxFoldKeywordLen + 1]byte
			j := 0
			for ; j < maxFoldKeywordLen+1; j++ {
				c := styler.ByteAt(i + j)
				if !isWordChar(c) {
					break
				}
				buf[j] = toLower(c)
			}
			var s string
			if j < maxFoldKeywordLen+1 {
				s = string(buf[:j])
			}

			switch {
			case !foldOnlyBegin && s == "select":
				statesLine = statesLine.IntoSelectOrAssign(true)
			case s == "if":
				if endFound {
					endFound = false
					if foldOnlyBegin && !isUnfoldingIgnored {
						// That END closed an IF, not a BEGIN, so undo it.
						levelNext++
					}
				} else {
					if !foldOnlyBegin {
						statesLine = statesLine.IntoCondition(true)
					}
					if levelCurrent > levelNext {
						// Keep "END; IF" visible on its own line.
						levelCurrent = levelNext
					}
				}
			case !foldOnlyBegin && s == "then" && statesLine.IsIntoCondition():
				statesLine = statesLine.IntoCondition(false)
				if levelCurrent > levelNext {
					levelCurrent = levelNext
				}
				if !statementFound {
					levelNext++
				}
				statementFound = true
			case s == "loop" || s == "case" || s == "while" || s == "repeat":
				switch {
				case endFound:
					endFound = false
					if foldOnlyBegin && !isUnfoldingIgnored {
						levelNext++
					}
					if !foldOnlyBegin && s == "case" {
						statesLine = statesLine.EndCase()
						if !statesLine.IsCaseMergeNoWhen() {
							levelNext-- // close both "end case" and its when block
						}
					}
				case !foldOnlyBegin:
					if s == "case" {
						statesLine = statesLine.BeginCase()
						statesLine = statesLine.CaseMergeNoWhen(true)
					}
					if levelCurrent > levelNext {
						levelCurrent = levelNext
					}
					if !statementFound {
						levelNext++
					}
					statementFound = true
				case levelCurrent > levelNext:
					// Keep "END; LOOP" visible on its own line.
					levelCurrent = levelNext
				}
			case !foldOnlyBegin && foldAtElse && !statementFound && s == "elsif":
				statesLine = statesLine.IntoCondition(true)
				levelCurrent--
				levelNext--
			case !foldOnlyBegin && foldAtElse && !statementFound && s == "else":
				statementFound = true
				if statesLine.IsIntoCase() && statesLine.IsCaseMergeNoWhen() {
					statesLine = statesLine.CaseMergeNoWhen(false)
					levelNext++
				} else {
					// Same shape as "} ELSE {" folding in C-like text.
					levelCurrent--
				}
			case s == "begin" || s == "start":
				levelNext++
				statesLine = statesLine.IntoDeclare(false)
			case s == "end" || s == "endif":
				endFound = true
				levelNext--
				if statesLine.IsIntoSelectOrAssign() && !statesLine.IsCaseMergeNoWhen() {
					levelNext--
				}
				if levelNext < FoldLevelBase {
					levelNext = FoldLevelBase
					isUnfoldingIgnored = true
				}
			case !foldOnlyBegin && s == "when" &&
				!statesLine.IsIgnoreWhen() &&
				!statesLine.IsIntoException() &&
				(statesLine.IsIntoCase() || statesLine.IsIntoMerge()):
				statesLine = statesLine.IntoCondition(true)
				if !statementFound {
					if !statesLine.IsCaseMergeNoWhen() {
						levelCurrent--
						levelNext--
					}
					statesLine = statesLine.CaseMergeNoWhen(false)
				}
			case !foldOnlyBegin && s == "exit":
				statesLine = statesLine.IgnoreWhen(true)
			case !foldOnlyBegin && !statesLine.IsIntoDeclare() && s == "exception":
				statesLine = statesLine.IntoException(true)
			case !foldOnlyBegin &&
				(s == "declare" || s == "function" || s == "procedure" || s == "package"):
				statesLine = statesLine.IntoDeclare(true)
			case !foldOnlyBegin && s == "merge":
				statesLine = statesLine.IntoMerge(true)
				statesLine = statesLine.CaseMergeNoWhen(true)
				levelNext++
				statementFound = true
			}
		}
		if !isSpaceChar(ch) {
			visibleChars++
		}
		if atEOL || i == endPos-1 {
			lev := levelCurrent | levelNext<<16
			if visibleChars == 0 && foldCompact {
				lev |= FoldLevelWhiteFlag
			}
			if levelCurrent < levelNext {
				lev |= FoldLevelHeaderFlag
			}
			if lev != styler.LevelAt(lineCurrent) {
				styler.SetLevel(lineCurrent, lev)
			}
			lineCurrent++
			levelCurrent = levelNext
			visibleChars = 0
			statementFound = false
			if !foldOnlyBegin {
				f.states.set(lineCurrent, statesLine)
			}
		}
	}
}
