package lexer

// StyleContext walks a text range character by character while accumulating
// the pending style segment. SetState flushes the segment up to the previous
// character and opens a new one, so every position receives exactly one style.
type StyleContext struct {
	styler Styler

	currentPos int
	endPos     int
	segStart   int

	state       int
	ch          byte
	chPrev      byte
	chNext      byte
	atLineStart bool
}

// NewStyleContext starts a styling pass of length bytes at startPos,
// reopening the state the host observed at the restart point.
func NewStyleContext(startPos, length, initStyle int, styler Styler) *StyleContext {
	styler.StartAt(startPos)
	styler.StartSegment(startPos)
	sc := &StyleContext{
		styler:     styler,
		currentPos: startPos,
		endPos:     startPos + length,
		segStart:   startPos,
		state:      initStyle,
	}
	sc.ch = styler.ByteAt(startPos)
	sc.chNext = styler.ByteAt(startPos + 1)
	prev := byte(0)
	if startPos > 0 {
		prev = styler.ByteAt(startPos - 1)
	}
	sc.atLineStart = startPos == 0 || prev == '\n' || (prev == '\r' && sc.ch != '\n')
	return sc
}

// More reports whether characters remain in the range.
func (sc *StyleContext) More() bool { return sc.currentPos < sc.endPos }

// Forward advances one character. Past the end of the range the context
// reads as blanks so termination rules keyed on non-word characters fire.
func (sc *StyleContext) Forward() {
	if sc.currentPos < sc.endPos {
		sc.chPrev = sc.ch
		sc.currentPos++
		sc.ch = sc.chNext
		sc.chNext = sc.styler.ByteAt(sc.currentPos + 1)
		sc.atLineStart = sc.chPrev == '\n' || (sc.chPrev == '\r' && sc.ch != '\n')
	} else {
		sc.chPrev = ' '
		sc.ch = ' '
		sc.chNext = ' '
		sc.atLineStart = false
	}
}

// SetState closes the pending segment with the current state and opens a new
// segment at the current position in the given state.
func (sc *StyleContext) SetState(state int) {
	if sc.currentPos > sc.segStart {
		sc.styler.ColourTo(sc.currentPos-1, sc.state)
	}
	sc.segStart = sc.currentPos
	sc.state = state
}

// ForwardSetState advances one character and then switches state, so the
// current character is the last one coloured with the old state.
func (sc *StyleContext) ForwardSetState(state int) {
	sc.Forward()
	sc.SetState(state)
}

// ChangeState retroactively alters the style the pending segment will close
// with, without moving the segment boundary.
func (sc *StyleContext) ChangeState(state int) {
	sc.state = state
}

// Match reports whether the current and next characters are a and b.
func (sc *StyleContext) Match(a, b byte) bool {
	return sc.ch == a && sc.chNext == b
}

// CurrentLowered returns the pending segment text lowercased, truncated to
// 127 bytes.
func (sc *StyleContext) CurrentLowered() string {
	n := sc.currentPos - sc.segStart
	if n > 127 {
		n = 127
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = toLower(sc.styler.ByteAt(sc.segStart + i))
	}
	return string(buf)
}

// Complete flushes the final pending segment.
func (sc *StyleContext) Complete() {
	if sc.currentPos > sc.segStart {
		sc.styler.ColourTo(sc.currentPos-1, sc.state)
	}
}
