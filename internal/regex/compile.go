package regex

import "errors"

// Compile errors. The message text is the short reason surfaced to the host
// search dialog, so it stays terse.
var (
	ErrNoPrevious      = errors.New("No previous regular expression")
	ErrPatternTooLong  = errors.New("Pattern too long")
	ErrMissingBracket  = errors.New("Missing ]")
	ErrEmptyClosure    = errors.New("Empty closure")
	ErrIllegalClosure  = errors.New("Illegal closure")
	ErrCyclicalRef     = errors.New("Cyclical reference")
	ErrUndeterminedRef = errors.New("Undetermined reference")

	errNullWordBounds = errors.New("Null pattern inside \\<\\>")
	errNullWordStart  = errors.New("Null pattern inside \\h\\H")

	errTooManyGroups      = errors.New("Too many \\(\\) pairs")
	errTooManyGroupsPosix = errors.New("Too many () pairs")
	errNullGroup          = errors.New("Null pattern inside \\(\\)")
	errNullGroupPosix     = errors.New("Null pattern inside ()")
	errUnmatchedClose     = errors.New("Unmatched \\)")
	errUnmatchedClosePosix = errors.New("Unmatched )")
	errUnmatchedOpen      = errors.New("Unmatched \\(")
	errUnmatchedOpenPosix = errors.New("Unmatched (")
)

// at reads pattern like a NUL-terminated string: positions at or past the end
// read as 0.
func at(pattern string, i int) byte {
	if i < 0 || i >= len(pattern) {
		return 0
	}
	return pattern[i]
}

func escapeValue(c byte) byte {
	switch c {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case 'e':
		return 0x1B
	}
	return 0
}

func hexDigit(c byte) int {
	d := int(c) - '0'
	if d >= 0 && d < 10 {
		return d
	}
	d = int(c|0x20) - 'a'
	if d >= 0 && d < 6 {
		return d + 10
	}
	return -1
}

func (e *Engine) chSet(c byte) {
	e.bittab[c>>3] |= 1 << (c & bitInd)
}

func (e *Engine) chSetWithCase(c byte, caseSensitive bool) {
	e.chSet(c)
	if !caseSensitive {
		if c >= 'a' && c <= 'z' {
			e.chSet(c - 'a' + 'A')
		} else if c >= 'A' && c <= 'Z' {
			e.chSet(c - 'A' + 'a')
		}
	}
}

// flushSet appends the accumulated character set to the program, xor-ing each
// block with mask, and leaves bittab zeroed for the next set.
func (e *Engine) flushSet(mp int, mask byte) int {
	for n := 0; n < bitBlk; n++ {
		e.program[mp] = mask ^ e.bittab[n]
		e.bittab[n] = 0
		mp++
	}
	return mp
}

// backslashExpression resolves the expression following a backslash when it is
// not a tag, back-reference or word-boundary construct. i indexes the char
// after the backslash. It returns the resolved literal byte, or -1 when the
// expression is a character class, in which case bittab has been populated.
// incr is the number of extra pattern chars consumed.
func (e *Engine) backslashExpression(pattern string, i int) (c int, incr int) {
	bsc := at(pattern, i)
	if bsc == 0 {
		// Backslash at end of pattern, take it literally.
		return '\\', 0
	}
	switch bsc {
	case 'a', 'b', 'n', 'f', 'r', 't', 'v', 'e':
		return int(escapeValue(bsc)), 0
	case 'x':
		h1 := hexDigit(at(pattern, i+1))
		h2 := hexDigit(at(pattern, i+2))
		if h1 >= 0 && h2 >= 0 {
			return h1<<4 | h2, 2
		}
		// \x without two digits is a plain x.
		return 'x', 0
	case 'd':
		for ch := '0'; ch <= '9'; ch++ {
			e.chSet(byte(ch))
		}
		return -1, 0
	case 'D':
		for ch := 0; ch < maxChr; ch++ {
			if ch < '0' || ch > '9' {
				e.chSet(byte(ch))
			}
		}
		return -1, 0
	case 's':
		for _, ch := range []byte{' ', '\t', '\n', '\r', '\f', '\v'} {
			e.chSet(ch)
		}
		return -1, 0
	case 'S':
		for ch := 0; ch < maxChr; ch++ {
			if ch != ' ' && !(ch >= 0x09 && ch <= 0x0D) {
				e.chSet(byte(ch))
			}
		}
		return -1, 0
	case 'w':
		for ch := 0; ch < maxChr; ch++ {
			if e.isWordChar(byte(ch)) {
				e.chSet(byte(ch))
			}
		}
		return -1, 0
	case 'W':
		for ch := 0; ch < maxChr; ch++ {
			if !e.isWordChar(byte(ch)) {
				e.chSet(byte(ch))
			}
		}
		return -1, 0
	}
	return int(bsc), 0
}

func (e *Engine) doCompile(pattern string, caseSensitive, posix bool) error {
	// One failed compile invalidates the loaded program.
	fail := func(err error) error {
		e.program[0] = opEnd
		return err
	}

	if pattern == "" {
		if e.ok {
			return nil
		}
		return fail(ErrNoPrevious)
	}
	e.ok = false

	mp := 0 // program write index
	sp := 0 // start of the previously emitted instruction
	mpMax := MaxProgram - bitBlk - 10

	tagi := 0 // tag stack index
	tagc := 1 // next tag number

	for i := 0; i < len(pattern); i++ {
		if mp > mpMax {
			return fail(ErrPatternTooLong)
		}
		lp := mp // start of the instruction emitted this iteration
		ch := pattern[i]
		switch ch {

		case '.':
			e.program[mp] = opAny
			mp++

		case '^':
			if i == 0 {
				e.program[mp] = opBol
				mp++
			} else {
				e.program[mp] = opChr
				e.program[mp+1] = ch
				mp += 2
			}

		case '$':
			if at(pattern, i+1) == 0 {
				e.program[mp] = opEol
				mp++
			} else {
				e.program[mp] = opChr
				e.program[mp+1] = ch
				mp += 2
			}

		case '[':
			e.program[mp] = opCcl
			mp++
			prevChar := 0
			var mask byte

			i++
			if at(pattern, i) == '^' {
				mask = 0xFF
				i++
			}
			if at(pattern, i) == '-' {
				prevChar = '-'
				e.chSet('-')
				i++
			}
			if at(pattern, i) == ']' {
				prevChar = ']'
				e.chSet(']')
				i++
			}
			for at(pattern, i) != 0 && at(pattern, i) != ']' {
				if at(pattern, i) == '-' {
					switch {
					case prevChar < 0:
						// Previous entry was a class like \d, dash is literal.
						prevChar = '-'
						e.chSet('-')
					case at(pattern, i+1) != 0:
						if at(pattern, i+1) != ']' {
							c1 := prevChar + 1
							i++
							c2 := int(at(pattern, i))
							if c2 == '\\' {
								if at(pattern, i+1) == 0 {
									return fail(ErrMissingBracket)
								}
								i++
								var incr int
								c2, incr = e.backslashExpression(pattern, i)
								i += incr
								if c2 >= 0 {
									// Escaped chars stay case sensitive whatever the option.
									e.chSet(byte(c2))
									prevChar = c2
								} else {
									prevChar = -1
								}
							}
							if prevChar < 0 {
								// Char after the dash is a class, dash is literal.
								prevChar = '-'
								e.chSet('-')
							} else {
								for c1 <= c2 {
									e.chSetWithCase(byte(c1), caseSensitive)
									c1++
								}
							}
						} else {
							// Dash just before the ], literal.
							prevChar = '-'
							e.chSet('-')
						}
					default:
						return fail(ErrMissingBracket)
					}
				} else if at(pattern, i) == '\\' && at(pattern, i+1) != 0 {
					i++
					c, incr := e.backslashExpression(pattern, i)
					i += incr
					if c >= 0 {
						e.chSet(byte(c))
						prevChar = c
					} else {
						prevChar = -1
					}
				} else {
					prevChar = int(at(pattern, i))
					e.chSetWithCase(at(pattern, i), caseSensitive)
				}
				i++
			}
			if at(pattern, i) == 0 {
				return fail(ErrMissingBracket)
			}
			mp = e.flushSet(mp, mask)

		case '*', '+', '?':
			if i == 0 {
				return fail(ErrEmptyClosure)
			}
			lp = sp // the atom the closure applies to
			if e.program[lp] == opClo || e.program[lp] == opLClo {
				// Doubling a closure is idempotent.
				break
			}
			switch e.program[lp] {
			case opBol, opBot, opEot, opBow, opEow, opRef:
				return fail(ErrIllegalClosure)
			}

			if ch == '?' && e.program[lp] == opToWordEnd {
				e.program[lp] = opToWordEndOpt
				break
			}

			if ch == '+' {
				end := mp
				for j := lp; j < end; j++ {
					e.program[mp] = e.program[j]
					mp++
				}
				lp = end
			}
			e.program[mp] = opEnd
			e.program[mp+1] = opEnd
			mp += 2
			newSp := mp
			for j := mp - 1; j > lp; j-- {
				e.program[j] = e.program[j-1]
			}
			switch {
			case ch == '?':
				e.program[lp] = opClq
			case at(pattern, i+1) == '?':
				e.program[lp] = opLClo
			default:
				e.program[lp] = opClo
			}
			mp = newSp

		case '\\':
			i++
			switch at(pattern, i) {
			case '<':
				e.program[mp] = opBow
				mp++
			case '>':
				if e.program[sp] == opBow {
					return fail(errNullWordBounds)
				}
				e.program[mp] = opEow
				mp++
			case 'h':
				e.program[mp] = opWordStart
				mp++
			case 'H':
				if e.program[sp] == opWordStart {
					return fail(errNullWordStart)
				}
				e.program[mp] = opWordEnd
				mp++
			case 'i':
				e.program[mp] = opToWordEnd
				mp++
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				n := int(at(pattern, i) - '0')
				if tagi > 0 && e.tagstk[tagi] == n {
					return fail(ErrCyclicalRef)
				}
				if tagc <= n {
					return fail(ErrUndeterminedRef)
				}
				e.program[mp] = opRef
				e.program[mp+1] = byte(n)
				mp += 2
			default:
				switch {
				case !posix && at(pattern, i) == '(':
					if tagc >= MaxTag {
						return fail(errTooManyGroups)
					}
					tagi++
					e.tagstk[tagi] = tagc
					e.program[mp] = opBot
					e.program[mp+1] = byte(tagc)
					mp += 2
					tagc++
				case !posix && at(pattern, i) == ')':
					if e.program[sp] == opBot {
						return fail(errNullGroup)
					}
					if tagi <= 0 {
						return fail(errUnmatchedClose)
					}
					e.program[mp] = opEot
					e.program[mp+1] = byte(e.tagstk[tagi])
					mp += 2
					tagi--
				default:
					c, incr := e.backslashExpression(pattern, i)
					i += incr
					if c >= 0 {
						e.program[mp] = opChr
						e.program[mp+1] = byte(c)
						mp += 2
					} else {
						e.program[mp] = opCcl
						mp++
						mp = e.flushSet(mp, 0)
					}
				}
			}

		default:
			switch {
			case posix && ch == '(':
				if tagc >= MaxTag {
					return fail(errTooManyGroupsPosix)
				}
				tagi++
				e.tagstk[tagi] = tagc
				e.program[mp] = opBot
				e.program[mp+1] = byte(tagc)
				mp += 2
				tagc++
			case posix && ch == ')':
				if e.program[sp] == opBot {
					return fail(errNullGroupPosix)
				}
				if tagi <= 0 {
					return fail(errUnmatchedClosePosix)
				}
				e.program[mp] = opEot
				e.program[mp+1] = byte(e.tagstk[tagi])
				mp += 2
				tagi--
			default:
				c := ch
				if c == 0 {
					c = '\\'
				}
				if caseSensitive || !e.isWordChar(c) {
					e.program[mp] = opChr
					e.program[mp+1] = c
					mp += 2
				} else {
					// Case folding a word char needs both mirrors, so it
					// compiles to a two-bit set instead of a literal.
					e.program[mp] = opCcl
					mp++
					e.chSetWithCase(c, false)
					mp = e.flushSet(mp, 0)
				}
			}
		}
		sp = lp
	}
	if tagi > 0 {
		if posix {
			return fail(errUnmatchedOpenPosix)
		}
		return fail(errUnmatchedOpen)
	}
	e.program[mp] = opEnd
	e.ok = true
	return nil
}
