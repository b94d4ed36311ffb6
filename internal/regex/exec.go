package regex

// Execute runs the loaded program over ci within [lp, endp). It returns 1 on
// a match, with the whole-match bounds in capture 0 and tagged sub-matches in
// captures 1..9, and 0 otherwise. The first opcode picks the scan strategy:
// an anchor matches once at lp, a literal is located with a fast scan before
// the matcher runs, and a bare end-of-line pattern matches empty at endp.
func (e *Engine) Execute(ci CharacterIndexer, lp, endp int) int {
	ep := NotFound
	ap := 0

	e.bol = lp
	e.failure = false

	e.Clear()

	switch e.program[0] {

	case opBol:
		ep = e.pMatch(ci, lp, endp, ap, 1, nil)

	case opEol:
		if e.program[1] != opEnd {
			return 0
		}
		lp = endp
		ep = lp

	case opEnd:
		// Compile failed and the caller did not check.
		return 0

	case opChr:
		c := e.program[1]
		for lp < endp && ci.CharAt(lp) != c {
			lp++
		}
		if lp >= endp {
			return 0
		}
		fallthrough

	default:
		for lp < endp {
			offset := 1
			ep = e.pMatch(ci, lp, endp, ap, 1, &offset)
			if ep != NotFound {
				break
			}
			lp += offset
		}
	}
	if ep == NotFound {
		return 0
	}

	e.bopat[0] = lp
	e.eopat[0] = ep
	return 1
}

// pMatch interprets the program at ap against ci starting at lp. It returns
// the position one past the matched text, or NotFound. When an opcode backed
// by the word oracles fails over a multi-byte character, a movement hint is
// written through offset so the caller can advance by a whole character.
func (e *Engine) pMatch(ci CharacterIndexer, lp, endp, ap, moveDir int, offset *int) int {
	boundaryHint := func(pos int) {
		if offset == nil {
			return
		}
		h := ci.MovePositionOutsideChar(pos, moveDir)
		if h == pos {
			h = ci.NextPosition(pos, moveDir) - pos
		} else {
			h = h - pos
		}
		if h == 0 {
			h = moveDir
		}
		*offset = h
	}

	for {
		op := e.program[ap]
		ap++
		if op == opEnd {
			return lp
		}
		switch op {

		case opChr:
			if ci.CharAt(lp) != e.program[ap] {
				return NotFound
			}
			lp++
			ap++

		case opAny:
			if lp >= endp {
				return NotFound
			}
			lp++

		case opCcl:
			if lp >= endp {
				return NotFound
			}
			if !isInSet(e.program[ap:ap+bitBlk], ci.CharAt(lp)) {
				return NotFound
			}
			lp++
			ap += bitBlk

		case opBol:
			if lp != e.bol {
				return NotFound
			}

		case opEol:
			if lp < endp {
				return NotFound
			}

		case opBot:
			lp = ci.MovePositionOutsideChar(lp, -1)
			e.bopat[e.program[ap]] = lp
			ap++

		case opEot:
			lp = ci.MovePositionOutsideChar(lp, 1)
			e.eopat[e.program[ap]] = lp
			ap++

		case opBow:
			if (lp != e.bol && e.isWordChar(ci.CharAt(lp-1))) || !e.isWordChar(ci.CharAt(lp)) {
				return NotFound
			}

		case opEow:
			if lp == e.bol || !e.isWordChar(ci.CharAt(lp-1)) || e.isWordChar(ci.CharAt(lp)) {
				return NotFound
			}

		case opWordStart:
			if !ci.IsWordStartAt(lp) {
				boundaryHint(lp)
				return NotFound
			}

		case opWordEnd:
			if lp == e.bol || !ci.IsWordEndAt(lp) {
				boundaryHint(lp)
				return NotFound
			}

		case opToWordEnd, opToWordEndOpt:
			end := ci.ExtendWordSelect(lp, moveDir)
			if (end == lp && op != opToWordEndOpt) || !ci.IsWordEndAt(end) {
				if offset != nil {
					h := end - lp
					if end == lp {
						h = ci.NextPosition(lp, moveDir) - lp
					}
					if h == 0 {
						h = moveDir
					}
					*offset = h
				}
				return NotFound
			}
			lp = end

		case opRef:
			n := e.program[ap]
			ap++
			bp := e.bopat[n]
			ep := e.eopat[n]
			for bp < ep {
				if ci.CharAt(bp) != ci.CharAt(lp) {
					return NotFound
				}
				bp++
				lp++
			}

		case opClo, opLClo, opClq:
			are := lp // restart floor for the backtrack loop
			var skip int
			switch e.program[ap] {

			case opAny:
				if op == opClo || op == opLClo {
					lp = endp
				} else if lp < endp {
					lp++
				}
				skip = anySkip

			case opChr:
				c := e.program[ap+1]
				if op == opClo || op == opLClo {
					for lp < endp && ci.CharAt(lp) == c {
						lp++
					}
				} else if lp < endp && ci.CharAt(lp) == c {
					lp++
				}
				skip = chrSkip

			case opCcl:
				set := e.program[ap+1 : ap+1+bitBlk]
				if op == opClo || op == opLClo {
					for lp < endp && isInSet(set, ci.CharAt(lp)) {
						lp++
					}
				} else if lp < endp && isInSet(set, ci.CharAt(lp)) {
					lp++
				}
				skip = cclSkip

			default:
				e.failure = true
				return NotFound
			}
			ap += skip

			llp := lp
			ep := NotFound
			for llp >= are {
				qoff := -1
				q := e.pMatch(ci, llp, endp, ap, -1, &qoff)
				if q != NotFound {
					ep = q
					lp = llp
					if op != opLClo {
						return ep
					}
				}
				if e.program[ap] == opEnd {
					return ep
				}
				llp += qoff
			}
			// Close the enclosing tag at the winning position.
			if e.program[ap] == opEot {
				e.pMatch(ci, lp, endp, ap, 1, nil)
			}
			return ep

		default:
			return NotFound
		}
	}
}
