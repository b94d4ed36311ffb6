package regex

// Flags adjust pattern syntax at compile time.
type Flags int

const (
	// FlagPosix selects ( ) instead of \( \) as grouping metacharacters.
	FlagPosix Flags = 1 << iota
)

// Engine compiles patterns and executes them over a CharacterIndexer.
// An instance is owned by a single caller; it is not safe for concurrent use.
type Engine struct {
	program [MaxProgram]byte
	bittab  [bitBlk]byte
	tagstk  [MaxTag]int

	isWordChar func(byte) bool

	ok      bool // a valid program is loaded
	failure bool
	bol     int

	bopat [MaxTag]int
	eopat [MaxTag]int
	pat   [MaxTag]string

	cachedPattern string
	cachedCase    bool
	cachedFlags   Flags
	haveCache     bool
}

// New returns an engine using isWordChar to classify word characters for the
// word-boundary opcodes. A nil classifier selects the default class of
// alphanumerics plus underscore.
func New(isWordChar func(byte) bool) *Engine {
	if isWordChar == nil {
		isWordChar = defaultWordChar
	}
	e := &Engine{isWordChar: isWordChar}
	e.Clear()
	return e
}

func defaultWordChar(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// Compile translates pattern into the internal program. A successful compile
// is cached: recompiling the identical pattern with identical options is a
// no-op, as is compiling an empty pattern while a program is loaded.
func (e *Engine) Compile(pattern string, caseSensitive bool, flags Flags) error {
	if e.ok && (pattern == "" ||
		(e.haveCache && pattern == e.cachedPattern && caseSensitive == e.cachedCase && flags == e.cachedFlags)) {
		return nil
	}
	err := e.doCompile(pattern, caseSensitive, flags&FlagPosix != 0)
	if err == nil {
		e.cachedPattern = pattern
		e.cachedCase = caseSensitive
		e.cachedFlags = flags
		e.haveCache = true
	}
	return err
}

// ClearCache drops the loaded program and the compile fingerprint so the next
// Compile call always recompiles.
func (e *Engine) ClearCache() {
	e.ok = false
	e.program[0] = opEnd
	e.haveCache = false
	e.cachedPattern = ""
	e.cachedFlags = 0
	e.cachedCase = false
}

// Clear resets all capture bounds and captured text.
func (e *Engine) Clear() {
	for i := 0; i < MaxTag; i++ {
		e.pat[i] = ""
		e.bopat[i] = NotFound
		e.eopat[i] = NotFound
	}
}

// Failed reports whether the last Execute hit a structurally invalid program.
func (e *Engine) Failed() bool { return e.failure }

// MatchStart returns the start position of capture n, or NotFound.
// Capture 0 is the whole match.
func (e *Engine) MatchStart(n int) int { return e.bopat[n] }

// MatchEnd returns the end position of capture n, or NotFound.
func (e *Engine) MatchEnd(n int) int { return e.eopat[n] }

// Match returns the text grabbed for capture n by GrabMatches.
func (e *Engine) Match(n int) string { return e.pat[n] }

// GrabMatches copies the text of every populated capture range out of ci.
// Call it after a successful Execute, before the underlying text changes.
func (e *Engine) GrabMatches(ci CharacterIndexer) {
	for i := 0; i < MaxTag; i++ {
		if e.bopat[i] != NotFound && e.eopat[i] != NotFound {
			buf := make([]byte, e.eopat[i]-e.bopat[i])
			for j := range buf {
				buf[j] = ci.CharAt(e.bopat[i] + j)
			}
			e.pat[i] = string(buf)
		}
	}
}
