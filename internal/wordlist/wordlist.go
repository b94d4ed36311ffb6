// Package wordlist holds sorted keyword sets used to resolve identifiers
// during styling passes.
package wordlist

import (
	"sort"
	"strings"
)

// List is a sorted keyword set with a first-byte index so lookups only scan
// the words sharing the query's first character. Words beginning with '^'
// match any query they are a prefix of.
type List struct {
	words  []string
	starts [256]int
}

// New builds a list from a whitespace-separated definition string.
func New(definition string) *List {
	l := &List{words: strings.Fields(definition)}
	sort.Strings(l.words)
	for i := range l.starts {
		l.starts[i] = -1
	}
	for i := len(l.words) - 1; i >= 0; i-- {
		l.starts[l.words[i][0]] = i
	}
	return l
}

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// InList reports whether s appears in the list, either exactly or via a
// '^'-prefixed wildcard word.
func (l *List) InList(s string) bool {
	if len(l.words) == 0 || s == "" {
		return false
	}
	first := s[0]
	for j := l.starts[first]; j >= 0 && j < len(l.words) && l.words[j][0] == first; j++ {
		if l.words[j] == s {
			return true
		}
	}
	for j := l.starts['^']; j >= 0 && j < len(l.words) && l.words[j][0] == '^'; j++ {
		if strings.HasPrefix(s, l.words[j][1:]) {
			return true
		}
	}
	return false
}

// InListAbbreviated reports whether s appears in the list where the marker
// character divides a word into a mandatory prefix and an optional tail, as
// in "print(ln)" style abbreviations.
func (l *List) InListAbbreviated(s string, marker byte) bool {
	if len(l.words) == 0 || s == "" {
		return false
	}
	first := s[0]
	for j := l.starts[first]; j >= 0 && j < len(l.words) && l.words[j][0] == first; j++ {
		if matchAbbreviated(l.words[j], s, marker) {
			return true
		}
	}
	return false
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func matchAbbreviated(word, s string, marker byte) bool {
	isSubword := false
	start := 1
	if byteAt(word, start) == marker {
		isSubword = true
		start++
	}
	if byteAt(s, 1) != byteAt(word, start) {
		return false
	}
	a, b := start, 1
	for byteAt(word, a) != 0 && byteAt(word, a) == byteAt(s, b) {
		a++
		if byteAt(word, a) == marker {
			isSubword = true
			a++
		}
		b++
	}
	if isSubword && byteAt(s, b) == 0 {
		return true
	}
	return byteAt(word, a) == 0 && byteAt(s, b) == 0
}
