package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInList(t *testing.T) {
	l := New("select from where insert update delete")

	tests := []struct {
		name string
		word string
		want bool
	}{
		{name: "first word", word: "select", want: true},
		{name: "last word", word: "delete", want: true},
		{name: "absent", word: "truncate", want: false},
		{name: "prefix of a word", word: "sel", want: false},
		{name: "word plus suffix", word: "selects", want: false},
		{name: "empty query", word: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.InList(tt.word))
		})
	}
}

func TestInListWildcard(t *testing.T) {
	l := New("commit ^roll")

	assert.True(t, l.InList("commit"))
	assert.True(t, l.InList("rollback"))
	assert.True(t, l.InList("roll"))
	assert.False(t, l.InList("rol"))
}

func TestInListAbbreviated(t *testing.T) {
	l := New("count( substr(ing( trim")

	tests := []struct {
		name string
		word string
		want bool
	}{
		{name: "full word before marker", word: "count", want: true},
		{name: "abbreviation stop", word: "substr", want: true},
		{name: "abbreviation continued", word: "substring", want: true},
		{name: "partial tail", word: "substri", want: true},
		{name: "word without marker", word: "trim", want: true},
		{name: "too short", word: "subst", want: false},
		{name: "overlong", word: "substrings", want: false},
		{name: "absent", word: "upper", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.InListAbbreviated(tt.word, '('))
		})
	}
}

func TestEmptyList(t *testing.T) {
	l := New("")

	assert.Equal(t, 0, l.Len())
	assert.False(t, l.InList("select"))
	assert.False(t, l.InListAbbreviated("select", '('))
}
