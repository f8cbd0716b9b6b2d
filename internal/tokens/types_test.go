package tokens

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		token TokenType
		want  string
	}{
		{EOF, "EOF"},
		{LEFT_PAREN, "LEFT_PAREN"},
		{SEMICOLON, "SEMICOLON"},
		{BANG_EQUAL, "BANG_EQUAL"},
		{OR, "OR"},
		{NUMBER, "NUMBER"},
		{WHILE, "WHILE"},
		{TokenType(999), "TokenType(999)"},
		{TokenType(-1), "TokenType(-1)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.token.String())
	}
}

func TestEveryTypeHasName(t *testing.T) {
	for tt := EOF; tt <= WHILE; tt++ {
		assert.NotEmpty(t, names[tt], "TokenType %d has no name", int(tt))
	}
}

func TestKeyword(t *testing.T) {
	tt, ok := Keyword("while")
	assert.True(t, ok)
	assert.Equal(t, WHILE, tt)

	tt, ok = Keyword("or")
	assert.True(t, ok)
	assert.Equal(t, OR, tt)

	for _, word := range []string{"While", "eof", "plus", "identifier", "whiles", ""} {
		_, ok := Keyword(word)
		assert.False(t, ok, word)
	}
}

func TestKeywords(t *testing.T) {
	words := Keywords()
	assert.Len(t, words, 16)
	assert.True(t, sort.StringsAreSorted(words))
	for _, word := range words {
		tt, ok := Keyword(word)
		assert.True(t, ok)
		assert.True(t, tt.IsKeyword() || tt == OR, word)
	}
	assert.False(t, IDENTIFIER.IsKeyword())
}
