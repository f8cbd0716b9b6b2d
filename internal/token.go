package internal

import (
	"fmt"

	"jslc/internal/tokens"
)

// Token is a classified, positioned piece of source text.
// Tokens are never modified once the lexer emits them.
type Token struct {
	token   tokens.TokenType
	lexeme  string
	literal interface{}
	line    int
}

// NewToken builds a token, mostly useful for consumers constructing trees by hand
func NewToken(token tokens.TokenType, lexeme string, literal interface{}, line int) Token {
	return Token{
		token:   token,
		lexeme:  lexeme,
		literal: literal,
		line:    line,
	}
}

// Type returns the token kind
func (t Token) Type() tokens.TokenType {
	return t.token
}

// Lexeme returns the exact source text of the token
func (t Token) Lexeme() string {
	return t.lexeme
}

// Literal returns float64 for numbers, string for strings and nil otherwise
func (t Token) Literal() interface{} {
	return t.literal
}

// Line returns the 1-based line the token was emitted on
func (t Token) Line() int {
	return t.line
}

func (t Token) String() string {
	if t.literal == nil {
		return fmt.Sprintf("%s %s null", t.token, t.lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.token, t.lexeme, t.literal)
}

type yamlToken struct {
	Type    string      `yaml:"type"`
	Lexeme  string      `yaml:"lexeme"`
	Literal interface{} `yaml:"literal,omitempty"`
	Line    int         `yaml:"line"`
}

// MarshalYAML implements yaml.Marshaler
func (t Token) MarshalYAML() (interface{}, error) {
	return yamlToken{
		Type:    t.token.String(),
		Lexeme:  t.lexeme,
		Literal: t.literal,
		Line:    t.line,
	}, nil
}
