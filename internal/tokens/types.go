package tokens

import (
	"sort"
	"strconv"
)

// TokenType Holds a token
type TokenType int

const (
	EOF TokenType = iota

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, *, /
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	STAR
	SLASH

	// One or two character tokens.
	// !, !=, =, ==, <, <=, >, >=, ||
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	OR

	// Literals.
	// *variable*, string, number
	IDENTIFIER
	STRING
	NUMBER

	// Keywords.
	// and, class, else, false, for, fun, if, nil,
	// print, return, super, this, true, var, while
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

var names = [...]string{
	EOF:           "EOF",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	DOT:           "DOT",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	STAR:          "STAR",
	SLASH:         "SLASH",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	OR:            "OR",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FOR:           "FOR",
	FUN:           "FUN",
	IF:            "IF",
	NIL:           "NIL",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// IsKeyword reports whether t is one of the reserved words
func (t TokenType) IsKeyword() bool {
	return t >= AND && t <= WHILE
}

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Keyword looks up a reserved word by exact match
func Keyword(text string) (TokenType, bool) {
	t, ok := keywords[text]
	return t, ok
}

// Keywords returns every reserved word in sorted order
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
