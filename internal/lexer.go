package internal

import (
	"strconv"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"jslc/internal/tokens"
)

// Lexer turns source text into tokens. A lexer scans its source once.
type Lexer struct {
	source  string
	start   int
	current int
	line    int

	tokens  []Token
	scanned bool

	reporter ErrorReporter
	strict   bool
	logger   logrus.FieldLogger
}

// LexerOption configures a Lexer
type LexerOption func(*Lexer)

// WithStrict reports unterminated block comments and lone '|' as errors
func WithStrict() LexerOption {
	return func(l *Lexer) {
		l.strict = true
	}
}

// WithLogger enables debug logging of scans
func WithLogger(logger logrus.FieldLogger) LexerOption {
	return func(l *Lexer) {
		l.logger = logger
	}
}

// NewLexer creates a lexer over source. A nil reporter discards errors.
func NewLexer(source string, reporter ErrorReporter, opts ...LexerOption) *Lexer {
	if reporter == nil {
		reporter = discardReporter{}
	}
	l := &Lexer{
		source:   source,
		line:     1,
		reporter: reporter,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Scan tokenizes source with a fresh lexer
func Scan(source string, reporter ErrorReporter, opts ...LexerOption) []Token {
	return NewLexer(source, reporter, opts...).Scan()
}

// Scan consumes the whole source and returns its tokens, always ending in EOF
func (l *Lexer) Scan() []Token {
	if l.scanned {
		return l.tokens
	}
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{
		token: tokens.EOF,
		line:  l.line,
	})
	l.scanned = true

	if l.logger != nil {
		l.logger.WithFields(logrus.Fields{
			"tokens": len(l.tokens),
			"lines":  l.line,
			"bytes":  len(l.source),
		}).Debug("scan finished")
	}
	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tokens.LEFT_PAREN, nil)
	case ')':
		l.emit(tokens.RIGHT_PAREN, nil)
	case '{':
		l.emit(tokens.LEFT_BRACE, nil)
	case '}':
		l.emit(tokens.RIGHT_BRACE, nil)
	case ',':
		l.emit(tokens.COMMA, nil)
	case '.':
		l.emit(tokens.DOT, nil)
	case '-':
		l.emit(tokens.MINUS, nil)
	case '+':
		l.emit(tokens.PLUS, nil)
	case ';':
		l.emit(tokens.SEMICOLON, nil)
	case '*':
		// A comment closer with no opener
		if l.match('/') {
			l.report(ErrUnexpectedCharacter, l.source[l.start:l.current])
			return
		}
		l.emit(tokens.STAR, nil)
	case '!':
		if l.match('=') {
			l.emit(tokens.BANG_EQUAL, nil)
		} else {
			l.emit(tokens.BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tokens.EQUAL_EQUAL, nil)
		} else {
			l.emit(tokens.EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tokens.LESS_EQUAL, nil)
		} else {
			l.emit(tokens.LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tokens.GREATER_EQUAL, nil)
		} else {
			l.emit(tokens.GREATER, nil)
		}
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else if l.match('*') {
			l.blockComment()
		} else {
			l.emit(tokens.SLASH, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '\'':
		l.string()

	case '|':
		if l.match('|') {
			l.emit(tokens.OR, nil)
		} else if l.strict {
			l.report(ErrUnexpectedBar, "|")
		}

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.unexpected()
		}
	}
}

func (l *Lexer) blockComment() {
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return
		}
		if l.advance() == '\n' {
			l.line++
		}
	}
	if l.strict {
		l.report(ErrUnterminatedComment, "")
	}
}

// unexpected reports the whole rune starting at l.start
func (l *Lexer) unexpected() {
	_, size := utf8.DecodeRuneInString(l.source[l.start:])
	if size > 1 {
		l.current = l.start + size
	}
	l.report(ErrUnexpectedCharacter, l.source[l.start:l.current])
}

func (l *Lexer) string() {
	for l.peek() != '\'' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.report(ErrUnterminatedString, "")
		return
	}

	// Consume ending '
	l.advance()

	l.emit(tokens.STRING, l.source[l.start+1:l.current-1])
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// A run of digits with an optional fraction always parses
	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	l.emit(tokens.NUMBER, literal)
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	tokenType, ok := tokens.Keyword(l.source[l.start:l.current])
	if !ok {
		tokenType = tokens.IDENTIFIER
	}

	l.emit(tokenType, nil)
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) emit(token tokens.TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		token:   token,
		lexeme:  l.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	})
}

func (l *Lexer) report(err error, context string) {
	l.reporter.Report(l.line, err, context)
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
