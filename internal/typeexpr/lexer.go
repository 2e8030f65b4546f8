// Package typeexpr parses the textual tag grammar used by the anno CLI
// and check suites: class names, ~T type variables, A | B unions, and
// subscripted forms such as Union[Int, Float], Tuple[] and
// Callable[[Int], String].
package typeexpr

import "unicode"

type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL
	IDENT
	LBRACKET
	RBRACKET
	COMMA
	PIPE
	TILDE
)

type Token struct {
	Type    TokenType
	Literal string
	Column  int
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	column       int
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() Token {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}

	tok := Token{Column: l.column, Literal: string(l.ch)}
	switch l.ch {
	case 0:
		tok.Type = EOF
		tok.Literal = ""
	case '[':
		tok.Type = LBRACKET
	case ']':
		tok.Type = RBRACKET
	case ',':
		tok.Type = COMMA
	case '|':
		tok.Type = PIPE
	case '~':
		tok.Type = TILDE
	default:
		if isIdentStart(l.ch) {
			tok.Type = IDENT
			tok.Literal = l.readIdentifier()
			return tok
		}
		tok.Type = ILLEGAL
	}
	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentStart(l.ch) || unicode.IsDigit(rune(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}
