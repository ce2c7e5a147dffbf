package lang

import (
	"iter"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer converts snippet source into a lazy sequence of tokens.
//
// It consumes its input as it advances and never looks further ahead than
// the next rune. A Lexer cannot be rewound; create a new one to restart.
type Lexer struct {
	input string
	pos   int
	line  int
	col   int
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{
		input: src,
		pos:   0,
		line:  1,
		col:   1,
	}
}

// Lex tokenizes src completely. The returned slice does not include the
// trailing EOF token.
func Lex(src string) ([]Token, error) {
	var toks []Token

	for tok, err := range NewLexer(src).Tokens() {
		if err != nil {
			return toks, err
		}

		toks = append(toks, tok)
	}

	return toks, nil
}

// Tokens returns an iterator over the remaining tokens. Iteration stops
// before EOF or after yielding the first error.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if err != nil {
				yield(tok, err)

				return
			}

			if tok.Kind == KindEOF {
				return
			}

			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Next returns the next token. At end of input it returns a KindEOF token,
// repeatedly if called again. An unexpected character is not consumed.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	start := l.position()

	if l.eof() {
		return Token{Kind: KindEOF, Pos: start}, nil
	}

	ch := l.peek()

	switch {
	case isDigit(ch):
		return l.lexInt(start)

	case isIdentifierStart(ch):
		return l.lexIdentifier(start), nil

	case isOperator(ch):
		l.advance()

		return Token{Kind: KindIdentifier, Text: string(ch), Pos: start}, nil

	case ch == '(':
		l.advance()

		return Token{Kind: KindOpenParens, Text: "(", Pos: start}, nil

	case ch == ')':
		l.advance()

		return Token{Kind: KindCloseParens, Text: ")", Pos: start}, nil
	}

	return Token{Pos: start}, &ParseError{
		Err:    ErrUnexpectedChar,
		Pos:    start,
		Char:   ch,
		Source: l.input,
	}
}

// lexInt accumulates a maximal run of decimal digits.
func (l *Lexer) lexInt(start Position) (Token, error) {
	var acc int64

	begin := l.pos

	for !l.eof() && isDigit(l.peek()) {
		d := int64(l.peek() - '0')

		if acc > (math.MaxInt64-d)/10 {
			return Token{Pos: start}, &ParseError{
				Err:    ErrIntOverflow,
				Pos:    start,
				Source: l.input,
			}
		}

		acc = 10*acc + d

		l.advance()
	}

	return Token{
		Kind: KindInt,
		Text: l.input[begin:l.pos],
		Int:  acc,
		Pos:  start,
	}, nil
}

// lexIdentifier scans a maximal identifier and resolves keywords.
func (l *Lexer) lexIdentifier(start Position) Token {
	begin := l.pos

	l.advance()

	for !l.eof() && isIdentifierContinue(l.peek()) {
		l.advance()
	}

	text := l.input[begin:l.pos]

	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Text: text, Pos: start}
	}

	return Token{Kind: KindIdentifier, Text: text, Pos: start}
}

// Helper methods

func (l *Lexer) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])

	return r
}

func (l *Lexer) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])

	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.eof() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// Character classification

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isOperator(r rune) bool {
	return strings.ContainsRune("+-*/", r)
}
