package lang

import (
	"strconv"
)

// Kind identifies the lexical class of a [Token].
type Kind int

const (
	// KindEOF marks the end of the token stream.
	KindEOF Kind = iota

	// KindIs is the binder keyword "is".
	KindIs

	// KindIdentifier is a name or an operator symbol.
	KindIdentifier

	// KindInt is a non-negative decimal integer literal.
	KindInt

	// KindNil is the literal "nil".
	KindNil

	// KindOpenParens is "(".
	KindOpenParens

	// KindCloseParens is ")".
	KindCloseParens
)

// String returns a string representation of the token kind.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"

	case KindIs:
		return "Is"

	case KindIdentifier:
		return "Identifier"

	case KindInt:
		return "Int"

	case KindNil:
		return "Nil"

	case KindOpenParens:
		return "OpenParens"

	case KindCloseParens:
		return "CloseParens"

	default:
		return "Unknown"
	}
}

// keywords maps reserved words to their token kinds.
var keywords = map[string]Kind{
	"is":  KindIs,
	"nil": KindNil,
}

// Position locates a token or error within a snippet.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in runes
}

// String returns "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is a single lexical unit.
type Token struct {
	Kind Kind
	Text string // source text of the token
	Int  int64  // value of a KindInt token
	Pos  Position
}

// String renders the token the way it appears in diagnostics, for example
// Int(42) or Identifier("foo").
func (t Token) String() string {
	switch t.Kind {
	case KindIdentifier:
		return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"

	case KindInt:
		return t.Kind.String() + "(" + strconv.FormatInt(t.Int, 10) + ")"

	default:
		return t.Kind.String()
	}
}
