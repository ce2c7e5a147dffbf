package lang

import (
	"strconv"
	"strings"
)

// Code is the source text of a single snippet extracted from a document.
type Code string

// Ident is a variable or function name. Two idents are equal iff their text
// is equal, so Ident is usable as a map key.
type Ident string

// String returns the identifier text.
func (i Ident) String() string { return string(i) }

// ExprKind indicates the kind of an [Expr] node.
type ExprKind int

const (
	// ExprNil is the nil literal.
	ExprNil ExprKind = iota

	// ExprInt is an integer literal.
	ExprInt

	// ExprIdent is a variable reference resolved at evaluation time.
	ExprIdent

	// ExprCall applies a named operator or function to its arguments.
	ExprCall
)

// String returns a string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprNil:
		return "Nil"

	case ExprInt:
		return "Int"

	case ExprIdent:
		return "Ident"

	case ExprCall:
		return "Call"

	default:
		return "Unknown"
	}
}

// Expr is a node of the abstract syntax tree.
//
// Exactly the fields relevant to Kind are set. For ExprCall, Ident holds the
// head name, which is not itself an expression. Trees are immutable once
// parsed and may be shared freely, including across interpreters.
type Expr struct {
	Kind  ExprKind
	Int   int64   // ExprInt
	Ident Ident   // ExprIdent, ExprCall head
	Args  []*Expr // ExprCall
	Pos   Position
}

// NewNil returns a nil literal node.
func NewNil() *Expr { return &Expr{Kind: ExprNil} }

// NewInt returns an integer literal node.
func NewInt(i int64) *Expr { return &Expr{Kind: ExprInt, Int: i} }

// NewIdent returns a variable reference node.
func NewIdent(name Ident) *Expr { return &Expr{Kind: ExprIdent, Ident: name} }

// NewCall returns a call node applying head to args.
func NewCall(head Ident, args ...*Expr) *Expr {
	return &Expr{Kind: ExprCall, Ident: head, Args: args}
}

// Equal reports whether two trees are structurally identical, ignoring
// positions.
func (e *Expr) Equal(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}

	if e.Kind != other.Kind || e.Int != other.Int || e.Ident != other.Ident ||
		len(e.Args) != len(other.Args) {
		return false
	}

	for i := range e.Args {
		if !e.Args[i].Equal(other.Args[i]) {
			return false
		}
	}

	return true
}

// String renders the expression as source text that parses back to an
// equal tree.
func (e *Expr) String() string {
	var b strings.Builder

	e.write(&b)

	return b.String()
}

func (e *Expr) write(b *strings.Builder) {
	switch e.Kind {
	case ExprNil:
		b.WriteString("nil")

	case ExprInt:
		b.WriteString(strconv.FormatInt(e.Int, 10))

	case ExprIdent:
		b.WriteString(string(e.Ident))

	case ExprCall:
		b.WriteByte('(')
		b.WriteString(string(e.Ident))

		for _, arg := range e.Args {
			b.WriteByte(' ')
			arg.write(b)
		}

		b.WriteByte(')')
	}
}

// DefinitionKind distinguishes value definitions from function definitions.
type DefinitionKind int

const (
	// DefineValue binds a name to the value of an expression.
	DefineValue DefinitionKind = iota

	// DefineFunction binds a name to a parameter list and body.
	DefineFunction
)

// String returns a string representation of the definition kind.
func (k DefinitionKind) String() string {
	switch k {
	case DefineValue:
		return "Value"

	case DefineFunction:
		return "Function"

	default:
		return "Unknown"
	}
}

// Definition pairs a name with either an expression (Value) or a function
// (Params and Body). The right-hand side is not evaluated by the parser.
type Definition struct {
	Name   Ident
	Kind   DefinitionKind
	Value  *Expr   // DefineValue
	Params []Ident // DefineFunction
	Body   *Expr   // DefineFunction
	Pos    Position
}

// String renders the definition as source text.
func (d *Definition) String() string {
	var b strings.Builder

	b.WriteString(string(d.Name))
	b.WriteString(" is ")

	if d.Kind == DefineFunction {
		b.WriteString("fn (")

		for i, p := range d.Params {
			if i > 0 {
				b.WriteByte(' ')
			}

			b.WriteString(string(p))
		}

		b.WriteString(") ")
		d.Body.write(&b)

		return b.String()
	}

	d.Value.write(&b)

	return b.String()
}

// Function is a user-defined function stored in an interpreter. The body is
// shared, never copied: calls borrow it read-only.
type Function struct {
	Params []Ident
	Body   *Expr
}
