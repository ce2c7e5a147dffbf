package lang

// Parser is a recursive-descent parser over a [Lexer] with one token of
// lookahead. It never backtracks and does not recover from errors.
type Parser struct {
	lex    *Lexer
	source string
	peeked *Token
}

// NewParser returns a Parser reading tokens from src.
func NewParser(src string) *Parser {
	return &Parser{
		lex:    NewLexer(src),
		source: src,
	}
}

// ParseExpr parses src as a top-level expression.
func ParseExpr(src string) (*Expr, error) {
	return NewParser(src).TopLevelExpr()
}

// ParseDefinition parses src as a top-level definition.
func ParseDefinition(src string) (*Definition, error) {
	return NewParser(src).TopLevelDefinition()
}

// TopLevelExpr parses one expression and requires the input to end there.
func (p *Parser) TopLevelExpr() (*Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return expr, nil
}

// TopLevelDefinition parses one definition and requires the input to end
// there.
func (p *Parser) TopLevelDefinition() (*Definition, error) {
	def, err := p.parseDefinition()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return def, nil
}

// parseExpr parses: IDENT | INT | NIL | call.
func (p *Parser) parseExpr() (*Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case KindIdentifier:
		p.advance()

		return &Expr{Kind: ExprIdent, Ident: Ident(tok.Text), Pos: tok.Pos}, nil

	case KindInt:
		p.advance()

		return &Expr{Kind: ExprInt, Int: tok.Int, Pos: tok.Pos}, nil

	case KindNil:
		p.advance()

		return &Expr{Kind: ExprNil, Pos: tok.Pos}, nil

	case KindOpenParens:
		return p.parseCall()

	case KindEOF:
		return nil, p.errorEOF(tok)

	default:
		return nil, p.errorToken(tok)
	}
}

// parseCall parses: '(' IDENT expr* ')'.
func (p *Parser) parseCall() (*Expr, error) {
	open, err := p.expect(KindOpenParens)
	if err != nil {
		return nil, err
	}

	head, err := p.expect(KindIdentifier)
	if err != nil {
		return nil, err
	}

	call := &Expr{Kind: ExprCall, Ident: Ident(head.Text), Pos: open.Pos}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case KindCloseParens:
			p.advance()

			return call, nil

		case KindEOF:
			return nil, p.errorEOF(tok)
		}

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)
	}
}

// fnMarker introduces a function definition when followed by a parameter
// list. Anywhere else it is an identifier.
const fnMarker = "fn"

// parseDefinition parses: IDENT 'is' ( function | expr ).
func (p *Parser) parseDefinition() (*Definition, error) {
	name, err := p.expect(KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindIs); err != nil {
		return nil, err
	}

	def := &Definition{Name: Ident(name.Text), Pos: name.Pos}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	// "fn" is an ordinary name unless a parameter list follows it
	if tok.Kind == KindIdentifier && tok.Text == fnMarker {
		p.advance()

		next, err := p.peek()
		if err != nil {
			return nil, err
		}

		if next.Kind != KindOpenParens {
			def.Kind = DefineValue
			def.Value = &Expr{Kind: ExprIdent, Ident: fnMarker, Pos: tok.Pos}

			return def, nil
		}

		def.Kind = DefineFunction

		def.Params, err = p.parseParams()
		if err != nil {
			return nil, err
		}

		def.Body, err = p.parseExpr()
		if err != nil {
			return nil, err
		}

		return def, nil
	}

	def.Kind = DefineValue

	def.Value, err = p.parseExpr()
	if err != nil {
		return nil, err
	}

	return def, nil
}

// parseParams parses: '(' IDENT* ')'.
func (p *Parser) parseParams() ([]Ident, error) {
	if _, err := p.expect(KindOpenParens); err != nil {
		return nil, err
	}

	params := make([]Ident, 0)

	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case KindCloseParens:
			return params, nil

		case KindIdentifier:
			params = append(params, Ident(tok.Text))

		case KindEOF:
			return nil, p.errorEOF(tok)

		default:
			return nil, p.errorToken(tok)
		}
	}
}

// Helper methods

func (p *Parser) peek() (Token, error) {
	if p.peeked != nil {
		return *p.peeked, nil
	}

	tok, err := p.lex.Next()
	if err != nil {
		return tok, err
	}

	p.peeked = &tok

	return tok, nil
}

func (p *Parser) next() (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return tok, err
	}

	p.advance()

	return tok, nil
}

// advance drops the peeked token.
func (p *Parser) advance() {
	p.peeked = nil
}

func (p *Parser) expect(kind Kind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}

	switch tok.Kind {
	case kind:
		return tok, nil

	case KindEOF:
		return tok, p.errorEOF(tok)

	default:
		return tok, p.errorToken(tok)
	}
}

func (p *Parser) expectEOF() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}

	if tok.Kind != KindEOF {
		return p.errorToken(tok)
	}

	return nil
}

func (p *Parser) errorEOF(tok Token) error {
	return &ParseError{
		Err:    ErrUnexpectedEOF,
		Pos:    tok.Pos,
		Source: p.source,
	}
}

func (p *Parser) errorToken(tok Token) error {
	return &ParseError{
		Err:    ErrUnexpectedToken,
		Pos:    tok.Pos,
		Token:  &tok,
		Source: p.source,
	}
}
