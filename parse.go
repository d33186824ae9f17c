package gocalc

type parser struct {
	tokens []Token
	index  int
	cur    Token
}

// Parse builds the expression tree for a complete token sequence. The
// sequence must end with TokenEOF and every token before it must belong to
// the expression.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		return nil, ErrNoEOF
	}
	p := &parser{
		tokens: tokens,
	}
	p.next()

	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEOF) {
		return nil, p.errorf("end of input")
	}
	return node, nil
}

// ParseString scans and parses src.
func ParseString(src string) (Node, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) next() {
	p.cur = p.tokens[p.index]
	if p.index < len(p.tokens)-1 {
		p.index++
	}
}

func (p *parser) check(kind TokenKind) bool {
	return p.cur.Kind == kind
}

func (p *parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.next()
		return true
	}
	return false
}

func (p *parser) consume(kind TokenKind) error {
	if p.match(kind) {
		return nil
	}
	return p.errorf(kind.String())
}

func (p *parser) errorf(expected string) error {
	return &SyntaxError{
		Pos:      p.cur.Pos,
		Expected: expected,
		Found:    p.cur,
	}
}

func (p *parser) expression() (Node, error) {
	return p.term()
}

func (p *parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := p.cur
		p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    binaryOp(op.Kind),
			Left:  left,
			Right: right,
			OpPos: op.Pos,
		}
	}
	return left, nil
}

func (p *parser) factor() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(TokenStar) || p.check(TokenSlash) {
		op := p.cur
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    binaryOp(op.Kind),
			Left:  left,
			Right: right,
			OpPos: op.Pos,
		}
	}
	return left, nil
}

func (p *parser) unary() (Node, error) {
	if p.check(TokenMinus) {
		op := p.cur
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &NegExpr{
			Operand: operand,
			OpPos:   op.Pos,
		}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Node, error) {
	switch {
	case p.check(TokenInt):
		leaf := &IntLit{
			Value:  p.cur.Value,
			Offset: p.cur.Pos,
		}
		p.next()
		return leaf, nil
	case p.match(TokenLeftParen):
		node, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(TokenRightParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, p.errorf("expression")
}
