package lang

import "log/slog"

// parser is a recursive descent parser over a token slice terminated by
// [TokenEnd].
type parser struct {
	toks     []Token
	pos      int
	depth    int
	maxDepth int
}

// Parse builds an expression tree from tokens produced by [Tokenize].
// Malformed input fails with [ErrParse]; nesting beyond the configured
// depth fails with [ErrMaxDepthExceeded].
func Parse(tokens []Token, opts ...Option) (Node, error) {
	o := makeOptions(opts...)

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEnd {
		end := 0
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Pos
		}

		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: TokenEnd, Pos: end})
	}

	p := &parser{toks: tokens, maxDepth: o.maxDepth}

	n, err := p.expr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != TokenEnd {
		return nil, ErrParse.At(tok.Pos).Expect("operator or end of input", tok.String())
	}

	return n, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != TokenEnd {
		p.pos++
	}

	return tok
}

func (p *parser) isOp(ops ...Operator) (Operator, bool) {
	tok := p.peek()
	if tok.Kind != TokenOperator {
		return 0, false
	}

	for _, op := range ops {
		if tok.Op == op {
			return op, true
		}
	}

	return 0, false
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return ErrMaxDepthExceeded.At(p.peek().Pos).
			With(slog.Int("max_depth", p.maxDepth))
	}

	return nil
}

func (p *parser) leave() { p.depth-- }

// expr → term (('+' | '-') term)*
func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.isOp(OpAdd, OpSub)
		if !ok {
			return left, nil
		}

		at := p.next().Pos

		right, err := p.term()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Op: op, Left: left, Right: right, Offset: at}
	}
}

// term → unary (('*' | '/' | '%') unary)*
func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.isOp(OpMul, OpDiv, OpMod)
		if !ok {
			return left, nil
		}

		at := p.next().Pos

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Op: op, Left: left, Right: right, Offset: at}
	}
}

// unary → '-' unary | power
func (p *parser) unary() (Node, error) {
	if _, ok := p.isOp(OpSub); ok {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		at := p.next().Pos

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &UnaryOp{Op: OpSub, Operand: operand, Offset: at}, nil
	}

	return p.power()
}

// power → primary ('^' unary)?
//
// The exponent is parsed as a unary so that it may be negated and so that
// '^' associates to the right.
func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}

	if _, ok := p.isOp(OpPow); !ok {
		return base, nil
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	at := p.next().Pos

	exp, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &BinaryOp{Op: OpPow, Left: base, Right: exp, Offset: at}, nil
}

// primary → number | ident | ident '(' args ')' | '(' expr ')'
func (p *parser) primary() (Node, error) {
	tok := p.next()

	switch tok.Kind {
	case TokenNumber:
		return &Literal{Value: tok.Number, Offset: tok.Pos}, nil

	case TokenIdentifier:
		if p.peek().Kind == TokenLParen {
			p.next()

			return p.call(tok)
		}

		return &VariableRef{Name: tok.Name, Offset: tok.Pos}, nil

	case TokenLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		n, err := p.expr()
		if err != nil {
			return nil, err
		}

		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}

		return n, nil

	default:
		return nil, ErrParse.At(tok.Pos).Expect("operand", tok.String())
	}
}

// call parses the argument list following "name(".
func (p *parser) call(name Token) (Node, error) {
	c := &Call{Name: name.Name, Offset: name.Pos}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.peek().Kind == TokenRParen {
		p.next()

		return c, nil
	}

	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}

		c.Args = append(c.Args, arg)

		switch tok := p.next(); tok.Kind {
		case TokenComma:
			continue
		case TokenRParen:
			return c, nil
		default:
			return nil, ErrParse.At(tok.Pos).Expect("',' or ')'", tok.String())
		}
	}
}

func (p *parser) expect(kind TokenKind) error {
	if tok := p.next(); tok.Kind != kind {
		return ErrParse.At(tok.Pos).Expect(kind.String(), tok.String())
	}

	return nil
}
