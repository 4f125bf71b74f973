package lang

//go:generate go tool stringer --linecomment --type TokenKind --output token_string.go

import "strconv"

// TokenKind identifies the lexical class of a [Token].
type TokenKind int

const (
	TokenEnd        TokenKind = iota // end of input
	TokenNumber                      // number
	TokenIdentifier                  // identifier
	TokenOperator                    // operator
	TokenLParen                      // '('
	TokenRParen                      // ')'
	TokenComma                       // ','
)

// Operator is an arithmetic operator symbol.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpMod Operator = '%'
	OpPow Operator = '^'
)

func (op Operator) String() string { return string(rune(op)) }

func isOperator(c byte) bool {
	switch Operator(c) {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow:
		return true
	}

	return false
}

// Token is a single lexical element of an expression. Exactly one of Number,
// Name, or Op is meaningful, depending on Kind.
type Token struct {
	Kind   TokenKind
	Number float64
	Name   string
	Op     Operator
	Pos    int // byte offset in the source
}

// String describes the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return "number " + strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenIdentifier:
		return "identifier " + strconv.Quote(t.Name)
	case TokenOperator:
		return "'" + t.Op.String() + "'"
	default:
		return t.Kind.String()
	}
}
