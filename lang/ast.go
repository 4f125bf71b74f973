package lang

import (
	"strconv"
	"strings"
)

// Node is an immutable expression tree node.
type Node interface {
	// Pos returns the byte offset of the node in its source.
	Pos() int
	// String renders the node fully parenthesized.
	String() string

	node()
}

// Literal is a numeric constant.
type Literal struct {
	Value  float64
	Offset int
}

// VariableRef names a binding in the variable table.
type VariableRef struct {
	Name   string
	Offset int
}

// UnaryOp applies a prefix operator. Only [OpSub] is produced by the parser.
type UnaryOp struct {
	Op      Operator
	Operand Node
	Offset  int
}

// BinaryOp applies an infix operator.
type BinaryOp struct {
	Op          Operator
	Left, Right Node
	Offset      int // offset of the operator
}

// Call invokes a registered function with the given argument expressions.
type Call struct {
	Name   string
	Args   []Node
	Offset int
}

func (n *Literal) Pos() int     { return n.Offset }
func (n *VariableRef) Pos() int { return n.Offset }
func (n *UnaryOp) Pos() int     { return n.Offset }
func (n *BinaryOp) Pos() int    { return n.Offset }
func (n *Call) Pos() int        { return n.Offset }

func (*Literal) node()     {}
func (*VariableRef) node() {}
func (*UnaryOp) node()     {}
func (*BinaryOp) node()    {}
func (*Call) node()        {}

func (n *Literal) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *VariableRef) String() string { return n.Name }

func (n *UnaryOp) String() string {
	return "(" + n.Op.String() + n.Operand.String() + ")"
}

func (n *BinaryOp) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}

	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

// Walk calls fn for n and each of its descendants in depth-first order,
// stopping early when fn returns false.
func Walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}

	switch n := n.(type) {
	case *UnaryOp:
		return Walk(n.Operand, fn)

	case *BinaryOp:
		return Walk(n.Left, fn) && Walk(n.Right, fn)

	case *Call:
		for _, a := range n.Args {
			if !Walk(a, fn) {
				return false
			}
		}
	}

	return true
}
