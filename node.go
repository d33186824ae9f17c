package gocalc

import (
	"bytes"
	"fmt"
	"strconv"
)

type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Node is an expression tree. The concrete types are *IntLit, *BinaryExpr and
// *NegExpr.
type Node interface {
	Pos() int
	String() string
	exprNode()
}

type IntLit struct {
	Value  int64
	Offset int
}

type BinaryExpr struct {
	Op    Op
	Left  Node
	Right Node
	OpPos int
}

// NegExpr is unary minus.
type NegExpr struct {
	Operand Node
	OpPos   int
}

func (n *IntLit) Pos() int     { return n.Offset }
func (n *BinaryExpr) Pos() int { return n.Left.Pos() }
func (n *NegExpr) Pos() int    { return n.OpPos }

func (*IntLit) exprNode()     {}
func (*BinaryExpr) exprNode() {}
func (*NegExpr) exprNode()    {}

func (n *IntLit) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *BinaryExpr) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%v %v %v)", n.Op, n.Left, n.Right)
	return buf.String()
}

func (n *NegExpr) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(neg %v)", n.Operand)
	return buf.String()
}

func binaryOp(kind TokenKind) Op {
	switch kind {
	case TokenPlus:
		return OpAdd
	case TokenMinus:
		return OpSub
	case TokenStar:
		return OpMul
	case TokenSlash:
		return OpDiv
	}
	panic(fmt.Sprintf("gocalc: %v is not a binary operator", kind))
}
