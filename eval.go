package gocalc

import (
	"fmt"
	"math"
)

// Eval computes the value of the tree rooted at node. Division truncates
// toward zero; division by zero and results outside int64 are errors.
func Eval(node Node) (int64, error) {
	switch n := node.(type) {
	case nil:
		return 0, ErrNilNode
	case *IntLit:
		return n.Value, nil
	case *NegExpr:
		v, err := Eval(n.Operand)
		if err != nil {
			return 0, err
		}
		r, ok := sub(0, v)
		if !ok {
			return 0, &EvalError{Pos: n.OpPos, Err: ErrOverflow}
		}
		return r, nil
	case *BinaryExpr:
		return evalBinary(n)
	}
	return 0, fmt.Errorf("unknown node type %T", node)
}

func evalBinary(n *BinaryExpr) (int64, error) {
	lhs, err := Eval(n.Left)
	if err != nil {
		return 0, err
	}
	rhs, err := Eval(n.Right)
	if err != nil {
		return 0, err
	}

	var r int64
	ok := true
	switch n.Op {
	case OpAdd:
		r, ok = add(lhs, rhs)
	case OpSub:
		r, ok = sub(lhs, rhs)
	case OpMul:
		r, ok = mul(lhs, rhs)
	case OpDiv:
		if rhs == 0 {
			return 0, &EvalError{Pos: n.OpPos, Err: ErrDivisionByZero}
		}
		if lhs == math.MinInt64 && rhs == -1 {
			ok = false
		} else {
			r = lhs / rhs
		}
	default:
		return 0, fmt.Errorf("unknown operator %v", n.Op)
	}
	if !ok {
		return 0, &EvalError{Pos: n.OpPos, Err: ErrOverflow}
	}
	return r, nil
}

func add(a, b int64) (int64, bool) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, false
	}
	return r, true
}

func sub(a, b int64) (int64, bool) {
	r := a - b
	if (b > 0 && r > a) || (b < 0 && r < a) {
		return 0, false
	}
	return r, true
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || r/b != a {
		return 0, false
	}
	return r, true
}
