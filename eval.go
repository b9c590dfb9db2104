package exprtree

import (
	"math"
	"strconv"
)

// Eval evaluates the subexpression at id using 32-bit arithmetic. Variable
// nodes take their values from bindings. Exponentiation follows math.Pow, so
// e.g. a negative base with a fractional exponent gives NaN rather than an
// error.
func (x *Expr) Eval(id NodeID, bindings []float32) (float32, error) {
	return walk[float32](&x.arena, id, pointEval(bindings))
}

// pointEval evaluates nodes as float32 given a binding vector.
type pointEval []float32

func (b pointEval) leaf(id NodeID, n Node) (float32, error) {
	switch n.Kind {
	case KindConstant:
		return n.Const, nil
	case KindVariable:
		if n.Var < 0 || n.Var >= len(b) {
			return 0, &UnboundVariableError{Var: n.Var, Len: len(b)}
		}
		return b[n.Var], nil
	}
	panic("exprtree: invalid leaf " + n.String())
}

func (pointEval) binary(id NodeID, op NodeKind, l, r float32) (float32, error) {
	switch op {
	case KindAdd:
		return l + r, nil
	case KindSub:
		return l - r, nil
	case KindMul:
		return l * r, nil
	case KindDiv:
		return l / r, nil
	case KindExp:
		return float32(math.Pow(float64(l), float64(r))), nil
	}
	panic("exprtree: invalid operator " + op.String())
}

// evaluator supplies the arithmetic for walk.
type evaluator[T any] interface {
	// leaf produces the value of a variable or constant node.
	leaf(id NodeID, n Node) (T, error)
	// binary combines the values of the left and right operands of the
	// binary node id.
	binary(id NodeID, op NodeKind, l, r T) (T, error)
}

type evalKind int8

const (
	evalExpr evalKind = iota // subexpression to evaluate
	evalOp                   // operator awaiting both operand values
	evalVal                  // resolved value
)

// evalToken is an entry on the evaluation stack.
type evalToken[T any] struct {
	kind evalKind
	// id is the node to evaluate for evalExpr, or the node whose operator
	// this is for evalOp.
	id  NodeID
	op  NodeKind
	val T
}

// walk evaluates the subexpression at id in post-order with an explicit
// stack. A binary node is replaced by its operator with its right then left
// operands above it. Once the left operand resolves, its value is parked
// beneath the pending right operand; once the right operand resolves, the
// parked value and the operator beneath it are popped and combined. So an
// operator is always applied to exactly two values, the left one from the
// stack and the right one just resolved, and the walk ends when a value
// resolves with nothing left beneath it.
func walk[T any](a *Arena, id NodeID, e evaluator[T]) (T, error) {
	var zero T
	stack := []evalToken[T]{{kind: evalExpr, id: id}}
	for {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.kind != evalExpr {
			panic("exprtree: inconsistent stack: expected subexpression, got token kind " + strconv.Itoa(int(t.kind)))
		}
		n, err := a.Get(t.id)
		if err != nil {
			return zero, err
		}
		if n.Binary() {
			stack = append(stack,
				evalToken[T]{kind: evalOp, id: t.id, op: n.Kind},
				evalToken[T]{kind: evalExpr, id: n.Right},
				evalToken[T]{kind: evalExpr, id: n.Left},
			)
			continue
		}
		v, err := e.leaf(t.id, n)
		if err != nil {
			return zero, err
		}
		// Hand v to whatever is waiting for it.
		for {
			if len(stack) == 0 {
				return v, nil
			}
			top := stack[len(stack)-1]
			if top.kind == evalExpr {
				// v is a left operand.
				stack[len(stack)-1] = evalToken[T]{kind: evalVal, val: v}
				stack = append(stack, top)
				break
			}
			if top.kind != evalVal || len(stack) < 2 || stack[len(stack)-2].kind != evalOp {
				panic("exprtree: inconsistent stack: " + strconv.Itoa(len(stack)) + " items with no operator for value (bad expression?)")
			}
			op := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err = e.binary(op.id, op.op, top.val, v)
			if err != nil {
				return zero, err
			}
		}
	}
}
