package exprtree

import "strconv"

// NodeID identifies a node within the Expr that issued it. IDs are never
// reused or invalidated, and they mean nothing to any other Expr.
type NodeID int

// NodeKind is the kind of a node.
type NodeKind int8

const (
	KindNone NodeKind = iota

	KindAdd // Left + Right
	KindSub // Left - Right
	KindMul // Left * Right
	KindDiv // Left / Right
	KindExp // Left ^ Right

	KindVariable // bindings[Var]
	KindConstant // Const
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=NodeKind -trimprefix=Kind
//go:generate go mod tidy

// op returns the infix text for a binary kind.
func (k NodeKind) op() string {
	switch k {
	case KindAdd:
		return " + "
	case KindSub:
		return " - "
	case KindMul:
		return " * "
	case KindDiv:
		return " / "
	case KindExp:
		return " ^ "
	}
	panic("exprtree: no operator for node kind " + k.String())
}

// Node is a single node of an expression. Only the fields relevant to Kind
// are meaningful. Use the constructor functions to create nodes.
type Node struct {
	Kind NodeKind

	// Left and Right are the operands of binary nodes.
	Left  NodeID
	Right NodeID
	// Var is the binding index of a variable node.
	Var int
	// Const is the value of a constant node.
	Const float32
}

// Add creates a node for l + r.
func Add(l, r NodeID) Node {
	return Node{Kind: KindAdd, Left: l, Right: r}
}

// Sub creates a node for l - r.
func Sub(l, r NodeID) Node {
	return Node{Kind: KindSub, Left: l, Right: r}
}

// Mul creates a node for l * r.
func Mul(l, r NodeID) Node {
	return Node{Kind: KindMul, Left: l, Right: r}
}

// Div creates a node for l / r.
func Div(l, r NodeID) Node {
	return Node{Kind: KindDiv, Left: l, Right: r}
}

// Exp creates a node for l raised to the power r.
func Exp(l, r NodeID) Node {
	return Node{Kind: KindExp, Left: l, Right: r}
}

// Variable creates a node that refers to the value at index i of the bindings
// supplied at evaluation. The index is not checked until then.
func Variable(i int) Node {
	return Node{Kind: KindVariable, Var: i}
}

// Constant creates a literal node.
func Constant(c float32) Node {
	return Node{Kind: KindConstant, Const: c}
}

// Binary returns whether n has two operands.
func (n Node) Binary() bool {
	return KindAdd <= n.Kind && n.Kind <= KindExp
}

// String renders n alone, without expanding its operands.
func (n Node) String() string {
	switch {
	case n.Binary():
		return n.Kind.String() + "(" + strconv.Itoa(int(n.Left)) + ", " + strconv.Itoa(int(n.Right)) + ")"
	case n.Kind == KindVariable:
		return "Var(" + strconv.Itoa(n.Var) + ")"
	case n.Kind == KindConstant:
		return "Const(" + fmtconst(n.Const) + ")"
	default:
		return n.Kind.String()
	}
}

// fmtconst formats a constant as the shortest decimal that reads back as the
// same float32.
func fmtconst(c float32) string {
	return strconv.FormatFloat(float64(c), 'f', -1, 32)
}
