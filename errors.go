package exprtree

import (
	"math/big"
	"strconv"
)

// InvalidIDError is an error indicating a NodeID that does not name a node in
// the expression.
type InvalidIDError struct {
	// ID is the offending identifier.
	ID NodeID
	// Len is the number of nodes in the expression at the time.
	Len int
}

func (err *InvalidIDError) Error() string {
	return "invalid node id " + strconv.Itoa(int(err.ID)) + " in expression of " + strconv.Itoa(err.Len) + " nodes"
}

// UnboundVariableError is an error from evaluating a variable whose index has
// no value in the bindings.
type UnboundVariableError struct {
	// Var is the variable index that was missing.
	Var int
	// Len is the number of bindings that were supplied.
	Len int
}

func (err *UnboundVariableError) Error() string {
	return "unbound variable Var(" + strconv.Itoa(err.Var) + ") with " + strconv.Itoa(err.Len) + " bindings"
}

// DomainError is an error returned by arbitrary-precision evaluation when an
// operation has no real result, e.g. 0/0 or a negative number raised to a
// fractional power.
type DomainError struct {
	// X is the out-of-domain operand, if there is one.
	X *big.Float
	// Node is the node whose evaluation failed.
	Node NodeID
	// Op identifies the operation.
	Op string
}

func (err *DomainError) Error() string {
	r := "NaN"
	if err.X != nil {
		r = err.X.String() + " outside domain"
	}
	if err.Op != "" {
		r += " of " + err.Op
	}
	return r + " at node " + strconv.Itoa(int(err.Node))
}
