package exprtree

import "sort"

// Expr is an expression: an arena of nodes and a designated root. Build one by
// inserting nodes bottom-up. Once built, an Expr is safe to read concurrently.
type Expr struct {
	arena Arena
	root  NodeID
	// fixed is whether the root was chosen with SetRoot.
	fixed bool
}

// New creates an empty expression.
func New() *Expr {
	return &Expr{}
}

// Insert adds a node to the expression and returns its ID. Unless SetRoot has
// been called, the new node becomes the root. Insert panics under the same
// conditions as Arena.Insert.
func (x *Expr) Insert(n Node) NodeID {
	id := x.arena.Insert(n)
	if !x.fixed {
		x.root = id
	}
	return id
}

// Node returns the node with the given ID.
func (x *Expr) Node(id NodeID) (Node, error) {
	return x.arena.Get(id)
}

// Len returns the number of nodes in the expression.
func (x *Expr) Len() int {
	return x.arena.Len()
}

// Root returns the root of the expression. It is only meaningful if the
// expression has at least one node.
func (x *Expr) Root() NodeID {
	return x.root
}

// SetRoot sets the root of the expression. Later insertions no longer move
// the root.
func (x *Expr) SetRoot(id NodeID) error {
	if !x.arena.has(id) {
		return &InvalidIDError{ID: id, Len: x.arena.Len()}
	}
	x.root = id
	x.fixed = true
	return nil
}

// String formats the expression from its root.
func (x *Expr) String() string {
	if x.arena.Len() == 0 {
		return "<empty>"
	}
	s, err := x.Format(x.root)
	if err != nil {
		// The root is always valid.
		panic("exprtree: " + err.Error())
	}
	return s
}

// Vars returns the sorted list of distinct variable indices used in the
// subexpression at id.
func (x *Expr) Vars(id NodeID) ([]int, error) {
	if !x.arena.has(id) {
		return nil, &InvalidIDError{ID: id, Len: x.arena.Len()}
	}
	seen := make([]bool, x.arena.Len())
	have := make(map[int]bool)
	var r []int
	stack := []NodeID{id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		n := x.arena.nodes[id]
		switch {
		case n.Binary():
			stack = append(stack, n.Right, n.Left)
		case n.Kind == KindVariable:
			if !have[n.Var] {
				have[n.Var] = true
				r = append(r, n.Var)
			}
		}
	}
	sort.Ints(r)
	return r, nil
}
