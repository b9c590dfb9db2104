package exprtree

import "strconv"

// Arena is an append-only store of nodes. The zero value is an empty arena
// ready to use.
type Arena struct {
	nodes []Node
}

// Insert appends n and returns its ID. The operands of a binary node must
// already be in the arena, so that expressions stay acyclic. Insert panics if
// an operand is missing or n is not a valid kind.
func (a *Arena) Insert(n Node) NodeID {
	id := NodeID(len(a.nodes))
	if n.Kind <= KindNone || n.Kind > KindConstant {
		panic("exprtree: invalid node kind " + n.Kind.String())
	}
	if n.Binary() && (!a.has(n.Left) || !a.has(n.Right)) {
		panic("exprtree: node " + strconv.Itoa(int(id)) + " " + n.String() + " refers to a node not yet inserted")
	}
	a.nodes = append(a.nodes, n)
	return id
}

// Get returns the node with the given ID.
func (a *Arena) Get(id NodeID) (Node, error) {
	if !a.has(id) {
		return Node{}, &InvalidIDError{ID: id, Len: len(a.nodes)}
	}
	return a.nodes[id], nil
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

func (a *Arena) has(id NodeID) bool {
	return 0 <= id && int(id) < len(a.nodes)
}
