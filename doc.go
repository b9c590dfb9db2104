// Package exprtree implements arithmetic expression trees stored in an arena.
//
// Nodes are inserted bottom-up into an Expr and referred to by NodeID. A
// child must exist before a parent can refer to it, so expressions are always
// acyclic, though subexpressions may be shared. Any node can be formatted or
// evaluated, not only the root.
//
// Formatting and evaluation walk the tree with an explicit stack rather than
// recursion, so the depth of an expression is limited only by memory.
// Expressions can be evaluated with 32-bit floats through Expr.Eval, or to
// arbitrary precision through a Context.
//
package exprtree
