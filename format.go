package exprtree

import (
	"strconv"
	"strings"
)

// fmtToken is an entry on the formatting stack: either literal text or a
// subexpression still to be expanded.
type fmtToken struct {
	text string
	id   NodeID
	lit  bool
}

// Format renders the subexpression at id as fully parenthesized infix text,
// e.g. "((5 + Var(0)) * Var(1))".
func (x *Expr) Format(id NodeID) (string, error) {
	var b strings.Builder
	stack := []fmtToken{{id: id}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.lit {
			b.WriteString(t.text)
			continue
		}
		n, err := x.arena.Get(t.id)
		if err != nil {
			return "", err
		}
		switch n.Kind {
		case KindAdd, KindSub, KindMul, KindDiv, KindExp:
			// Pushed in reverse so that they pop in reading order.
			stack = append(stack,
				fmtToken{text: ")", lit: true},
				fmtToken{id: n.Right},
				fmtToken{text: n.Kind.op(), lit: true},
				fmtToken{id: n.Left},
				fmtToken{text: "(", lit: true},
			)
		case KindVariable:
			b.WriteString("Var(")
			b.WriteString(strconv.Itoa(n.Var))
			b.WriteByte(')')
		case KindConstant:
			b.WriteString(fmtconst(n.Const))
		default:
			panic("exprtree: invalid node kind " + n.Kind.String() + " after writing " + b.String())
		}
	}
	return b.String(), nil
}
